package usecase

import (
	"context"

	"mandi/internal/domain/entity"
)

// TranslationUsecase defines the interface for chat message translation use cases
type TranslationUsecase interface {
	// Translate translates one source string and attaches a heuristic
	// confidence score the caller uses to gate retry affordances.
	Translate(ctx context.Context, text, fromLang, toLang string) (*entity.TranslationResult, error)
}
