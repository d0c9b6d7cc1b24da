package impl

import (
	"context"

	"mandi/internal/domain/entity"
	domainerrors "mandi/internal/domain/errors"
	"mandi/internal/domain/service"
	"mandi/internal/usecase"
)

type translationService struct {
	translator service.Translator
}

// NewTranslationService creates a new translation service instance
func NewTranslationService(translator service.Translator) usecase.TranslationUsecase {
	return &translationService{
		translator: translator,
	}
}

// Translate translates one source string and scores the result. Backend
// failures are mapped to user-facing errors and never retried here.
func (s *translationService) Translate(ctx context.Context, text, fromLang, toLang string) (*entity.TranslationResult, error) {
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("text is required")
	}
	if toLang == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("target language is required")
	}

	translated, err := s.translator.Translate(ctx, text, fromLang, toLang)
	if err != nil {
		return nil, mapTranslationError(err)
	}

	return &entity.TranslationResult{
		OriginalText:   text,
		TranslatedText: translated,
		FromLang:       fromLang,
		ToLang:         toLang,
		Confidence:     ScoreConfidence(text, translated, fromLang, toLang),
	}, nil
}

// mapTranslationError converts a classified backend failure into the
// user-facing error the API surfaces.
func mapTranslationError(err error) error {
	te, ok := service.AsTranslationError(err)
	if !ok {
		return domainerrors.ErrTranslationFailed.WrapMessage(err.Error())
	}

	switch te.Kind {
	case service.TranslationQuota:
		return domainerrors.ErrTranslationQuota
	case service.TranslationSafetyFilter:
		return domainerrors.ErrTranslationBlocked
	case service.TranslationTimeout:
		return domainerrors.ErrTranslationTimeout
	default:
		return domainerrors.ErrTranslationFailed.WrapMessage(te.Error())
	}
}
