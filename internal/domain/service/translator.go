package service

import (
	"context"
	"fmt"
)

// TranslationErrorKind classifies a translation backend failure.
type TranslationErrorKind string

const (
	// TranslationQuota means the backend rejected the call for quota/billing reasons.
	TranslationQuota TranslationErrorKind = "quota"
	// TranslationSafetyFilter means the backend refused the content.
	TranslationSafetyFilter TranslationErrorKind = "safety_filter"
	// TranslationTimeout means the backend did not answer in time.
	TranslationTimeout TranslationErrorKind = "timeout"
	// TranslationOther is any other backend failure.
	TranslationOther TranslationErrorKind = "other"
)

// TranslationError is a classified machine-translation failure. The engine
// surfaces these to the caller as user-facing messages and never retries
// internally.
type TranslationError struct {
	Kind TranslationErrorKind
	Err  error
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation failed (%s): %v", e.Kind, e.Err)
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// Translator is the machine-translation collaborator.
type Translator interface {
	// Translate returns the translated text for one source string.
	// Failures are returned as *TranslationError.
	Translate(ctx context.Context, text, fromLang, toLang string) (string, error)
}
