// Package translation implements the machine-translation collaborator on the
// Google Cloud Translation API.
package translation

import (
	"context"
	"fmt"
	"net/http"

	"mandi/internal/domain/service"

	"cloud.google.com/go/translate"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type googleTranslator struct {
	client *translate.Client
}

// NewGoogleTranslator creates a new Cloud Translation backed translator instance
func NewGoogleTranslator(ctx context.Context, credentialsPath string) (service.Translator, error) {
	opts := []option.ClientOption{}
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize translation client: %w", err)
	}

	return &googleTranslator{
		client: client,
	}, nil
}

// Translate translates one source string between the given language codes.
func (t *googleTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	target, err := language.Parse(toLang)
	if err != nil {
		return "", &service.TranslationError{
			Kind: service.TranslationOther,
			Err:  errors.Wrapf(err, "invalid target language %q", toLang),
		}
	}

	opts := &translate.Options{Format: translate.Text}
	if fromLang != "" {
		source, err := language.Parse(fromLang)
		if err != nil {
			return "", &service.TranslationError{
				Kind: service.TranslationOther,
				Err:  errors.Wrapf(err, "invalid source language %q", fromLang),
			}
		}
		opts.Source = source
	}

	translations, err := t.client.Translate(ctx, []string{text}, target, opts)
	if err != nil {
		return "", classifyTranslateError(err)
	}

	if len(translations) == 0 {
		return "", &service.TranslationError{
			Kind: service.TranslationOther,
			Err:  errors.New("translation backend returned no result"),
		}
	}

	return translations[0].Text, nil
}

// classifyTranslateError maps backend failures onto translation error kinds
// so the use case layer can surface the right user-facing message.
func classifyTranslateError(err error) error {
	kind := service.TranslationOther

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = service.TranslationTimeout
	default:
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			switch apiErr.Code {
			case http.StatusTooManyRequests, http.StatusPaymentRequired, http.StatusForbidden:
				// The v2 API reports quota and billing exhaustion across all three codes.
				kind = service.TranslationQuota
			case http.StatusBadRequest:
				kind = service.TranslationSafetyFilter
			case http.StatusGatewayTimeout, http.StatusRequestTimeout:
				kind = service.TranslationTimeout
			}
		}
	}

	return &service.TranslationError{
		Kind: kind,
		Err:  err,
	}
}
