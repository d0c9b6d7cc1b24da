package impl

import (
	"context"
	"testing"

	domainerrors "mandi/internal/domain/errors"
	domainservice "mandi/internal/domain/service"
	mockSvc "mandi/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationService_Translate_Success(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	svc := NewTranslationService(translator)

	ctx := context.Background()

	translator.EXPECT().
		Translate(ctx, "What is the price of wheat?", "en", "hi").
		Return("गेहूं का भाव क्या है?", nil)

	result, err := svc.Translate(ctx, "What is the price of wheat?", "en", "hi")
	require.NoError(t, err)
	assert.Equal(t, "What is the price of wheat?", result.OriginalText)
	assert.Equal(t, "गेहूं का भाव क्या है?", result.TranslatedText)
	assert.Equal(t, "en", result.FromLang)
	assert.Equal(t, "hi", result.ToLang)
	assert.GreaterOrEqual(t, result.Confidence, 0.30)
	assert.LessOrEqual(t, result.Confidence, 0.95)
}

func TestTranslationService_Translate_ValidationFailures(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	svc := NewTranslationService(translator)

	ctx := context.Background()

	_, err := svc.Translate(ctx, "", "en", "hi")
	assert.Error(t, err)

	_, err = svc.Translate(ctx, "hello", "en", "")
	assert.Error(t, err)
}

func TestTranslationService_Translate_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		kind    domainservice.TranslationErrorKind
		wantErr error
	}{
		{"quota", domainservice.TranslationQuota, domainerrors.ErrTranslationQuota},
		{"safety filter", domainservice.TranslationSafetyFilter, domainerrors.ErrTranslationBlocked},
		{"timeout", domainservice.TranslationTimeout, domainerrors.ErrTranslationTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			translator := mockSvc.NewMockTranslator(t)
			svc := NewTranslationService(translator)

			ctx := context.Background()

			translator.EXPECT().
				Translate(ctx, "hello", "en", "hi").
				Return("", &domainservice.TranslationError{
					Kind: tc.kind,
					Err:  errors.New("backend rejected call"),
				})

			_, err := svc.Translate(ctx, "hello", "en", "hi")
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTranslationService_Translate_UnclassifiedFailure(t *testing.T) {
	translator := mockSvc.NewMockTranslator(t)
	svc := NewTranslationService(translator)

	ctx := context.Background()

	translator.EXPECT().
		Translate(ctx, "hello", "en", "hi").
		Return("", errors.New("connection reset"))

	_, err := svc.Translate(ctx, "hello", "en", "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTranslationFailed)
}
