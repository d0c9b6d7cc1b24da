package handler

import (
	"log/slog"
	"net/http"

	"mandi/internal/delivery/http/response"
	"mandi/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TranslationHandler holds dependencies for chat translation handlers
type TranslationHandler struct {
	uc     usecase.TranslationUsecase
	logger *slog.Logger
}

// NewTranslationHandler is the constructor for TranslationHandler
func NewTranslationHandler(uc usecase.TranslationUsecase, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{
		uc:     uc,
		logger: logger,
	}
}

// TranslateRequest represents the request body for translating chat text
type TranslateRequest struct {
	Text     string `json:"text"`
	FromLang string `json:"from_lang,omitempty"`
	ToLang   string `json:"to_lang"`
}

// Translate handles translating one chat message and scoring the result
func (h *TranslationHandler) Translate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid translation input")
	}

	result, err := h.uc.Translate(c.Request().Context(), req.Text, req.FromLang, req.ToLang)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Text translated successfully")
}
