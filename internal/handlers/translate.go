package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"neuralthoughts-backend/internal/models"
	"neuralthoughts-backend/internal/normalize"
	"neuralthoughts-backend/internal/prompt"
	"neuralthoughts-backend/internal/services"
)

var translateRules = normalize.Rules{
	CollapseNewlines: true,
	StripPrefix:      "Translation:",
	MinLength:        2,
	Fallback:         "Translation unavailable for this text.",
}

type TranslateHandler struct {
	generator textGenerator
}

func NewTranslateHandler(generator textGenerator) *TranslateHandler {
	return &TranslateHandler{generator: generator}
}

// Translate renders the text in the target language while keeping its
// emotional tone. The status code is always 200; the payload success flag is
// the contract.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, models.TranslateResponse{
			Error:          "Invalid request body",
			TranslatedText: "Please provide text and target language.",
		})
		return
	}

	if strings.TrimSpace(req.Text) == "" || strings.TrimSpace(req.TargetLanguage) == "" {
		writeJSON(w, http.StatusOK, models.TranslateResponse{
			Error:          "Missing required fields",
			TranslatedText: "Please provide text and target language.",
			OriginalText:   req.Text,
			TargetLanguage: req.TargetLanguage,
		})
		return
	}

	raw, err := h.generator.Generate(r.Context(), prompt.Translate(req.Text, req.TargetLanguage))
	if err != nil {
		log.Printf("translate: generation failed: %v", err)
		writeJSON(w, http.StatusOK, models.TranslateResponse{
			Error:          "Translation failed",
			TranslatedText: translateFailureMessage(err),
			OriginalText:   req.Text,
			TargetLanguage: req.TargetLanguage,
			Success:        false,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.TranslateResponse{
		TranslatedText: normalize.Clean(raw, translateRules),
		OriginalText:   req.Text,
		TargetLanguage: req.TargetLanguage,
		Success:        true,
	})
}

func translateFailureMessage(err error) string {
	var gerr *services.GenerateError
	if errors.As(err, &gerr) {
		switch gerr.Kind {
		case services.KindAuth:
			return "Translation service is currently unavailable."
		case services.KindRateLimited:
			return "Translation service is busy. Please try again."
		}
	}
	return "Translation is temporarily unavailable."
}
