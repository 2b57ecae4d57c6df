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

var refineRules = normalize.Rules{
	MinLength: 5,
	Fallback:  "I couldn't refine that thought right now. Please try rephrasing it.",
}

type RefineHandler struct {
	generator textGenerator
}

func NewRefineHandler(generator textGenerator) *RefineHandler {
	return &RefineHandler{generator: generator}
}

// Refine rewrites a raw thought in the requested tone. Every response carries
// a populated refinedThought; clients branch on the success flag only.
func (h *RefineHandler) Refine(w http.ResponseWriter, r *http.Request) {
	var req models.RefineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.RefineResponse{
			Error:          "Invalid request body",
			RefinedThought: "Please provide both thought and tone.",
		})
		return
	}

	if strings.TrimSpace(req.Thought) == "" || strings.TrimSpace(req.Tone) == "" {
		writeJSON(w, http.StatusBadRequest, models.RefineResponse{
			Error:           "Missing required fields",
			RefinedThought:  "Please provide both thought and tone.",
			OriginalThought: req.Thought,
			Tone:            req.Tone,
		})
		return
	}

	raw, err := h.generator.Generate(r.Context(), prompt.Refine(req.Thought, req.Tone))
	if err != nil {
		log.Printf("refine: generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.RefineResponse{
			Error:           "Failed to generate thought",
			RefinedThought:  refineFailureMessage(err),
			OriginalThought: req.Thought,
			Tone:            req.Tone,
			Success:         false,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.RefineResponse{
		RefinedThought:  normalize.Clean(raw, refineRules),
		OriginalThought: req.Thought,
		Tone:            req.Tone,
		Success:         true,
	})
}

func refineFailureMessage(err error) string {
	var gerr *services.GenerateError
	if errors.As(err, &gerr) {
		switch gerr.Kind {
		case services.KindAuth:
			return "AI service is currently unavailable. Please try again later."
		case services.KindRateLimited:
			return "AI service is temporarily busy. Please try again in a moment."
		}
	}
	return "I'm having trouble processing your thought right now. Please try again."
}
