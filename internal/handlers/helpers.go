package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"neuralthoughts-backend/internal/models"
)

// textGenerator is the one backend capability the handlers depend on. Any
// "prompt in, text out" backend satisfies it, including test stubs.
type textGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
