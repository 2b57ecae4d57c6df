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

// maxHistoryTurns bounds the prompt size; older turns are dropped before the
// prompt is built.
const maxHistoryTurns = 3

var chatRules = normalize.Rules{
	MinLength: 3,
	Fallback:  "I'm here to help! What would you like me to do with your thought?",
}

type ChatHandler struct {
	generator textGenerator
}

func NewChatHandler(generator textGenerator) *ChatHandler {
	return &ChatHandler{generator: generator}
}

// Chat answers one conversation turn with the AI twin. History lives entirely
// on the client and arrives in full each call, most recent last.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Response: "I didn't receive your message. Please try again.",
			Success:  false,
		})
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Response: "I didn't receive your message. Please try again.",
			Success:  false,
		})
		return
	}

	history := req.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	raw, err := h.generator.Generate(r.Context(), prompt.Chat(req.Message, req.CurrentThought, history))
	if err != nil {
		log.Printf("chat: generation failed: %v", err)
		writeJSON(w, http.StatusOK, models.ChatResponse{
			Response: chatFailureMessage(err),
			Success:  false,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response: normalize.Clean(raw, chatRules),
		Success:  true,
	})
}

func chatFailureMessage(err error) string {
	var gerr *services.GenerateError
	if errors.As(err, &gerr) {
		switch gerr.Kind {
		case services.KindAuth:
			return "AI chat is currently unavailable. Please try again later."
		case services.KindRateLimited:
			return "I'm a bit busy right now. Please try again shortly."
		}
	}
	return "I'm having trouble right now. Please try again in a moment."
}
