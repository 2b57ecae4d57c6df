package models

// ChatTurn represents a single message in a conversation.
type ChatTurn struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ChatRequest is the payload sent to the chat endpoint. History is owned by
// the client and passed in full on each turn, most recent last.
type ChatRequest struct {
	Message        string     `json:"message"`
	CurrentThought string     `json:"currentThought"`
	History        []ChatTurn `json:"history"`
}

// ChatResponse is the reply from the AI twin.
type ChatResponse struct {
	Response string `json:"response"`
	Success  bool   `json:"success"`
}
