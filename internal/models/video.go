package models

import "github.com/google/uuid"

// ProcessVideoResponse is returned by the mock video endpoint. No real
// processing happens; the URL points at a static placeholder.
type ProcessVideoResponse struct {
	VideoURL     string    `json:"videoUrl"`
	OriginalText string    `json:"originalText"`
	VideoName    string    `json:"videoName"`
	JobID        uuid.UUID `json:"jobId"`
}
