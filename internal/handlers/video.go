package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"neuralthoughts-backend/internal/models"
)

const maxVideoUploadBytes = 32 << 20

// VideoHandler mocks video processing: it accepts the upload, waits for the
// configured delay and returns a placeholder locator. No frames are touched.
type VideoHandler struct {
	delay time.Duration
}

func NewVideoHandler(delay time.Duration) *VideoHandler {
	return &VideoHandler{delay: delay}
}

func (h *VideoHandler) Process(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxVideoUploadBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid multipart form", r))
		return
	}

	file, header, err := r.FormFile("video")
	text := r.FormValue("text")
	if err != nil || strings.TrimSpace(text) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Video and text are required", r))
		return
	}
	defer file.Close()

	// Simulated processing time; a real implementation would overlay the text
	// on the video here.
	time.Sleep(h.delay)

	writeJSON(w, http.StatusOK, models.ProcessVideoResponse{
		VideoURL:     "/placeholder-video.mp4",
		OriginalText: text,
		VideoName:    header.Filename,
		JobID:        uuid.New(),
	})
}
