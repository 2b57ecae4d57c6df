package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiService wraps the one capability the handlers need: prompt in, text
// out. A service constructed without an API key stays usable but fails every
// call with an auth-kind error before any network I/O.
type GeminiService struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

func NewGeminiService(apiKey, modelName string, timeout time.Duration) (*GeminiService, error) {
	if apiKey == "" {
		return &GeminiService{timeout: timeout}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0.7)
	model.SetTopP(0.95)

	return &GeminiService{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (s *GeminiService) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// Generate sends one prompt and returns the concatenated candidate text.
// Exactly one outbound call per invocation; no retries.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", &GenerateError{Kind: KindAuth}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", &GenerateError{Kind: classify(err), Err: err}
	}

	return extractText(resp), nil
}

// classify maps a backend failure to a kind by HTTP status rather than by
// matching substrings of the error message.
func classify(err error) ErrorKind {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return KindAuth
		case http.StatusTooManyRequests:
			return KindRateLimited
		}
	}
	return KindTransient
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
