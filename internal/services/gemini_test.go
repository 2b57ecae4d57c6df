package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"google.golang.org/api/googleapi"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"unauthorized", &googleapi.Error{Code: http.StatusUnauthorized}, KindAuth},
		{"forbidden", &googleapi.Error{Code: http.StatusForbidden}, KindAuth},
		{"quota exceeded", &googleapi.Error{Code: http.StatusTooManyRequests}, KindRateLimited},
		{"server error", &googleapi.Error{Code: http.StatusInternalServerError}, KindTransient},
		{"wrapped api error", fmt.Errorf("call failed: %w", &googleapi.Error{Code: http.StatusTooManyRequests}), KindRateLimited},
		{"plain network error", errors.New("connection refused"), KindTransient},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := classify(tc.err); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestGenerateError_Unwrap(t *testing.T) {
	inner := &googleapi.Error{Code: http.StatusTooManyRequests}
	err := &GenerateError{Kind: KindRateLimited, Err: inner}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		t.Fatal("Expected errors.As to reach the wrapped googleapi error")
	}
	if gerr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected code 429, got %d", gerr.Code)
	}
}

func TestGenerate_UnconfiguredFailsBeforeNetwork(t *testing.T) {
	svc, err := NewGeminiService("", "gemini-1.5-flash", time.Second)
	if err != nil {
		t.Fatalf("Unexpected constructor error: %v", err)
	}
	defer svc.Close()

	_, err = svc.Generate(context.Background(), "any prompt")

	var gerr *GenerateError
	if !errors.As(err, &gerr) {
		t.Fatalf("Expected GenerateError, got %v", err)
	}
	if gerr.Kind != KindAuth {
		t.Errorf("Expected auth kind, got %v", gerr.Kind)
	}
	if gerr.Err != nil {
		t.Errorf("Expected no wrapped error for unconfigured service, got %v", gerr.Err)
	}
}
