package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "TEST_VAR_1", "hello", "default", "hello"},
		{"uses default when empty", "TEST_VAR_2", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		envValue   string
		defaultVal int
		expected   int
	}{
		{"parses integer", "TEST_INT_1", "42", 10, 42},
		{"uses default for empty", "TEST_INT_2", "", 10, 10},
		{"uses default for non-numeric", "TEST_INT_3", "abc", 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.envValue != "" {
				os.Setenv(tc.key, tc.envValue)
				defer os.Unsetenv(tc.key)
			}

			result := getEnvAsIntOrDefault(tc.key, tc.defaultVal)
			if result != tc.expected {
				t.Errorf("Expected %d, got %d", tc.expected, result)
			}
		})
	}
}

func TestLoad_MissingAPIKeyIsNotFatal(t *testing.T) {
	os.Unsetenv("GEMINI_API_KEY")

	cfg := Load()
	if cfg.Configured() {
		t.Error("Expected Configured() to be false without GEMINI_API_KEY")
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Errorf("Expected default model 'gemini-1.5-flash', got %q", cfg.GeminiModel)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port '8080', got %q", cfg.Port)
	}
}

func TestLoad_ReadsAPIKey(t *testing.T) {
	os.Setenv("GEMINI_API_KEY", "test-key")
	defer os.Unsetenv("GEMINI_API_KEY")

	cfg := Load()
	if !cfg.Configured() {
		t.Error("Expected Configured() to be true with GEMINI_API_KEY set")
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("Expected key 'test-key', got %q", cfg.GeminiAPIKey)
	}
}
