package normalize

import "testing"

var testRules = Rules{
	MinLength: 5,
	Fallback:  "Fallback sentence for this task.",
}

func TestClean_TrimsAndStripsQuotes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"surrounding whitespace", "  hello world  ", "hello world"},
		{"straight quotes", `"hello world"`, "hello world"},
		{"single quotes", "'hello world'", "hello world"},
		{"curly quotes", "“hello world”", "hello world"},
		{"quotes inside whitespace", "  'Adrift among stars, I search for shore.'  ", "Adrift among stars, I search for shore."},
		{"inner quotes kept", `he said "hi" to me`, `he said "hi" to me`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.raw, testRules); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClean_TranslationRules(t *testing.T) {
	rules := Rules{
		CollapseNewlines: true,
		StripPrefix:      "Translation:",
		MinLength:        2,
		Fallback:         "Translation unavailable for this text.",
	}

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"strips prefix", "Translation: Hola", "Hola"},
		{"prefix case-insensitive", "TRANSLATION: Hola", "Hola"},
		{"collapses newline runs", "Hola\n\n\nmundo", "Hola mundo"},
		{"both", "Translation:\nHola mundo", "Hola mundo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.raw, rules); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestClean_PreservesNewlinesWithoutCollapse(t *testing.T) {
	got := Clean("line one\n\nline two", testRules)
	if got != "line one\n\nline two" {
		t.Errorf("Expected internal formatting preserved, got %q", got)
	}
}

func TestClean_DegenerateOutputUsesFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace only", "   \n  "},
		{"too short", "ok"},
		{"quotes only", `""`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.raw, testRules); got != testRules.Fallback {
				t.Errorf("Expected fallback, got %q", got)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"  'Adrift among stars, I search for shore.'  ",
		"plain text that is long enough",
		"",
		"Translation: Hola mundo",
	}

	rules := Rules{
		CollapseNewlines: true,
		StripPrefix:      "Translation:",
		MinLength:        2,
		Fallback:         "Translation unavailable for this text.",
	}

	for _, in := range inputs {
		once := Clean(in, rules)
		twice := Clean(once, rules)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
