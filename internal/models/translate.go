package models

// TranslateRequest is the payload for the translate endpoint.
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
}

// TranslateResponse mirrors RefineResponse: TranslatedText is populated on
// every path, with a fallback sentence when translation failed.
type TranslateResponse struct {
	Error          string `json:"error,omitempty"`
	TranslatedText string `json:"translatedText"`
	OriginalText   string `json:"originalText"`
	TargetLanguage string `json:"targetLanguage"`
	Success        bool   `json:"success"`
}
