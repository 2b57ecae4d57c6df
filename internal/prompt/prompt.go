package prompt

import (
	"fmt"
	"strings"

	"neuralthoughts-backend/internal/models"
)

// toneTemplates maps each supported tone to its instruction template; the raw
// thought is appended verbatim. The trailing instruction intentionally differs
// per tone: most forbid explanations, "calm" asks for detailed explanations
// and "explain" passes the thought through untouched. Kept as table data so
// the difference stays visible.
var toneTemplates = map[string]string{
	"poetic":  "Transform this raw thought into a beautiful, poetic expression with metaphorical language and artistic flair. Make it sound like poetry while keeping the core meaning. Return only the refined thought, no quotes, no explanations: ",
	"honest":  "Rewrite this thought in a completely honest, raw, and authentic way. Remove any pretense and make it sound genuine and real. Return only the refined thought, no quotes, no explanations: ",
	"bold":    "Transform this thought into a strong, confident, and fearless statement. Make it powerful and assertive. Return only the refined thought, no quotes, no explanations: ",
	"calm":    "Express this thought in a peaceful, gentle, and reflective manner. Make it sound serene and mindful. Return only the refined thought, detailed explanations: ",
	"explain": "",
	"sad":     "Convey this thought with emotional depth and melancholic beauty. Add a touch of sadness while keeping it meaningful. Return only the refined thought, no quotes, no explanations: ",
}

const defaultRefineTemplate = "Refine and improve this thought while keeping its essence. Return only the refined thought, no quotes, no explanations: "

// Refine builds the rewrite prompt for a thought. An unknown tone falls back
// to the generic refine template rather than failing.
func Refine(thought, tone string) string {
	tmpl, ok := toneTemplates[tone]
	if !ok {
		tmpl = defaultRefineTemplate
	}
	return tmpl + thought
}

// languageNames resolves target language codes to display names. Codes not in
// the table pass through verbatim as the language label.
var languageNames = map[string]string{
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese (Simplified)",
	"hi": "Hindi",
	"ar": "Arabic",
	"ur": "Urdu",
}

// LanguageName returns the display name for a language code, or the code
// itself when unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return code
}

// Translate builds the translation prompt for a target language code.
func Translate(text, targetLanguage string) string {
	return fmt.Sprintf("Translate this text to %s. Maintain the emotional tone and style. Return only the translation, no quotes or explanations: %s",
		LanguageName(targetLanguage), text)
}

// Chat builds the AI-twin conversation prompt. History must already be
// truncated by the caller; turns are rendered oldest first as User:/AI: lines.
func Chat(message, currentThought string, history []models.ChatTurn) string {
	if currentThought == "" {
		currentThought = "None yet"
	}

	var lines []string
	for _, turn := range history {
		label := "AI"
		if turn.Role == "user" {
			label = "User"
		}
		lines = append(lines, label+": "+turn.Content)
	}

	var b strings.Builder
	b.WriteString("You are an AI Twin, a creative writing assistant that helps users refine their thoughts and expressions. \n\n")
	b.WriteString("Current thought: \"" + currentThought + "\"\n\n")
	b.WriteString("Recent conversation:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString("User says: \"" + message + "\"\n\n")
	b.WriteString("Respond helpfully and concisely (under 80 words). If they ask you to modify their thought, provide a refined version. Be encouraging and creative.")
	return b.String()
}
