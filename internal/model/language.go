package model

import "fmt"

// Language is one of the closed set of supported output locales
type Language string

const (
	LangEnglish    Language = "en"
	LangSpanish    Language = "es"
	LangFrench     Language = "fr"
	LangGerman     Language = "de"
	LangPortuguese Language = "pt"
)

var languageNames = map[Language]string{
	LangEnglish:    "English",
	LangSpanish:    "Spanish",
	LangFrench:     "French",
	LangGerman:     "German",
	LangPortuguese: "Portuguese",
}

// ParseLanguage validates a language code at the boundary. Unknown codes are
// rejected rather than silently processed.
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if _, ok := languageNames[lang]; !ok {
		return "", fmt.Errorf("unsupported language %q (supported: en, es, fr, de, pt)", code)
	}
	return lang, nil
}

// Name returns the English name of the language, used in generation prompts
func (l Language) Name() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}
