// Package i18n provides localized UI strings.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Tag resolves a language code such as "en" or "ru-RU" to a supported tag.
func Tag(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return Default()
	}
	parsed, err := language.Parse(lang)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(parsed)
	if conf == language.No {
		return Default()
	}
	return supportedTags[idx]
}

// Printer returns a message printer for the language code.
func Printer(lang string) *message.Printer {
	return message.NewPrinter(Tag(lang))
}
