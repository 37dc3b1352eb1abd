package i18n

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// scriptModifiers maps gettext style "@modifier" suffixes onto BCP 47
// script subtags.
var scriptModifiers = map[string]string{
	"latin":    "Latn",
	"cyrillic": "Cyrl",
}

// normalizeCode produces the catalog lookup key for a locale code.
func normalizeCode(code string) string {
	return strings.ToLower(code)
}

func ucfirst(value string) string {
	r, size := utf8.DecodeRuneInString(value)
	if r == utf8.RuneError {
		return value
	}
	return string(unicode.ToUpper(r)) + value[size:]
}

// codeToTag converts a gettext style code ("pt_BR", "sr@latin") into a
// BCP 47 tag.
func codeToTag(code string) language.Tag {
	code = strings.TrimSpace(code)
	if code == "" {
		return language.Und
	}

	base, modifier, _ := strings.Cut(code, "@")
	value := strings.ReplaceAll(base, "_", "-")
	if script, ok := scriptModifiers[strings.ToLower(modifier)]; ok {
		value += "-" + script
	}

	tag, err := language.Parse(value)
	if err != nil {
		// well formed but unknown subtags still produce a usable tag
		if tag != language.Und {
			return tag
		}
		return language.Und
	}
	return tag
}
