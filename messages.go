package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// msgUnsupportedLanguage is the message key and English text of the
// deferred selection warning.
const msgUnsupportedLanguage = "Ignoring unsupported language code."

var warningTranslations = map[string]string{
	"cs":    "Ignoruji nepodporovaný kód jazyka.",
	"de":    "Nicht unterstützter Sprachcode wird ignoriert.",
	"es":    "Ignorando código de idioma no soportado.",
	"fr":    "Code de langue non pris en charge ignoré.",
	"it":    "Codice lingua non supportato ignorato.",
	"nl":    "Niet-ondersteunde taalcode wordt genegeerd.",
	"pl":    "Ignorowanie nieobsługiwanego kodu języka.",
	"pt":    "A ignorar código de idioma não suportado.",
	"pt-BR": "Ignorando código de idioma não suportado.",
}

var warningCatalog = newWarningCatalog()

func newWarningCatalog() catalog.Catalog {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	if err := builder.SetString(language.English, msgUnsupportedLanguage, msgUnsupportedLanguage); err != nil {
		panic(err)
	}
	for code, text := range warningTranslations {
		if err := builder.SetString(language.MustParse(code), msgUnsupportedLanguage, text); err != nil {
			panic(err)
		}
	}
	return builder
}

func newPrinter(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag, message.Catalog(warningCatalog))
}
