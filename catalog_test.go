package i18n

import (
	"errors"
	"testing"
)

func TestCatalogLookupIgnoresCase(t *testing.T) {
	catalog := DefaultCatalog()

	for _, code := range []string{"pt_BR", "PT_BR", "pt_br", "Be@Latin"} {
		if _, ok := catalog.Lookup(code); !ok {
			t.Fatalf("Lookup(%q) missing", code)
		}
	}

	for _, code := range []string{"", "pt-BR", "xx-not-real", "p"} {
		if lang, ok := catalog.Lookup(code); ok {
			t.Fatalf("Lookup(%q) = %v, want miss", code, lang)
		}
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalogFromDefinitions(
		LanguageDefinition{Code: "pt_BR", EnglishName: "Portuguese (Brazil)"},
		LanguageDefinition{Code: "PT_br", EnglishName: "Brazilian"},
	)
	if !errors.Is(err, ErrDuplicateLanguage) {
		t.Fatalf("expected ErrDuplicateLanguage, got %v", err)
	}
}

func TestCatalogMerge(t *testing.T) {
	base, err := NewCatalogFromDefinitions(
		LanguageDefinition{Code: "en", EnglishName: "English"},
		LanguageDefinition{Code: "de", EnglishName: "German"},
	)
	if err != nil {
		t.Fatalf("NewCatalogFromDefinitions: %v", err)
	}

	override, _ := NewLanguage(LanguageDefinition{Code: "DE", EnglishName: "Deutsch"})
	extra, _ := NewLanguage(LanguageDefinition{Code: "tlh", EnglishName: "Klingon"})

	merged := base.Merge(override, extra)

	codes := merged.Codes()
	expected := []string{"en", "DE", "tlh"}
	if len(codes) != len(expected) {
		t.Fatalf("Codes() = %v want %v", codes, expected)
	}
	for i, code := range expected {
		if codes[i] != code {
			t.Fatalf("Codes()[%d] = %q want %q", i, codes[i], code)
		}
	}

	if lang, _ := base.Lookup("de"); lang.EnglishName() != "German" {
		t.Fatal("Merge must not mutate the receiver")
	}
	if lang, _ := merged.Lookup("de"); lang.EnglishName() != "Deutsch" {
		t.Fatalf("override not applied, got %q", lang.EnglishName())
	}
}

func TestCatalogLanguagesReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()
	languages := catalog.Languages()
	languages[0] = nil

	if catalog.Languages()[0] == nil {
		t.Fatal("Languages() exposed internal slice")
	}
}

func TestCatalogEnglishFallback(t *testing.T) {
	catalog, err := NewCatalogFromDefinitions(LanguageDefinition{Code: "de", EnglishName: "German"})
	if err != nil {
		t.Fatalf("NewCatalogFromDefinitions: %v", err)
	}

	if got := catalog.english().Code(); got != "en" {
		t.Fatalf("english() = %q want en", got)
	}
}
