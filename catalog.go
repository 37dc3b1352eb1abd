package i18n

import (
	"fmt"
	"sync"
)

// Catalog is an immutable, ordered table of language descriptors keyed by
// lowercase code. Iteration follows insertion order.
type Catalog struct {
	languages []*Language
	index     map[string]int
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		languages := make([]*Language, 0, len(languageData))
		for _, record := range languageData {
			lang, err := NewLanguage(LanguageDefinition{
				Code:           record.code,
				EnglishName:    record.englishName,
				NativeName:     record.nativeName,
				Regex:          record.regex,
				ExternalLocale: record.external,
			})
			if err != nil {
				panic(fmt.Sprintf("i18n: built-in catalog: %v", err))
			}
			languages = append(languages, lang)
		}

		catalog, err := NewCatalog(languages...)
		if err != nil {
			panic(fmt.Sprintf("i18n: built-in catalog: %v", err))
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// NewCatalog builds a catalog from the given languages, rejecting duplicate
// codes.
func NewCatalog(languages ...*Language) (*Catalog, error) {
	catalog := &Catalog{
		languages: make([]*Language, 0, len(languages)),
		index:     make(map[string]int, len(languages)),
	}

	for _, lang := range languages {
		if lang == nil {
			continue
		}
		key := lang.Key()
		if key == "" {
			return nil, ErrEmptyCode
		}
		if _, exists := catalog.index[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLanguage, lang.Code())
		}
		catalog.index[key] = len(catalog.languages)
		catalog.languages = append(catalog.languages, lang)
	}

	return catalog, nil
}

// NewCatalogFromDefinitions compiles and collects the definitions.
func NewCatalogFromDefinitions(defs ...LanguageDefinition) (*Catalog, error) {
	languages := make([]*Language, 0, len(defs))
	for _, def := range defs {
		lang, err := NewLanguage(def)
		if err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}
	return NewCatalog(languages...)
}

// Merge returns a new catalog where the overrides replace entries with the
// same code in place and unknown codes are appended.
func (c *Catalog) Merge(overrides ...*Language) *Catalog {
	out := &Catalog{
		languages: append([]*Language(nil), c.Languages()...),
		index:     make(map[string]int, c.Len()+len(overrides)),
	}
	for i, lang := range out.languages {
		out.index[lang.Key()] = i
	}

	for _, lang := range overrides {
		if lang == nil || lang.Key() == "" {
			continue
		}
		if i, exists := out.index[lang.Key()]; exists {
			out.languages[i] = lang
			continue
		}
		out.index[lang.Key()] = len(out.languages)
		out.languages = append(out.languages, lang)
	}
	return out
}

// Lookup returns the language registered under code, ignoring case.
func (c *Catalog) Lookup(code string) (*Language, bool) {
	if c == nil || code == "" {
		return nil, false
	}
	i, ok := c.index[normalizeCode(code)]
	if !ok {
		return nil, false
	}
	return c.languages[i], true
}

// Has reports whether the code exists in the catalog.
func (c *Catalog) Has(code string) bool {
	_, ok := c.Lookup(code)
	return ok
}

// Languages returns the descriptors in catalog order.
func (c *Catalog) Languages() []*Language {
	if c == nil || len(c.languages) == 0 {
		return nil
	}
	out := make([]*Language, len(c.languages))
	copy(out, c.languages)
	return out
}

// Codes returns the canonical codes in catalog order.
func (c *Catalog) Codes() []string {
	if c == nil || len(c.languages) == 0 {
		return nil
	}
	out := make([]string, 0, len(c.languages))
	for _, lang := range c.languages {
		out = append(out, lang.Code())
	}
	return out
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.languages)
}

// english returns the catalog's "en" entry, synthesizing one for custom
// catalogs that omit it.
func (c *Catalog) english() *Language {
	if lang, ok := c.Lookup("en"); ok {
		return lang
	}
	if lang, ok := DefaultCatalog().Lookup("en"); ok {
		return lang
	}
	return synthesizeLanguage("en")
}
