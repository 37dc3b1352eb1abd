package i18n

import (
	"fmt"
	"slices"

	"github.com/dlclark/regexp2"
)

// AvailableSet is the subset of a catalog installed on the running
// instance. It is read-only after construction.
type AvailableSet struct {
	catalog   *Catalog
	languages []*Language
	index     map[string]int
}

// CompileFilter compiles a FilterLanguages style pattern. The pattern is
// matched case-sensitively anywhere in the raw locale code.
func CompileFilter(pattern string) (*regexp2.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: filter %q: %v", ErrInvalidPattern, pattern, err)
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}

// BuildAvailableSet intersects present with catalog. Catalogued codes keep
// catalog order, codes missing from the catalog get a synthesized
// descriptor and follow in the order they were reported. A nil filter keeps
// every present code.
func BuildAvailableSet(catalog *Catalog, present []string, filter *regexp2.Regexp) *AvailableSet {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	set := &AvailableSet{
		catalog: catalog,
		index:   make(map[string]int, len(present)),
	}

	keep := make(map[string]struct{}, len(present))
	var extra []string
	for _, code := range present {
		if code == "" {
			continue
		}
		if filter != nil && !matches(filter, code) {
			continue
		}
		key := normalizeCode(code)
		if _, seen := keep[key]; seen {
			continue
		}
		keep[key] = struct{}{}
		if !catalog.Has(key) {
			extra = append(extra, key)
		}
	}

	for _, lang := range catalog.languages {
		if _, ok := keep[lang.Key()]; ok {
			set.add(lang)
		}
	}
	for _, key := range extra {
		if lang := synthesizeLanguage(key); lang != nil {
			set.add(lang)
		}
	}

	return set
}

func (s *AvailableSet) add(lang *Language) {
	s.index[lang.Key()] = len(s.languages)
	s.languages = append(s.languages, lang)
}

// Lookup is a case-insensitive exact match on the code.
func (s *AvailableSet) Lookup(code string) (*Language, bool) {
	if s == nil || code == "" {
		return nil, false
	}
	i, ok := s.index[normalizeCode(code)]
	if !ok {
		return nil, false
	}
	return s.languages[i], true
}

// Languages returns the available languages in matching order.
func (s *AvailableSet) Languages() []*Language {
	if s == nil || len(s.languages) == 0 {
		return nil
	}
	out := make([]*Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// Sorted returns the available languages ordered by English name.
func (s *AvailableSet) Sorted() []*Language {
	out := s.Languages()
	slices.SortStableFunc(out, func(a, b *Language) int {
		return a.Compare(b)
	})
	return out
}

// Codes returns the canonical codes in matching order.
func (s *AvailableSet) Codes() []string {
	if s == nil || len(s.languages) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.languages))
	for _, lang := range s.languages {
		out = append(out, lang.Code())
	}
	return out
}

func (s *AvailableSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.languages)
}

// HasChoice reports whether more than one language is available.
func (s *AvailableSet) HasChoice() bool {
	return s.Len() > 1
}

// Catalog returns the catalog the set was built from.
func (s *AvailableSet) Catalog() *Catalog {
	if s == nil {
		return DefaultCatalog()
	}
	return s.catalog
}
