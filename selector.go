package i18n

import "strings"

// Source names the candidate that produced the selected language.
type Source string

const (
	SourceForced         Source = "forced"
	SourcePost           Source = "post"
	SourceGet            Source = "get"
	SourceCookie         Source = "cookie"
	SourceAcceptLanguage Source = "accept-language"
	SourceUserAgent      Source = "user-agent"
	SourceDefault        Source = "default"
	SourceFallback       Source = "fallback"
)

// Candidates carries the raw inputs for one resolution, highest priority
// first. Empty fields are skipped.
type Candidates struct {
	Forced         string
	Post           string
	Get            string
	Cookie         string
	AcceptLanguage string
	UserAgent      string
	Default        string
}

// Selection is the outcome of one resolution. The rejection flags record
// higher priority candidates that were present but not available.
type Selection struct {
	Language        *Language
	Source          Source
	RejectedForced  bool
	RejectedRequest bool
	RejectedCookie  bool
}

// HasRejections reports whether any candidate was ignored.
func (s Selection) HasRejections() bool {
	return s.RejectedForced || s.RejectedRequest || s.RejectedCookie
}

// Select walks the candidates in priority order and returns the first
// available language. It always returns a language: when nothing matches,
// the default code is used and, failing that, English.
func Select(set *AvailableSet, c Candidates) Selection {
	var sel Selection

	if c.Forced != "" {
		if lang, ok := set.Lookup(c.Forced); ok {
			return sel.with(lang, SourceForced)
		}
		sel.RejectedForced = true
	}

	if c.Post != "" {
		if lang, ok := set.Lookup(c.Post); ok {
			return sel.with(lang, SourcePost)
		}
		sel.RejectedRequest = true
	}

	if c.Get != "" {
		if lang, ok := set.Lookup(c.Get); ok {
			return sel.with(lang, SourceGet)
		}
		sel.RejectedRequest = true
	}

	if c.Cookie != "" {
		if lang, ok := set.Lookup(c.Cookie); ok {
			return sel.with(lang, SourceCookie)
		}
		sel.RejectedCookie = true
	}

	languages := set.Languages()

	if c.AcceptLanguage != "" {
		// first header entry wins, quality values are not ranked
		for _, entry := range strings.Split(c.AcceptLanguage, ",") {
			for _, lang := range languages {
				if lang.MatchesAcceptLanguage(entry) {
					return sel.with(lang, SourceAcceptLanguage)
				}
			}
		}
	}

	if c.UserAgent != "" {
		for _, lang := range languages {
			if lang.MatchesUserAgent(c.UserAgent) {
				return sel.with(lang, SourceUserAgent)
			}
		}
	}

	if lang, ok := set.Lookup(c.Default); ok {
		return sel.with(lang, SourceDefault)
	}

	if lang, ok := set.Lookup("en"); ok {
		return sel.with(lang, SourceFallback)
	}
	return sel.with(set.Catalog().english(), SourceFallback)
}

func (s Selection) with(lang *Language, source Source) Selection {
	s.Language = lang
	s.Source = source
	return s
}
