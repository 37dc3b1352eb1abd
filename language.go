package i18n

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/language"
)

// matchTimeout bounds a single header match. Header values are client
// controlled, a timeout counts as a non-match.
const matchTimeout = 50 * time.Millisecond

// qualityPattern accepts an RFC 9110 weight after a language range.
const qualityPattern = `(;\s*q=(0(\.[0-9]{0,3})?|1(\.0{0,3})?))?`

// rtlCodes are the locale codes rendered right to left.
var rtlCodes = map[string]struct{}{
	"ar": {},
	"fa": {},
	"he": {},
	"ur": {},
}

// TextDirection is the writing direction of the active locale.
type TextDirection string

const (
	LeftToRight TextDirection = "ltr"
	RightToLeft TextDirection = "rtl"
)

func (d TextDirection) String() string {
	return string(d)
}

// languageRecord is the raw shape of a catalog row.
type languageRecord struct {
	code        string
	englishName string
	nativeName  string
	regex       string
	external    string
}

// Language describes one supported locale. Values are immutable once built
// and safe to share across goroutines.
type Language struct {
	code        string
	englishName string
	nativeName  string
	regex       string
	external    string

	acceptMatcher *regexp2.Regexp
	agentMatcher  *regexp2.Regexp
}

// LanguageDefinition is the declarative form of a Language, used by catalog
// files and custom catalogs.
type LanguageDefinition struct {
	Code           string `json:"code" yaml:"code"`
	EnglishName    string `json:"english_name" yaml:"english_name"`
	NativeName     string `json:"native_name,omitempty" yaml:"native_name,omitempty"`
	Regex          string `json:"regex" yaml:"regex"`
	ExternalLocale string `json:"external_locale,omitempty" yaml:"external_locale,omitempty"`
}

// NewLanguage compiles the definition header matchers.
func NewLanguage(def LanguageDefinition) (*Language, error) {
	code := strings.TrimSpace(def.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	regex := def.Regex
	if regex == "" {
		regex = regexp2.Escape(strings.ToLower(code))
	}

	accept, err := compileMatcher(`^(` + regex + `)` + qualityPattern + `$`)
	if err != nil {
		return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidPattern, code, err)
	}
	agent, err := compileMatcher(`(\(|\[|;\s)(` + regex + `)(;|\]|\))`)
	if err != nil {
		return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidPattern, code, err)
	}

	englishName := def.EnglishName
	if englishName == "" {
		englishName = code
	}

	return &Language{
		code:          code,
		englishName:   englishName,
		nativeName:    def.NativeName,
		regex:         regex,
		external:      def.ExternalLocale,
		acceptMatcher: accept,
		agentMatcher:  agent,
	}, nil
}

func compileMatcher(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}

// synthesizeLanguage builds the descriptor used for a locale that is present
// on disk but missing from the catalog.
func synthesizeLanguage(code string) *Language {
	lower := normalizeCode(code)
	name := ucfirst(lower)
	lang, err := NewLanguage(LanguageDefinition{
		Code:        lower,
		EnglishName: name,
		NativeName:  name,
		Regex:       regexp2.Escape(lower),
	})
	if err != nil {
		// escaped literals always compile, only an empty code ends up here
		return nil
	}
	return lang
}

// Code returns the canonical locale code, e.g. "pt_BR".
func (l *Language) Code() string {
	if l == nil {
		return ""
	}
	return l.code
}

// Key returns the lowercase lookup key.
func (l *Language) Key() string {
	return normalizeCode(l.Code())
}

func (l *Language) EnglishName() string {
	if l == nil {
		return ""
	}
	return l.englishName
}

func (l *Language) NativeName() string {
	if l == nil {
		return ""
	}
	return l.nativeName
}

// Name returns the label shown in language pickers.
func (l *Language) Name() string {
	if l == nil {
		return ""
	}
	if l.nativeName != "" {
		return l.nativeName + " - " + l.englishName
	}
	return l.englishName
}

// Regex returns the raw header pattern.
func (l *Language) Regex() string {
	if l == nil {
		return ""
	}
	return l.regex
}

// ExternalLocale returns the locale identifier used by embedded third party
// systems such as the database server, or "".
func (l *Language) ExternalLocale() string {
	if l == nil {
		return ""
	}
	return l.external
}

func (l *Language) IsRTL() bool {
	if l == nil {
		return false
	}
	_, ok := rtlCodes[l.code]
	return ok
}

func (l *Language) Direction() TextDirection {
	if l.IsRTL() {
		return RightToLeft
	}
	return LeftToRight
}

// Tag maps the locale code onto a BCP 47 tag. Codes that cannot be mapped
// return language.Und.
func (l *Language) Tag() language.Tag {
	if l == nil {
		return language.Und
	}
	return codeToTag(l.code)
}

// Compare orders languages by English name.
func (l *Language) Compare(other *Language) int {
	return strings.Compare(l.EnglishName(), other.EnglishName())
}

// Definition returns the declarative form of the language.
func (l *Language) Definition() LanguageDefinition {
	if l == nil {
		return LanguageDefinition{}
	}
	return LanguageDefinition{
		Code:           l.code,
		EnglishName:    l.englishName,
		NativeName:     l.nativeName,
		Regex:          l.regex,
		ExternalLocale: l.external,
	}
}

// MatchesAcceptLanguage reports whether a single Accept-Language element,
// such as "pt-BR;q=0.8", names this language.
func (l *Language) MatchesAcceptLanguage(entry string) bool {
	if l == nil || l.acceptMatcher == nil {
		return false
	}
	return matches(l.acceptMatcher, strings.TrimSpace(entry))
}

// MatchesUserAgent reports whether the User-Agent carries a locale token
// for this language, e.g. "(X11; U; Linux i686; fr; rv:1.9)".
func (l *Language) MatchesUserAgent(userAgent string) bool {
	if l == nil || l.agentMatcher == nil {
		return false
	}
	return matches(l.agentMatcher, userAgent)
}

func matches(re *regexp2.Regexp, value string) bool {
	if value == "" {
		return false
	}
	ok, err := re.MatchString(value)
	if err != nil {
		return false
	}
	return ok
}

func (l *Language) String() string {
	return l.Code()
}
