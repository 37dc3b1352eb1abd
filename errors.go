package i18n

import "errors"

// ErrUnsupportedLanguage marks a requested language code that was ignored.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language code")

// ErrEmptyCode is returned when a language definition has no code.
var ErrEmptyCode = errors.New("i18n: empty language code")

// ErrDuplicateLanguage is returned when two catalog entries share a code.
var ErrDuplicateLanguage = errors.New("i18n: duplicate language code")

// ErrInvalidPattern wraps header or filter patterns that fail to compile.
var ErrInvalidPattern = errors.New("i18n: invalid pattern")

// UnsupportedLanguageError is the deferred warning raised after activation
// when a forced, request or cookie language was rejected. Message is
// translated into the active locale.
type UnsupportedLanguageError struct {
	Message         string
	RejectedForced  bool
	RejectedRequest bool
	RejectedCookie  bool
}

func (e *UnsupportedLanguageError) Error() string {
	return e.Message
}

func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrUnsupportedLanguage
}
