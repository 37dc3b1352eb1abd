package i18n

import (
	"context"
	"fmt"

	"golang.org/x/text/message"
)

// Binder attaches the activated language to an external subsystem, such as
// a gettext domain or a template engine.
type Binder interface {
	Bind(ctx context.Context, lang *Language) error
}

// BinderFunc adapts a bare function to Binder.
type BinderFunc func(ctx context.Context, lang *Language) error

// Bind implements Binder for BinderFunc.
func (fn BinderFunc) Bind(ctx context.Context, lang *Language) error {
	return fn(ctx, lang)
}

// Activation is the request scoped active locale.
type Activation struct {
	Language  *Language
	Direction TextDirection
	printer   *message.Printer
}

type activationKey struct{}

// Activate makes lang the active language of the returned context and runs
// the binders in order. The first binder error is returned together with
// the activation, which stays usable.
func Activate(ctx context.Context, lang *Language, binders ...Binder) (context.Context, *Activation, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if lang == nil {
		lang = DefaultCatalog().english()
	}

	act := &Activation{
		Language:  lang,
		Direction: lang.Direction(),
		printer:   newPrinter(lang.Tag()),
	}
	ctx = context.WithValue(ctx, activationKey{}, act)

	for _, binder := range binders {
		if binder == nil {
			continue
		}
		if err := binder.Bind(ctx, lang); err != nil {
			return ctx, act, fmt.Errorf("i18n: bind %q: %w", lang.Code(), err)
		}
	}

	return ctx, act, nil
}

// Code returns the active locale code.
func (a *Activation) Code() string {
	if a == nil {
		return ""
	}
	return a.Language.Code()
}

// Printer returns a message printer for the active locale.
func (a *Activation) Printer() *message.Printer {
	if a == nil || a.printer == nil {
		return newPrinter(DefaultCatalog().english().Tag())
	}
	return a.printer
}

// Warning returns the translated unsupported language warning when sel
// rejected any candidate, nil otherwise.
func (a *Activation) Warning(sel Selection) error {
	if !sel.HasRejections() {
		return nil
	}
	return &UnsupportedLanguageError{
		Message:         a.Printer().Sprintf(msgUnsupportedLanguage),
		RejectedForced:  sel.RejectedForced,
		RejectedRequest: sel.RejectedRequest,
		RejectedCookie:  sel.RejectedCookie,
	}
}

// FromContext returns the activation stored by Activate.
func FromContext(ctx context.Context) (*Activation, bool) {
	if ctx == nil {
		return nil, false
	}
	act, ok := ctx.Value(activationKey{}).(*Activation)
	return act, ok && act != nil
}

// LanguageFromContext returns the active language, English when none was
// activated.
func LanguageFromContext(ctx context.Context) *Language {
	if act, ok := FromContext(ctx); ok {
		return act.Language
	}
	return DefaultCatalog().english()
}

// DirectionFromContext returns the active text direction, LeftToRight when
// none was activated.
func DirectionFromContext(ctx context.Context) TextDirection {
	if act, ok := FromContext(ctx); ok {
		return act.Direction
	}
	return LeftToRight
}
