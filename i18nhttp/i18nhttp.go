// Package i18nhttp adapts language selection to net/http requests.
package i18nhttp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	i18n "github.com/goliatone/go-i18n-negotiator"
	"golang.org/x/text/language"
)

const (
	// LangParam is the form and query field used to request a language.
	LangParam = "lang"
	// DefaultCookieName stores the user's language preference.
	DefaultCookieName = "pma_lang"

	cookieMaxAge = 365 * 24 * time.Hour
)

type (
	warningKey   struct{}
	selectionKey struct{}
)

// CandidatesFromRequest collects the language inputs of r. The POST field
// is only read from the form body and the GET field only from the query
// string.
func CandidatesFromRequest(r *http.Request, cookieName string) i18n.Candidates {
	if r == nil {
		return i18n.Candidates{}
	}
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	c := i18n.Candidates{
		Get:            r.URL.Query().Get(LangParam),
		AcceptLanguage: r.Header.Get("Accept-Language"),
		UserAgent:      r.Header.Get("User-Agent"),
	}

	if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
		c.Post = r.PostFormValue(LangParam)
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		c.Cookie = cookie.Value
	}

	return c
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, name, code string) {
	if w == nil || code == "" {
		return
	}
	if name == "" {
		name = DefaultCookieName
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    code,
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

type middlewareConfig struct {
	cookieName    string
	persist       bool
	logger        *slog.Logger
	onUnsupported func(w http.ResponseWriter, r *http.Request, err error)
}

// MiddlewareOption customizes Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithCookieName overrides the preference cookie name.
func WithCookieName(name string) MiddlewareOption {
	return func(c *middlewareConfig) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithPersist stores a language chosen through the POST or GET field in the
// preference cookie.
func WithPersist(persist bool) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.persist = persist
	}
}

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUnsupportedHandler is called once per request that rejected a
// candidate, after activation and before the next handler.
func WithUnsupportedHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onUnsupported = fn
	}
}

// Middleware resolves and activates the request language, storing the
// activation in the request context.
func Middleware(manager *i18n.Manager, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		cookieName: DefaultCookieName,
		persist:    true,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sel := manager.Select(CandidatesFromRequest(r, cfg.cookieName))

			ctx, act, err := manager.Activate(r.Context(), sel)
			ctx = context.WithValue(ctx, selectionKey{}, sel)
			if err != nil {
				cfg.logger.Warn("activate language", slog.String("code", act.Code()), slog.Any("error", err))
			}

			if tag := act.Language.Tag(); tag != language.Und {
				w.Header().Set("Content-Language", tag.String())
			}

			if cfg.persist && (sel.Source == i18n.SourcePost || sel.Source == i18n.SourceGet) {
				SetLanguageCookie(w, cfg.cookieName, act.Code())
			}

			if warn := act.Warning(sel); warn != nil {
				ctx = context.WithValue(ctx, warningKey{}, warn)
				cfg.logger.Info(warn.Error(),
					slog.String("path", r.URL.Path),
					slog.String("code", act.Code()),
				)
				if cfg.onUnsupported != nil {
					cfg.onUnsupported(w, r.WithContext(ctx), warn)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActivationFromRequest returns the activation stored by Middleware.
func ActivationFromRequest(r *http.Request) (*i18n.Activation, bool) {
	if r == nil {
		return nil, false
	}
	return i18n.FromContext(r.Context())
}

// SelectionFromRequest returns the selection made by Middleware.
func SelectionFromRequest(r *http.Request) (i18n.Selection, bool) {
	if r == nil {
		return i18n.Selection{}, false
	}
	sel, ok := r.Context().Value(selectionKey{}).(i18n.Selection)
	return sel, ok
}

// WarningFromRequest returns the translated unsupported language warning
// recorded for r, or nil.
func WarningFromRequest(r *http.Request) error {
	if r == nil {
		return nil
	}
	err, _ := r.Context().Value(warningKey{}).(error)
	return err
}

// LanguageURL returns path with the lang query field set to code.
func LanguageURL(path, rawQuery, code string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(LangParam, code)
	return path + "?" + values.Encode()
}
