package i18n

import (
	"context"
	"log/slog"
	"sync"
)

// Manager owns the installed language set and resolves the active language
// for each request. It is safe for concurrent use.
type Manager struct {
	cfg      *Config
	selectFn SelectFunc

	once    sync.Once
	locales []string
	set     *AvailableSet
}

// LanguageOption is one entry of a language picker.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
}

// NewManager builds a Manager via supplied options
func NewManager(opts ...Option) (*Manager, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return NewManagerFromConfig(cfg), nil
}

// NewManagerFromConfig wraps an already built Config.
func NewManagerFromConfig(cfg *Config) *Manager {
	if cfg == nil {
		cfg, _ = NewConfig()
	}
	return &Manager{
		cfg:      cfg,
		selectFn: WrapSelectWithHooks(Select, cfg.Hooks...),
	}
}

// Config returns the manager configuration.
func (m *Manager) Config() *Config {
	return m.cfg
}

func (m *Manager) load() {
	m.once.Do(func() {
		present, err := m.cfg.Provider.Locales()
		if err != nil {
			m.cfg.Logger.Warn("list installed locales", slog.Any("error", err))
			present = []string{"en"}
		}

		locales := make([]string, 0, len(present))
		for _, code := range present {
			if code == "" {
				continue
			}
			if m.cfg.filter != nil && !matches(m.cfg.filter, code) {
				continue
			}
			locales = append(locales, code)
		}

		m.locales = locales
		m.set = BuildAvailableSet(m.cfg.Catalog, locales, nil)
		m.cfg.Logger.Debug("available languages loaded",
			slog.Int("installed", len(present)),
			slog.Int("available", m.set.Len()),
		)
	})
}

// AvailableLocales returns the installed locale codes after filtering, as
// reported by the provider.
func (m *Manager) AvailableLocales() []string {
	m.load()
	return append([]string(nil), m.locales...)
}

// Available returns the cached available set.
func (m *Manager) Available() *AvailableSet {
	m.load()
	return m.set
}

// AvailableLanguages returns the available languages in matching order.
func (m *Manager) AvailableLanguages() []*Language {
	return m.Available().Languages()
}

// SortedLanguages returns the available languages ordered by English name.
func (m *Manager) SortedLanguages() []*Language {
	return m.Available().Sorted()
}

// HasChoice reports whether more than one language is available.
func (m *Manager) HasChoice() bool {
	return m.Available().HasChoice()
}

// Language looks up an available language, ignoring case.
func (m *Manager) Language(code string) (*Language, bool) {
	return m.Available().Lookup(code)
}

// Select resolves c against the available set. Forced and default values
// left empty in c are taken from the configuration.
func (m *Manager) Select(c Candidates) Selection {
	if c.Forced == "" {
		c.Forced = m.cfg.ForcedLanguage
	}
	if c.Default == "" {
		c.Default = m.cfg.DefaultLanguage
	}
	return m.selectFn(m.Available(), c)
}

// Activate activates the selected language with the configured binders.
// A rejected candidate is logged; the caller surfaces it through
// Activation.Warning.
func (m *Manager) Activate(ctx context.Context, sel Selection) (context.Context, *Activation, error) {
	ctx, act, err := Activate(ctx, sel.Language, m.cfg.Binders...)
	if err != nil {
		m.cfg.Logger.Warn("bind language", slog.String("code", act.Code()), slog.Any("error", err))
	}
	if warn := act.Warning(sel); warn != nil {
		m.cfg.Logger.Info(warn.Error(),
			slog.String("code", act.Code()),
			slog.Bool("rejected_forced", sel.RejectedForced),
			slog.Bool("rejected_request", sel.RejectedRequest),
			slog.Bool("rejected_cookie", sel.RejectedCookie),
		)
	}
	return ctx, act, err
}

// Resolve selects and activates in one step.
func (m *Manager) Resolve(ctx context.Context, c Candidates) (context.Context, *Activation, Selection, error) {
	sel := m.Select(c)
	ctx, act, err := m.Activate(ctx, sel)
	return ctx, act, sel, err
}

// Options returns the sorted picker entries, flagging active.
func (m *Manager) Options(active *Language) []LanguageOption {
	languages := m.SortedLanguages()
	options := make([]LanguageOption, 0, len(languages))
	for _, lang := range languages {
		options = append(options, LanguageOption{
			Code:   lang.Code(),
			Label:  lang.Name(),
			Active: active != nil && lang.Key() == active.Key(),
		})
	}
	return options
}
