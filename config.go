package i18n

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/dlclark/regexp2"
)

// Config captures the language manager setup
type Config struct {
	// ForcedLanguage overrides every request candidate when available.
	ForcedLanguage string
	// DefaultLanguage is used when no candidate matches.
	DefaultLanguage string
	// FilterLanguages restricts installed locales to codes matching it.
	FilterLanguages string
	Catalog         *Catalog
	Provider        LocaleProvider
	Logger          *slog.Logger
	Hooks           []SelectionHook
	Binders         []Binder

	catalogFiles []string
	filter       *regexp2.Regexp
}

// EnvConfig holds the raw environment values understood by WithEnv.
type EnvConfig struct {
	Lang            string   `env:"I18N_LANG"`
	DefaultLang     string   `env:"I18N_DEFAULT_LANG" envDefault:"en"`
	FilterLanguages string   `env:"I18N_FILTER_LANGUAGES"`
	LocalePath      string   `env:"I18N_LOCALE_PATH"`
	LocaleDomain    string   `env:"I18N_LOCALE_DOMAIN" envDefault:"phpmyadmin"`
	CatalogFiles    []string `env:"I18N_CATALOG_FILES" envSeparator:","`
}

// LoadEnvConfig parses the I18N_* environment variables.
func LoadEnvConfig() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("i18n: parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the environment values into config options. Empty
// values leave the config untouched.
func (e EnvConfig) Options() []Option {
	var opts []Option
	if e.Lang != "" {
		opts = append(opts, WithForcedLanguage(e.Lang))
	}
	if e.DefaultLang != "" {
		opts = append(opts, WithDefaultLanguage(e.DefaultLang))
	}
	if e.FilterLanguages != "" {
		opts = append(opts, WithFilter(e.FilterLanguages))
	}
	if e.LocalePath != "" {
		opts = append(opts, WithProvider(NewDirProvider(e.LocalePath, e.LocaleDomain)))
	}
	if len(e.CatalogFiles) > 0 {
		opts = append(opts, WithCatalogFiles(e.CatalogFiles...))
	}
	return opts
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.Catalog == nil {
		cfg.Catalog = DefaultCatalog()
	}

	if len(cfg.catalogFiles) > 0 {
		catalog, err := NewCatalogLoader(cfg.catalogFiles...).Load(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
	}

	filter, err := CompileFilter(cfg.FilterLanguages)
	if err != nil {
		return nil, err
	}
	cfg.filter = filter

	if cfg.Provider == nil {
		cfg.Provider = CatalogProvider{Catalog: cfg.Catalog}
	}

	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = "en"
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	return cfg, nil
}

// WithEnv applies the I18N_* environment variables. Options listed after it
// take precedence.
func WithEnv() Option {
	return func(c *Config) error {
		envCfg, err := LoadEnvConfig()
		if err != nil {
			return err
		}
		for _, opt := range envCfg.Options() {
			if err := opt(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithForcedLanguage sets the language that wins over every request input
func WithForcedLanguage(code string) Option {
	return func(c *Config) error {
		c.ForcedLanguage = code
		return nil
	}
}

// WithDefaultLanguage sets the language used when nothing else matches
func WithDefaultLanguage(code string) Option {
	return func(c *Config) error {
		c.DefaultLanguage = code
		return nil
	}
}

// WithFilter keeps only installed locales whose code matches pattern
func WithFilter(pattern string) Option {
	return func(c *Config) error {
		c.FilterLanguages = pattern
		return nil
	}
}

func WithCatalog(catalog *Catalog) Option {
	return func(c *Config) error {
		c.Catalog = catalog
		return nil
	}
}

// WithCatalogFiles merges JSON or YAML definition files over the catalog
func WithCatalogFiles(paths ...string) Option {
	return func(c *Config) error {
		c.catalogFiles = append(c.catalogFiles, paths...)
		return nil
	}
}

func WithProvider(provider LocaleProvider) Option {
	return func(c *Config) error {
		c.Provider = provider
		return nil
	}
}

// WithLocaleDir scans a gettext locale tree for installed bundles
func WithLocaleDir(root, domain string) Option {
	return func(c *Config) error {
		c.Provider = NewDirProvider(root, domain)
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

func WithSelectionHooks(hooks ...SelectionHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

func WithBinders(binders ...Binder) Option {
	return func(c *Config) error {
		for _, binder := range binders {
			if binder == nil {
				continue
			}
			c.Binders = append(c.Binders, binder)
		}
		return nil
	}
}
