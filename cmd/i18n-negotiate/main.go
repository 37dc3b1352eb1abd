package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	i18n "github.com/goliatone/go-i18n-negotiator"
)

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

type cliConfig struct {
	candidates   i18n.Candidates
	localeDir    string
	localeDomain string
	filter       string
	catalogFiles []string
	list         bool
	asJSON       bool
	verbose      bool
}

type result struct {
	Code           string `json:"code"`
	Tag            string `json:"tag"`
	Name           string `json:"name"`
	Direction      string `json:"direction"`
	ExternalLocale string `json:"external_locale,omitempty"`
	Source         string `json:"source"`
	Warning        string `json:"warning,omitempty"`
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		reportError(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "i18n-negotiate: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	var catalogs listFlag

	fs := flag.NewFlagSet("i18n-negotiate", flag.ContinueOnError)
	fs.StringVar(&cfg.candidates.Forced, "lang", "", "forced language code (overrides I18N_LANG)")
	fs.StringVar(&cfg.candidates.Post, "post", "", "value of the POST lang field")
	fs.StringVar(&cfg.candidates.Get, "get", "", "value of the GET lang field")
	fs.StringVar(&cfg.candidates.Cookie, "cookie", "", "value of the language cookie")
	fs.StringVar(&cfg.candidates.AcceptLanguage, "accept", "", "Accept-Language header")
	fs.StringVar(&cfg.candidates.UserAgent, "ua", "", "User-Agent header")
	fs.StringVar(&cfg.candidates.Default, "default", "", "default language code (overrides I18N_DEFAULT_LANG)")
	fs.StringVar(&cfg.localeDir, "locale-dir", "", "gettext locale tree to scan for installed languages")
	fs.StringVar(&cfg.localeDomain, "domain", i18n.DefaultLocaleDomain, "gettext domain used with -locale-dir")
	fs.StringVar(&cfg.filter, "filter", "", "pattern restricting installed language codes")
	fs.Var(&catalogs, "catalog", "JSON or YAML catalog file merged over the built-in catalog. Repeat flag to add more.")
	fs.BoolVar(&cfg.list, "list", false, "list available languages and exit")
	fs.BoolVar(&cfg.asJSON, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.verbose, "v", false, "log selection details to stderr")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	if fs.NArg() > 0 {
		return cliConfig{}, errors.New("unexpected positional arguments")
	}

	cfg.catalogFiles = catalogs.items
	return cfg, nil
}

func (cfg cliConfig) options() []i18n.Option {
	opts := []i18n.Option{i18n.WithEnv()}

	if cfg.localeDir != "" {
		opts = append(opts, i18n.WithLocaleDir(cfg.localeDir, cfg.localeDomain))
	}
	if cfg.filter != "" {
		opts = append(opts, i18n.WithFilter(cfg.filter))
	}
	if len(cfg.catalogFiles) > 0 {
		opts = append(opts, i18n.WithCatalogFiles(cfg.catalogFiles...))
	}
	if cfg.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, i18n.WithLogger(logger), i18n.WithSelectionHooks(i18n.LoggingHook(logger)))
	}
	return opts
}

func run(cfg cliConfig, out io.Writer) error {
	manager, err := i18n.NewManager(cfg.options()...)
	if err != nil {
		return err
	}

	if cfg.list {
		for _, lang := range manager.SortedLanguages() {
			fmt.Fprintf(out, "%-10s %-4s %s\n", lang.Code(), lang.Direction(), lang.Name())
		}
		return nil
	}

	_, act, sel, err := manager.Resolve(context.Background(), cfg.candidates)
	if err != nil {
		return err
	}

	res := result{
		Code:           act.Code(),
		Tag:            act.Language.Tag().String(),
		Name:           act.Language.Name(),
		Direction:      act.Direction.String(),
		ExternalLocale: act.Language.ExternalLocale(),
		Source:         string(sel.Source),
	}
	if warn := act.Warning(sel); warn != nil {
		res.Warning = warn.Error()
	}

	if cfg.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(out, "%s (%s) dir=%s source=%s\n", res.Code, res.Name, res.Direction, res.Source)
	if res.Warning != "" {
		fmt.Fprintf(out, "warning: %s\n", res.Warning)
	}
	return nil
}
