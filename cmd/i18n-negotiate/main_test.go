package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"I18N_LANG", "I18N_DEFAULT_LANG", "I18N_FILTER_LANGUAGES", "I18N_LOCALE_PATH", "I18N_LOCALE_DOMAIN", "I18N_CATALOG_FILES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-accept", "de-CH, fr;q=0.5",
		"-get", "xx",
		"-catalog", "a.yaml,b.json",
		"-catalog", "c.yml",
		"-filter", "^(de|fr)",
		"-json",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if cfg.candidates.AcceptLanguage != "de-CH, fr;q=0.5" || cfg.candidates.Get != "xx" {
		t.Fatalf("unexpected candidates %+v", cfg.candidates)
	}
	if strings.Join(cfg.catalogFiles, " ") != "a.yaml b.json c.yml" {
		t.Fatalf("catalogFiles = %v", cfg.catalogFiles)
	}
	if cfg.filter != "^(de|fr)" || !cfg.asJSON || cfg.list {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.localeDomain != "phpmyadmin" {
		t.Fatalf("localeDomain = %q", cfg.localeDomain)
	}
}

func TestParseFlagsRejectsPositionalArgs(t *testing.T) {
	if _, err := parseFlags([]string{"-accept", "de", "extra"}); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestRunText(t *testing.T) {
	clearEnv(t)

	cfg, err := parseFlags([]string{"-post", "tlh", "-accept", "ja, he;q=0.4"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := "ja (日本語 - Japanese) dir=ltr source=accept-language\nwarning: Ignoring unsupported language code.\n"
	if out.String() != want {
		t.Fatalf("output %q want %q", out.String(), want)
	}
}

func TestRunJSON(t *testing.T) {
	clearEnv(t)

	cfg, err := parseFlags([]string{"-json", "-filter", "^(en|ar)$", "-accept", "ar-EG"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	var res result
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output: %v (%s)", err, out.String())
	}
	if res.Code != "ar" || res.Direction != "rtl" || res.Source != "accept-language" || res.ExternalLocale != "ar_AE" {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.Warning != "" {
		t.Fatalf("unexpected warning %q", res.Warning)
	}
}

func TestRunList(t *testing.T) {
	clearEnv(t)

	root := t.TempDir()
	for _, code := range []string{"de", "fa"} {
		dir := filepath.Join(root, code, "LC_MESSAGES")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "phpmyadmin.mo"), nil, 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	cfg, err := parseFlags([]string{"-list", "-locale-dir", root})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("output lines = %q", lines)
	}
	if !strings.HasPrefix(lines[0], "en ") || !strings.HasPrefix(lines[1], "de ") || !strings.HasPrefix(lines[2], "fa ") {
		t.Fatalf("unexpected order %q", lines)
	}
	if !strings.Contains(lines[2], " rtl ") {
		t.Fatalf("Persian should be listed as rtl: %q", lines[2])
	}
}

func TestRunInvalidFilter(t *testing.T) {
	clearEnv(t)

	cfg, _ := parseFlags([]string{"-filter", "(de"})
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid filter")
	}
}
