package i18n

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// DefaultLocaleDomain is the gettext domain looked up by DirProvider.
const DefaultLocaleDomain = "phpmyadmin"

// LocaleProvider reports the locale codes for which a usable message bundle
// is installed.
type LocaleProvider interface {
	Locales() ([]string, error)
}

// ProviderFunc adapts a bare function to LocaleProvider.
type ProviderFunc func() ([]string, error)

// Locales implements LocaleProvider for ProviderFunc.
func (fn ProviderFunc) Locales() ([]string, error) {
	return fn()
}

// StaticProvider reports a fixed list of codes.
type StaticProvider []string

func (p StaticProvider) Locales() ([]string, error) {
	return append([]string(nil), p...), nil
}

// CatalogProvider reports every code of the catalog as installed.
type CatalogProvider struct {
	Catalog *Catalog
}

func (p CatalogProvider) Locales() ([]string, error) {
	return p.Catalog.Codes(), nil
}

// DirProvider scans a gettext locale tree laid out as
// <root>/<code>/LC_MESSAGES/<domain>.mo. English is always reported first,
// since it ships without a bundle.
type DirProvider struct {
	fs     afero.Fs
	root   string
	domain string
}

var _ LocaleProvider = &DirProvider{}

// NewDirProvider scans root on the OS filesystem.
func NewDirProvider(root, domain string) *DirProvider {
	return NewDirProviderFs(afero.NewOsFs(), root, domain)
}

// NewDirProviderFs scans root on fs.
func NewDirProviderFs(fs afero.Fs, root, domain string) *DirProvider {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if domain == "" {
		domain = DefaultLocaleDomain
	}
	return &DirProvider{fs: fs, root: root, domain: domain}
}

// Locales never fails: a missing or unreadable tree yields just "en".
func (p *DirProvider) Locales() ([]string, error) {
	result := []string{"en"}
	if p == nil || p.root == "" {
		return result, nil
	}

	if ok, err := afero.DirExists(p.fs, p.root); err != nil || !ok {
		return result, nil
	}

	entries, err := afero.ReadDir(p.fs, p.root)
	if err != nil {
		return result, nil
	}

	// afero.ReadDir returns entries sorted by name
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || name == "." || name == ".." {
			continue
		}
		bundle := filepath.Join(p.root, name, "LC_MESSAGES", p.domain+".mo")
		if ok, err := afero.Exists(p.fs, bundle); err != nil || !ok {
			continue
		}
		result = append(result, name)
	}

	return result, nil
}
