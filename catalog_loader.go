package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape of a catalog file.
type catalogFile struct {
	Languages []LanguageDefinition `json:"languages" yaml:"languages"`
}

// CatalogLoader reads language definitions from JSON or YAML files and
// merges them over a base catalog. Later files take precedence.
type CatalogLoader struct {
	fs    afero.Fs
	paths []string
}

// NewCatalogLoader creates a loader reading from the OS filesystem.
func NewCatalogLoader(paths ...string) *CatalogLoader {
	return NewCatalogLoaderFs(afero.NewOsFs(), paths...)
}

// NewCatalogLoaderFs creates a loader reading from fs.
func NewCatalogLoaderFs(fs afero.Fs, paths ...string) *CatalogLoader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &CatalogLoader{fs: fs, paths: append([]string(nil), paths...)}
}

// Definitions decodes every configured file in order.
func (l *CatalogLoader) Definitions() ([]LanguageDefinition, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("i18n: no catalog paths configured")
	}

	var defs []LanguageDefinition
	for _, path := range l.paths {
		data, err := afero.ReadFile(l.fs, path)
		if err != nil {
			return nil, fmt.Errorf("i18n: read catalog %s: %w", path, err)
		}

		file, err := decodeCatalogFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("i18n: decode catalog %s: %w", path, err)
		}
		for i, def := range file.Languages {
			if strings.TrimSpace(def.Code) == "" {
				return nil, fmt.Errorf("i18n: %s: entry %d: %w", path, i, ErrEmptyCode)
			}
		}
		defs = append(defs, file.Languages...)
	}
	return defs, nil
}

// Load merges the decoded definitions over base. A nil base starts from an
// empty catalog.
func (l *CatalogLoader) Load(base *Catalog) (*Catalog, error) {
	defs, err := l.Definitions()
	if err != nil {
		return nil, err
	}

	languages := make([]*Language, 0, len(defs))
	for _, def := range defs {
		lang, err := NewLanguage(def)
		if err != nil {
			return nil, err
		}
		languages = append(languages, lang)
	}

	if base == nil {
		base = &Catalog{index: map[string]int{}}
	}
	return base.Merge(languages...), nil
}

func decodeCatalogFile(path string, data []byte) (catalogFile, error) {
	var file catalogFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return catalogFile{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return catalogFile{}, err
		}
	default:
		return catalogFile{}, fmt.Errorf("unsupported extension %s", ext)
	}

	return file, nil
}
