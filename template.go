package i18n

// HelperConfig configures template helper exports
type HelperConfig struct {
	// Prefix is prepended to every helper name, "lang_" by default.
	Prefix string
}

// TemplateHelpers exposes the active language to html/template. Helpers
// read the activation captured at call time.
func TemplateHelpers(act *Activation, cfg HelperConfig) map[string]any {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "lang_"
	}

	lang := act.language()
	return map[string]any{
		prefix + "code": func() string {
			return lang.Code()
		},
		prefix + "tag": func() string {
			return lang.Tag().String()
		},
		prefix + "name": func() string {
			return lang.Name()
		},
		prefix + "dir": func() string {
			return lang.Direction().String()
		},
		prefix + "is_rtl": func() bool {
			return lang.IsRTL()
		},
	}
}

func (a *Activation) language() *Language {
	if a == nil || a.Language == nil {
		return DefaultCatalog().english()
	}
	return a.Language
}
