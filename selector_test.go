package i18n

import "testing"

func fullSet() *AvailableSet {
	return BuildAvailableSet(DefaultCatalog(), DefaultCatalog().Codes(), nil)
}

func TestSelectPriority(t *testing.T) {
	set := BuildAvailableSet(DefaultCatalog(), []string{"en", "en_GB", "de", "fr", "pt", "pt_BR", "he"}, nil)

	tests := []struct {
		name            string
		candidates      Candidates
		want            string
		source          Source
		rejectedForced  bool
		rejectedRequest bool
		rejectedCookie  bool
	}{
		{
			name:       "forced wins",
			candidates: Candidates{Forced: "HE", Post: "de", Get: "fr", Cookie: "pt", AcceptLanguage: "en"},
			want:       "he",
			source:     SourceForced,
		},
		{
			name:           "post wins over invalid forced",
			candidates:     Candidates{Forced: "xx-not-real", Post: "de", Get: "fr", Cookie: "pt", AcceptLanguage: "en"},
			want:           "de",
			source:         SourcePost,
			rejectedForced: true,
		},
		{
			name:       "post wins over get",
			candidates: Candidates{Post: "fr", Get: "de"},
			want:       "fr",
			source:     SourcePost,
		},
		{
			name:            "get tried after invalid post",
			candidates:      Candidates{Post: "zz", Get: "fr", Cookie: "de"},
			want:            "fr",
			source:          SourceGet,
			rejectedRequest: true,
		},
		{
			name:       "cookie",
			candidates: Candidates{Cookie: "pt_br", AcceptLanguage: "de"},
			want:       "pt_BR",
			source:     SourceCookie,
		},
		{
			name:            "header after rejected request and cookie",
			candidates:      Candidates{Post: "zz", Get: "yy", Cookie: "qq", AcceptLanguage: "de"},
			want:            "de",
			source:          SourceAcceptLanguage,
			rejectedRequest: true,
			rejectedCookie:  true,
		},
		{
			name:       "first header entry wins over quality",
			candidates: Candidates{AcceptLanguage: "fr;q=0.8,de;q=0.6"},
			want:       "fr",
			source:     SourceAcceptLanguage,
		},
		{
			name:       "header entries tried in order",
			candidates: Candidates{AcceptLanguage: "tlh, ja;q=0.9, pt-BR;q=0.8, en;q=0.5"},
			want:       "pt_BR",
			source:     SourceAcceptLanguage,
		},
		{
			name:       "regional variant",
			candidates: Candidates{AcceptLanguage: "en-GB,en;q=0.9"},
			want:       "en_GB",
			source:     SourceAcceptLanguage,
		},
		{
			name:       "user agent when header does not match",
			candidates: Candidates{AcceptLanguage: "ja", UserAgent: "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.1; de)"},
			want:       "de",
			source:     SourceUserAgent,
		},
		{
			name:       "default",
			candidates: Candidates{AcceptLanguage: "ja", UserAgent: "curl/8.0", Default: "FR"},
			want:       "fr",
			source:     SourceDefault,
		},
		{
			name:       "english when default unavailable",
			candidates: Candidates{Default: "ja"},
			want:       "en",
			source:     SourceFallback,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel := Select(set, tc.candidates)
			if sel.Language.Code() != tc.want {
				t.Fatalf("Language = %q want %q", sel.Language.Code(), tc.want)
			}
			if sel.Source != tc.source {
				t.Fatalf("Source = %q want %q", sel.Source, tc.source)
			}
			if sel.RejectedForced != tc.rejectedForced || sel.RejectedRequest != tc.rejectedRequest || sel.RejectedCookie != tc.rejectedCookie {
				t.Fatalf("flags = forced:%v request:%v cookie:%v", sel.RejectedForced, sel.RejectedRequest, sel.RejectedCookie)
			}
		})
	}
}

func TestSelectInvalidForcedOnly(t *testing.T) {
	sel := Select(fullSet(), Candidates{Forced: "xx-not-real", Default: "en"})

	if sel.Language.Code() != "en" {
		t.Fatalf("Language = %q want en", sel.Language.Code())
	}
	if !sel.RejectedForced || sel.RejectedRequest || sel.RejectedCookie {
		t.Fatalf("flags = forced:%v request:%v cookie:%v", sel.RejectedForced, sel.RejectedRequest, sel.RejectedCookie)
	}
	if !sel.HasRejections() {
		t.Fatal("HasRejections() = false")
	}
}

func TestSelectHeaderDisambiguation(t *testing.T) {
	set := fullSet()

	tests := []struct {
		header string
		want   string
	}{
		{header: "en-GB", want: "en_GB"},
		{header: "en-US", want: "en"},
		{header: "pt-BR", want: "pt_BR"},
		{header: "pt-PT", want: "pt"},
		{header: "zh-HK", want: "zh_TW"},
		{header: "zh-CN", want: "zh_CN"},
		{header: "ar-LY", want: "ar_LY"},
		{header: "sr_lat", want: "sr@latin"},
	}

	for _, tc := range tests {
		sel := Select(set, Candidates{AcceptLanguage: tc.header})
		if sel.Language.Code() != tc.want {
			t.Fatalf("Accept-Language %q => %q want %q", tc.header, sel.Language.Code(), tc.want)
		}
	}
}

func TestSelectFallsBackToCatalogEnglish(t *testing.T) {
	set := BuildAvailableSet(DefaultCatalog(), []string{"de"}, nil)

	sel := Select(set, Candidates{Default: "fr"})
	if sel.Language.Code() != "en" || sel.Source != SourceFallback {
		t.Fatalf("Select = %q/%q want en/fallback", sel.Language.Code(), sel.Source)
	}

	sel = Select(nil, Candidates{})
	if sel.Language.Code() != "en" {
		t.Fatalf("Select(nil) = %q want en", sel.Language.Code())
	}
}
