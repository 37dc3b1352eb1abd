package i18n

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestWrapSelectWithHooksOrder(t *testing.T) {
	set := BuildAvailableSet(DefaultCatalog(), []string{"en", "de", "fr"}, nil)

	var calls []string
	hook := func(name string) SelectionHook {
		return SelectionHookFuncs{
			Before: func(*SelectionHookContext) { calls = append(calls, name+".before") },
			After:  func(*SelectionHookContext) { calls = append(calls, name+".after") },
		}
	}

	next := func(set *AvailableSet, c Candidates) Selection {
		calls = append(calls, "select")
		return Select(set, c)
	}

	fn := WrapSelectWithHooks(next, hook("a"), hook("b"))
	fn(set, Candidates{Cookie: "de"})

	expected := []string{"a.before", "b.before", "select", "a.after", "b.after"}
	if strings.Join(calls, ",") != strings.Join(expected, ",") {
		t.Fatalf("calls = %v want %v", calls, expected)
	}
}

func TestWrapSelectWithHooksOverridesSelection(t *testing.T) {
	set := BuildAvailableSet(DefaultCatalog(), []string{"en", "de", "fr"}, nil)
	fr, _ := set.Lookup("fr")

	fn := WrapSelectWithHooks(nil, SelectionHookFuncs{
		After: func(ctx *SelectionHookContext) {
			if ctx.Selection.Source == SourceFallback {
				ctx.Selection.Language = fr
			}
		},
	})

	if sel := fn(set, Candidates{Cookie: "de"}); sel.Language.Code() != "de" {
		t.Fatalf("Select = %q want de", sel.Language.Code())
	}
	if sel := fn(set, Candidates{}); sel.Language.Code() != "fr" {
		t.Fatalf("Select = %q want fr", sel.Language.Code())
	}
}

func TestWrapSelectWithoutHooks(t *testing.T) {
	fn := WrapSelectWithHooks(nil, nil)
	if sel := fn(nil, Candidates{}); sel.Language.Code() != "en" {
		t.Fatalf("Select = %q want en", sel.Language.Code())
	}
}

func TestHookMetadataNilSafe(t *testing.T) {
	var ctx *SelectionHookContext
	ctx.SetMetadata("key", 1)
	if _, ok := ctx.MetadataValue("key"); ok {
		t.Fatal("nil context should not store metadata")
	}

	ctx = &SelectionHookContext{}
	ctx.SetMetadata("", 1)
	if ctx.Metadata != nil {
		t.Fatal("empty key should be ignored")
	}
}

func TestLoggingHookRejections(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	set := BuildAvailableSet(DefaultCatalog(), []string{"en"}, nil)

	fn := WrapSelectWithHooks(Select, LoggingHook(logger))

	fn(set, Candidates{})
	if strings.Contains(buf.String(), "rejected_") {
		t.Fatalf("clean selection should not log rejection flags: %s", buf.String())
	}

	buf.Reset()
	fn(set, Candidates{Cookie: "zz"})
	out := buf.String()
	if !strings.Contains(out, "rejected_cookie=true") || !strings.Contains(out, "source=fallback") {
		t.Fatalf("unexpected log output %s", out)
	}
}
