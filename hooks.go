package i18n

import (
	"context"
	"log/slog"
)

// SelectionHook observes a resolution. BeforeSelect may rewrite the
// candidates, AfterSelect may inspect or replace the selection.
type SelectionHook interface {
	BeforeSelect(ctx *SelectionHookContext)
	AfterSelect(ctx *SelectionHookContext)
}

// SelectionHookContext is shared by all hooks of one resolution.
type SelectionHookContext struct {
	Candidates Candidates
	Selection  Selection
	Metadata   map[string]any
}

func (ctx *SelectionHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *SelectionHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

// SelectionHookFuncs adapts optional functions to SelectionHook.
type SelectionHookFuncs struct {
	Before func(ctx *SelectionHookContext)
	After  func(ctx *SelectionHookContext)
}

func (h SelectionHookFuncs) BeforeSelect(ctx *SelectionHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h SelectionHookFuncs) AfterSelect(ctx *SelectionHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// SelectFunc resolves candidates against an available set.
type SelectFunc func(set *AvailableSet, c Candidates) Selection

// WrapSelectWithHooks runs hooks around next. Nil hooks are dropped; with no
// hooks left next is returned unchanged.
func WrapSelectWithHooks(next SelectFunc, hooks ...SelectionHook) SelectFunc {
	if next == nil {
		next = Select
	}

	filtered := make([]SelectionHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	if len(filtered) == 0 {
		return next
	}

	return func(set *AvailableSet, c Candidates) Selection {
		ctx := &SelectionHookContext{Candidates: c}
		for _, hook := range filtered {
			hook.BeforeSelect(ctx)
		}

		ctx.Selection = next(set, ctx.Candidates)

		for _, hook := range filtered {
			hook.AfterSelect(ctx)
		}
		return ctx.Selection
	}
}

// LoggingHook logs every selection at debug level.
func LoggingHook(logger *slog.Logger) SelectionHook {
	if logger == nil {
		logger = slog.Default()
	}
	return SelectionHookFuncs{
		After: func(ctx *SelectionHookContext) {
			sel := ctx.Selection
			attrs := []slog.Attr{
				slog.String("code", sel.Language.Code()),
				slog.String("source", string(sel.Source)),
			}
			if sel.HasRejections() {
				attrs = append(attrs,
					slog.Bool("rejected_forced", sel.RejectedForced),
					slog.Bool("rejected_request", sel.RejectedRequest),
					slog.Bool("rejected_cookie", sel.RejectedCookie),
				)
			}
			logger.LogAttrs(context.Background(), slog.LevelDebug, "language selected", attrs...)
		},
	}
}
