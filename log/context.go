package log

import (
	"context"
)

type ctxKey struct{}

// logContext is level and name path of log events, stored in context as one value
type logContext struct {
	level Level
	names []string
}

func fromContext(ctx context.Context) logContext {
	v, _ := ctx.Value(ctxKey{}).(logContext)

	return v
}

// WithLevel sets level for events logged with ctx
func WithLevel(ctx context.Context, lvl Level) context.Context {
	lc := fromContext(ctx)
	lc.level = lvl

	return context.WithValue(ctx, ctxKey{}, lc)
}

func LevelFromContext(ctx context.Context) Level {
	return fromContext(ctx).level
}

// WithNames appends names to the name path of ctx
func WithNames(ctx context.Context, names ...string) context.Context {
	lc := fromContext(ctx)
	// full slice expression makes append copy, contexts share parent's names
	lc.names = append(lc.names[:len(lc.names):len(lc.names)], names...)

	return context.WithValue(ctx, ctxKey{}, lc)
}

func NamesFromContext(ctx context.Context) []string {
	names := fromContext(ctx).names
	if names == nil {
		return []string{}
	}

	return names[:len(names):len(names)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	lc := fromContext(ctx)
	lc.level = lvl
	lc.names = append(lc.names[:len(lc.names):len(lc.names)], names...)

	return context.WithValue(ctx, ctxKey{}, lc)
}
