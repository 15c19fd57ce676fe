package xtest

import (
	"context"
	"runtime/pprof"
	"testing"
	"time"
)

const commonWaitTimeout = time.Minute

// Context returns context of the test labeled with test name for goroutine
// profiles. It is cancelled before cleanups of the test run.
func Context(t testing.TB) context.Context {
	ctx := pprof.WithLabels(t.Context(), pprof.Labels("test", t.Name()))
	pprof.SetGoroutineLabels(ctx)

	return ctx
}

// ContextWithCommonTimeout bounds ctx with one minute so hanging stream
// reads fail the test instead of the whole package run.
func ContextWithCommonTimeout(ctx context.Context, t testing.TB) context.Context {
	if ctx.Done() == nil {
		t.Fatal("use context with timeout only with context cancelled on test finish, for example xtest.Context")
	}

	ctx, cancel := context.WithTimeout(ctx, commonWaitTimeout)
	t.Cleanup(cancel)

	return ctx
}
