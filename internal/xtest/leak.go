package xtest

import (
	"testing"

	"go.uber.org/goleak"
)

func findGoroutinesLeak(opts ...goleak.Option) error {
	return goleak.Find(append(opts,
		// grpc internals outlive closed connections for a short time
		goleak.IgnoreTopFunction("google.golang.org/grpc/internal/grpcsync.(*CallbackSerializer).run"),
		goleak.IgnoreTopFunction("google.golang.org/grpc/internal/transport.(*controlBuffer).get"),
	)...)
}

// CheckGoroutinesLeak fails the test if goroutines started after snapshot are still alive.
// Call it with defer at the top of the test.
func CheckGoroutinesLeak(t testing.TB, snapshot goleak.Option) {
	t.Helper()

	if err := findGoroutinesLeak(snapshot); err != nil {
		t.Errorf("goroutines leak: %v", err)
	}
}

// GoroutinesSnapshot remembers goroutines alive at the moment of call.
func GoroutinesSnapshot() goleak.Option {
	return goleak.IgnoreCurrent()
}
