package xtest

import (
	"sync"
	"testing"
	"time"
)

type TestFunc func(t testing.TB)

type manyTimesOptions struct {
	duration time.Duration
	minRuns  int
}

type ManyTimesOption func(o *manyTimesOptions)

// StopAfter limits total time of repeats. Default is one second
func StopAfter(d time.Duration) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.duration = d
	}
}

// MinRuns makes test repeat at least n times regardless of duration
func MinRuns(n int) ManyTimesOption {
	return func(o *manyTimesOptions) {
		o.minRuns = n
	}
}

// TestManyTimes repeats test until duration is over, races of stream close and
// receive show up only in some runs. Each run gets own cleanup stack.
// Returns count of runs.
func TestManyTimes(t testing.TB, test TestFunc, opts ...ManyTimesOption) (runs int) {
	t.Helper()

	options := manyTimesOptions{
		duration: time.Second,
		minRuns:  1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	start := time.Now()
	for {
		runTest(t, test)
		runs++

		if t.Failed() {
			return runs
		}
		if runs >= options.minRuns && time.Since(start) > options.duration {
			return runs
		}
	}
}

func TestManyTimesWithName(t *testing.T, name string, test TestFunc, opts ...ManyTimesOption) {
	t.Helper()

	t.Run(name, func(t *testing.T) {
		t.Helper()
		TestManyTimes(t, test, opts...)
	})
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{
		TB: t,
	}

	defer tw.doCleanup()

	test(tw)
}

type testWrapper struct {
	testing.TB

	m       sync.Mutex
	cleanup []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.Lock()
	defer tw.m.Unlock()

	tw.cleanup = append(tw.cleanup, f)
}

func (tw *testWrapper) doCleanup() {
	tw.Helper()

	tw.m.Lock()
	cleanup := tw.cleanup
	tw.cleanup = nil
	tw.m.Unlock()

	for i := len(cleanup) - 1; i >= 0; i-- {
		cleanup[i]()
	}
}
