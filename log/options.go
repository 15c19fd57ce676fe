package log

import (
	"github.com/jonboulle/clockwork"
)

var (
	_ simpleLoggerOption = coloringOption(false)
	_ simpleLoggerOption = minLevelOption(INFO)
	_ simpleLoggerOption = clockOption{}
)

type coloringOption bool

func (c coloringOption) applySimpleOption(l *defaultLogger) {
	l.coloring = bool(c)
}

func WithColoring() coloringOption {
	return true
}

type minLevelOption Level

func (m minLevelOption) applySimpleOption(l *defaultLogger) {
	l.minLevel = Level(m)
}

func WithMinLevel(level Level) minLevelOption {
	return minLevelOption(level)
}

type clockOption struct {
	clock clockwork.Clock
}

func (c clockOption) applySimpleOption(l *defaultLogger) {
	if c.clock != nil {
		l.clock = c.clock
	}
}

func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}
