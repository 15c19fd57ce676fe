package log

import (
	"context"
	"io"
	"strconv"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/vtgate-go/vtgate-go-sdk/internal/xstring"
)

const (
	dateLayout = "2006-01-02 15:04:05.000"
)

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

type simpleLoggerOption interface {
	applySimpleOption(l *defaultLogger)
}

// Default returns logger which writes one line per event into w.
// Concurrent events are written whole.
func Default(w io.Writer, opts ...simpleLoggerOption) *defaultLogger {
	l := &defaultLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applySimpleOption(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
	w  io.Writer
}

// line renders `2006-01-02 15:04:05.000 LEVEL 'a.b' => msg {"key":"value"}`
func (l *defaultLogger) line(lvl Level, names []string, msg string, fields []Field) []byte {
	b := xstring.Buffer()
	defer b.Free()

	l.paint(b, lvl.Color())
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	l.paint(b, colorReset, lvl.BoldColor())
	b.WriteString(lvl.String())
	l.paint(b, colorReset, lvl.Color())
	b.WriteString(" '")
	for i, name := range names {
		if i != 0 {
			b.WriteByte('.')
		}
		b.WriteString(name)
	}
	b.WriteString("' => ")
	b.WriteString(msg)
	if len(fields) > 0 {
		b.WriteString(" {")
		for i := range fields {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(fields[i].Key()))
			b.WriteByte(':')
			b.WriteString(strconv.Quote(fields[i].String()))
		}
		b.WriteByte('}')
	}
	l.paint(b, colorReset)
	b.WriteByte('\n')

	return append([]byte(nil), b.Bytes()...)
}

func (l *defaultLogger) paint(w io.StringWriter, codes ...string) {
	if !l.coloring {
		return
	}
	for _, code := range codes {
		_, _ = w.WriteString(code)
	}
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lc := fromContext(ctx)
	if lc.level < l.minLevel {
		return
	}
	line := l.line(lc.level, lc.names, msg, fields)

	l.mu.Lock()
	defer l.mu.Unlock()

	_, _ = l.w.Write(line)
}
