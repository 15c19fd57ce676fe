package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vtgate-go/vtgate-go-sdk/internal/kv"
)

var _ Logger = (*zapLogger)(nil)

type zapLogger struct {
	l *zap.Logger
}

// Zap adapts zap logger to Logger. Names from context become the logger name.
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl, ok := zapLevel(LevelFromContext(ctx))
	if !ok {
		return
	}
	ce := z.l.Named(strings.Join(NamesFromContext(ctx), ".")).Check(lvl, msg)
	if ce == nil {
		return
	}
	ce.Write(zapFields(fields)...)
}

func zapLevel(lvl Level) (zapcore.Level, bool) {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel, true
	case INFO:
		return zapcore.InfoLevel, true
	case WARN:
		return zapcore.WarnLevel, true
	case ERROR, FATAL:
		// FATAL events of the SDK never terminate the process
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InvalidLevel, false
	}
}

func zapFields(fields []Field) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case kv.IntType:
			zf = append(zf, zap.Int(f.Key(), f.IntValue()))
		case kv.Int64Type:
			zf = append(zf, zap.Int64(f.Key(), f.Int64Value()))
		case kv.StringType:
			zf = append(zf, zap.String(f.Key(), f.StringValue()))
		case kv.BoolType:
			zf = append(zf, zap.Bool(f.Key(), f.BoolValue()))
		case kv.DurationType:
			zf = append(zf, zap.Duration(f.Key(), f.DurationValue()))
		case kv.StringsType:
			zf = append(zf, zap.Strings(f.Key(), f.StringsValue()))
		case kv.ErrorType:
			zf = append(zf, zap.NamedError(f.Key(), f.ErrorValue()))
		case kv.StringerType:
			zf = append(zf, zap.String(f.Key(), f.String()))
		default:
			zf = append(zf, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return zf
}
