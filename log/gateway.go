package log

import (
	"context"
	"io"
	"time"

	"github.com/vtgate-go/vtgate-go-sdk/internal/kv"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

// Gateway makes trace.Gateway with logging events from details
//
//nolint:gocyclo,funlen
func Gateway(l Logger, d trace.Detailer) (t trace.Gateway) {
	if d == nil {
		d = trace.DetailsAll
	}

	return trace.Gateway{
		OnDial: func(info trace.GatewayDialStartInfo) func(trace.GatewayDialDoneInfo) {
			if d.Details()&trace.DriverEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "vtgate", "driver", "dial")
			endpoint := info.Endpoint
			l.Log(ctx, "dial starting...",
				kv.String("endpoint", endpoint),
			)
			start := time.Now()

			return func(info trace.GatewayDialDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "dial done",
						kv.String("endpoint", endpoint),
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, ERROR), "dial failed",
						kv.Error(info.Error),
						kv.String("endpoint", endpoint),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnClose: func(info trace.GatewayCloseStartInfo) func(trace.GatewayCloseDoneInfo) {
			if d.Details()&trace.DriverEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "vtgate", "driver", "close")
			endpoint := info.Endpoint
			l.Log(ctx, "close starting...",
				kv.String("endpoint", endpoint),
			)
			start := time.Now()

			return func(info trace.GatewayCloseDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "close done",
						kv.String("endpoint", endpoint),
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "close failed",
						kv.Error(info.Error),
						kv.String("endpoint", endpoint),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnInvoke: func(info trace.GatewayInvokeStartInfo) func(trace.GatewayInvokeDoneInfo) {
			if d.Details()&trace.GatewayInvokeEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "vtgate", "gateway", "invoke")
			method := info.Method
			l.Log(ctx, "invoke starting...",
				kv.String("method", method),
			)
			start := time.Now()

			return func(info trace.GatewayInvokeDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "invoke done",
						kv.String("method", method),
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, logLevelForError(info.Error)), "invoke failed",
						kv.Error(info.Error),
						kv.String("method", method),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnBegin: func(info trace.GatewayBeginStartInfo) func(trace.GatewayBeginDoneInfo) {
			if d.Details()&trace.GatewayTransactionEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "vtgate", "gateway", "tx", "begin")
			l.Log(ctx, "begin starting...")
			start := time.Now()

			return func(info trace.GatewayBeginDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "begin done",
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, logLevelForError(info.Error)), "begin failed",
						kv.Error(info.Error),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnCommit: func(info trace.GatewayCommitStartInfo) func(trace.GatewayCommitDoneInfo) {
			if d.Details()&trace.GatewayTransactionEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "vtgate", "gateway", "tx", "commit")
			l.Log(ctx, "commit starting...")
			start := time.Now()

			return func(info trace.GatewayCommitDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "commit done",
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, logLevelForError(info.Error)), "commit failed",
						kv.Error(info.Error),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnRollback: func(info trace.GatewayRollbackStartInfo) func(trace.GatewayRollbackDoneInfo) {
			if d.Details()&trace.GatewayTransactionEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, DEBUG, "vtgate", "gateway", "tx", "rollback")
			l.Log(ctx, "rollback starting...")
			start := time.Now()

			return func(info trace.GatewayRollbackDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "rollback done",
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, WARN), "rollback failed",
						kv.Error(info.Error),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnNewStream: func(info trace.GatewayNewStreamStartInfo) func(trace.GatewayNewStreamDoneInfo) {
			if d.Details()&trace.GatewayStreamEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "vtgate", "gateway", "stream", "new")
			method := info.Method
			l.Log(ctx, "stream starting...",
				kv.String("method", method),
			)
			start := time.Now()

			return func(info trace.GatewayNewStreamDoneInfo) {
				if info.Error == nil {
					l.Log(ctx, "stream started",
						kv.String("method", method),
						kv.Bool("empty", info.Empty),
						kv.Latency(start),
					)
				} else {
					l.Log(WithLevel(ctx, logLevelForError(info.Error)), "stream start failed",
						kv.Error(info.Error),
						kv.String("method", method),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnStreamRecv: func(info trace.GatewayStreamRecvStartInfo) func(trace.GatewayStreamRecvDoneInfo) {
			if d.Details()&trace.GatewayStreamRecvEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "vtgate", "gateway", "stream", "recv")
			method := info.Method
			start := time.Now()

			return func(info trace.GatewayStreamRecvDoneInfo) {
				switch {
				case info.Error == nil:
					l.Log(ctx, "stream item received",
						kv.String("method", method),
						kv.Latency(start),
					)
				case xerrors.Is(info.Error, io.EOF):
					l.Log(ctx, "stream finished",
						kv.String("method", method),
						kv.Latency(start),
					)
				default:
					l.Log(WithLevel(ctx, logLevelForError(info.Error)), "stream receive failed",
						kv.Error(info.Error),
						kv.String("method", method),
						kv.Latency(start),
						kv.Version(),
					)
				}
			}
		},
		OnStreamClose: func(info trace.GatewayStreamCloseStartInfo) func(trace.GatewayStreamCloseDoneInfo) {
			if d.Details()&trace.GatewayStreamEvents == 0 {
				return nil
			}
			ctx := with(*info.Context, TRACE, "vtgate", "gateway", "stream", "close")
			method := info.Method
			start := time.Now()

			return func(info trace.GatewayStreamCloseDoneInfo) {
				l.Log(ctx, "stream closed",
					kv.String("method", method),
					kv.Int("received", info.Received),
					kv.Latency(start),
				)
			}
		},
	}
}

// logLevelForError logs transient failures as warnings, everything else as errors.
func logLevelForError(err error) Level {
	if xerrors.IsKind(err, xerrors.KindTransient) {
		return WARN
	}

	return ERROR
}

// Context builds a context with level and names the same way the SDK does
// internally, for callers feeding their own events into a Logger.
func Context(ctx context.Context, lvl Level, names ...string) context.Context {
	return with(ctx, lvl, names...)
}
