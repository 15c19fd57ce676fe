package gateway

import (
	"context"
	"errors"
	"io"
	"iter"
	"sync"
	"sync/atomic"

	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

// ErrStreamClosed is returned by Stream.Next after Stream.Close
var ErrStreamClosed = xerrors.Wrap(errors.New("stream is closed"))

type receiver[T any] interface {
	Recv() (T, error)
}

type streamState uint8

const (
	streamNotStarted = streamState(iota)
	streamStreaming
	streamExhaustedSuccess
	streamExhaustedError
	streamCancelled
)

func (s streamState) terminal() bool {
	return s == streamExhaustedSuccess || s == streamExhaustedError || s == streamCancelled
}

// Stream is a server stream of vtgate responses.
//
// The first item is received while the stream is opened. Next returns items in
// order, then io.EOF on successful end of stream or the translated error. The
// terminal result is sticky: every later Next returns it without touching the
// transport.
type Stream[T any] struct {
	client *Client
	method string
	ctx    context.Context //nolint:containedctx
	cancel context.CancelFunc
	stream receiver[T]

	closed    atomic.Bool
	closeOnce sync.Once

	mu          sync.Mutex
	state       streamState
	buffered    T
	hasBuffered bool
	err         error
	received    int
}

func newStream[T any](
	ctx context.Context,
	c *Client,
	call stack.Caller,
	method string,
	open func(ctx context.Context) (receiver[T], error),
) (_ *Stream[T], finalErr error) {
	onDone := trace.GatewayOnNewStream(c.config.Trace(), &ctx, call, method)

	s := &Stream[T]{
		client: c,
		method: method,
		state:  streamNotStarted,
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	stream, err := open(s.ctx)
	if err != nil {
		s.cancel()
		finalErr = c.wrapError(err, method)
		onDone(false, finalErr)

		return nil, finalErr
	}
	s.stream = stream

	item, err := s.recv()
	switch {
	case err == nil:
		s.state = streamStreaming
		s.buffered = item
		s.hasBuffered = true
	case xerrors.Is(err, io.EOF):
		s.state = streamExhaustedSuccess
		s.err = io.EOF
		s.cancel()
	default:
		s.cancel()
		onDone(false, err)

		return nil, err
	}
	onDone(s.state == streamExhaustedSuccess, nil)

	return s, nil
}

// recv receives next item and counts it. Errors other than io.EOF are translated.
func (s *Stream[T]) recv() (item T, err error) {
	ctx := s.ctx
	onDone := trace.GatewayOnStreamRecv(s.client.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Stream).recv"),
		s.method,
	)
	defer func() {
		onDone(err)
	}()

	item, err = s.stream.Recv()
	if err == nil {
		s.received++

		return item, nil
	}
	if errors.Is(err, io.EOF) {
		return item, io.EOF
	}

	return item, s.client.wrapError(err, s.method)
}

// Next returns next item of stream. Cancelling ctx while Next waits for the
// item aborts the whole stream.
func (s *Stream[T]) Next(ctx context.Context) (item T, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.terminal() {
		return item, s.terminalErr()
	}
	if s.closed.Load() {
		s.finish(streamCancelled, nil)

		return item, xerrors.WithStackTrace(ErrStreamClosed)
	}
	if s.hasBuffered {
		item, s.buffered, s.hasBuffered = s.buffered, item, false

		return item, nil
	}
	if err = ctx.Err(); err != nil {
		return item, xerrors.WithStackTrace(err)
	}

	stop := context.AfterFunc(ctx, s.cancel)
	defer stop()

	item, err = s.recv()
	switch {
	case err == nil:
		return item, nil
	case s.closed.Load():
		s.finish(streamCancelled, nil)

		return item, xerrors.WithStackTrace(ErrStreamClosed)
	case errors.Is(err, io.EOF):
		s.finish(streamExhaustedSuccess, io.EOF)

		return item, io.EOF
	default:
		s.finish(streamExhaustedError, err)

		return item, err
	}
}

func (s *Stream[T]) finish(state streamState, err error) {
	var zero T
	s.state = state
	s.err = err
	s.buffered, s.hasBuffered = zero, false
	s.cancel()
}

func (s *Stream[T]) terminalErr() error {
	switch s.state {
	case streamExhaustedSuccess:
		return io.EOF
	case streamCancelled:
		return xerrors.WithStackTrace(ErrStreamClosed)
	default:
		return s.err
	}
}

// All returns iterator over remaining items. Iteration stops after the first
// error, io.EOF is not yielded. The stream is closed when iteration ends.
func (s *Stream[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		defer func() {
			_ = s.Close()
		}()
		for {
			item, err := s.Next(ctx)
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(item, err)
				}

				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Received returns count of items received from the transport so far.
func (s *Stream[T]) Received() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.received
}

// Close cancels the underlying call. Close is idempotent and safe to call
// concurrently with Next.
func (s *Stream[T]) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.cancel()

		ctx := s.ctx
		onDone := trace.GatewayOnStreamClose(s.client.config.Trace(), &ctx,
			stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Stream).Close"),
			s.method,
		)

		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.state.terminal() {
			s.finish(streamCancelled, nil)
		}
		onDone(s.received)
	})

	return nil
}
