package xerrors

import (
	"errors"

	grpcStatus "google.golang.org/grpc/status"

	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
)

type stackTraceOptions struct {
	skipDepth int
}

type StackTraceOption func(o *stackTraceOptions)

// WithSkipDepth records caller of the function which calls WithStackTrace
// skipDepth levels above
func WithSkipDepth(skipDepth int) StackTraceOption {
	return func(o *stackTraceOptions) {
		o.skipDepth = skipDepth
	}
}

// WithStackTrace annotates err with file:line of the caller.
// Status of grpc errors stays visible for status.FromError.
func WithStackTrace(err error, opts ...StackTraceOption) error {
	if err == nil {
		return nil
	}
	var options stackTraceOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	e := stackError{
		err:   err,
		frame: stack.At(options.skipDepth + 1),
	}
	if s, has := grpcStatus.FromError(err); has {
		return &statusStackError{
			stackError: e,
			status:     s,
		}
	}

	return &e
}

type stackError struct {
	err   error
	frame stack.Frame
}

func (e *stackError) Error() string {
	return e.err.Error() + " at `" + e.frame.String() + "`"
}

func (e *stackError) Unwrap() error {
	return e.err
}

func (e *stackError) stackFrame() stack.Frame {
	return e.frame
}

type statusStackError struct {
	stackError
	status *grpcStatus.Status
}

func (e *statusStackError) GRPCStatus() *grpcStatus.Status {
	return e.status
}

// StackFrames returns recorded frames of err from the outermost annotation to the innermost.
func StackFrames(err error) (frames []stack.Frame) {
	for err != nil {
		if e, ok := err.(interface{ stackFrame() stack.Frame }); ok { //nolint:errorlint
			frames = append(frames, e.stackFrame())
		}
		err = errors.Unwrap(err)
	}

	return frames
}
