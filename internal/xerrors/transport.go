package xerrors

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	grpcCodes "google.golang.org/grpc/codes"
	grpcStatus "google.golang.org/grpc/status"

	"github.com/vtgate-go/vtgate-go-sdk/internal/xstring"
)

type transportError struct {
	kind    Kind
	code    grpcCodes.Code
	message string
	err     error
	details []interface{}
	address string
	method  string
}

type teOpt func(te *transportError)

func WithAddress(address string) teOpt {
	return func(te *transportError) {
		te.address = address
	}
}

func WithMethod(method string) teOpt {
	return func(te *transportError) {
		te.method = method
	}
}

func (e *transportError) Code() grpcCodes.Code {
	return e.code
}

func (e *transportError) Kind() Kind {
	return e.kind
}

func (e *transportError) Message() string {
	return e.message
}

func (e *transportError) Error() string {
	b := xstring.Buffer()
	defer b.Free()
	b.WriteString(e.kind.Error())
	b.WriteString(": ")
	b.WriteString(strconv.Itoa(int(e.code)))
	b.WriteString(" (")
	b.WriteString(e.code.String())
	b.WriteByte(')')
	if e.message != "" {
		b.WriteString(": ")
		b.WriteString(e.message)
	}
	if e.method != "" {
		b.WriteString(", method: ")
		b.WriteString(e.method)
	}
	if e.address != "" {
		b.WriteString(", address: ")
		b.WriteString(e.address)
	}
	if len(e.details) > 0 {
		b.WriteString(", details:")
		for _, detail := range e.details {
			fmt.Fprintf(b, "\n- %v", detail)
		}
	}

	return b.String()
}

func (e *transportError) Unwrap() error {
	return e.err
}

// Is matches err against its Kind
func (e *transportError) Is(target error) bool {
	k, ok := target.(Kind) //nolint:errorlint

	return ok && k == e.kind
}

func (e *transportError) GRPCStatus() *grpcStatus.Status {
	return grpcStatus.New(e.code, e.message)
}

// FromGRPCError translates a transport-level failure into a typed error.
// Nil and OK statuses translate to nil. Errors without a grpc status become
// KindGeneric with code Unknown and keep the original error as cause.
func FromGRPCError(err error, opts ...teOpt) error {
	if err == nil {
		return nil
	}
	var t *transportError
	if errors.As(err, &t) {
		return err
	}

	te := &transportError{
		code:    grpcCodes.Unknown,
		message: err.Error(),
		err:     err,
	}
	if s, ok := grpcStatus.FromError(err); ok {
		if s.Code() == grpcCodes.OK {
			return nil
		}
		te.code = s.Code()
		te.message = s.Message()
		te.err = s.Err()
		te.details = s.Details()
	} else if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		te.code = grpcStatus.FromContextError(err).Code()
	}
	te.kind = KindOf(te.code)
	for _, opt := range opts {
		if opt != nil {
			opt(te)
		}
	}

	return te
}

// IsTransportError reports whether err is transportError with given grpc codes
func IsTransportError(err error, codes ...grpcCodes.Code) bool {
	if err == nil {
		return false
	}
	var t *transportError
	if !errors.As(err, &t) {
		return false
	}
	if len(codes) == 0 {
		return true
	}
	for _, code := range codes {
		if t.code == code {
			return true
		}
	}

	return false
}

// IsKind reports whether err is a transport error of one of the given kinds
func IsKind(err error, kinds ...Kind) bool {
	var t *transportError
	if !errors.As(err, &t) {
		return false
	}
	for _, k := range kinds {
		if t.kind == k {
			return true
		}
	}

	return false
}

// TransportError returns the typed transport error from err chain
func TransportError(err error) (Error, bool) {
	var t *transportError
	if errors.As(err, &t) {
		return t, true
	}

	return nil, false
}

// Error is a translated gateway error.
type Error interface {
	error

	Code() grpcCodes.Code
	Kind() Kind
	Message() string
}
