package vtgate

import (
	"errors"

	grpcCodes "google.golang.org/grpc/codes"

	"github.com/vtgate-go/vtgate-go-sdk/internal/gateway"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
)

// Error kinds of failed gateway calls. Use with errors.Is
var (
	ErrGeneric          error = xerrors.KindGeneric
	ErrBadInput         error = xerrors.KindBadInput
	ErrDeadlineExceeded error = xerrors.KindDeadlineExceeded
	ErrIntegrity        error = xerrors.KindIntegrity
	ErrUnauthenticated  error = xerrors.KindUnauthenticated
	ErrTransient        error = xerrors.KindTransient
)

// ErrStreamClosed is returned by Stream.Next after Stream.Close
var ErrStreamClosed = gateway.ErrStreamClosed

var (
	errEmptyEndpoint      = errors.New("empty vtgate endpoint")
	errConnectionShutdown = errors.New("grpc connection is shutdown")
)

// Error is a translated gateway error with raw grpc code and message
type Error = xerrors.Error

// Kind is the class of a failed gateway call
type Kind = xerrors.Kind

// IsBadInput reports whether err is caused by invalid request (grpc InvalidArgument)
func IsBadInput(err error) bool {
	return xerrors.IsKind(err, xerrors.KindBadInput)
}

// IsDeadlineExceeded reports whether err is caused by expired call deadline
func IsDeadlineExceeded(err error) bool {
	return xerrors.IsKind(err, xerrors.KindDeadlineExceeded)
}

// IsIntegrity reports whether err is an integrity violation (grpc AlreadyExists)
func IsIntegrity(err error) bool {
	return xerrors.IsKind(err, xerrors.KindIntegrity)
}

func IsUnauthenticated(err error) bool {
	return xerrors.IsKind(err, xerrors.KindUnauthenticated)
}

// IsTransient reports whether vtgate was unavailable. Such calls may succeed later
func IsTransient(err error) bool {
	return xerrors.IsKind(err, xerrors.KindTransient)
}

// IsTransportError checks whether given err is a translated transport error.
// If codes are given it also checks that grpc code of err is one of them.
func IsTransportError(err error, codes ...grpcCodes.Code) bool {
	return xerrors.IsTransportError(err, codes...)
}

// ErrorKind returns kind of translated error. ok is false for other errors
func ErrorKind(err error) (kind Kind, ok bool) {
	te, ok := xerrors.TransportError(err)
	if !ok {
		return xerrors.KindGeneric, false
	}

	return te.Kind(), true
}

// TransportErrorCode returns raw grpc code of translated error or grpcCodes.Unknown
func TransportErrorCode(err error) grpcCodes.Code {
	if te, ok := xerrors.TransportError(err); ok {
		return te.Code()
	}

	return grpcCodes.Unknown
}

// TransportErrorDescription returns a translated error with raw code and message
func TransportErrorDescription(err error) Error {
	if te, ok := xerrors.TransportError(err); ok {
		return te
	}

	return nil
}
