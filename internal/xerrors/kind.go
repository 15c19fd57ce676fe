package xerrors

import (
	grpcCodes "google.golang.org/grpc/codes"
)

// Kind is the class of a failed gateway call. Every non-OK grpc code
// belongs to exactly one kind.
type Kind uint8

const (
	KindGeneric = Kind(iota)
	KindBadInput
	KindDeadlineExceeded
	KindIntegrity
	KindUnauthenticated
	KindTransient
)

// kinds lists the codes with a dedicated kind, the rest are KindGeneric.
var kinds = map[grpcCodes.Code]Kind{
	grpcCodes.InvalidArgument:  KindBadInput,
	grpcCodes.DeadlineExceeded: KindDeadlineExceeded,
	grpcCodes.AlreadyExists:    KindIntegrity,
	grpcCodes.Unauthenticated:  KindUnauthenticated,
	grpcCodes.Unavailable:      KindTransient,
}

// KindOf returns kind of grpc code. It must not be called with grpcCodes.OK.
func KindOf(code grpcCodes.Code) Kind {
	if k, has := kinds[code]; has {
		return k
	}

	return KindGeneric
}

func (k Kind) String() string {
	switch k {
	case KindBadInput:
		return "bad input"
	case KindDeadlineExceeded:
		return "deadline exceeded"
	case KindIntegrity:
		return "integrity"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindTransient:
		return "transient"
	default:
		return "vtgate"
	}
}

// Error makes Kind usable as errors.Is target
func (k Kind) Error() string {
	return k.String() + " error"
}
