package xerrors

import (
	"errors"
)

// Is reports whether err matches any of targets
func Is(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// sdkError is an error produced by the client itself, not by vtgate or grpc
type sdkError struct {
	err error
}

func (e *sdkError) Error() string {
	return e.err.Error()
}

func (e *sdkError) Unwrap() error {
	return e.err
}

// Wrap marks err as produced by the client itself.
func Wrap(err error) error {
	return &sdkError{err: err}
}

// IsSDK reports whether err was produced by the client and not by the transport.
func IsSDK(err error) bool {
	var e *sdkError

	return errors.As(err, &e)
}
