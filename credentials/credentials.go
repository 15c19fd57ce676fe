// Package credentials provides per-call authentication for vtgate connections.
package credentials

import (
	"google.golang.org/grpc/credentials"
)

// Credentials is an interface of vtgate credentials attached to every call
type Credentials interface {
	credentials.PerRPCCredentials
}

var (
	_ Credentials = (*Static)(nil)
	_ Credentials = (*Anonymous)(nil)
	_ Credentials = (*AccessToken)(nil)
	_ Credentials = (*JWT)(nil)
)

type optionsHolder struct {
	sourceInfo string
}

type Option func(h *optionsHolder)

// WithSourceInfo option append to credentials object the source info for reporting source info details on error case
func WithSourceInfo(sourceInfo string) Option {
	return func(h *optionsHolder) {
		h.sourceInfo = sourceInfo
	}
}
