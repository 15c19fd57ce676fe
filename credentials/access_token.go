package credentials

import (
	"context"
	"fmt"

	"github.com/vtgate-go/vtgate-go-sdk/internal/secret"
	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
)

const authorizationMetadataKey = "authorization"

var _ fmt.Stringer = (*AccessToken)(nil)

// AccessToken sends a bearer token in authorization metadata. Useful when
// vtgate is behind an authenticating proxy.
type AccessToken struct {
	token      string
	sourceInfo string
}

func NewAccessTokenCredentials(token string, opts ...Option) *AccessToken {
	options := optionsHolder{
		sourceInfo: stack.Record(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return &AccessToken{
		token:      token,
		sourceInfo: options.sourceInfo,
	}
}

func (c *AccessToken) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{
		authorizationMetadataKey: "Bearer " + c.token,
	}, nil
}

func (c *AccessToken) RequireTransportSecurity() bool {
	return false
}

func (c *AccessToken) String() string {
	return fmt.Sprintf("AccessToken{Token:%q,From:%q}", secret.Token(c.token), c.sourceInfo)
}
