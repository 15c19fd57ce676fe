package credentials

import (
	"context"
	"fmt"

	"github.com/vtgate-go/vtgate-go-sdk/internal/secret"
	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
)

const (
	usernameMetadataKey = "username"
	passwordMetadataKey = "password"
)

var _ fmt.Stringer = (*Static)(nil)

// Static implements vtgate static authentication: user and password are sent
// as call metadata and checked by vtgate against its static auth file.
type Static struct {
	user       string
	password   string
	sourceInfo string
}

func NewStaticCredentials(user, password string, opts ...Option) *Static {
	options := optionsHolder{
		sourceInfo: stack.Record(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return &Static{
		user:       user,
		password:   password,
		sourceInfo: options.sourceInfo,
	}
}

func (c *Static) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{
		usernameMetadataKey: c.user,
		passwordMetadataKey: c.password,
	}, nil
}

// RequireTransportSecurity is false: vtgate accepts static auth over plaintext connections.
func (c *Static) RequireTransportSecurity() bool {
	return false
}

func (c *Static) String() string {
	return fmt.Sprintf("Static{User:%q,Password:%q,From:%q}", c.user, secret.Password(c.password), c.sourceInfo)
}
