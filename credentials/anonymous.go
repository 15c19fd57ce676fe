package credentials

import (
	"context"
	"fmt"

	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
)

var _ fmt.Stringer = (*Anonymous)(nil)

// Anonymous implements Credentials interface with Anonymous access
type Anonymous struct {
	sourceInfo string
}

func NewAnonymousCredentials(opts ...Option) *Anonymous {
	options := optionsHolder{
		sourceInfo: stack.Record(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	return &Anonymous{
		sourceInfo: options.sourceInfo,
	}
}

func (c Anonymous) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return nil, nil
}

func (c Anonymous) RequireTransportSecurity() bool {
	return false
}

func (c Anonymous) String() string {
	return fmt.Sprintf("Anonymous{From:%q}", c.sourceInfo)
}
