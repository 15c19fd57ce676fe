package vtgate

import (
	"github.com/vtgate-go/vtgate-go-sdk/internal/gateway"
)

// Stream is a server stream of vtgate responses.
//
// The first response is received when the stream opens. Next returns the
// responses one by one and io.EOF after the last one.
type Stream[T any] = gateway.Stream[T]
