package log

import (
	"github.com/vtgate-go/vtgate-go-sdk/internal/kv"
)

// Field is a typed key-value of log event, constructors live in internal/kv
type Field = kv.KeyValue
