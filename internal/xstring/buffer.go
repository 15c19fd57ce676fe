package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{New: func() interface{} {
	return &buffer{}
}}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}

// Buffer returns a pooled buffer, callers must Free it when done.
func Buffer() *buffer {
	val, ok := buffersPool.Get().(*buffer)
	if !ok {
		return &buffer{}
	}

	return val
}
