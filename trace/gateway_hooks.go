package trace

import (
	"context"
)

// gatewayComposeOptions is a holder of options
type gatewayComposeOptions struct {
	panicCallback func(e interface{})
}

// GatewayComposeOption specified Gateway compose option
type GatewayComposeOption func(o *gatewayComposeOptions)

// WithGatewayPanicCallback specified behavior on panic
func WithGatewayPanicCallback(cb func(e interface{})) GatewayComposeOption {
	return func(o *gatewayComposeOptions) {
		o.panicCallback = cb
	}
}

// Compose returns a new Gateway which has functional fields composed both from t and x.
func (t *Gateway) Compose(x *Gateway, opts ...GatewayComposeOption) *Gateway {
	if t == nil {
		return x
	}
	if x == nil {
		return t
	}
	var ret Gateway
	options := gatewayComposeOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	{
		h1 := t.OnDial
		h2 := x.OnDial
		ret.OnDial = func(s GatewayDialStartInfo) func(GatewayDialDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayDialDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayDialDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnClose
		h2 := x.OnClose
		ret.OnClose = func(s GatewayCloseStartInfo) func(GatewayCloseDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayCloseDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayCloseDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnInvoke
		h2 := x.OnInvoke
		ret.OnInvoke = func(s GatewayInvokeStartInfo) func(GatewayInvokeDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayInvokeDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayInvokeDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnBegin
		h2 := x.OnBegin
		ret.OnBegin = func(s GatewayBeginStartInfo) func(GatewayBeginDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayBeginDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayBeginDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnCommit
		h2 := x.OnCommit
		ret.OnCommit = func(s GatewayCommitStartInfo) func(GatewayCommitDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayCommitDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayCommitDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnRollback
		h2 := x.OnRollback
		ret.OnRollback = func(s GatewayRollbackStartInfo) func(GatewayRollbackDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayRollbackDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayRollbackDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnNewStream
		h2 := x.OnNewStream
		ret.OnNewStream = func(s GatewayNewStreamStartInfo) func(GatewayNewStreamDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayNewStreamDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayNewStreamDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnStreamRecv
		h2 := x.OnStreamRecv
		ret.OnStreamRecv = func(s GatewayStreamRecvStartInfo) func(GatewayStreamRecvDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayStreamRecvDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayStreamRecvDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}
	{
		h1 := t.OnStreamClose
		h2 := x.OnStreamClose
		ret.OnStreamClose = func(s GatewayStreamCloseStartInfo) func(GatewayStreamCloseDoneInfo) {
			if options.panicCallback != nil {
				defer func() {
					if e := recover(); e != nil {
						options.panicCallback(e)
					}
				}()
			}
			var r, r1 func(GatewayStreamCloseDoneInfo)
			if h1 != nil {
				r = h1(s)
			}
			if h2 != nil {
				r1 = h2(s)
			}

			return func(d GatewayStreamCloseDoneInfo) {
				if options.panicCallback != nil {
					defer func() {
						if e := recover(); e != nil {
							options.panicCallback(e)
						}
					}()
				}
				if r != nil {
					r(d)
				}
				if r1 != nil {
					r1(d)
				}
			}
		}
	}

	return &ret
}

func (t *Gateway) onDial(s GatewayDialStartInfo) func(GatewayDialDoneInfo) {
	if t == nil || t.OnDial == nil {
		return func(GatewayDialDoneInfo) {}
	}
	res := t.OnDial(s)
	if res == nil {
		return func(GatewayDialDoneInfo) {}
	}

	return res
}

func (t *Gateway) onClose(s GatewayCloseStartInfo) func(GatewayCloseDoneInfo) {
	if t == nil || t.OnClose == nil {
		return func(GatewayCloseDoneInfo) {}
	}
	res := t.OnClose(s)
	if res == nil {
		return func(GatewayCloseDoneInfo) {}
	}

	return res
}

func (t *Gateway) onInvoke(s GatewayInvokeStartInfo) func(GatewayInvokeDoneInfo) {
	if t == nil || t.OnInvoke == nil {
		return func(GatewayInvokeDoneInfo) {}
	}
	res := t.OnInvoke(s)
	if res == nil {
		return func(GatewayInvokeDoneInfo) {}
	}

	return res
}

func (t *Gateway) onBegin(s GatewayBeginStartInfo) func(GatewayBeginDoneInfo) {
	if t == nil || t.OnBegin == nil {
		return func(GatewayBeginDoneInfo) {}
	}
	res := t.OnBegin(s)
	if res == nil {
		return func(GatewayBeginDoneInfo) {}
	}

	return res
}

func (t *Gateway) onCommit(s GatewayCommitStartInfo) func(GatewayCommitDoneInfo) {
	if t == nil || t.OnCommit == nil {
		return func(GatewayCommitDoneInfo) {}
	}
	res := t.OnCommit(s)
	if res == nil {
		return func(GatewayCommitDoneInfo) {}
	}

	return res
}

func (t *Gateway) onRollback(s GatewayRollbackStartInfo) func(GatewayRollbackDoneInfo) {
	if t == nil || t.OnRollback == nil {
		return func(GatewayRollbackDoneInfo) {}
	}
	res := t.OnRollback(s)
	if res == nil {
		return func(GatewayRollbackDoneInfo) {}
	}

	return res
}

func (t *Gateway) onNewStream(s GatewayNewStreamStartInfo) func(GatewayNewStreamDoneInfo) {
	if t == nil || t.OnNewStream == nil {
		return func(GatewayNewStreamDoneInfo) {}
	}
	res := t.OnNewStream(s)
	if res == nil {
		return func(GatewayNewStreamDoneInfo) {}
	}

	return res
}

func (t *Gateway) onStreamRecv(s GatewayStreamRecvStartInfo) func(GatewayStreamRecvDoneInfo) {
	if t == nil || t.OnStreamRecv == nil {
		return func(GatewayStreamRecvDoneInfo) {}
	}
	res := t.OnStreamRecv(s)
	if res == nil {
		return func(GatewayStreamRecvDoneInfo) {}
	}

	return res
}

func (t *Gateway) onStreamClose(s GatewayStreamCloseStartInfo) func(GatewayStreamCloseDoneInfo) {
	if t == nil || t.OnStreamClose == nil {
		return func(GatewayStreamCloseDoneInfo) {}
	}
	res := t.OnStreamClose(s)
	if res == nil {
		return func(GatewayStreamCloseDoneInfo) {}
	}

	return res
}

func GatewayOnDial(t *Gateway, c *context.Context, call call, endpoint string) func(e error) {
	var p GatewayDialStartInfo
	p.Context = c
	p.Call = call
	p.Endpoint = endpoint
	res := t.onDial(p)

	return func(e error) {
		var p GatewayDialDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnClose(t *Gateway, c *context.Context, call call, endpoint string) func(e error) {
	var p GatewayCloseStartInfo
	p.Context = c
	p.Call = call
	p.Endpoint = endpoint
	res := t.onClose(p)

	return func(e error) {
		var p GatewayCloseDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnInvoke(t *Gateway, c *context.Context, call call, method string) func(e error) {
	var p GatewayInvokeStartInfo
	p.Context = c
	p.Call = call
	p.Method = method
	res := t.onInvoke(p)

	return func(e error) {
		var p GatewayInvokeDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnBegin(t *Gateway, c *context.Context, call call) func(e error) {
	var p GatewayBeginStartInfo
	p.Context = c
	p.Call = call
	res := t.onBegin(p)

	return func(e error) {
		var p GatewayBeginDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnCommit(t *Gateway, c *context.Context, call call) func(e error) {
	var p GatewayCommitStartInfo
	p.Context = c
	p.Call = call
	res := t.onCommit(p)

	return func(e error) {
		var p GatewayCommitDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnRollback(t *Gateway, c *context.Context, call call) func(e error) {
	var p GatewayRollbackStartInfo
	p.Context = c
	p.Call = call
	res := t.onRollback(p)

	return func(e error) {
		var p GatewayRollbackDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnNewStream(t *Gateway, c *context.Context, call call, method string) func(empty bool, e error) {
	var p GatewayNewStreamStartInfo
	p.Context = c
	p.Call = call
	p.Method = method
	res := t.onNewStream(p)

	return func(empty bool, e error) {
		var p GatewayNewStreamDoneInfo
		p.Empty = empty
		p.Error = e
		res(p)
	}
}

func GatewayOnStreamRecv(t *Gateway, c *context.Context, call call, method string) func(e error) {
	var p GatewayStreamRecvStartInfo
	p.Context = c
	p.Call = call
	p.Method = method
	res := t.onStreamRecv(p)

	return func(e error) {
		var p GatewayStreamRecvDoneInfo
		p.Error = e
		res(p)
	}
}

func GatewayOnStreamClose(t *Gateway, c *context.Context, call call, method string) func(received int) {
	var p GatewayStreamCloseStartInfo
	p.Context = c
	p.Call = call
	p.Method = method
	res := t.onStreamClose(p)

	return func(received int) {
		var p GatewayStreamCloseDoneInfo
		p.Received = received
		res(p)
	}
}
