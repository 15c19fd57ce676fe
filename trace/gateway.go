package trace

import (
	"context"
)

type (
	// Gateway specified trace of vtgate client activity.
	Gateway struct {
		OnDial        func(GatewayDialStartInfo) func(GatewayDialDoneInfo)
		OnClose       func(GatewayCloseStartInfo) func(GatewayCloseDoneInfo)
		OnInvoke      func(GatewayInvokeStartInfo) func(GatewayInvokeDoneInfo)
		OnBegin       func(GatewayBeginStartInfo) func(GatewayBeginDoneInfo)
		OnCommit      func(GatewayCommitStartInfo) func(GatewayCommitDoneInfo)
		OnRollback    func(GatewayRollbackStartInfo) func(GatewayRollbackDoneInfo)
		OnNewStream   func(GatewayNewStreamStartInfo) func(GatewayNewStreamDoneInfo)
		OnStreamRecv  func(GatewayStreamRecvStartInfo) func(GatewayStreamRecvDoneInfo)
		OnStreamClose func(GatewayStreamCloseStartInfo) func(GatewayStreamCloseDoneInfo)
	}

	GatewayDialStartInfo struct {
		// Context make available context in trace callback function.
		// Pointer to context provide replacement of context in trace callback function.
		// Warning: concurrent access to pointer on client side must be excluded.
		// Safe replacement of context are provided only inside callback function
		Context  *context.Context
		Call     call
		Endpoint string
	}
	GatewayDialDoneInfo struct {
		Error error
	}
	GatewayCloseStartInfo struct {
		Context  *context.Context
		Call     call
		Endpoint string
	}
	GatewayCloseDoneInfo struct {
		Error error
	}
	GatewayInvokeStartInfo struct {
		Context *context.Context
		Call    call
		Method  string
	}
	GatewayInvokeDoneInfo struct {
		Error error
	}
	GatewayBeginStartInfo struct {
		Context *context.Context
		Call    call
	}
	GatewayBeginDoneInfo struct {
		Error error
	}
	GatewayCommitStartInfo struct {
		Context *context.Context
		Call    call
	}
	GatewayCommitDoneInfo struct {
		Error error
	}
	GatewayRollbackStartInfo struct {
		Context *context.Context
		Call    call
	}
	GatewayRollbackDoneInfo struct {
		Error error
	}
	GatewayNewStreamStartInfo struct {
		Context *context.Context
		Call    call
		Method  string
	}
	GatewayNewStreamDoneInfo struct {
		// Empty is true when the stream finished successfully without items
		Empty bool
		Error error
	}
	GatewayStreamRecvStartInfo struct {
		Context *context.Context
		Call    call
		Method  string
	}
	GatewayStreamRecvDoneInfo struct {
		// Error is io.EOF at the successful end of stream
		Error error
	}
	GatewayStreamCloseStartInfo struct {
		Context *context.Context
		Call    call
		Method  string
	}
	GatewayStreamCloseDoneInfo struct {
		Received int
	}
)
