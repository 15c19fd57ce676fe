package gateway

import (
	"context"
	"errors"
	"io"
	"sync"

	"google.golang.org/grpc"

	"github.com/vtgate-go/vtgate-go-sdk/internal/gateway/config"
	"github.com/vtgate-go/vtgate-go-sdk/internal/stack"
	"github.com/vtgate-go/vtgate-go-sdk/internal/xerrors"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgatepb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgateservicepb"
	"github.com/vtgate-go/vtgate-go-sdk/trace"
)

//nolint:gofumpt
//nolint:nolintlint
var errNilClient = xerrors.Wrap(errors.New("gateway client is not initialized"))

// Client forwards calls to the vtgateservice.Vitess service.
// Requests are passed to the service as is and responses are returned as is,
// errors are translated into transport errors with kinds.
type Client struct {
	config  *config.Config
	service vtgateservicepb.VitessClient

	closer    io.Closer
	closeOnce sync.Once
	closeErr  error
}

// New makes gateway client over cc. If cc is an io.Closer it is closed by Client.Close.
func New(cc grpc.ClientConnInterface, config *config.Config) *Client {
	c := &Client{
		config:  config,
		service: vtgateservicepb.NewVitessClient(cc),
	}
	if closer, ok := cc.(io.Closer); ok {
		c.closer = closer
	}

	return c
}

func newWithService(service vtgateservicepb.VitessClient, config *config.Config) *Client {
	return &Client{
		config:  config,
		service: service,
	}
}

func (c *Client) Endpoint() string {
	return c.config.Endpoint()
}

// Close closes the underlying connection once, later calls return the first result.
func (c *Client) Close(ctx context.Context) (finalErr error) {
	if c == nil {
		return xerrors.WithStackTrace(errNilClient)
	}
	c.closeOnce.Do(func() {
		onDone := trace.GatewayOnClose(c.config.Trace(), &ctx,
			stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Close"),
			c.config.Endpoint(),
		)
		if c.closer != nil {
			c.closeErr = xerrors.WithStackTrace(c.closer.Close())
		}
		onDone(c.closeErr)
	})

	return c.closeErr
}

// wrapError translates grpc error of method into transport error with kind.
func (c *Client) wrapError(err error, method string) error {
	return xerrors.WithStackTrace(
		xerrors.FromGRPCError(err,
			xerrors.WithMethod(method),
			xerrors.WithAddress(c.config.Endpoint()),
		),
		xerrors.WithSkipDepth(1),
	)
}

// Execute runs a query routed by vtgate itself.
func (c *Client) Execute(
	ctx context.Context, request *vtgatepb.ExecuteRequest,
) (_ *vtgatepb.ExecuteResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Execute"),
		vtgateservicepb.Vitess_Execute_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.Execute(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_Execute_FullMethodName)
	}

	return response, nil
}

// ExecuteShards runs a query on the listed shards of a keyspace.
func (c *Client) ExecuteShards(
	ctx context.Context, request *vtgatepb.ExecuteShardsRequest,
) (_ *vtgatepb.ExecuteShardsResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteShards"),
		vtgateservicepb.Vitess_ExecuteShards_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteShards(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteShards_FullMethodName)
	}

	return response, nil
}

// ExecuteKeyspaceIds runs a query on the shards owning the keyspace ids.
func (c *Client) ExecuteKeyspaceIds(
	ctx context.Context, request *vtgatepb.ExecuteKeyspaceIdsRequest,
) (_ *vtgatepb.ExecuteKeyspaceIdsResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteKeyspaceIds"),
		vtgateservicepb.Vitess_ExecuteKeyspaceIds_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteKeyspaceIds(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteKeyspaceIds_FullMethodName)
	}

	return response, nil
}

// ExecuteKeyRanges runs a query on the shards covering the key ranges.
func (c *Client) ExecuteKeyRanges(
	ctx context.Context, request *vtgatepb.ExecuteKeyRangesRequest,
) (_ *vtgatepb.ExecuteKeyRangesResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteKeyRanges"),
		vtgateservicepb.Vitess_ExecuteKeyRanges_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteKeyRanges(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteKeyRanges_FullMethodName)
	}

	return response, nil
}

// ExecuteEntityIds runs a query on the shards owning the entity ids.
func (c *Client) ExecuteEntityIds(
	ctx context.Context, request *vtgatepb.ExecuteEntityIdsRequest,
) (_ *vtgatepb.ExecuteEntityIdsResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteEntityIds"),
		vtgateservicepb.Vitess_ExecuteEntityIds_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteEntityIds(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteEntityIds_FullMethodName)
	}

	return response, nil
}

// ExecuteBatchShards runs a list of queries on explicitly listed shards.
func (c *Client) ExecuteBatchShards(
	ctx context.Context, request *vtgatepb.ExecuteBatchShardsRequest,
) (_ *vtgatepb.ExecuteBatchShardsResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteBatchShards"),
		vtgateservicepb.Vitess_ExecuteBatchShards_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteBatchShards(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteBatchShards_FullMethodName)
	}

	return response, nil
}

// ExecuteBatchKeyspaceIds runs a list of queries routed by keyspace ids.
func (c *Client) ExecuteBatchKeyspaceIds(
	ctx context.Context, request *vtgatepb.ExecuteBatchKeyspaceIdsRequest,
) (_ *vtgatepb.ExecuteBatchKeyspaceIdsResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).ExecuteBatchKeyspaceIds"),
		vtgateservicepb.Vitess_ExecuteBatchKeyspaceIds_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.ExecuteBatchKeyspaceIds(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_ExecuteBatchKeyspaceIds_FullMethodName)
	}

	return response, nil
}

// GetSrvKeyspace returns the serving graph of keyspace.
func (c *Client) GetSrvKeyspace(
	ctx context.Context, request *vtgatepb.GetSrvKeyspaceRequest,
) (_ *vtgatepb.GetSrvKeyspaceResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).GetSrvKeyspace"),
		vtgateservicepb.Vitess_GetSrvKeyspace_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.GetSrvKeyspace(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_GetSrvKeyspace_FullMethodName)
	}

	return response, nil
}

// SplitQuery splits a query into parts which can be run in parallel.
func (c *Client) SplitQuery(
	ctx context.Context, request *vtgatepb.SplitQueryRequest,
) (_ *vtgatepb.SplitQueryResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnInvoke(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).SplitQuery"),
		vtgateservicepb.Vitess_SplitQuery_FullMethodName,
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.SplitQuery(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_SplitQuery_FullMethodName)
	}

	return response, nil
}

// Begin starts a transaction, the response carries the session to pass to later calls.
func (c *Client) Begin(
	ctx context.Context, request *vtgatepb.BeginRequest,
) (_ *vtgatepb.BeginResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnBegin(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Begin"),
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.Begin(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_Begin_FullMethodName)
	}

	return response, nil
}

// Commit commits the transaction of the session.
func (c *Client) Commit(
	ctx context.Context, request *vtgatepb.CommitRequest,
) (_ *vtgatepb.CommitResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnCommit(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Commit"),
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.Commit(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_Commit_FullMethodName)
	}

	return response, nil
}

// Rollback rolls back the transaction of the session.
func (c *Client) Rollback(
	ctx context.Context, request *vtgatepb.RollbackRequest,
) (_ *vtgatepb.RollbackResponse, finalErr error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}
	onDone := trace.GatewayOnRollback(c.config.Trace(), &ctx,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Rollback"),
	)
	defer func() {
		onDone(finalErr)
	}()

	response, err := c.service.Rollback(ctx, request, c.config.CallOptions()...)
	if err != nil {
		return nil, c.wrapError(err, vtgateservicepb.Vitess_Rollback_FullMethodName)
	}

	return response, nil
}

// StreamExecute opens a server stream of query results. The first item is
// received before return, so failure to start the query is returned here.
func (c *Client) StreamExecute(
	ctx context.Context, request *vtgatepb.StreamExecuteRequest,
) (*Stream[*vtgatepb.StreamExecuteResponse], error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}

	return newStream(ctx, c,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).StreamExecute"),
		vtgateservicepb.Vitess_StreamExecute_FullMethodName,
		func(ctx context.Context) (receiver[*vtgatepb.StreamExecuteResponse], error) {
			return c.service.StreamExecute(ctx, request, c.config.CallOptions()...)
		},
	)
}

// StreamExecuteShards is StreamExecute on explicitly listed shards.
func (c *Client) StreamExecuteShards(
	ctx context.Context, request *vtgatepb.StreamExecuteShardsRequest,
) (*Stream[*vtgatepb.StreamExecuteShardsResponse], error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}

	return newStream(ctx, c,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).StreamExecuteShards"),
		vtgateservicepb.Vitess_StreamExecuteShards_FullMethodName,
		func(ctx context.Context) (receiver[*vtgatepb.StreamExecuteShardsResponse], error) {
			return c.service.StreamExecuteShards(ctx, request, c.config.CallOptions()...)
		},
	)
}

// StreamExecuteKeyspaceIds is StreamExecute routed by keyspace ids.
func (c *Client) StreamExecuteKeyspaceIds(
	ctx context.Context, request *vtgatepb.StreamExecuteKeyspaceIdsRequest,
) (*Stream[*vtgatepb.StreamExecuteKeyspaceIdsResponse], error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}

	return newStream(ctx, c,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).StreamExecuteKeyspaceIds"),
		vtgateservicepb.Vitess_StreamExecuteKeyspaceIds_FullMethodName,
		func(ctx context.Context) (receiver[*vtgatepb.StreamExecuteKeyspaceIdsResponse], error) {
			return c.service.StreamExecuteKeyspaceIds(ctx, request, c.config.CallOptions()...)
		},
	)
}

// StreamExecuteKeyRanges is StreamExecute routed by key ranges.
func (c *Client) StreamExecuteKeyRanges(
	ctx context.Context, request *vtgatepb.StreamExecuteKeyRangesRequest,
) (*Stream[*vtgatepb.StreamExecuteKeyRangesResponse], error) {
	if c == nil {
		return nil, xerrors.WithStackTrace(errNilClient)
	}

	return newStream(ctx, c,
		stack.FunctionID("github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).StreamExecuteKeyRanges"),
		vtgateservicepb.Vitess_StreamExecuteKeyRanges_FullMethodName,
		func(ctx context.Context) (receiver[*vtgatepb.StreamExecuteKeyRangesResponse], error) {
			return c.service.StreamExecuteKeyRanges(ctx, request, c.config.CallOptions()...)
		},
	)
}
