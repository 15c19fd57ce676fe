// Package vtgateservicepb is the client stub and server registration of the
// vtgateservice.Vitess gRPC service.
package vtgateservicepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vtgate-go/vtgate-go-sdk/proto/vtgatepb"
)

const ServiceName = "vtgateservice.Vitess"

const (
	Vitess_Execute_FullMethodName                  = "/vtgateservice.Vitess/Execute"
	Vitess_ExecuteShards_FullMethodName            = "/vtgateservice.Vitess/ExecuteShards"
	Vitess_ExecuteKeyspaceIds_FullMethodName       = "/vtgateservice.Vitess/ExecuteKeyspaceIds"
	Vitess_ExecuteKeyRanges_FullMethodName         = "/vtgateservice.Vitess/ExecuteKeyRanges"
	Vitess_ExecuteEntityIds_FullMethodName         = "/vtgateservice.Vitess/ExecuteEntityIds"
	Vitess_ExecuteBatchShards_FullMethodName       = "/vtgateservice.Vitess/ExecuteBatchShards"
	Vitess_ExecuteBatchKeyspaceIds_FullMethodName  = "/vtgateservice.Vitess/ExecuteBatchKeyspaceIds"
	Vitess_Begin_FullMethodName                    = "/vtgateservice.Vitess/Begin"
	Vitess_Commit_FullMethodName                   = "/vtgateservice.Vitess/Commit"
	Vitess_Rollback_FullMethodName                 = "/vtgateservice.Vitess/Rollback"
	Vitess_GetSrvKeyspace_FullMethodName           = "/vtgateservice.Vitess/GetSrvKeyspace"
	Vitess_SplitQuery_FullMethodName               = "/vtgateservice.Vitess/SplitQuery"
	Vitess_StreamExecute_FullMethodName            = "/vtgateservice.Vitess/StreamExecute"
	Vitess_StreamExecuteShards_FullMethodName      = "/vtgateservice.Vitess/StreamExecuteShards"
	Vitess_StreamExecuteKeyspaceIds_FullMethodName = "/vtgateservice.Vitess/StreamExecuteKeyspaceIds"
	Vitess_StreamExecuteKeyRanges_FullMethodName   = "/vtgateservice.Vitess/StreamExecuteKeyRanges"
)

// VitessClient is the client API for the vtgateservice.Vitess service.
type VitessClient interface {
	Execute(ctx context.Context, in *vtgatepb.ExecuteRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteResponse, error)
	ExecuteShards(ctx context.Context, in *vtgatepb.ExecuteShardsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteShardsResponse, error)
	ExecuteKeyspaceIds(ctx context.Context, in *vtgatepb.ExecuteKeyspaceIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteKeyspaceIdsResponse, error)
	ExecuteKeyRanges(ctx context.Context, in *vtgatepb.ExecuteKeyRangesRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteKeyRangesResponse, error)
	ExecuteEntityIds(ctx context.Context, in *vtgatepb.ExecuteEntityIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteEntityIdsResponse, error)
	ExecuteBatchShards(ctx context.Context, in *vtgatepb.ExecuteBatchShardsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteBatchShardsResponse, error)
	ExecuteBatchKeyspaceIds(ctx context.Context, in *vtgatepb.ExecuteBatchKeyspaceIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteBatchKeyspaceIdsResponse, error)
	Begin(ctx context.Context, in *vtgatepb.BeginRequest, opts ...grpc.CallOption) (*vtgatepb.BeginResponse, error)
	Commit(ctx context.Context, in *vtgatepb.CommitRequest, opts ...grpc.CallOption) (*vtgatepb.CommitResponse, error)
	Rollback(ctx context.Context, in *vtgatepb.RollbackRequest, opts ...grpc.CallOption) (*vtgatepb.RollbackResponse, error)
	GetSrvKeyspace(ctx context.Context, in *vtgatepb.GetSrvKeyspaceRequest, opts ...grpc.CallOption) (*vtgatepb.GetSrvKeyspaceResponse, error)
	SplitQuery(ctx context.Context, in *vtgatepb.SplitQueryRequest, opts ...grpc.CallOption) (*vtgatepb.SplitQueryResponse, error)
	StreamExecute(ctx context.Context, in *vtgatepb.StreamExecuteRequest, opts ...grpc.CallOption) (Vitess_StreamExecuteClient, error)
	StreamExecuteShards(ctx context.Context, in *vtgatepb.StreamExecuteShardsRequest, opts ...grpc.CallOption) (Vitess_StreamExecuteShardsClient, error)
	StreamExecuteKeyspaceIds(ctx context.Context, in *vtgatepb.StreamExecuteKeyspaceIdsRequest, opts ...grpc.CallOption) (Vitess_StreamExecuteKeyspaceIdsClient, error)
	StreamExecuteKeyRanges(ctx context.Context, in *vtgatepb.StreamExecuteKeyRangesRequest, opts ...grpc.CallOption) (Vitess_StreamExecuteKeyRangesClient, error)
}

type vitessClient struct {
	cc grpc.ClientConnInterface
}

func NewVitessClient(cc grpc.ClientConnInterface) VitessClient {
	return &vitessClient{cc}
}

func (c *vitessClient) Execute(
	ctx context.Context, in *vtgatepb.ExecuteRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteResponse, error) {
	out := new(vtgatepb.ExecuteResponse)
	if err := c.cc.Invoke(ctx, Vitess_Execute_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteShards(
	ctx context.Context, in *vtgatepb.ExecuteShardsRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteShardsResponse, error) {
	out := new(vtgatepb.ExecuteShardsResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteShards_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteKeyspaceIds(
	ctx context.Context, in *vtgatepb.ExecuteKeyspaceIdsRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteKeyspaceIdsResponse, error) {
	out := new(vtgatepb.ExecuteKeyspaceIdsResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteKeyspaceIds_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteKeyRanges(
	ctx context.Context, in *vtgatepb.ExecuteKeyRangesRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteKeyRangesResponse, error) {
	out := new(vtgatepb.ExecuteKeyRangesResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteKeyRanges_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteEntityIds(
	ctx context.Context, in *vtgatepb.ExecuteEntityIdsRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteEntityIdsResponse, error) {
	out := new(vtgatepb.ExecuteEntityIdsResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteEntityIds_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteBatchShards(
	ctx context.Context, in *vtgatepb.ExecuteBatchShardsRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteBatchShardsResponse, error) {
	out := new(vtgatepb.ExecuteBatchShardsResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteBatchShards_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) ExecuteBatchKeyspaceIds(
	ctx context.Context, in *vtgatepb.ExecuteBatchKeyspaceIdsRequest, opts ...grpc.CallOption,
) (*vtgatepb.ExecuteBatchKeyspaceIdsResponse, error) {
	out := new(vtgatepb.ExecuteBatchKeyspaceIdsResponse)
	if err := c.cc.Invoke(ctx, Vitess_ExecuteBatchKeyspaceIds_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) Begin(
	ctx context.Context, in *vtgatepb.BeginRequest, opts ...grpc.CallOption,
) (*vtgatepb.BeginResponse, error) {
	out := new(vtgatepb.BeginResponse)
	if err := c.cc.Invoke(ctx, Vitess_Begin_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) Commit(
	ctx context.Context, in *vtgatepb.CommitRequest, opts ...grpc.CallOption,
) (*vtgatepb.CommitResponse, error) {
	out := new(vtgatepb.CommitResponse)
	if err := c.cc.Invoke(ctx, Vitess_Commit_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) Rollback(
	ctx context.Context, in *vtgatepb.RollbackRequest, opts ...grpc.CallOption,
) (*vtgatepb.RollbackResponse, error) {
	out := new(vtgatepb.RollbackResponse)
	if err := c.cc.Invoke(ctx, Vitess_Rollback_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) GetSrvKeyspace(
	ctx context.Context, in *vtgatepb.GetSrvKeyspaceRequest, opts ...grpc.CallOption,
) (*vtgatepb.GetSrvKeyspaceResponse, error) {
	out := new(vtgatepb.GetSrvKeyspaceResponse)
	if err := c.cc.Invoke(ctx, Vitess_GetSrvKeyspace_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) SplitQuery(
	ctx context.Context, in *vtgatepb.SplitQueryRequest, opts ...grpc.CallOption,
) (*vtgatepb.SplitQueryResponse, error) {
	out := new(vtgatepb.SplitQueryResponse)
	if err := c.cc.Invoke(ctx, Vitess_SplitQuery_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *vitessClient) StreamExecute(
	ctx context.Context, in *vtgatepb.StreamExecuteRequest, opts ...grpc.CallOption,
) (Vitess_StreamExecuteClient, error) {
	stream, err := c.cc.NewStream(ctx, &Vitess_ServiceDesc.Streams[0], Vitess_StreamExecute_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &vitessStreamExecuteClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

type Vitess_StreamExecuteClient interface {
	Recv() (*vtgatepb.StreamExecuteResponse, error)
	grpc.ClientStream
}

type vitessStreamExecuteClient struct {
	grpc.ClientStream
}

func (x *vitessStreamExecuteClient) Recv() (*vtgatepb.StreamExecuteResponse, error) {
	m := new(vtgatepb.StreamExecuteResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (c *vitessClient) StreamExecuteShards(
	ctx context.Context, in *vtgatepb.StreamExecuteShardsRequest, opts ...grpc.CallOption,
) (Vitess_StreamExecuteShardsClient, error) {
	stream, err := c.cc.NewStream(ctx, &Vitess_ServiceDesc.Streams[1], Vitess_StreamExecuteShards_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &vitessStreamExecuteShardsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

type Vitess_StreamExecuteShardsClient interface {
	Recv() (*vtgatepb.StreamExecuteShardsResponse, error)
	grpc.ClientStream
}

type vitessStreamExecuteShardsClient struct {
	grpc.ClientStream
}

func (x *vitessStreamExecuteShardsClient) Recv() (*vtgatepb.StreamExecuteShardsResponse, error) {
	m := new(vtgatepb.StreamExecuteShardsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (c *vitessClient) StreamExecuteKeyspaceIds(
	ctx context.Context, in *vtgatepb.StreamExecuteKeyspaceIdsRequest, opts ...grpc.CallOption,
) (Vitess_StreamExecuteKeyspaceIdsClient, error) {
	stream, err := c.cc.NewStream(ctx, &Vitess_ServiceDesc.Streams[2], Vitess_StreamExecuteKeyspaceIds_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &vitessStreamExecuteKeyspaceIdsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

type Vitess_StreamExecuteKeyspaceIdsClient interface {
	Recv() (*vtgatepb.StreamExecuteKeyspaceIdsResponse, error)
	grpc.ClientStream
}

type vitessStreamExecuteKeyspaceIdsClient struct {
	grpc.ClientStream
}

func (x *vitessStreamExecuteKeyspaceIdsClient) Recv() (*vtgatepb.StreamExecuteKeyspaceIdsResponse, error) {
	m := new(vtgatepb.StreamExecuteKeyspaceIdsResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (c *vitessClient) StreamExecuteKeyRanges(
	ctx context.Context, in *vtgatepb.StreamExecuteKeyRangesRequest, opts ...grpc.CallOption,
) (Vitess_StreamExecuteKeyRangesClient, error) {
	stream, err := c.cc.NewStream(ctx, &Vitess_ServiceDesc.Streams[3], Vitess_StreamExecuteKeyRanges_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &vitessStreamExecuteKeyRangesClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}

	return x, nil
}

type Vitess_StreamExecuteKeyRangesClient interface {
	Recv() (*vtgatepb.StreamExecuteKeyRangesResponse, error)
	grpc.ClientStream
}

type vitessStreamExecuteKeyRangesClient struct {
	grpc.ClientStream
}

func (x *vitessStreamExecuteKeyRangesClient) Recv() (*vtgatepb.StreamExecuteKeyRangesResponse, error) {
	m := new(vtgatepb.StreamExecuteKeyRangesResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}

	return m, nil
}

// VitessServer is the server API for the vtgateservice.Vitess service.
type VitessServer interface {
	Execute(context.Context, *vtgatepb.ExecuteRequest) (*vtgatepb.ExecuteResponse, error)
	ExecuteShards(context.Context, *vtgatepb.ExecuteShardsRequest) (*vtgatepb.ExecuteShardsResponse, error)
	ExecuteKeyspaceIds(context.Context, *vtgatepb.ExecuteKeyspaceIdsRequest) (*vtgatepb.ExecuteKeyspaceIdsResponse, error)
	ExecuteKeyRanges(context.Context, *vtgatepb.ExecuteKeyRangesRequest) (*vtgatepb.ExecuteKeyRangesResponse, error)
	ExecuteEntityIds(context.Context, *vtgatepb.ExecuteEntityIdsRequest) (*vtgatepb.ExecuteEntityIdsResponse, error)
	ExecuteBatchShards(context.Context, *vtgatepb.ExecuteBatchShardsRequest) (*vtgatepb.ExecuteBatchShardsResponse, error)
	ExecuteBatchKeyspaceIds(context.Context, *vtgatepb.ExecuteBatchKeyspaceIdsRequest) (*vtgatepb.ExecuteBatchKeyspaceIdsResponse, error)
	Begin(context.Context, *vtgatepb.BeginRequest) (*vtgatepb.BeginResponse, error)
	Commit(context.Context, *vtgatepb.CommitRequest) (*vtgatepb.CommitResponse, error)
	Rollback(context.Context, *vtgatepb.RollbackRequest) (*vtgatepb.RollbackResponse, error)
	GetSrvKeyspace(context.Context, *vtgatepb.GetSrvKeyspaceRequest) (*vtgatepb.GetSrvKeyspaceResponse, error)
	SplitQuery(context.Context, *vtgatepb.SplitQueryRequest) (*vtgatepb.SplitQueryResponse, error)
	StreamExecute(*vtgatepb.StreamExecuteRequest, Vitess_StreamExecuteServer) error
	StreamExecuteShards(*vtgatepb.StreamExecuteShardsRequest, Vitess_StreamExecuteShardsServer) error
	StreamExecuteKeyspaceIds(*vtgatepb.StreamExecuteKeyspaceIdsRequest, Vitess_StreamExecuteKeyspaceIdsServer) error
	StreamExecuteKeyRanges(*vtgatepb.StreamExecuteKeyRangesRequest, Vitess_StreamExecuteKeyRangesServer) error
}

// UnimplementedVitessServer answers every call with codes.Unimplemented.
// Embed it to implement only a subset of the service.
type UnimplementedVitessServer struct{}

func (UnimplementedVitessServer) Execute(context.Context, *vtgatepb.ExecuteRequest) (*vtgatepb.ExecuteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Execute not implemented")
}

func (UnimplementedVitessServer) ExecuteShards(context.Context, *vtgatepb.ExecuteShardsRequest) (*vtgatepb.ExecuteShardsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteShards not implemented")
}

func (UnimplementedVitessServer) ExecuteKeyspaceIds(context.Context, *vtgatepb.ExecuteKeyspaceIdsRequest) (*vtgatepb.ExecuteKeyspaceIdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteKeyspaceIds not implemented")
}

func (UnimplementedVitessServer) ExecuteKeyRanges(context.Context, *vtgatepb.ExecuteKeyRangesRequest) (*vtgatepb.ExecuteKeyRangesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteKeyRanges not implemented")
}

func (UnimplementedVitessServer) ExecuteEntityIds(context.Context, *vtgatepb.ExecuteEntityIdsRequest) (*vtgatepb.ExecuteEntityIdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteEntityIds not implemented")
}

func (UnimplementedVitessServer) ExecuteBatchShards(context.Context, *vtgatepb.ExecuteBatchShardsRequest) (*vtgatepb.ExecuteBatchShardsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteBatchShards not implemented")
}

func (UnimplementedVitessServer) ExecuteBatchKeyspaceIds(context.Context, *vtgatepb.ExecuteBatchKeyspaceIdsRequest) (*vtgatepb.ExecuteBatchKeyspaceIdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteBatchKeyspaceIds not implemented")
}

func (UnimplementedVitessServer) Begin(context.Context, *vtgatepb.BeginRequest) (*vtgatepb.BeginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Begin not implemented")
}

func (UnimplementedVitessServer) Commit(context.Context, *vtgatepb.CommitRequest) (*vtgatepb.CommitResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Commit not implemented")
}

func (UnimplementedVitessServer) Rollback(context.Context, *vtgatepb.RollbackRequest) (*vtgatepb.RollbackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Rollback not implemented")
}

func (UnimplementedVitessServer) GetSrvKeyspace(context.Context, *vtgatepb.GetSrvKeyspaceRequest) (*vtgatepb.GetSrvKeyspaceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSrvKeyspace not implemented")
}

func (UnimplementedVitessServer) SplitQuery(context.Context, *vtgatepb.SplitQueryRequest) (*vtgatepb.SplitQueryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SplitQuery not implemented")
}

func (UnimplementedVitessServer) StreamExecute(*vtgatepb.StreamExecuteRequest, Vitess_StreamExecuteServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamExecute not implemented")
}

func (UnimplementedVitessServer) StreamExecuteShards(*vtgatepb.StreamExecuteShardsRequest, Vitess_StreamExecuteShardsServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamExecuteShards not implemented")
}

func (UnimplementedVitessServer) StreamExecuteKeyspaceIds(*vtgatepb.StreamExecuteKeyspaceIdsRequest, Vitess_StreamExecuteKeyspaceIdsServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamExecuteKeyspaceIds not implemented")
}

func (UnimplementedVitessServer) StreamExecuteKeyRanges(*vtgatepb.StreamExecuteKeyRangesRequest, Vitess_StreamExecuteKeyRangesServer) error {
	return status.Errorf(codes.Unimplemented, "method StreamExecuteKeyRanges not implemented")
}

func RegisterVitessServer(s grpc.ServiceRegistrar, srv VitessServer) {
	s.RegisterService(&Vitess_ServiceDesc, srv)
}

func _Vitess_Execute_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).Execute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_Execute_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).Execute(ctx, req.(*vtgatepb.ExecuteRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteShards_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteShardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteShards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteShards_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteShards(ctx, req.(*vtgatepb.ExecuteShardsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteKeyspaceIds_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteKeyspaceIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteKeyspaceIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteKeyspaceIds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteKeyspaceIds(ctx, req.(*vtgatepb.ExecuteKeyspaceIdsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteKeyRanges_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteKeyRangesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteKeyRanges(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteKeyRanges_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteKeyRanges(ctx, req.(*vtgatepb.ExecuteKeyRangesRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteEntityIds_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteEntityIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteEntityIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteEntityIds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteEntityIds(ctx, req.(*vtgatepb.ExecuteEntityIdsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteBatchShards_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteBatchShardsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteBatchShards(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteBatchShards_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteBatchShards(ctx, req.(*vtgatepb.ExecuteBatchShardsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_ExecuteBatchKeyspaceIds_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.ExecuteBatchKeyspaceIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).ExecuteBatchKeyspaceIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_ExecuteBatchKeyspaceIds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).ExecuteBatchKeyspaceIds(ctx, req.(*vtgatepb.ExecuteBatchKeyspaceIdsRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_Begin_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.BeginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).Begin(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_Begin_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).Begin(ctx, req.(*vtgatepb.BeginRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_Commit_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.CommitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_Commit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).Commit(ctx, req.(*vtgatepb.CommitRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_Rollback_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.RollbackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).Rollback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_Rollback_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).Rollback(ctx, req.(*vtgatepb.RollbackRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_GetSrvKeyspace_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.GetSrvKeyspaceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).GetSrvKeyspace(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_GetSrvKeyspace_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).GetSrvKeyspace(ctx, req.(*vtgatepb.GetSrvKeyspaceRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_SplitQuery_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(vtgatepb.SplitQueryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VitessServer).SplitQuery(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vitess_SplitQuery_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VitessServer).SplitQuery(ctx, req.(*vtgatepb.SplitQueryRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func _Vitess_StreamExecute_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(vtgatepb.StreamExecuteRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(VitessServer).StreamExecute(m, &vitessStreamExecuteServer{stream})
}

type Vitess_StreamExecuteServer interface {
	Send(*vtgatepb.StreamExecuteResponse) error
	grpc.ServerStream
}

type vitessStreamExecuteServer struct {
	grpc.ServerStream
}

func (x *vitessStreamExecuteServer) Send(m *vtgatepb.StreamExecuteResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _Vitess_StreamExecuteShards_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(vtgatepb.StreamExecuteShardsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(VitessServer).StreamExecuteShards(m, &vitessStreamExecuteShardsServer{stream})
}

type Vitess_StreamExecuteShardsServer interface {
	Send(*vtgatepb.StreamExecuteShardsResponse) error
	grpc.ServerStream
}

type vitessStreamExecuteShardsServer struct {
	grpc.ServerStream
}

func (x *vitessStreamExecuteShardsServer) Send(m *vtgatepb.StreamExecuteShardsResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _Vitess_StreamExecuteKeyspaceIds_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(vtgatepb.StreamExecuteKeyspaceIdsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(VitessServer).StreamExecuteKeyspaceIds(m, &vitessStreamExecuteKeyspaceIdsServer{stream})
}

type Vitess_StreamExecuteKeyspaceIdsServer interface {
	Send(*vtgatepb.StreamExecuteKeyspaceIdsResponse) error
	grpc.ServerStream
}

type vitessStreamExecuteKeyspaceIdsServer struct {
	grpc.ServerStream
}

func (x *vitessStreamExecuteKeyspaceIdsServer) Send(m *vtgatepb.StreamExecuteKeyspaceIdsResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _Vitess_StreamExecuteKeyRanges_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(vtgatepb.StreamExecuteKeyRangesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}

	return srv.(VitessServer).StreamExecuteKeyRanges(m, &vitessStreamExecuteKeyRangesServer{stream})
}

type Vitess_StreamExecuteKeyRangesServer interface {
	Send(*vtgatepb.StreamExecuteKeyRangesResponse) error
	grpc.ServerStream
}

type vitessStreamExecuteKeyRangesServer struct {
	grpc.ServerStream
}

func (x *vitessStreamExecuteKeyRangesServer) Send(m *vtgatepb.StreamExecuteKeyRangesResponse) error {
	return x.ServerStream.SendMsg(m)
}

var Vitess_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VitessServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Execute",
			Handler:    _Vitess_Execute_Handler,
		},
		{
			MethodName: "ExecuteShards",
			Handler:    _Vitess_ExecuteShards_Handler,
		},
		{
			MethodName: "ExecuteKeyspaceIds",
			Handler:    _Vitess_ExecuteKeyspaceIds_Handler,
		},
		{
			MethodName: "ExecuteKeyRanges",
			Handler:    _Vitess_ExecuteKeyRanges_Handler,
		},
		{
			MethodName: "ExecuteEntityIds",
			Handler:    _Vitess_ExecuteEntityIds_Handler,
		},
		{
			MethodName: "ExecuteBatchShards",
			Handler:    _Vitess_ExecuteBatchShards_Handler,
		},
		{
			MethodName: "ExecuteBatchKeyspaceIds",
			Handler:    _Vitess_ExecuteBatchKeyspaceIds_Handler,
		},
		{
			MethodName: "Begin",
			Handler:    _Vitess_Begin_Handler,
		},
		{
			MethodName: "Commit",
			Handler:    _Vitess_Commit_Handler,
		},
		{
			MethodName: "Rollback",
			Handler:    _Vitess_Rollback_Handler,
		},
		{
			MethodName: "GetSrvKeyspace",
			Handler:    _Vitess_GetSrvKeyspace_Handler,
		},
		{
			MethodName: "SplitQuery",
			Handler:    _Vitess_SplitQuery_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamExecute",
			Handler:       _Vitess_StreamExecute_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamExecuteShards",
			Handler:       _Vitess_StreamExecuteShards_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamExecuteKeyspaceIds",
			Handler:       _Vitess_StreamExecuteKeyspaceIds_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "StreamExecuteKeyRanges",
			Handler:       _Vitess_StreamExecuteKeyRanges_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "vtgateservice.proto",
}
