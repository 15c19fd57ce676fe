// Mocks of vtgateservicepb clients in the mockgen layout.
// Regenerate with:
//
//	mockgen -destination grpc_client_mock_test.go -package gateway -write_package_comment=false \
//		github.com/vtgate-go/vtgate-go-sdk/proto/vtgateservicepb \
//		VitessClient,Vitess_StreamExecuteClient,Vitess_StreamExecuteShardsClient,Vitess_StreamExecuteKeyspaceIdsClient,Vitess_StreamExecuteKeyRangesClient
package gateway

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
	grpc "google.golang.org/grpc"
	metadata "google.golang.org/grpc/metadata"

	vtgatepb "github.com/vtgate-go/vtgate-go-sdk/proto/vtgatepb"
	vtgateservicepb "github.com/vtgate-go/vtgate-go-sdk/proto/vtgateservicepb"
)

// MockVitessClient is a mock of VitessClient interface.
type MockVitessClient struct {
	ctrl     *gomock.Controller
	recorder *MockVitessClientMockRecorder
}

// MockVitessClientMockRecorder is the mock recorder for MockVitessClient.
type MockVitessClientMockRecorder struct {
	mock *MockVitessClient
}

// NewMockVitessClient creates a new mock instance.
func NewMockVitessClient(ctrl *gomock.Controller) *MockVitessClient {
	mock := &MockVitessClient{ctrl: ctrl}
	mock.recorder = &MockVitessClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVitessClient) EXPECT() *MockVitessClientMockRecorder {
	return m.recorder
}

// Begin mocks base method.
func (m *MockVitessClient) Begin(ctx context.Context, in *vtgatepb.BeginRequest, opts ...grpc.CallOption) (*vtgatepb.BeginResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Begin", varargs...)
	ret0, _ := ret[0].(*vtgatepb.BeginResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Begin indicates an expected call of Begin.
func (mr *MockVitessClientMockRecorder) Begin(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockVitessClient)(nil).Begin), varargs...)
}

// Commit mocks base method.
func (m *MockVitessClient) Commit(ctx context.Context, in *vtgatepb.CommitRequest, opts ...grpc.CallOption) (*vtgatepb.CommitResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Commit", varargs...)
	ret0, _ := ret[0].(*vtgatepb.CommitResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Commit indicates an expected call of Commit.
func (mr *MockVitessClientMockRecorder) Commit(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Commit", reflect.TypeOf((*MockVitessClient)(nil).Commit), varargs...)
}

// Execute mocks base method.
func (m *MockVitessClient) Execute(ctx context.Context, in *vtgatepb.ExecuteRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Execute", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Execute indicates an expected call of Execute.
func (mr *MockVitessClientMockRecorder) Execute(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Execute", reflect.TypeOf((*MockVitessClient)(nil).Execute), varargs...)
}

// ExecuteBatchKeyspaceIds mocks base method.
func (m *MockVitessClient) ExecuteBatchKeyspaceIds(ctx context.Context, in *vtgatepb.ExecuteBatchKeyspaceIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteBatchKeyspaceIdsResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteBatchKeyspaceIds", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteBatchKeyspaceIdsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteBatchKeyspaceIds indicates an expected call of ExecuteBatchKeyspaceIds.
func (mr *MockVitessClientMockRecorder) ExecuteBatchKeyspaceIds(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteBatchKeyspaceIds", reflect.TypeOf((*MockVitessClient)(nil).ExecuteBatchKeyspaceIds), varargs...)
}

// ExecuteBatchShards mocks base method.
func (m *MockVitessClient) ExecuteBatchShards(ctx context.Context, in *vtgatepb.ExecuteBatchShardsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteBatchShardsResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteBatchShards", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteBatchShardsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteBatchShards indicates an expected call of ExecuteBatchShards.
func (mr *MockVitessClientMockRecorder) ExecuteBatchShards(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteBatchShards", reflect.TypeOf((*MockVitessClient)(nil).ExecuteBatchShards), varargs...)
}

// ExecuteEntityIds mocks base method.
func (m *MockVitessClient) ExecuteEntityIds(ctx context.Context, in *vtgatepb.ExecuteEntityIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteEntityIdsResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteEntityIds", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteEntityIdsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteEntityIds indicates an expected call of ExecuteEntityIds.
func (mr *MockVitessClientMockRecorder) ExecuteEntityIds(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteEntityIds", reflect.TypeOf((*MockVitessClient)(nil).ExecuteEntityIds), varargs...)
}

// ExecuteKeyRanges mocks base method.
func (m *MockVitessClient) ExecuteKeyRanges(ctx context.Context, in *vtgatepb.ExecuteKeyRangesRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteKeyRangesResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteKeyRanges", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteKeyRangesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteKeyRanges indicates an expected call of ExecuteKeyRanges.
func (mr *MockVitessClientMockRecorder) ExecuteKeyRanges(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteKeyRanges", reflect.TypeOf((*MockVitessClient)(nil).ExecuteKeyRanges), varargs...)
}

// ExecuteKeyspaceIds mocks base method.
func (m *MockVitessClient) ExecuteKeyspaceIds(ctx context.Context, in *vtgatepb.ExecuteKeyspaceIdsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteKeyspaceIdsResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteKeyspaceIds", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteKeyspaceIdsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteKeyspaceIds indicates an expected call of ExecuteKeyspaceIds.
func (mr *MockVitessClientMockRecorder) ExecuteKeyspaceIds(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteKeyspaceIds", reflect.TypeOf((*MockVitessClient)(nil).ExecuteKeyspaceIds), varargs...)
}

// ExecuteShards mocks base method.
func (m *MockVitessClient) ExecuteShards(ctx context.Context, in *vtgatepb.ExecuteShardsRequest, opts ...grpc.CallOption) (*vtgatepb.ExecuteShardsResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "ExecuteShards", varargs...)
	ret0, _ := ret[0].(*vtgatepb.ExecuteShardsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ExecuteShards indicates an expected call of ExecuteShards.
func (mr *MockVitessClientMockRecorder) ExecuteShards(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteShards", reflect.TypeOf((*MockVitessClient)(nil).ExecuteShards), varargs...)
}

// GetSrvKeyspace mocks base method.
func (m *MockVitessClient) GetSrvKeyspace(ctx context.Context, in *vtgatepb.GetSrvKeyspaceRequest, opts ...grpc.CallOption) (*vtgatepb.GetSrvKeyspaceResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "GetSrvKeyspace", varargs...)
	ret0, _ := ret[0].(*vtgatepb.GetSrvKeyspaceResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSrvKeyspace indicates an expected call of GetSrvKeyspace.
func (mr *MockVitessClientMockRecorder) GetSrvKeyspace(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSrvKeyspace", reflect.TypeOf((*MockVitessClient)(nil).GetSrvKeyspace), varargs...)
}

// Rollback mocks base method.
func (m *MockVitessClient) Rollback(ctx context.Context, in *vtgatepb.RollbackRequest, opts ...grpc.CallOption) (*vtgatepb.RollbackResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "Rollback", varargs...)
	ret0, _ := ret[0].(*vtgatepb.RollbackResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Rollback indicates an expected call of Rollback.
func (mr *MockVitessClientMockRecorder) Rollback(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Rollback", reflect.TypeOf((*MockVitessClient)(nil).Rollback), varargs...)
}

// SplitQuery mocks base method.
func (m *MockVitessClient) SplitQuery(ctx context.Context, in *vtgatepb.SplitQueryRequest, opts ...grpc.CallOption) (*vtgatepb.SplitQueryResponse, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "SplitQuery", varargs...)
	ret0, _ := ret[0].(*vtgatepb.SplitQueryResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SplitQuery indicates an expected call of SplitQuery.
func (mr *MockVitessClientMockRecorder) SplitQuery(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SplitQuery", reflect.TypeOf((*MockVitessClient)(nil).SplitQuery), varargs...)
}

// StreamExecute mocks base method.
func (m *MockVitessClient) StreamExecute(ctx context.Context, in *vtgatepb.StreamExecuteRequest, opts ...grpc.CallOption) (vtgateservicepb.Vitess_StreamExecuteClient, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StreamExecute", varargs...)
	ret0, _ := ret[0].(vtgateservicepb.Vitess_StreamExecuteClient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StreamExecute indicates an expected call of StreamExecute.
func (mr *MockVitessClientMockRecorder) StreamExecute(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamExecute", reflect.TypeOf((*MockVitessClient)(nil).StreamExecute), varargs...)
}

// StreamExecuteKeyRanges mocks base method.
func (m *MockVitessClient) StreamExecuteKeyRanges(ctx context.Context, in *vtgatepb.StreamExecuteKeyRangesRequest, opts ...grpc.CallOption) (vtgateservicepb.Vitess_StreamExecuteKeyRangesClient, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StreamExecuteKeyRanges", varargs...)
	ret0, _ := ret[0].(vtgateservicepb.Vitess_StreamExecuteKeyRangesClient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StreamExecuteKeyRanges indicates an expected call of StreamExecuteKeyRanges.
func (mr *MockVitessClientMockRecorder) StreamExecuteKeyRanges(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamExecuteKeyRanges", reflect.TypeOf((*MockVitessClient)(nil).StreamExecuteKeyRanges), varargs...)
}

// StreamExecuteKeyspaceIds mocks base method.
func (m *MockVitessClient) StreamExecuteKeyspaceIds(ctx context.Context, in *vtgatepb.StreamExecuteKeyspaceIdsRequest, opts ...grpc.CallOption) (vtgateservicepb.Vitess_StreamExecuteKeyspaceIdsClient, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StreamExecuteKeyspaceIds", varargs...)
	ret0, _ := ret[0].(vtgateservicepb.Vitess_StreamExecuteKeyspaceIdsClient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StreamExecuteKeyspaceIds indicates an expected call of StreamExecuteKeyspaceIds.
func (mr *MockVitessClientMockRecorder) StreamExecuteKeyspaceIds(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamExecuteKeyspaceIds", reflect.TypeOf((*MockVitessClient)(nil).StreamExecuteKeyspaceIds), varargs...)
}

// StreamExecuteShards mocks base method.
func (m *MockVitessClient) StreamExecuteShards(ctx context.Context, in *vtgatepb.StreamExecuteShardsRequest, opts ...grpc.CallOption) (vtgateservicepb.Vitess_StreamExecuteShardsClient, error) {
	m.ctrl.T.Helper()
	varargs := []any{ctx, in}
	for _, a := range opts {
		varargs = append(varargs, a)
	}
	ret := m.ctrl.Call(m, "StreamExecuteShards", varargs...)
	ret0, _ := ret[0].(vtgateservicepb.Vitess_StreamExecuteShardsClient)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// StreamExecuteShards indicates an expected call of StreamExecuteShards.
func (mr *MockVitessClientMockRecorder) StreamExecuteShards(ctx, in any, opts ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{ctx, in}, opts...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StreamExecuteShards", reflect.TypeOf((*MockVitessClient)(nil).StreamExecuteShards), varargs...)
}

// MockVitess_StreamExecuteClient is a mock of Vitess_StreamExecuteClient interface.
type MockVitess_StreamExecuteClient struct {
	ctrl     *gomock.Controller
	recorder *MockVitess_StreamExecuteClientMockRecorder
}

// MockVitess_StreamExecuteClientMockRecorder is the mock recorder for MockVitess_StreamExecuteClient.
type MockVitess_StreamExecuteClientMockRecorder struct {
	mock *MockVitess_StreamExecuteClient
}

// NewMockVitess_StreamExecuteClient creates a new mock instance.
func NewMockVitess_StreamExecuteClient(ctrl *gomock.Controller) *MockVitess_StreamExecuteClient {
	mock := &MockVitess_StreamExecuteClient{ctrl: ctrl}
	mock.recorder = &MockVitess_StreamExecuteClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVitess_StreamExecuteClient) EXPECT() *MockVitess_StreamExecuteClientMockRecorder {
	return m.recorder
}

// CloseSend mocks base method.
func (m *MockVitess_StreamExecuteClient) CloseSend() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CloseSend")
	ret0, _ := ret[0].(error)
	return ret0
}

// CloseSend indicates an expected call of CloseSend.
func (mr *MockVitess_StreamExecuteClientMockRecorder) CloseSend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseSend", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).CloseSend))
}

// Context mocks base method.
func (m *MockVitess_StreamExecuteClient) Context() context.Context {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Context")
	ret0, _ := ret[0].(context.Context)
	return ret0
}

// Context indicates an expected call of Context.
func (mr *MockVitess_StreamExecuteClientMockRecorder) Context() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Context", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).Context))
}

// Header mocks base method.
func (m *MockVitess_StreamExecuteClient) Header() (metadata.MD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Header")
	ret0, _ := ret[0].(metadata.MD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Header indicates an expected call of Header.
func (mr *MockVitess_StreamExecuteClientMockRecorder) Header() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Header", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).Header))
}

// Recv mocks base method.
func (m *MockVitess_StreamExecuteClient) Recv() (*vtgatepb.StreamExecuteResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recv")
	ret0, _ := ret[0].(*vtgatepb.StreamExecuteResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recv indicates an expected call of Recv.
func (mr *MockVitess_StreamExecuteClientMockRecorder) Recv() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recv", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).Recv))
}

// RecvMsg mocks base method.
func (m *MockVitess_StreamExecuteClient) RecvMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecvMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecvMsg indicates an expected call of RecvMsg.
func (mr *MockVitess_StreamExecuteClientMockRecorder) RecvMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecvMsg", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).RecvMsg), arg0)
}

// SendMsg mocks base method.
func (m *MockVitess_StreamExecuteClient) SendMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMsg indicates an expected call of SendMsg.
func (mr *MockVitess_StreamExecuteClientMockRecorder) SendMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMsg", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).SendMsg), arg0)
}

// Trailer mocks base method.
func (m *MockVitess_StreamExecuteClient) Trailer() metadata.MD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Trailer")
	ret0, _ := ret[0].(metadata.MD)
	return ret0
}

// Trailer indicates an expected call of Trailer.
func (mr *MockVitess_StreamExecuteClientMockRecorder) Trailer() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trailer", reflect.TypeOf((*MockVitess_StreamExecuteClient)(nil).Trailer))
}

// MockVitess_StreamExecuteShardsClient is a mock of Vitess_StreamExecuteShardsClient interface.
type MockVitess_StreamExecuteShardsClient struct {
	ctrl     *gomock.Controller
	recorder *MockVitess_StreamExecuteShardsClientMockRecorder
}

// MockVitess_StreamExecuteShardsClientMockRecorder is the mock recorder for MockVitess_StreamExecuteShardsClient.
type MockVitess_StreamExecuteShardsClientMockRecorder struct {
	mock *MockVitess_StreamExecuteShardsClient
}

// NewMockVitess_StreamExecuteShardsClient creates a new mock instance.
func NewMockVitess_StreamExecuteShardsClient(ctrl *gomock.Controller) *MockVitess_StreamExecuteShardsClient {
	mock := &MockVitess_StreamExecuteShardsClient{ctrl: ctrl}
	mock.recorder = &MockVitess_StreamExecuteShardsClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVitess_StreamExecuteShardsClient) EXPECT() *MockVitess_StreamExecuteShardsClientMockRecorder {
	return m.recorder
}

// CloseSend mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) CloseSend() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CloseSend")
	ret0, _ := ret[0].(error)
	return ret0
}

// CloseSend indicates an expected call of CloseSend.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) CloseSend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseSend", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).CloseSend))
}

// Context mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) Context() context.Context {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Context")
	ret0, _ := ret[0].(context.Context)
	return ret0
}

// Context indicates an expected call of Context.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) Context() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Context", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).Context))
}

// Header mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) Header() (metadata.MD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Header")
	ret0, _ := ret[0].(metadata.MD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Header indicates an expected call of Header.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) Header() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Header", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).Header))
}

// Recv mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) Recv() (*vtgatepb.StreamExecuteShardsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recv")
	ret0, _ := ret[0].(*vtgatepb.StreamExecuteShardsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recv indicates an expected call of Recv.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) Recv() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recv", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).Recv))
}

// RecvMsg mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) RecvMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecvMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecvMsg indicates an expected call of RecvMsg.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) RecvMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecvMsg", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).RecvMsg), arg0)
}

// SendMsg mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) SendMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMsg indicates an expected call of SendMsg.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) SendMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMsg", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).SendMsg), arg0)
}

// Trailer mocks base method.
func (m *MockVitess_StreamExecuteShardsClient) Trailer() metadata.MD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Trailer")
	ret0, _ := ret[0].(metadata.MD)
	return ret0
}

// Trailer indicates an expected call of Trailer.
func (mr *MockVitess_StreamExecuteShardsClientMockRecorder) Trailer() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trailer", reflect.TypeOf((*MockVitess_StreamExecuteShardsClient)(nil).Trailer))
}

// MockVitess_StreamExecuteKeyspaceIdsClient is a mock of Vitess_StreamExecuteKeyspaceIdsClient interface.
type MockVitess_StreamExecuteKeyspaceIdsClient struct {
	ctrl     *gomock.Controller
	recorder *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder
}

// MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder is the mock recorder for MockVitess_StreamExecuteKeyspaceIdsClient.
type MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder struct {
	mock *MockVitess_StreamExecuteKeyspaceIdsClient
}

// NewMockVitess_StreamExecuteKeyspaceIdsClient creates a new mock instance.
func NewMockVitess_StreamExecuteKeyspaceIdsClient(ctrl *gomock.Controller) *MockVitess_StreamExecuteKeyspaceIdsClient {
	mock := &MockVitess_StreamExecuteKeyspaceIdsClient{ctrl: ctrl}
	mock.recorder = &MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) EXPECT() *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder {
	return m.recorder
}

// CloseSend mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) CloseSend() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CloseSend")
	ret0, _ := ret[0].(error)
	return ret0
}

// CloseSend indicates an expected call of CloseSend.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) CloseSend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseSend", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).CloseSend))
}

// Context mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) Context() context.Context {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Context")
	ret0, _ := ret[0].(context.Context)
	return ret0
}

// Context indicates an expected call of Context.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) Context() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Context", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).Context))
}

// Header mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) Header() (metadata.MD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Header")
	ret0, _ := ret[0].(metadata.MD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Header indicates an expected call of Header.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) Header() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Header", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).Header))
}

// Recv mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) Recv() (*vtgatepb.StreamExecuteKeyspaceIdsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recv")
	ret0, _ := ret[0].(*vtgatepb.StreamExecuteKeyspaceIdsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recv indicates an expected call of Recv.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) Recv() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recv", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).Recv))
}

// RecvMsg mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) RecvMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecvMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecvMsg indicates an expected call of RecvMsg.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) RecvMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecvMsg", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).RecvMsg), arg0)
}

// SendMsg mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) SendMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMsg indicates an expected call of SendMsg.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) SendMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMsg", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).SendMsg), arg0)
}

// Trailer mocks base method.
func (m *MockVitess_StreamExecuteKeyspaceIdsClient) Trailer() metadata.MD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Trailer")
	ret0, _ := ret[0].(metadata.MD)
	return ret0
}

// Trailer indicates an expected call of Trailer.
func (mr *MockVitess_StreamExecuteKeyspaceIdsClientMockRecorder) Trailer() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trailer", reflect.TypeOf((*MockVitess_StreamExecuteKeyspaceIdsClient)(nil).Trailer))
}

// MockVitess_StreamExecuteKeyRangesClient is a mock of Vitess_StreamExecuteKeyRangesClient interface.
type MockVitess_StreamExecuteKeyRangesClient struct {
	ctrl     *gomock.Controller
	recorder *MockVitess_StreamExecuteKeyRangesClientMockRecorder
}

// MockVitess_StreamExecuteKeyRangesClientMockRecorder is the mock recorder for MockVitess_StreamExecuteKeyRangesClient.
type MockVitess_StreamExecuteKeyRangesClientMockRecorder struct {
	mock *MockVitess_StreamExecuteKeyRangesClient
}

// NewMockVitess_StreamExecuteKeyRangesClient creates a new mock instance.
func NewMockVitess_StreamExecuteKeyRangesClient(ctrl *gomock.Controller) *MockVitess_StreamExecuteKeyRangesClient {
	mock := &MockVitess_StreamExecuteKeyRangesClient{ctrl: ctrl}
	mock.recorder = &MockVitess_StreamExecuteKeyRangesClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockVitess_StreamExecuteKeyRangesClient) EXPECT() *MockVitess_StreamExecuteKeyRangesClientMockRecorder {
	return m.recorder
}

// CloseSend mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) CloseSend() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CloseSend")
	ret0, _ := ret[0].(error)
	return ret0
}

// CloseSend indicates an expected call of CloseSend.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) CloseSend() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CloseSend", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).CloseSend))
}

// Context mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) Context() context.Context {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Context")
	ret0, _ := ret[0].(context.Context)
	return ret0
}

// Context indicates an expected call of Context.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) Context() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Context", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).Context))
}

// Header mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) Header() (metadata.MD, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Header")
	ret0, _ := ret[0].(metadata.MD)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Header indicates an expected call of Header.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) Header() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Header", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).Header))
}

// Recv mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) Recv() (*vtgatepb.StreamExecuteKeyRangesResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Recv")
	ret0, _ := ret[0].(*vtgatepb.StreamExecuteKeyRangesResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Recv indicates an expected call of Recv.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) Recv() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Recv", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).Recv))
}

// RecvMsg mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) RecvMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecvMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// RecvMsg indicates an expected call of RecvMsg.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) RecvMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecvMsg", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).RecvMsg), arg0)
}

// SendMsg mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) SendMsg(arg0 any) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SendMsg", arg0)
	ret0, _ := ret[0].(error)
	return ret0
}

// SendMsg indicates an expected call of SendMsg.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) SendMsg(arg0 any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SendMsg", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).SendMsg), arg0)
}

// Trailer mocks base method.
func (m *MockVitess_StreamExecuteKeyRangesClient) Trailer() metadata.MD {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Trailer")
	ret0, _ := ret[0].(metadata.MD)
	return ret0
}

// Trailer indicates an expected call of Trailer.
func (mr *MockVitess_StreamExecuteKeyRangesClientMockRecorder) Trailer() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Trailer", reflect.TypeOf((*MockVitess_StreamExecuteKeyRangesClient)(nil).Trailer))
}
