// Package vtgatepb holds the request and response messages of the vtgate
// service.
package vtgatepb

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"

	"github.com/vtgate-go/vtgate-go-sdk/proto/querypb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/topodatapb"
	"github.com/vtgate-go/vtgate-go-sdk/proto/vtrpcpb"
)

// Session is the transaction state vtgate hands back to the client.
// Clients must pass it unchanged into the next call of the same transaction.
type Session struct {
	InTransaction bool                    `protobuf:"varint,1,opt,name=in_transaction,json=inTransaction,proto3" json:"in_transaction,omitempty"`
	ShardSessions []*Session_ShardSession `protobuf:"bytes,2,rep,name=shard_sessions,json=shardSessions,proto3" json:"shard_sessions,omitempty"`
	SingleDb      bool                    `protobuf:"varint,3,opt,name=single_db,json=singleDb,proto3" json:"single_db,omitempty"`
	Autocommit    bool                    `protobuf:"varint,4,opt,name=autocommit,proto3" json:"autocommit,omitempty"`
	TargetString  string                  `protobuf:"bytes,5,opt,name=target_string,json=targetString,proto3" json:"target_string,omitempty"`
	Options       *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *Session) Reset()         { *m = Session{} }
func (m *Session) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Session) ProtoMessage()    {}

func (m *Session) GetInTransaction() bool {
	if m != nil {
		return m.InTransaction
	}

	return false
}

type Session_ShardSession struct { //nolint:revive,stylecheck
	Target        *querypb.Target `protobuf:"bytes,1,opt,name=target,proto3" json:"target,omitempty"`
	TransactionId int64           `protobuf:"varint,2,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"` //nolint:revive,stylecheck
}

func (m *Session_ShardSession) Reset()         { *m = Session_ShardSession{} }
func (m *Session_ShardSession) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Session_ShardSession) ProtoMessage()    {}

// ExecuteRequest is the payload to Execute.
type ExecuteRequest struct {
	CallerId         *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session          *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Query            *querypb.BoundQuery     `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	TabletType       topodatapb.TabletType   `protobuf:"varint,4,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	NotInTransaction bool                    `protobuf:"varint,5,opt,name=not_in_transaction,json=notInTransaction,proto3" json:"not_in_transaction,omitempty"`
	KeyspaceShard    string                  `protobuf:"bytes,6,opt,name=keyspace_shard,json=keyspaceShard,proto3" json:"keyspace_shard,omitempty"`
	Options          *querypb.ExecuteOptions `protobuf:"bytes,7,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteRequest) Reset()         { *m = ExecuteRequest{} }
func (m *ExecuteRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteRequest) ProtoMessage()    {}

func (m *ExecuteRequest) GetSession() *Session {
	if m != nil {
		return m.Session
	}

	return nil
}

func (m *ExecuteRequest) GetQuery() *querypb.BoundQuery {
	if m != nil {
		return m.Query
	}

	return nil
}

// ExecuteResponse is the returned value from Execute.
type ExecuteResponse struct {
	Error   *vtrpcpb.RPCError    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session             `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Result  *querypb.QueryResult `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ExecuteResponse) Reset()         { *m = ExecuteResponse{} }
func (m *ExecuteResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteResponse) ProtoMessage()    {}

func (m *ExecuteResponse) GetError() *vtrpcpb.RPCError {
	if m != nil {
		return m.Error
	}

	return nil
}

func (m *ExecuteResponse) GetResult() *querypb.QueryResult {
	if m != nil {
		return m.Result
	}

	return nil
}

func (m *ExecuteResponse) GetSession() *Session {
	if m != nil {
		return m.Session
	}

	return nil
}

// ExecuteShardsRequest is the payload to ExecuteShards.
type ExecuteShardsRequest struct {
	CallerId         *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session          *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Query            *querypb.BoundQuery     `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace         string                  `protobuf:"bytes,4,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Shards           []string                `protobuf:"bytes,5,rep,name=shards,proto3" json:"shards,omitempty"`
	TabletType       topodatapb.TabletType   `protobuf:"varint,6,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	NotInTransaction bool                    `protobuf:"varint,7,opt,name=not_in_transaction,json=notInTransaction,proto3" json:"not_in_transaction,omitempty"`
	Options          *querypb.ExecuteOptions `protobuf:"bytes,8,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteShardsRequest) Reset()         { *m = ExecuteShardsRequest{} }
func (m *ExecuteShardsRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteShardsRequest) ProtoMessage()    {}

// ExecuteShardsResponse is the returned value from ExecuteShards.
type ExecuteShardsResponse struct {
	Error   *vtrpcpb.RPCError    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session             `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Result  *querypb.QueryResult `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ExecuteShardsResponse) Reset()         { *m = ExecuteShardsResponse{} }
func (m *ExecuteShardsResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteShardsResponse) ProtoMessage()    {}

// ExecuteKeyspaceIdsRequest is the payload to ExecuteKeyspaceIds.
type ExecuteKeyspaceIdsRequest struct { //nolint:revive,stylecheck
	CallerId         *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session          *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Query            *querypb.BoundQuery     `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace         string                  `protobuf:"bytes,4,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyspaceIds      [][]byte                `protobuf:"bytes,5,rep,name=keyspace_ids,json=keyspaceIds,proto3" json:"keyspace_ids,omitempty"`                        //nolint:revive,stylecheck
	TabletType       topodatapb.TabletType   `protobuf:"varint,6,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	NotInTransaction bool                    `protobuf:"varint,7,opt,name=not_in_transaction,json=notInTransaction,proto3" json:"not_in_transaction,omitempty"`
	Options          *querypb.ExecuteOptions `protobuf:"bytes,8,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteKeyspaceIdsRequest) Reset() { *m = ExecuteKeyspaceIdsRequest{} }
func (m *ExecuteKeyspaceIdsRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteKeyspaceIdsRequest) ProtoMessage() {}

// ExecuteKeyspaceIdsResponse is the returned value from ExecuteKeyspaceIds.
type ExecuteKeyspaceIdsResponse struct { //nolint:revive,stylecheck
	Error   *vtrpcpb.RPCError    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session             `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Result  *querypb.QueryResult `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ExecuteKeyspaceIdsResponse) Reset() { *m = ExecuteKeyspaceIdsResponse{} }
func (m *ExecuteKeyspaceIdsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteKeyspaceIdsResponse) ProtoMessage() {}

// ExecuteKeyRangesRequest is the payload to ExecuteKeyRanges.
type ExecuteKeyRangesRequest struct {
	CallerId         *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session          *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Query            *querypb.BoundQuery     `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace         string                  `protobuf:"bytes,4,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyRanges        []*topodatapb.KeyRange  `protobuf:"bytes,5,rep,name=key_ranges,json=keyRanges,proto3" json:"key_ranges,omitempty"`
	TabletType       topodatapb.TabletType   `protobuf:"varint,6,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	NotInTransaction bool                    `protobuf:"varint,7,opt,name=not_in_transaction,json=notInTransaction,proto3" json:"not_in_transaction,omitempty"`
	Options          *querypb.ExecuteOptions `protobuf:"bytes,8,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteKeyRangesRequest) Reset()         { *m = ExecuteKeyRangesRequest{} }
func (m *ExecuteKeyRangesRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteKeyRangesRequest) ProtoMessage()    {}

// ExecuteKeyRangesResponse is the returned value from ExecuteKeyRanges.
type ExecuteKeyRangesResponse struct {
	Error   *vtrpcpb.RPCError    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session             `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Result  *querypb.QueryResult `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ExecuteKeyRangesResponse) Reset() { *m = ExecuteKeyRangesResponse{} }
func (m *ExecuteKeyRangesResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteKeyRangesResponse) ProtoMessage() {}

// ExecuteEntityIdsRequest is the payload to ExecuteEntityIds.
type ExecuteEntityIdsRequest struct { //nolint:revive,stylecheck
	CallerId          *vtrpcpb.CallerID                   `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session           *Session                            `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Query             *querypb.BoundQuery                 `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace          string                              `protobuf:"bytes,4,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	EntityColumnName  string                              `protobuf:"bytes,5,opt,name=entity_column_name,json=entityColumnName,proto3" json:"entity_column_name,omitempty"`       //nolint:lll
	EntityKeyspaceIds []*ExecuteEntityIdsRequest_EntityId `protobuf:"bytes,6,rep,name=entity_keyspace_ids,json=entityKeyspaceIds,proto3" json:"entity_keyspace_ids,omitempty"`    //nolint:lll,revive,stylecheck
	TabletType        topodatapb.TabletType               `protobuf:"varint,7,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	NotInTransaction  bool                                `protobuf:"varint,8,opt,name=not_in_transaction,json=notInTransaction,proto3" json:"not_in_transaction,omitempty"`
	Options           *querypb.ExecuteOptions             `protobuf:"bytes,9,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteEntityIdsRequest) Reset()         { *m = ExecuteEntityIdsRequest{} }
func (m *ExecuteEntityIdsRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteEntityIdsRequest) ProtoMessage()    {}

type ExecuteEntityIdsRequest_EntityId struct { //nolint:revive,stylecheck
	Type       querypb.Type `protobuf:"varint,1,opt,name=type,proto3,enum=query.Type" json:"type,omitempty"`
	Value      []byte       `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	KeyspaceId []byte       `protobuf:"bytes,3,opt,name=keyspace_id,json=keyspaceId,proto3" json:"keyspace_id,omitempty"` //nolint:revive,stylecheck
}

func (m *ExecuteEntityIdsRequest_EntityId) Reset() { *m = ExecuteEntityIdsRequest_EntityId{} }
func (m *ExecuteEntityIdsRequest_EntityId) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteEntityIdsRequest_EntityId) ProtoMessage() {}

// ExecuteEntityIdsResponse is the returned value from ExecuteEntityIds.
type ExecuteEntityIdsResponse struct { //nolint:revive,stylecheck
	Error   *vtrpcpb.RPCError    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session             `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Result  *querypb.QueryResult `protobuf:"bytes,3,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *ExecuteEntityIdsResponse) Reset() { *m = ExecuteEntityIdsResponse{} }
func (m *ExecuteEntityIdsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteEntityIdsResponse) ProtoMessage() {}

// BoundShardQuery represents a single query request for the specified list
// of shards. Used in ExecuteBatchShardsRequest.
type BoundShardQuery struct {
	Query    *querypb.BoundQuery `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace string              `protobuf:"bytes,2,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Shards   []string            `protobuf:"bytes,3,rep,name=shards,proto3" json:"shards,omitempty"`
}

func (m *BoundShardQuery) Reset()         { *m = BoundShardQuery{} }
func (m *BoundShardQuery) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BoundShardQuery) ProtoMessage()    {}

// ExecuteBatchShardsRequest is the payload to ExecuteBatchShards.
type ExecuteBatchShardsRequest struct {
	CallerId      *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session       *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Queries       []*BoundShardQuery      `protobuf:"bytes,3,rep,name=queries,proto3" json:"queries,omitempty"`
	TabletType    topodatapb.TabletType   `protobuf:"varint,4,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	AsTransaction bool                    `protobuf:"varint,5,opt,name=as_transaction,json=asTransaction,proto3" json:"as_transaction,omitempty"`
	Options       *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteBatchShardsRequest) Reset() { *m = ExecuteBatchShardsRequest{} }
func (m *ExecuteBatchShardsRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteBatchShardsRequest) ProtoMessage() {}

// ExecuteBatchShardsResponse is the returned value from ExecuteBatchShards.
type ExecuteBatchShardsResponse struct {
	Error   *vtrpcpb.RPCError      `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session               `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Results []*querypb.QueryResult `protobuf:"bytes,3,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ExecuteBatchShardsResponse) Reset() { *m = ExecuteBatchShardsResponse{} }
func (m *ExecuteBatchShardsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteBatchShardsResponse) ProtoMessage() {}

// BoundKeyspaceIdQuery represents a single query request for the specified
// list of keyspace ids. Used in ExecuteBatchKeyspaceIdsRequest.
type BoundKeyspaceIdQuery struct { //nolint:revive,stylecheck
	Query       *querypb.BoundQuery `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace    string              `protobuf:"bytes,2,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyspaceIds [][]byte            `protobuf:"bytes,3,rep,name=keyspace_ids,json=keyspaceIds,proto3" json:"keyspace_ids,omitempty"` //nolint:revive,stylecheck
}

func (m *BoundKeyspaceIdQuery) Reset()         { *m = BoundKeyspaceIdQuery{} }
func (m *BoundKeyspaceIdQuery) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BoundKeyspaceIdQuery) ProtoMessage()    {}

// ExecuteBatchKeyspaceIdsRequest is the payload to ExecuteBatchKeyspaceIds.
type ExecuteBatchKeyspaceIdsRequest struct { //nolint:revive,stylecheck
	CallerId      *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session       *Session                `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Queries       []*BoundKeyspaceIdQuery `protobuf:"bytes,3,rep,name=queries,proto3" json:"queries,omitempty"`
	TabletType    topodatapb.TabletType   `protobuf:"varint,4,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	AsTransaction bool                    `protobuf:"varint,5,opt,name=as_transaction,json=asTransaction,proto3" json:"as_transaction,omitempty"`
	Options       *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *ExecuteBatchKeyspaceIdsRequest) Reset() { *m = ExecuteBatchKeyspaceIdsRequest{} }
func (m *ExecuteBatchKeyspaceIdsRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteBatchKeyspaceIdsRequest) ProtoMessage() {}

// ExecuteBatchKeyspaceIdsResponse is the returned value from ExecuteBatchKeyspaceIds.
type ExecuteBatchKeyspaceIdsResponse struct { //nolint:revive,stylecheck
	Error   *vtrpcpb.RPCError      `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Session *Session               `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Results []*querypb.QueryResult `protobuf:"bytes,3,rep,name=results,proto3" json:"results,omitempty"`
}

func (m *ExecuteBatchKeyspaceIdsResponse) Reset() { *m = ExecuteBatchKeyspaceIdsResponse{} }
func (m *ExecuteBatchKeyspaceIdsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*ExecuteBatchKeyspaceIdsResponse) ProtoMessage() {}

// StreamExecuteRequest is the payload to StreamExecute.
type StreamExecuteRequest struct {
	CallerId      *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Query         *querypb.BoundQuery     `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	TabletType    topodatapb.TabletType   `protobuf:"varint,3,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	KeyspaceShard string                  `protobuf:"bytes,4,opt,name=keyspace_shard,json=keyspaceShard,proto3" json:"keyspace_shard,omitempty"`
	Options       *querypb.ExecuteOptions `protobuf:"bytes,5,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StreamExecuteRequest) Reset()         { *m = StreamExecuteRequest{} }
func (m *StreamExecuteRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*StreamExecuteRequest) ProtoMessage()    {}

func (m *StreamExecuteRequest) GetQuery() *querypb.BoundQuery {
	if m != nil {
		return m.Query
	}

	return nil
}

// StreamExecuteResponse is the returned value from StreamExecute.
// The first value contains only Fields, following values contain only Rows.
type StreamExecuteResponse struct {
	Result *querypb.QueryResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *StreamExecuteResponse) Reset()         { *m = StreamExecuteResponse{} }
func (m *StreamExecuteResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*StreamExecuteResponse) ProtoMessage()    {}

func (m *StreamExecuteResponse) GetResult() *querypb.QueryResult {
	if m != nil {
		return m.Result
	}

	return nil
}

// StreamExecuteShardsRequest is the payload to StreamExecuteShards.
type StreamExecuteShardsRequest struct {
	CallerId   *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Query      *querypb.BoundQuery     `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace   string                  `protobuf:"bytes,3,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Shards     []string                `protobuf:"bytes,4,rep,name=shards,proto3" json:"shards,omitempty"`
	TabletType topodatapb.TabletType   `protobuf:"varint,5,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	Options    *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StreamExecuteShardsRequest) Reset() { *m = StreamExecuteShardsRequest{} }
func (m *StreamExecuteShardsRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteShardsRequest) ProtoMessage() {}

// StreamExecuteShardsResponse is the returned value from StreamExecuteShards.
type StreamExecuteShardsResponse struct {
	Result *querypb.QueryResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *StreamExecuteShardsResponse) Reset() { *m = StreamExecuteShardsResponse{} }
func (m *StreamExecuteShardsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteShardsResponse) ProtoMessage() {}

// StreamExecuteKeyspaceIdsRequest is the payload to StreamExecuteKeyspaceIds.
type StreamExecuteKeyspaceIdsRequest struct { //nolint:revive,stylecheck
	CallerId    *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Query       *querypb.BoundQuery     `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace    string                  `protobuf:"bytes,3,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyspaceIds [][]byte                `protobuf:"bytes,4,rep,name=keyspace_ids,json=keyspaceIds,proto3" json:"keyspace_ids,omitempty"`                        //nolint:revive,stylecheck
	TabletType  topodatapb.TabletType   `protobuf:"varint,5,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	Options     *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StreamExecuteKeyspaceIdsRequest) Reset() { *m = StreamExecuteKeyspaceIdsRequest{} }
func (m *StreamExecuteKeyspaceIdsRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteKeyspaceIdsRequest) ProtoMessage() {}

// StreamExecuteKeyspaceIdsResponse is the returned value from StreamExecuteKeyspaceIds.
type StreamExecuteKeyspaceIdsResponse struct { //nolint:revive,stylecheck
	Result *querypb.QueryResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *StreamExecuteKeyspaceIdsResponse) Reset() { *m = StreamExecuteKeyspaceIdsResponse{} }
func (m *StreamExecuteKeyspaceIdsResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteKeyspaceIdsResponse) ProtoMessage() {}

// StreamExecuteKeyRangesRequest is the payload to StreamExecuteKeyRanges.
type StreamExecuteKeyRangesRequest struct {
	CallerId   *vtrpcpb.CallerID       `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Query      *querypb.BoundQuery     `protobuf:"bytes,2,opt,name=query,proto3" json:"query,omitempty"`
	Keyspace   string                  `protobuf:"bytes,3,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyRanges  []*topodatapb.KeyRange  `protobuf:"bytes,4,rep,name=key_ranges,json=keyRanges,proto3" json:"key_ranges,omitempty"`
	TabletType topodatapb.TabletType   `protobuf:"varint,5,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	Options    *querypb.ExecuteOptions `protobuf:"bytes,6,opt,name=options,proto3" json:"options,omitempty"`
}

func (m *StreamExecuteKeyRangesRequest) Reset() { *m = StreamExecuteKeyRangesRequest{} }
func (m *StreamExecuteKeyRangesRequest) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteKeyRangesRequest) ProtoMessage() {}

// StreamExecuteKeyRangesResponse is the returned value from StreamExecuteKeyRanges.
type StreamExecuteKeyRangesResponse struct {
	Result *querypb.QueryResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (m *StreamExecuteKeyRangesResponse) Reset() { *m = StreamExecuteKeyRangesResponse{} }
func (m *StreamExecuteKeyRangesResponse) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*StreamExecuteKeyRangesResponse) ProtoMessage() {}

// BeginRequest is the payload to Begin.
type BeginRequest struct {
	CallerId *vtrpcpb.CallerID `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	SingleDb bool              `protobuf:"varint,2,opt,name=single_db,json=singleDb,proto3" json:"single_db,omitempty"`
}

func (m *BeginRequest) Reset()         { *m = BeginRequest{} }
func (m *BeginRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BeginRequest) ProtoMessage()    {}

// BeginResponse is the returned value from Begin.
type BeginResponse struct {
	Session *Session `protobuf:"bytes,1,opt,name=session,proto3" json:"session,omitempty"`
}

func (m *BeginResponse) Reset()         { *m = BeginResponse{} }
func (m *BeginResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BeginResponse) ProtoMessage()    {}

func (m *BeginResponse) GetSession() *Session {
	if m != nil {
		return m.Session
	}

	return nil
}

// CommitRequest is the payload to Commit.
type CommitRequest struct {
	CallerId *vtrpcpb.CallerID `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session  *Session          `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
	Atomic   bool              `protobuf:"varint,3,opt,name=atomic,proto3" json:"atomic,omitempty"`
}

func (m *CommitRequest) Reset()         { *m = CommitRequest{} }
func (m *CommitRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*CommitRequest) ProtoMessage()    {}

// CommitResponse is the returned value from Commit.
type CommitResponse struct{}

func (m *CommitResponse) Reset()         { *m = CommitResponse{} }
func (m *CommitResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*CommitResponse) ProtoMessage()    {}

// RollbackRequest is the payload to Rollback.
type RollbackRequest struct {
	CallerId *vtrpcpb.CallerID `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Session  *Session          `protobuf:"bytes,2,opt,name=session,proto3" json:"session,omitempty"`
}

func (m *RollbackRequest) Reset()         { *m = RollbackRequest{} }
func (m *RollbackRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*RollbackRequest) ProtoMessage()    {}

// RollbackResponse is the returned value from Rollback.
type RollbackResponse struct{}

func (m *RollbackResponse) Reset()         { *m = RollbackResponse{} }
func (m *RollbackResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*RollbackResponse) ProtoMessage()    {}

// GetSrvKeyspaceRequest is the payload to GetSrvKeyspace.
type GetSrvKeyspaceRequest struct {
	Keyspace string `protobuf:"bytes,1,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
}

func (m *GetSrvKeyspaceRequest) Reset()         { *m = GetSrvKeyspaceRequest{} }
func (m *GetSrvKeyspaceRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*GetSrvKeyspaceRequest) ProtoMessage()    {}

func (m *GetSrvKeyspaceRequest) GetKeyspace() string {
	if m != nil {
		return m.Keyspace
	}

	return ""
}

// GetSrvKeyspaceResponse is the returned value from GetSrvKeyspace.
type GetSrvKeyspaceResponse struct {
	SrvKeyspace *topodatapb.SrvKeyspace `protobuf:"bytes,1,opt,name=srv_keyspace,json=srvKeyspace,proto3" json:"srv_keyspace,omitempty"`
}

func (m *GetSrvKeyspaceResponse) Reset()         { *m = GetSrvKeyspaceResponse{} }
func (m *GetSrvKeyspaceResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*GetSrvKeyspaceResponse) ProtoMessage()    {}

func (m *GetSrvKeyspaceResponse) GetSrvKeyspace() *topodatapb.SrvKeyspace {
	if m != nil {
		return m.SrvKeyspace
	}

	return nil
}

type SplitQueryRequest_Algorithm int32 //nolint:revive,stylecheck

const (
	SplitQueryRequest_EQUAL_SPLITS SplitQueryRequest_Algorithm = 0 //nolint:revive,stylecheck
	SplitQueryRequest_FULL_SCAN    SplitQueryRequest_Algorithm = 1 //nolint:revive,stylecheck
)

// SplitQueryRequest is the payload to SplitQuery. It asks vtgate to split a
// query into parts that together return the same rows.
type SplitQueryRequest struct {
	CallerId            *vtrpcpb.CallerID           `protobuf:"bytes,1,opt,name=caller_id,json=callerId,proto3" json:"caller_id,omitempty"` //nolint:revive,stylecheck
	Keyspace            string                      `protobuf:"bytes,2,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Query               *querypb.BoundQuery         `protobuf:"bytes,3,opt,name=query,proto3" json:"query,omitempty"`
	SplitColumn         []string                    `protobuf:"bytes,4,rep,name=split_column,json=splitColumn,proto3" json:"split_column,omitempty"`
	SplitCount          int64                       `protobuf:"varint,5,opt,name=split_count,json=splitCount,proto3" json:"split_count,omitempty"`
	NumRowsPerQueryPart int64                       `protobuf:"varint,6,opt,name=num_rows_per_query_part,json=numRowsPerQueryPart,proto3" json:"num_rows_per_query_part,omitempty"` //nolint:lll
	Algorithm           SplitQueryRequest_Algorithm `protobuf:"varint,7,opt,name=algorithm,proto3,enum=vtgate.SplitQueryRequest_Algorithm" json:"algorithm,omitempty"`              //nolint:lll
}

func (m *SplitQueryRequest) Reset()         { *m = SplitQueryRequest{} }
func (m *SplitQueryRequest) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*SplitQueryRequest) ProtoMessage()    {}

// SplitQueryResponse is the returned value from SplitQuery.
type SplitQueryResponse struct {
	Splits []*SplitQueryResponse_Part `protobuf:"bytes,1,rep,name=splits,proto3" json:"splits,omitempty"`
}

func (m *SplitQueryResponse) Reset()         { *m = SplitQueryResponse{} }
func (m *SplitQueryResponse) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*SplitQueryResponse) ProtoMessage()    {}

func (m *SplitQueryResponse) GetSplits() []*SplitQueryResponse_Part {
	if m != nil {
		return m.Splits
	}

	return nil
}

type SplitQueryResponse_KeyRangePart struct { //nolint:revive,stylecheck
	Keyspace  string                 `protobuf:"bytes,1,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	KeyRanges []*topodatapb.KeyRange `protobuf:"bytes,2,rep,name=key_ranges,json=keyRanges,proto3" json:"key_ranges,omitempty"`
}

func (m *SplitQueryResponse_KeyRangePart) Reset() { *m = SplitQueryResponse_KeyRangePart{} }
func (m *SplitQueryResponse_KeyRangePart) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*SplitQueryResponse_KeyRangePart) ProtoMessage() {}

type SplitQueryResponse_ShardPart struct { //nolint:revive,stylecheck
	Keyspace string   `protobuf:"bytes,1,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Shards   []string `protobuf:"bytes,2,rep,name=shards,proto3" json:"shards,omitempty"`
}

func (m *SplitQueryResponse_ShardPart) Reset() { *m = SplitQueryResponse_ShardPart{} }
func (m *SplitQueryResponse_ShardPart) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*SplitQueryResponse_ShardPart) ProtoMessage() {}

type SplitQueryResponse_Part struct { //nolint:revive,stylecheck
	Query        *querypb.BoundQuery              `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	KeyRangePart *SplitQueryResponse_KeyRangePart `protobuf:"bytes,2,opt,name=key_range_part,json=keyRangePart,proto3" json:"key_range_part,omitempty"`
	ShardPart    *SplitQueryResponse_ShardPart    `protobuf:"bytes,3,opt,name=shard_part,json=shardPart,proto3" json:"shard_part,omitempty"`
	Size         int64                            `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
}

func (m *SplitQueryResponse_Part) Reset() { *m = SplitQueryResponse_Part{} }
func (m *SplitQueryResponse_Part) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*SplitQueryResponse_Part) ProtoMessage() {}
