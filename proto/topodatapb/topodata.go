// Package topodatapb holds the topology messages vtgate returns for serving
// keyspace lookups and uses to address shards.
package topodatapb

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

// TabletType selects the tablet role a query is routed to.
type TabletType int32

const (
	TabletType_UNKNOWN      TabletType = 0
	TabletType_MASTER       TabletType = 1
	TabletType_REPLICA      TabletType = 2
	TabletType_RDONLY       TabletType = 3
	TabletType_BATCH        TabletType = 3
	TabletType_SPARE        TabletType = 4
	TabletType_EXPERIMENTAL TabletType = 5
	TabletType_BACKUP       TabletType = 6
	TabletType_RESTORE      TabletType = 7
	TabletType_DRAINED      TabletType = 8
)

var TabletType_value = map[string]TabletType{
	"UNKNOWN":      TabletType_UNKNOWN,
	"MASTER":       TabletType_MASTER,
	"REPLICA":      TabletType_REPLICA,
	"RDONLY":       TabletType_RDONLY,
	"BATCH":        TabletType_BATCH,
	"SPARE":        TabletType_SPARE,
	"EXPERIMENTAL": TabletType_EXPERIMENTAL,
	"BACKUP":       TabletType_BACKUP,
	"RESTORE":      TabletType_RESTORE,
	"DRAINED":      TabletType_DRAINED,
}

func (t TabletType) String() string {
	switch t {
	case TabletType_MASTER:
		return "MASTER"
	case TabletType_REPLICA:
		return "REPLICA"
	case TabletType_RDONLY:
		return "RDONLY"
	case TabletType_SPARE:
		return "SPARE"
	case TabletType_EXPERIMENTAL:
		return "EXPERIMENTAL"
	case TabletType_BACKUP:
		return "BACKUP"
	case TabletType_RESTORE:
		return "RESTORE"
	case TabletType_DRAINED:
		return "DRAINED"
	default:
		return "UNKNOWN"
	}
}

// KeyspaceIdType is the type of the sharding column of a keyspace.
type KeyspaceIdType int32 //nolint:revive,stylecheck

const (
	KeyspaceIdType_UNSET  KeyspaceIdType = 0 //nolint:revive,stylecheck
	KeyspaceIdType_UINT64 KeyspaceIdType = 1 //nolint:revive,stylecheck
	KeyspaceIdType_BYTES  KeyspaceIdType = 2 //nolint:revive,stylecheck
)

func (t KeyspaceIdType) String() string {
	switch t {
	case KeyspaceIdType_UINT64:
		return "UINT64"
	case KeyspaceIdType_BYTES:
		return "BYTES"
	default:
		return "UNSET"
	}
}

// KeyRange describes a range of sharding keys, start inclusive, end exclusive.
// Empty bounds are open.
type KeyRange struct {
	Start []byte `protobuf:"bytes,1,opt,name=start,proto3" json:"start,omitempty"`
	End   []byte `protobuf:"bytes,2,opt,name=end,proto3" json:"end,omitempty"`
}

func (m *KeyRange) Reset()         { *m = KeyRange{} }
func (m *KeyRange) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*KeyRange) ProtoMessage()    {}

type ShardReference struct {
	Name     string    `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	KeyRange *KeyRange `protobuf:"bytes,2,opt,name=key_range,json=keyRange,proto3" json:"key_range,omitempty"`
}

func (m *ShardReference) Reset()         { *m = ShardReference{} }
func (m *ShardReference) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ShardReference) ProtoMessage()    {}

func (m *ShardReference) GetName() string {
	if m != nil {
		return m.Name
	}

	return ""
}

func (m *ShardReference) GetKeyRange() *KeyRange {
	if m != nil {
		return m.KeyRange
	}

	return nil
}

// SrvKeyspace is the serving graph of one keyspace as seen by vtgate.
type SrvKeyspace struct {
	Partitions         []*SrvKeyspace_KeyspacePartition `protobuf:"bytes,1,rep,name=partitions,proto3" json:"partitions,omitempty"`                                                                           //nolint:lll
	ShardingColumnName string                           `protobuf:"bytes,2,opt,name=sharding_column_name,json=shardingColumnName,proto3" json:"sharding_column_name,omitempty"`                               //nolint:lll
	ShardingColumnType KeyspaceIdType                   `protobuf:"varint,3,opt,name=sharding_column_type,json=shardingColumnType,proto3,enum=topodata.KeyspaceIdType" json:"sharding_column_type,omitempty"` //nolint:lll
	ServedFrom         []*SrvKeyspace_ServedFrom        `protobuf:"bytes,4,rep,name=served_from,json=servedFrom,proto3" json:"served_from,omitempty"`                                                         //nolint:lll
}

func (m *SrvKeyspace) Reset()         { *m = SrvKeyspace{} }
func (m *SrvKeyspace) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*SrvKeyspace) ProtoMessage()    {}

func (m *SrvKeyspace) GetPartitions() []*SrvKeyspace_KeyspacePartition {
	if m != nil {
		return m.Partitions
	}

	return nil
}

func (m *SrvKeyspace) GetShardingColumnName() string {
	if m != nil {
		return m.ShardingColumnName
	}

	return ""
}

type SrvKeyspace_KeyspacePartition struct { //nolint:revive,stylecheck
	ServedType      TabletType        `protobuf:"varint,1,opt,name=served_type,json=servedType,proto3,enum=topodata.TabletType" json:"served_type,omitempty"` //nolint:lll
	ShardReferences []*ShardReference `protobuf:"bytes,2,rep,name=shard_references,json=shardReferences,proto3" json:"shard_references,omitempty"`            //nolint:lll
}

func (m *SrvKeyspace_KeyspacePartition) Reset() { *m = SrvKeyspace_KeyspacePartition{} }
func (m *SrvKeyspace_KeyspacePartition) String() string {
	return prototext.Format(protoadapt.MessageV2Of(m))
}
func (*SrvKeyspace_KeyspacePartition) ProtoMessage() {}

func (m *SrvKeyspace_KeyspacePartition) GetShardReferences() []*ShardReference {
	if m != nil {
		return m.ShardReferences
	}

	return nil
}

type SrvKeyspace_ServedFrom struct { //nolint:revive,stylecheck
	TabletType TabletType `protobuf:"varint,1,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	Keyspace   string     `protobuf:"bytes,2,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
}

func (m *SrvKeyspace_ServedFrom) Reset()         { *m = SrvKeyspace_ServedFrom{} }
func (m *SrvKeyspace_ServedFrom) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*SrvKeyspace_ServedFrom) ProtoMessage()    {}
