// Package querypb holds the query, bind variable and result messages shared by
// all vtgate execute calls.
package querypb

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"

	"github.com/vtgate-go/vtgate-go-sdk/proto/topodatapb"
)

// Type is the MySQL column type with vitess flag bits folded in.
type Type int32

const (
	Type_NULL_TYPE Type = 0
	Type_INT8      Type = 257
	Type_UINT8     Type = 770
	Type_INT16     Type = 259
	Type_UINT16    Type = 772
	Type_INT24     Type = 261
	Type_UINT24    Type = 774
	Type_INT32     Type = 263
	Type_UINT32    Type = 776
	Type_INT64     Type = 265
	Type_UINT64    Type = 778
	Type_FLOAT32   Type = 1035
	Type_FLOAT64   Type = 1036
	Type_TIMESTAMP Type = 2061
	Type_DATE      Type = 2062
	Type_TIME      Type = 2063
	Type_DATETIME  Type = 2064
	Type_YEAR      Type = 785
	Type_DECIMAL   Type = 18
	Type_TEXT      Type = 6163
	Type_BLOB      Type = 10260
	Type_VARCHAR   Type = 6165
	Type_VARBINARY Type = 10262
	Type_CHAR      Type = 6166
	Type_BINARY    Type = 10263
	Type_BIT       Type = 2073
	Type_ENUM      Type = 2074
	Type_SET       Type = 2075
	Type_TUPLE     Type = 28
	Type_GEOMETRY  Type = 2077
	Type_JSON      Type = 2078
)

var typeNames = map[Type]string{
	Type_NULL_TYPE: "NULL_TYPE",
	Type_INT8:      "INT8",
	Type_UINT8:     "UINT8",
	Type_INT16:     "INT16",
	Type_UINT16:    "UINT16",
	Type_INT24:     "INT24",
	Type_UINT24:    "UINT24",
	Type_INT32:     "INT32",
	Type_UINT32:    "UINT32",
	Type_INT64:     "INT64",
	Type_UINT64:    "UINT64",
	Type_FLOAT32:   "FLOAT32",
	Type_FLOAT64:   "FLOAT64",
	Type_TIMESTAMP: "TIMESTAMP",
	Type_DATE:      "DATE",
	Type_TIME:      "TIME",
	Type_DATETIME:  "DATETIME",
	Type_YEAR:      "YEAR",
	Type_DECIMAL:   "DECIMAL",
	Type_TEXT:      "TEXT",
	Type_BLOB:      "BLOB",
	Type_VARCHAR:   "VARCHAR",
	Type_VARBINARY: "VARBINARY",
	Type_CHAR:      "CHAR",
	Type_BINARY:    "BINARY",
	Type_BIT:       "BIT",
	Type_ENUM:      "ENUM",
	Type_SET:       "SET",
	Type_TUPLE:     "TUPLE",
	Type_GEOMETRY:  "GEOMETRY",
	Type_JSON:      "JSON",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// Value is a typed value, used as an element of tuple bind variables.
type Value struct {
	Type  Type   `protobuf:"varint,1,opt,name=type,proto3,enum=query.Type" json:"type,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Value) Reset()         { *m = Value{} }
func (m *Value) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Value) ProtoMessage()    {}

// BindVariable is a typed value or a tuple of values bound to a query placeholder.
type BindVariable struct {
	Type   Type     `protobuf:"varint,1,opt,name=type,proto3,enum=query.Type" json:"type,omitempty"`
	Value  []byte   `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
	Values []*Value `protobuf:"bytes,3,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *BindVariable) Reset()         { *m = BindVariable{} }
func (m *BindVariable) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BindVariable) ProtoMessage()    {}

// BoundQuery is a query with its bind variables.
type BoundQuery struct {
	Sql           string                   `protobuf:"bytes,1,opt,name=sql,proto3" json:"sql,omitempty"`                                                                                                                                  //nolint:revive,stylecheck
	BindVariables map[string]*BindVariable `protobuf:"bytes,2,rep,name=bind_variables,json=bindVariables,proto3" json:"bind_variables,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"` //nolint:lll
}

func (m *BoundQuery) Reset()         { *m = BoundQuery{} }
func (m *BoundQuery) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*BoundQuery) ProtoMessage()    {}

func (m *BoundQuery) GetSql() string { //nolint:revive,stylecheck
	if m != nil {
		return m.Sql
	}

	return ""
}

// Field describes a single column returned by a query.
type Field struct {
	Name         string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Type         Type   `protobuf:"varint,2,opt,name=type,proto3,enum=query.Type" json:"type,omitempty"`
	Table        string `protobuf:"bytes,3,opt,name=table,proto3" json:"table,omitempty"`
	OrgTable     string `protobuf:"bytes,4,opt,name=org_table,json=orgTable,proto3" json:"org_table,omitempty"`
	Database     string `protobuf:"bytes,5,opt,name=database,proto3" json:"database,omitempty"`
	OrgName      string `protobuf:"bytes,6,opt,name=org_name,json=orgName,proto3" json:"org_name,omitempty"`
	ColumnLength uint32 `protobuf:"varint,7,opt,name=column_length,json=columnLength,proto3" json:"column_length,omitempty"`
	Charset      uint32 `protobuf:"varint,8,opt,name=charset,proto3" json:"charset,omitempty"`
	Decimals     uint32 `protobuf:"varint,9,opt,name=decimals,proto3" json:"decimals,omitempty"`
	Flags        uint32 `protobuf:"varint,10,opt,name=flags,proto3" json:"flags,omitempty"`
}

func (m *Field) Reset()         { *m = Field{} }
func (m *Field) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Field) ProtoMessage()    {}

func (m *Field) GetName() string {
	if m != nil {
		return m.Name
	}

	return ""
}

// Row is a database row. Values holds all cells concatenated, Lengths holds
// the length of each cell, -1 for NULL.
type Row struct {
	Lengths []int64 `protobuf:"zigzag64,1,rep,packed,name=lengths,proto3" json:"lengths,omitempty"`
	Values  []byte  `protobuf:"bytes,2,opt,name=values,proto3" json:"values,omitempty"`
}

func (m *Row) Reset()         { *m = Row{} }
func (m *Row) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Row) ProtoMessage()    {}

func (m *Row) GetLengths() []int64 {
	if m != nil {
		return m.Lengths
	}

	return nil
}

func (m *Row) GetValues() []byte {
	if m != nil {
		return m.Values
	}

	return nil
}

// QueryResult is the result of a query. In a stream the first result
// carries the fields and the rest carry rows only.
type QueryResult struct {
	Fields       []*Field `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	RowsAffected uint64   `protobuf:"varint,2,opt,name=rows_affected,json=rowsAffected,proto3" json:"rows_affected,omitempty"`
	InsertId     uint64   `protobuf:"varint,3,opt,name=insert_id,json=insertId,proto3" json:"insert_id,omitempty"` //nolint:revive,stylecheck
	Rows         []*Row   `protobuf:"bytes,4,rep,name=rows,proto3" json:"rows,omitempty"`
}

func (m *QueryResult) Reset()         { *m = QueryResult{} }
func (m *QueryResult) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*QueryResult) ProtoMessage()    {}

func (m *QueryResult) GetFields() []*Field {
	if m != nil {
		return m.Fields
	}

	return nil
}

func (m *QueryResult) GetRows() []*Row {
	if m != nil {
		return m.Rows
	}

	return nil
}

func (m *QueryResult) GetRowsAffected() uint64 {
	if m != nil {
		return m.RowsAffected
	}

	return 0
}

type ExecuteOptions_IncludedFields int32 //nolint:revive,stylecheck

const (
	ExecuteOptions_TYPE_AND_NAME ExecuteOptions_IncludedFields = 0 //nolint:revive,stylecheck
	ExecuteOptions_TYPE_ONLY     ExecuteOptions_IncludedFields = 1 //nolint:revive,stylecheck
	ExecuteOptions_ALL           ExecuteOptions_IncludedFields = 2 //nolint:revive,stylecheck
)

type ExecuteOptions_Workload int32 //nolint:revive,stylecheck

const (
	ExecuteOptions_UNSPECIFIED ExecuteOptions_Workload = 0 //nolint:revive,stylecheck
	ExecuteOptions_OLTP        ExecuteOptions_Workload = 1 //nolint:revive,stylecheck
	ExecuteOptions_OLAP        ExecuteOptions_Workload = 2 //nolint:revive,stylecheck
	ExecuteOptions_DBA         ExecuteOptions_Workload = 3 //nolint:revive,stylecheck
)

// ExecuteOptions is passed around for all Execute calls.
type ExecuteOptions struct {
	IncludedFields  ExecuteOptions_IncludedFields `protobuf:"varint,4,opt,name=included_fields,json=includedFields,proto3,enum=query.ExecuteOptions_IncludedFields" json:"included_fields,omitempty"` //nolint:lll
	ClientFoundRows bool                          `protobuf:"varint,5,opt,name=client_found_rows,json=clientFoundRows,proto3" json:"client_found_rows,omitempty"`                                     //nolint:lll
	Workload        ExecuteOptions_Workload       `protobuf:"varint,6,opt,name=workload,proto3,enum=query.ExecuteOptions_Workload" json:"workload,omitempty"`                                         //nolint:lll
	SqlSelectLimit  int64                         `protobuf:"varint,8,opt,name=sql_select_limit,json=sqlSelectLimit,proto3" json:"sql_select_limit,omitempty"`                                        //nolint:lll,revive,stylecheck
}

func (m *ExecuteOptions) Reset()         { *m = ExecuteOptions{} }
func (m *ExecuteOptions) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*ExecuteOptions) ProtoMessage()    {}

// Target describes what the client expects the tablet is.
type Target struct {
	Keyspace   string                `protobuf:"bytes,1,opt,name=keyspace,proto3" json:"keyspace,omitempty"`
	Shard      string                `protobuf:"bytes,2,opt,name=shard,proto3" json:"shard,omitempty"`
	TabletType topodatapb.TabletType `protobuf:"varint,3,opt,name=tablet_type,json=tabletType,proto3,enum=topodata.TabletType" json:"tablet_type,omitempty"` //nolint:lll
	Cell       string                `protobuf:"bytes,4,opt,name=cell,proto3" json:"cell,omitempty"`
}

func (m *Target) Reset()         { *m = Target{} }
func (m *Target) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*Target) ProtoMessage()    {}
