// Package vtrpcpb holds the caller identity and rpc error messages shared by
// vtgate requests and responses.
package vtrpcpb

import (
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/protoadapt"
)

// Code is the vitess application error code carried inside RPCError.
type Code int32

const (
	Code_OK                  Code = 0
	Code_CANCELED            Code = 1
	Code_UNKNOWN             Code = 2
	Code_INVALID_ARGUMENT    Code = 3
	Code_DEADLINE_EXCEEDED   Code = 4
	Code_NOT_FOUND           Code = 5
	Code_ALREADY_EXISTS      Code = 6
	Code_PERMISSION_DENIED   Code = 7
	Code_RESOURCE_EXHAUSTED  Code = 8
	Code_FAILED_PRECONDITION Code = 9
	Code_ABORTED             Code = 10
	Code_OUT_OF_RANGE        Code = 11
	Code_UNIMPLEMENTED       Code = 12
	Code_INTERNAL            Code = 13
	Code_UNAVAILABLE         Code = 14
	Code_DATA_LOSS           Code = 15
	Code_UNAUTHENTICATED     Code = 16
)

var Code_name = map[Code]string{
	Code_OK:                  "OK",
	Code_CANCELED:            "CANCELED",
	Code_UNKNOWN:             "UNKNOWN",
	Code_INVALID_ARGUMENT:    "INVALID_ARGUMENT",
	Code_DEADLINE_EXCEEDED:   "DEADLINE_EXCEEDED",
	Code_NOT_FOUND:           "NOT_FOUND",
	Code_ALREADY_EXISTS:      "ALREADY_EXISTS",
	Code_PERMISSION_DENIED:   "PERMISSION_DENIED",
	Code_RESOURCE_EXHAUSTED:  "RESOURCE_EXHAUSTED",
	Code_FAILED_PRECONDITION: "FAILED_PRECONDITION",
	Code_ABORTED:             "ABORTED",
	Code_OUT_OF_RANGE:        "OUT_OF_RANGE",
	Code_UNIMPLEMENTED:       "UNIMPLEMENTED",
	Code_INTERNAL:            "INTERNAL",
	Code_UNAVAILABLE:         "UNAVAILABLE",
	Code_DATA_LOSS:           "DATA_LOSS",
	Code_UNAUTHENTICATED:     "UNAUTHENTICATED",
}

func (c Code) String() string {
	if name, ok := Code_name[c]; ok {
		return name
	}

	return "UNKNOWN"
}

// CallerID is passed along RPCs to identify the originating client.
type CallerID struct {
	Principal    string `protobuf:"bytes,1,opt,name=principal,proto3" json:"principal,omitempty"`
	Component    string `protobuf:"bytes,2,opt,name=component,proto3" json:"component,omitempty"`
	Subcomponent string `protobuf:"bytes,3,opt,name=subcomponent,proto3" json:"subcomponent,omitempty"`
}

func (m *CallerID) Reset()         { *m = CallerID{} }
func (m *CallerID) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*CallerID) ProtoMessage()    {}

func (m *CallerID) GetPrincipal() string {
	if m != nil {
		return m.Principal
	}

	return ""
}

// RPCError is an application level error returned inside an otherwise
// successful response.
type RPCError struct {
	Message string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Code    Code   `protobuf:"varint,3,opt,name=code,proto3,enum=vtrpc.Code" json:"code,omitempty"`
}

func (m *RPCError) Reset()         { *m = RPCError{} }
func (m *RPCError) String() string { return prototext.Format(protoadapt.MessageV2Of(m)) }
func (*RPCError) ProtoMessage()    {}

func (m *RPCError) GetMessage() string {
	if m != nil {
		return m.Message
	}

	return ""
}

func (m *RPCError) GetCode() Code {
	if m != nil {
		return m.Code
	}

	return Code_OK
}
