// Package vtgate is a Go client for the Vitess gateway (vtgate) gRPC service.
/*
Driver forwards query execution, transaction control, serving keyspace lookup
and query splitting to vtgate. Requests and responses are the vtgate protobuf
messages from the proto packages and pass through the driver unchanged.

Transport failures come back as errors of a few kinds, see IsBadInput,
IsDeadlineExceeded, IsIntegrity, IsUnauthenticated and IsTransient.
*/
package vtgate
