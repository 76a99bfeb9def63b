// Package gen holds the engagement.v1 gRPC API generated from
// api/engagement.proto.
package gen

//go:generate protoc -I=../api --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative engagement.proto
