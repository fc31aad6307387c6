// Package proto holds the messages and gRPC stubs generated from
// proto/hikekeeper/v1/hikekeeper.proto.
package proto

//go:generate protoc --proto_path=../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/hikekeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/hikekeeper hikekeeper/v1/hikekeeper.proto
