package proto

//go:generate protoc --proto_path=. --go_out=../gen --go_opt=paths=source_relative --go-grpc_out=../gen --go-grpc_opt=paths=source_relative reconciler/v1/reconciler.proto
