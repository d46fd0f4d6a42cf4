// Package pb holds the generated messages and stubs of
// ghidra_service.DecompilerService.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative ghidra_service.proto
