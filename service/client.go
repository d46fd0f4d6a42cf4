package service

import (
	"google.golang.org/grpc"

	"github.com/wippyai/fission/service/pb"
)

// NewClient wraps an open connection in the generated DecompilerService
// client.
func NewClient(conn grpc.ClientConnInterface) pb.DecompilerServiceClient {
	return pb.NewDecompilerServiceClient(conn)
}
