// Package service exposes a handle over gRPC as ghidra_service.DecompilerService.
//
// The service keeps one loaded binary per server. LoadBinary replaces it;
// DecompileFunction and DisassembleRange operate on it and answer
// "Binary not loaded" until a load succeeds. Failures inside a call are
// reported in the reply's success and error_message fields, so the gRPC
// status is only non-OK for transport problems and recovered panics.
//
// Messages are the protobuf types in package pb, carried by the default
// gRPC codec:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	srv, err := service.NewServer("languages", logger)
//	if err != nil {
//	    return err
//	}
//	go service.Serve(ctx, "127.0.0.1:50051", func(_ context.Context, _ net.Listener, g *grpc.Server) error {
//	    srv.Register(g)
//	    return nil
//	})
//
//	conn, _ := service.Dial("127.0.0.1:50051")
//	c := service.NewClient(conn)
//	c.LoadBinary(ctx, &pb.LoadBinaryRequest{BinaryContent: code, BaseAddress: 0x1000})
package service
