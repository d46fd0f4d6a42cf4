package service

import (
	"context"
	"math"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding/gzip"
	"google.golang.org/grpc/status"

	"github.com/wippyai/fission/errors"
)

// PrepareTask adds services to a server before it starts serving.
type PrepareTask func(context.Context, net.Listener, *grpc.Server) error

// Serve listens on address and runs a server until ctx is done.
func Serve(ctx context.Context, address string, prepare PrepareTask, options ...grpc.ServerOption) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return errors.Wrap(errors.PhaseService, errors.KindInvalidInput, err, "cannot listen on "+address)
	}
	return ServeWithListener(ctx, lis, prepare, options...)
}

// ServeWithListener runs a server on lis with the standard options
// installed. It returns once the server stops; cancelling ctx stops it
// gracefully.
func ServeWithListener(ctx context.Context, lis net.Listener, prepare PrepareTask, options ...grpc.ServerOption) error {
	log := Logger()
	options = append([]grpc.ServerOption{
		grpc.MaxRecvMsgSize(math.MaxInt32),
		grpc.ChainUnaryInterceptor(recoverInterceptor(log), logInterceptor(log)),
	}, options...)
	defer lis.Close()

	g := grpc.NewServer(options...)
	if err := prepare(ctx, lis, g); err != nil {
		return err
	}

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			g.GracefulStop()
		case <-stopped:
		}
	}()

	log.Info("starting grpc server", zap.Stringer("addr", lis.Addr()))
	if err := g.Serve(lis); err != nil {
		return errors.Wrap(errors.PhaseService, errors.KindEngine, err, "grpc server aborted")
	}
	log.Info("grpc server stopped", zap.Stringer("addr", lis.Addr()))
	return nil
}

// ClientTask runs with an open connection.
type ClientTask func(context.Context, *grpc.ClientConn) error

// Dial creates a connection to target with gzip compression over a
// plaintext transport.
func Dial(target string, options ...grpc.DialOption) (*grpc.ClientConn, error) {
	options = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.UseCompressor(gzip.Name),
			grpc.MaxCallRecvMsgSize(math.MaxInt32),
		),
	}, options...)
	conn, err := grpc.NewClient(target, options...)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseService, errors.KindInvalidInput, err, "cannot dial "+target)
	}
	return conn, nil
}

// WithConn dials target, runs task and closes the connection.
func WithConn(ctx context.Context, target string, task ClientTask, options ...grpc.DialOption) error {
	conn, err := Dial(target, options...)
	if err != nil {
		return err
	}
	defer conn.Close()
	return task(ctx, conn)
}

func recoverInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				perr := errors.Recovered(errors.PhaseService, r)
				log.Error("handler panic", zap.String("method", info.FullMethod), zap.Error(perr))
				resp, err = nil, status.Error(codes.Internal, perr.Error())
			}
		}()
		return handler(ctx, req)
	}
}

func logInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		log.Info("request",
			zap.String("method", info.FullMethod),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return resp, err
	}
}
