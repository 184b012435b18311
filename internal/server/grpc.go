package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-replisync/internal/config"
	myGRPC "github.com/MKhiriev/go-replisync/internal/handler/grpc"
	"github.com/MKhiriev/go-replisync/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC on %s: %w", cfg.GRPCAddress, err)
	}

	opts := handler.ServerOptions()
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	srv := grpc.NewServer(opts...)
	handler.Register(srv)

	return &grpcServer{
		server:   srv,
		listener: lis,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() error {
	g.logger.Info().Str("address", g.listener.Addr().String()).Msg("launching gRPC server")
	if err := g.server.Serve(g.listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC serve: %w", err)
	}
	return nil
}

// Shutdown waits for in-flight calls and falls back to a hard stop once ctx
// expires.
func (g *grpcServer) Shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		g.logger.Info().Msg("gRPC server stopped")
	case <-ctx.Done():
		g.server.Stop()
		g.logger.Warn().Msg("gRPC server stopped forcibly")
	}
}
