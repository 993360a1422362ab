package web

import (
	"net"

	"github.com/sonuudigital/microservices/catalog-service/internal/logs"
	"google.golang.org/grpc"
)

// StartGRPCServer serves in the background; callers stop it with GracefulStop.
func StartGRPCServer(grpcServer *grpc.Server, lis net.Listener, logger logs.Logger) {
	go func() {
		logger.Info("gRPC server listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("failed to serve gRPC", "error", err)
		}
	}()
}
