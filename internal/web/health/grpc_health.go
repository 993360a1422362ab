package health

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const checkTimeout = 5 * time.Second

type CheckFunc func(ctx context.Context) error

// StartGRPCHealthCheckService registers the standard health service and flips
// the given service to SERVING once every check passes.
func StartGRPCHealthCheckService(grpcServer *grpc.Server, service string, checks ...CheckFunc) *health.Server {
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		SetStatus(ctx, healthServer, service, checks...)
	}()

	return healthServer
}

func SetStatus(ctx context.Context, healthServer *health.Server, service string, checks ...CheckFunc) {
	for _, check := range checks {
		if err := check(ctx); err != nil {
			healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
			return
		}
	}
	healthServer.SetServingStatus(service, grpc_health_v1.HealthCheckResponse_SERVING)
}
