package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

const (
	checkTimeout = 3 * time.Second
	grpcScheme   = "grpc://"
)

// health-checker probes an HTTP readiness URL, or a gRPC health endpoint
// when the target is given as grpc://host:port[/service].
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: health-checker <url | grpc://host:port[/service]>")
		os.Exit(1)
	}
	target := os.Args[1]

	var err error
	if strings.HasPrefix(target, grpcScheme) {
		err = checkGRPC(strings.TrimPrefix(target, grpcScheme))
	} else {
		err = checkHTTP(target)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func checkHTTP(url string) error {
	client := &http.Client{
		Timeout: checkTimeout,
	}

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("received status code: %d", resp.StatusCode)
	}
	return nil
}

func checkGRPC(target string) error {
	addr, service, _ := strings.Cut(target, "/")

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		return err
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("service %q is %s", service, resp.GetStatus())
	}
	return nil
}
