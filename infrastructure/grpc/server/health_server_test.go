package server

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func TestHealthServer_MirrorsServingState(t *testing.T) {
	req := require.New(t)
	hs := NewHealthServer(slog.Default())
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	req.NoError(err)

	done := make(chan error)
	go func() { done <- hs.Serve(listener) }()

	conn, err := grpc.NewClient(listener.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	req.NoError(err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	check := func(service string) healthpb.HealthCheckResponse_ServingStatus {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		req.NoError(err)
		return resp.GetStatus()
	}

	// Given a transport not ready yet
	req.Equal(healthpb.HealthCheckResponse_NOT_SERVING, check(""))

	// When it becomes ready
	hs.SetServing(true)

	// Then both the overall and the named service are serving
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(""))
	req.Equal(healthpb.HealthCheckResponse_SERVING, check(ServiceName))

	hs.Stop()
	req.NoError(<-done)
}
