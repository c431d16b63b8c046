// Package health exposes the gRPC health service used by orchestrator probes
// and the client side of that probe.
package health

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service is the name reported alongside the overall ("") status.
const Service = "pos.v1.POS"

type Server struct {
	grpc   *grpc.Server
	status *health.Server
}

func NewServer() *Server {
	s := &Server{grpc: grpc.NewServer(), status: health.NewServer()}
	healthpb.RegisterHealthServer(s.grpc, s.status)
	s.status.SetServingStatus(Service, healthpb.HealthCheckResponse_NOT_SERVING)
	return s
}

// Serving flips both the overall and the named service status.
func (s *Server) Serving(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.status.SetServingStatus("", st)
	s.status.SetServingStatus(Service, st)
}

// Serve blocks until the listener fails or Stop is called.
func (s *Server) Serve(l net.Listener) error { return s.grpc.Serve(l) }

func (s *Server) Stop() {
	s.status.Shutdown()
	s.grpc.GracefulStop()
}

// Probe asks addr for the status of Service and fails unless it is SERVING.
func Probe(ctx context.Context, addr string) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: Service})
	if err != nil {
		return err
	}
	if res.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return fmt.Errorf("health: %s is %s", addr, res.GetStatus())
	}
	return nil
}
