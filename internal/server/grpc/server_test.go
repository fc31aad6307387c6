package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	pb "github.com/dmitrijs2005/hikekeeper/internal/proto"
	"github.com/dmitrijs2005/hikekeeper/internal/server/config"
	"github.com/dmitrijs2005/hikekeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

func newServices() (*services.UserService, *services.ProfileService, *services.TrailService) {
	m := repomanager.NewMemoryRepositoryManager()
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour, PasswordHashCost: 4}
	return services.NewUserService(m, cfg, logging.Nop()),
		services.NewProfileService(m, cfg, logging.Nop()),
		services.NewTrailService(m, nil, logging.Nop())
}

// startBufServer serves a fully wired server over an in-memory listener and
// returns a connection to it.
func startBufServer(t *testing.T) *grpc.ClientConn {
	t.Helper()

	us, ps, ts := newServices()
	srv := NewGRPCServer("bufnet", logging.Nop(), us, ps, ts)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return conn
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop(), nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop(), nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestHealth_Serving(t *testing.T) {
	conn := startBufServer(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.HikeKeeperService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
