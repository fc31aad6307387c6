// Package grpc exposes the HikeKeeper services over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dmitrijs2005/hikekeeper/internal/logging"
	pb "github.com/dmitrijs2005/hikekeeper/internal/proto"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

type userService interface {
	Register(ctx context.Context, userName, password string) (string, error)
	Login(ctx context.Context, userName, password string) (string, error)
	Authorize(ctx context.Context, token string) (string, error)
}

type profileService interface {
	Get(ctx context.Context, ownerID string) (*models.Profile, error)
	Save(ctx context.Context, ownerID string, in services.ProfileInput) error
}

type trailService interface {
	RecordHike(ctx context.Context, ownerID, trailID string, fields models.HikeFields) (services.Outcome, error)
	ListHikes(ctx context.Context, ownerID string) ([]models.HikeRecord, error)
}

type GRPCServer struct {
	pb.UnimplementedHikeKeeperServiceServer
	address  string
	users    userService
	profiles profileService
	trails   trailService
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, us userService, ps profileService, ts trailService) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		users:    us,
		profiles: ps,
		trails:   ts,
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	pb.RegisterHikeKeeperServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.HikeKeeperService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
