package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/hikekeeper/internal/client/models"
	"github.com/dmitrijs2005/hikekeeper/internal/common"
	pb "github.com/dmitrijs2005/hikekeeper/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.HikeKeeperServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewHikeKeeperClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewHikeKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string) (string, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{UserName: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return resp.GetToken(), nil
}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) (string, error) {

	resp, err := s.client.Login(ctx, &pb.LoginRequest{UserName: userName, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	s.SetAccessToken(resp.GetToken())
	return resp.GetToken(), nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "pong" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) GetProfile(ctx context.Context) (*models.Profile, error) {

	p, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &models.Profile{
		ID:             p.GetId(),
		UserName:       p.GetUserName(),
		Mode:           p.GetMode(),
		Height:         p.Height,
		Weight:         p.Weight,
		Unit:           p.Unit,
		TimePreference: p.TimePreference,
		CreatedAt:      asTime(p.GetCreatedAt()),
		LastActive:     asTime(p.GetLastActive()),
	}, nil
}

func (s *GRPCClient) SaveProfile(ctx context.Context, u models.ProfileUpdate) error {

	req := &pb.SaveProfileRequest{
		Password:     u.Password,
		HeightFeet:   u.HeightFeet,
		HeightInches: u.HeightInches,
		Weight:       u.Weight,
		IsMetric:     u.IsMetric,
		IsPace:       u.IsPace,
	}

	if _, err := s.client.SaveProfile(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListHikes(ctx context.Context) ([]models.Hike, error) {

	resp, err := s.client.ListHikes(ctx, &pb.ListHikesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	result := make([]models.Hike, 0, len(resp.GetHikes()))
	for _, h := range resp.GetHikes() {
		result = append(result, models.Hike{
			TrailID:    h.GetTrailId(),
			StartedAt:  asTime(h.GetStartedAt()),
			EndedAt:    asTime(h.GetEndedAt()),
			DistanceM:  h.GetDistanceM(),
			DurationS:  h.GetDurationS(),
			PointsJSON: h.GetPointsJson(),
			Status:     models.SyncSynced,
			UpdatedAt:  asTime(h.GetUpdatedAt()),
		})
	}
	return result, nil
}

func (s *GRPCClient) RecordHike(ctx context.Context, h models.Hike) (models.RecordOutcome, error) {

	// Points recorded by the CLI are always a JSON document.
	req := &pb.RecordHikeRequest{Hike: &pb.Hike{
		TrailId:    h.TrailID,
		StartedAt:  timestamppb.New(h.StartedAt),
		EndedAt:    timestamppb.New(h.EndedAt),
		DistanceM:  h.DistanceM,
		DurationS:  h.DurationS,
		PointsJson: h.PointsJSON,
		PointsRaw:  h.PointsJSON != "",
	}}

	resp, err := s.client.RecordHike(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	switch {
	case resp.GetInserted():
		return models.RecordInserted, nil
	case resp.GetUpdated():
		return models.RecordUpdated, nil
	default:
		return "", fmt.Errorf("rpc error: empty record outcome")
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

// asTime treats an unset timestamp as the zero time.
func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
