package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dmitrijs2005/hikekeeper/internal/proto"
	"github.com/dmitrijs2005/hikekeeper/internal/server/models"
	"github.com/dmitrijs2005/hikekeeper/internal/server/services"
)

var _ pb.HikeKeeperServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "pong"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	s.logger.Info(ctx, "Registration request")

	token, err := s.users.Register(ctx, req.GetUserName(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{Message: "User registered successfully", Token: token}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	token, err := s.users.Login(ctx, req.GetUserName(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthResponse{Message: "User logged in successfully", Token: token}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.Profile, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	return ProfileToProto(p), nil
}

func (s *GRPCServer) SaveProfile(ctx context.Context, req *pb.SaveProfileRequest) (*pb.MessageResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	err = s.profiles.Save(ctx, userID, services.ProfileInput{
		Password:     req.Password,
		HeightFeet:   req.HeightFeet,
		HeightInches: req.HeightInches,
		Weight:       req.Weight,
		IsMetric:     req.GetIsMetric(),
		IsPace:       req.GetIsPace(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.MessageResponse{Message: "Profile updated successfully"}, nil
}

func (s *GRPCServer) ListHikes(ctx context.Context, req *pb.ListHikesRequest) (*pb.ListHikesResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	hikes, err := s.trails.ListHikes(ctx, userID)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.ListHikesResponse{Hikes: HikesToProto(hikes)}, nil
}

func (s *GRPCServer) RecordHike(ctx context.Context, req *pb.RecordHikeRequest) (*pb.RecordHikeResponse, error) {
	userID, err := s.requireUser(ctx)
	if err != nil {
		return nil, err
	}

	outcome, err := s.trails.RecordHike(ctx, userID, req.GetHike().GetTrailId(), HikeFieldsFromProto(req.GetHike()))
	if err != nil {
		return nil, toStatus(err)
	}

	switch outcome {
	case services.OutcomeInserted:
		return &pb.RecordHikeResponse{Inserted: true}, nil
	case services.OutcomeUpdated:
		return &pb.RecordHikeResponse{Updated: true}, nil
	default:
		return nil, status.Error(codes.NotFound, "Hike not found for update.")
	}
}

func (s *GRPCServer) requireUser(ctx context.Context) (string, error) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return userID, nil
}

// ProfileToProto converts a stored profile to its wire form.
func ProfileToProto(p *models.Profile) *pb.Profile {
	out := &pb.Profile{
		Id:         p.ID,
		UserName:   p.UserName,
		Mode:       p.Mode,
		Height:     p.HeightMm,
		Weight:     p.WeightGrams,
		CreatedAt:  timestamppb.New(p.CreatedAt),
		LastActive: timestamppb.New(p.LastActive),
	}
	if p.Unit != nil {
		u := string(*p.Unit)
		out.Unit = &u
	}
	if p.TimePreference != nil {
		tp := string(*p.TimePreference)
		out.TimePreference = &tp
	}
	return out
}

func HikesToProto(hikes []models.HikeRecord) []*pb.Hike {
	out := make([]*pb.Hike, 0, len(hikes))
	for _, h := range hikes {
		out = append(out, &pb.Hike{
			TrailId:    h.TrailID,
			StartedAt:  timestamppb.New(h.StartedAt),
			EndedAt:    timestamppb.New(h.EndedAt),
			DistanceM:  h.DistanceM,
			DurationS:  h.DurationS,
			PointsJson: h.PointsJSON,
			PointsRaw:  h.PointsRaw,
			CreatedAt:  timestamppb.New(h.CreatedAt),
			UpdatedAt:  timestamppb.New(h.UpdatedAt),
		})
	}
	return out
}

// HikeFieldsFromProto reads the mutable fields of h. A nil h or an unset
// timestamp yields zero values.
func HikeFieldsFromProto(h *pb.Hike) models.HikeFields {
	return models.HikeFields{
		StartedAt:  fromTimestamp(h.GetStartedAt()),
		EndedAt:    fromTimestamp(h.GetEndedAt()),
		DistanceM:  h.GetDistanceM(),
		DurationS:  h.GetDurationS(),
		PointsJSON: h.GetPointsJson(),
		PointsRaw:  h.GetPointsRaw(),
	}
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
