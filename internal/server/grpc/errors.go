package grpc

import (
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/hikekeeper/internal/common"
	"github.com/dmitrijs2005/hikekeeper/internal/server/validation"
)

// toStatus maps service errors to gRPC status errors. Internal details never
// leave the server.
func toStatus(err error) error {
	var ve *validation.Error

	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, strings.Join(ve.Problems, " "))
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "Account with userName already registered")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrStorageUnavailable):
		return status.Error(codes.Unavailable, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
