package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vaultchat/vaultchat/internal/common"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/attachments"
)

// rpcError maps the service sentinels onto gRPC status codes. Anything
// unmapped is reported as Internal without leaking the cause.
func rpcError(err error) error {
	switch {
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, "already registered")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrInvalidOrExpiredCode):
		return status.Error(codes.Unauthenticated, "invalid or expired code")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrServiceUnavailable):
		return status.Error(codes.Unavailable, "service unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) BeginRegistration(ctx context.Context, req *pb.BeginRegistrationRequest) (*pb.BeginRegistrationResponse, error) {

	s.logger.Info(ctx, "Registration request", "org_id", req.OrgId)

	if err := s.flow.BeginRegistration(ctx, req.OrgId, req.Phone); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, rpcError(err)
	}

	return &pb.BeginRegistrationResponse{}, nil

}

func (s *GRPCServer) CompleteRegistration(ctx context.Context, req *pb.CompleteRegistrationRequest) (*pb.CompleteRegistrationResponse, error) {

	result, err := s.flow.CompleteRegistration(ctx, req.OrgId, req.Phone, req.Code, req.DisplayName, req.Role)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, rpcError(err)
	}

	s.logger.Info(ctx, "Registered", "identity_id", result.Identity.ID)
	return &pb.CompleteRegistrationResponse{
		IdentityId: result.Identity.ID,
		PublicKey:  result.PublicKey,
		SeedPhrase: result.SeedPhrase,
	}, nil

}

func (s *GRPCServer) BeginLogin(ctx context.Context, req *pb.BeginLoginRequest) (*pb.BeginLoginResponse, error) {

	if err := s.flow.BeginLogin(ctx, req.OrgId, req.Phone); err != nil {
		return nil, rpcError(err)
	}

	return &pb.BeginLoginResponse{}, nil

}

func (s *GRPCServer) CompleteLogin(ctx context.Context, req *pb.CompleteLoginRequest) (*pb.CompleteLoginResponse, error) {

	result, err := s.flow.CompleteLogin(ctx, req.OrgId, req.Phone, req.Code, req.SeedPhrase, req.DeviceInfo)

	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.CompleteLoginResponse{
		SessionToken: result.SessionToken,
		Identity: &pb.Identity{
			Id:          result.Identity.ID,
			OrgId:       result.Identity.OrgID,
			Phone:       result.Identity.Phone,
			DisplayName: result.Identity.DisplayName,
			Role:        result.Identity.Role,
		},
		PublicKey:  result.PublicKey,
		PrivateKey: result.PrivateKey,
	}, nil

}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.flow.Logout(ctx, req.SessionToken); err != nil {
		return nil, rpcError(err)
	}

	return &pb.LogoutResponse{}, nil

}

func (s *GRPCServer) RevokeOtherSessions(ctx context.Context, req *pb.RevokeOtherSessionsRequest) (*pb.RevokeOtherSessionsResponse, error) {

	revoked, err := s.flow.RevokeOtherSessions(ctx, req.SessionToken)

	if err != nil {
		return nil, rpcError(err)
	}

	return &pb.RevokeOtherSessionsResponse{Revoked: int32(revoked)}, nil

}

func (s *GRPCServer) AttachmentURL(ctx context.Context, req *pb.AttachmentURLRequest) (*pb.AttachmentURLResponse, error) {

	session, ok := sessionFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing session")
	}

	switch req.Method {
	case pb.AttachmentMethod_ATTACHMENT_METHOD_PUT:
		key, url, err := s.attachments.PresignedPutURL(ctx, session.IdentityID)
		if err != nil {
			s.logger.Error(ctx, err.Error())
			return nil, rpcError(err)
		}
		return &pb.AttachmentURLResponse{StorageKey: key, Url: url}, nil

	case pb.AttachmentMethod_ATTACHMENT_METHOD_GET:
		if req.StorageKey == "" {
			return nil, status.Error(codes.InvalidArgument, "storage_key is required")
		}
		// the key itself is the capability: recipients learn it from the
		// envelope, so any authenticated caller holding a well-formed key
		// may fetch the (encrypted) blob
		if !attachments.ValidStorageKey(req.StorageKey) {
			return nil, status.Error(codes.InvalidArgument, "malformed storage key")
		}
		url, err := s.attachments.PresignedGetURL(ctx, req.StorageKey)
		if err != nil {
			s.logger.Error(ctx, err.Error())
			return nil, rpcError(err)
		}
		return &pb.AttachmentURLResponse{StorageKey: req.StorageKey, Url: url}, nil

	default:
		return nil, status.Error(codes.InvalidArgument, "unknown method")
	}

}
