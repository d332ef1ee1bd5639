package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vaultchat/vaultchat/internal/common"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/stores"
)

type ctxKey string

const sessionKey ctxKey = "session"

// sessionFromContext returns the session resolved by the interceptor.
func sessionFromContext(ctx context.Context) (*stores.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*stores.Session)
	return session, ok
}

// sessionTokenInterceptor resolves the session_token metadata into a session
// for the methods that require one. The auth flow methods carry the token in
// the request body instead, and the relay stream authenticates in-band.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == pb.VaultChatService_AttachmentURL_FullMethodName {

		var sessionToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.SessionTokenHeaderName)
			if len(values) > 0 {
				sessionToken = values[0]
			}
		}
		if len(sessionToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		session, err := s.flow.Validate(ctx, sessionToken)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid session")
		}

		ctx = context.WithValue(ctx, sessionKey, session)

	}

	return handler(ctx, req)
}
