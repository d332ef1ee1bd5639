package client

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vaultchat/vaultchat/internal/common"
	pb "github.com/vaultchat/vaultchat/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	orgID       string
	conn        *grpc.ClientConn
	client      pb.VaultChatServiceClient

	mu           sync.RWMutex
	sessionToken string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionTokenInterceptor attaches the current session token to every unary
// call. Calls made before login go out without the header; the server only
// requires it for session-scoped methods.
func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.Token(); token != "" {
		ctx = withSessionToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewVaultChatClient(endpointURL, orgID string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, orgID: orgID}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaultChatServiceClient(conn)
	return nil
}

// Token returns the current session token, empty before login.
func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) BeginRegistration(ctx context.Context, phone string) error {

	req := &pb.BeginRegistrationRequest{OrgId: s.orgID, Phone: phone}

	_, err := s.client.BeginRegistration(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) CompleteRegistration(ctx context.Context, phone, code, displayName string) (*Registration, error) {

	req := &pb.CompleteRegistrationRequest{OrgId: s.orgID, Phone: phone, Code: code, DisplayName: displayName}

	resp, err := s.client.CompleteRegistration(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	return &Registration{
		IdentityID: resp.GetIdentityId(),
		PublicKey:  resp.GetPublicKey(),
		SeedPhrase: resp.GetSeedPhrase(),
	}, nil

}

func (s *GRPCClient) BeginLogin(ctx context.Context, phone string) error {

	req := &pb.BeginLoginRequest{OrgId: s.orgID, Phone: phone}

	_, err := s.client.BeginLogin(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) CompleteLogin(ctx context.Context, phone, code, seedPhrase, deviceInfo string) (*LoginSession, error) {

	req := &pb.CompleteLoginRequest{
		OrgId: s.orgID, Phone: phone, Code: code,
		SeedPhrase: seedPhrase, DeviceInfo: deviceInfo,
	}

	resp, err := s.client.CompleteLogin(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	s.setToken(resp.GetSessionToken())

	return &LoginSession{
		Token:       resp.GetSessionToken(),
		IdentityID:  resp.GetIdentity().GetId(),
		DisplayName: resp.GetIdentity().GetDisplayName(),
		Role:        resp.GetIdentity().GetRole(),
		PublicKey:   resp.GetPublicKey(),
		PrivateKey:  resp.GetPrivateKey(),
	}, nil

}

func (s *GRPCClient) Logout(ctx context.Context) error {

	req := &pb.LogoutRequest{SessionToken: s.Token()}

	_, err := s.client.Logout(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	s.setToken("")
	return nil

}

func (s *GRPCClient) RevokeOtherSessions(ctx context.Context) (int32, error) {

	req := &pb.RevokeOtherSessionsRequest{SessionToken: s.Token()}

	resp, err := s.client.RevokeOtherSessions(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.GetRevoked(), nil

}

func (s *GRPCClient) AttachmentPutURL(ctx context.Context) (string, string, error) {

	req := &pb.AttachmentURLRequest{Method: pb.AttachmentMethod_ATTACHMENT_METHOD_PUT}

	resp, err := s.client.AttachmentURL(ctx, req)
	if err != nil {
		return "", "", s.mapError(err)
	}

	return resp.GetStorageKey(), resp.GetUrl(), nil

}

func (s *GRPCClient) AttachmentGetURL(ctx context.Context, key string) (string, error) {

	req := &pb.AttachmentURLRequest{Method: pb.AttachmentMethod_ATTACHMENT_METHOD_GET, StorageKey: key}

	resp, err := s.client.AttachmentURL(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetUrl(), nil

}

// OpenChannel opens the relay stream. The caller owns the stream: it must
// send the auth frame first and read frames until the stream closes.
func (s *GRPCClient) OpenChannel(ctx context.Context) (pb.VaultChatService_ChannelClient, error) {
	stream, err := s.client.Channel(ctx)
	if err != nil {
		return nil, s.mapError(err)
	}
	return stream, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrConflict
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
