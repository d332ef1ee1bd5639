package grpc

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/stores"
)

func TestInterceptor_OtherMethod_AllowsWithoutToken(t *testing.T) {
	env := newTestEnv(t)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultChatService_BeginLogin_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := env.server.sessionTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !handlerCalled {
		t.Fatal("handler was not called")
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
}

func TestInterceptor_AttachmentURL_MissingToken(t *testing.T) {
	env := newTestEnv(t)

	ctx := context.Background()
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultChatService_AttachmentURL_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := env.server.sessionTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestInterceptor_AttachmentURL_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	md := metadata.New(map[string]string{"session_token": "not-a-session"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultChatService_AttachmentURL_FullMethodName}

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler should not be called for invalid token")
		return nil, nil
	}

	_, err := env.server.sessionTokenInterceptor(ctx, nil, info, h)
	if err == nil {
		t.Fatal("expected error")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestInterceptor_AttachmentURL_ValidToken_SetsSession(t *testing.T) {
	env := newTestEnv(t)

	token, err := env.sessions.Create(context.Background(), &stores.Session{IdentityID: "id-1", OrgID: "org1"})
	if err != nil {
		t.Fatalf("session create error: %v", err)
	}

	md := metadata.New(map[string]string{"session_token": token})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultChatService_AttachmentURL_FullMethodName}

	var got *stores.Session
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = sessionFromContext(ctx)
		return "ok", nil
	}

	resp, err := env.server.sessionTokenInterceptor(ctx, nil, info, h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp != "ok" {
		t.Fatalf("unexpected handler resp: %v", resp)
	}
	if got == nil || got.IdentityID != "id-1" || got.OrgID != "org1" {
		t.Fatalf("session not propagated in context: %+v", got)
	}
}
