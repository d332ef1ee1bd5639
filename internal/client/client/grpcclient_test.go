package client

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/vaultchat/vaultchat/internal/common"
)

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"permission denied", status.Error(codes.PermissionDenied, "x"), ErrUnauthorized},
		{"already exists", status.Error(codes.AlreadyExists, "x"), ErrConflict},
		{"not found", status.Error(codes.NotFound, "x"), ErrNotFound},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "x"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.mapError(tt.in)
			if !errors.Is(got, tt.want) {
				t.Fatalf("mapError(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	t.Run("other codes wrapped", func(t *testing.T) {
		got := c.mapError(status.Error(codes.Internal, "boom"))
		if got == nil || errors.Is(got, ErrUnauthorized) || errors.Is(got, ErrUnavailable) {
			t.Fatalf("unexpected mapping: %v", got)
		}
	})
}

func TestWithSessionToken(t *testing.T) {
	ctx := withSessionToken(context.Background(), "tok-1")

	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("no outgoing metadata")
	}
	if got := md.Get(common.SessionTokenHeaderName); len(got) != 1 || got[0] != "tok-1" {
		t.Fatalf("unexpected token values: %v", got)
	}

	// setting again replaces, never appends
	ctx = withSessionToken(ctx, "tok-2")
	md, _ = metadata.FromOutgoingContext(ctx)
	if got := md.Get(common.SessionTokenHeaderName); len(got) != 1 || got[0] != "tok-2" {
		t.Fatalf("token not replaced: %v", got)
	}
}

func TestTokenLifecycle(t *testing.T) {
	c := &GRPCClient{}
	if c.Token() != "" {
		t.Fatal("fresh client has a token")
	}
	c.setToken("abc")
	if c.Token() != "abc" {
		t.Fatal("token not stored")
	}
	c.setToken("")
	if c.Token() != "" {
		t.Fatal("token not cleared")
	}
}
