package client

import (
	"context"

	pb "github.com/vaultchat/vaultchat/internal/proto"
)

// Registration is the one-time output of CompleteRegistration. The seed
// phrase must be shown to the user immediately; it cannot be recovered.
type Registration struct {
	IdentityID string
	PublicKey  []byte
	SeedPhrase string
}

// LoginSession is the output of CompleteLogin: the opaque session token plus
// the recovered key material.
type LoginSession struct {
	Token       string
	IdentityID  string
	DisplayName string
	Role        string
	PublicKey   []byte
	PrivateKey  []byte
}

type Client interface {
	Close() error
	BeginRegistration(ctx context.Context, phone string) error
	CompleteRegistration(ctx context.Context, phone, code, displayName string) (*Registration, error)
	BeginLogin(ctx context.Context, phone string) error
	CompleteLogin(ctx context.Context, phone, code, seedPhrase, deviceInfo string) (*LoginSession, error)
	Logout(ctx context.Context) error
	RevokeOtherSessions(ctx context.Context) (int32, error)
	AttachmentPutURL(ctx context.Context) (string, string, error)
	AttachmentGetURL(ctx context.Context, key string) (string, error)
	OpenChannel(ctx context.Context) (pb.VaultChatService_ChannelClient, error)
}
