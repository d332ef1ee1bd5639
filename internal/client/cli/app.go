package cli

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/vaultchat/vaultchat/internal/client/client"
	"github.com/vaultchat/vaultchat/internal/client/config"
	"github.com/vaultchat/vaultchat/internal/client/session"
	pb "github.com/vaultchat/vaultchat/internal/proto"
)

type App struct {
	config  *config.Config
	client  client.Client
	session *session.Session
	reader  *bufio.Reader

	// stream state; sendFrame serializes writes, gRPC streams allow only
	// one sender at a time
	mu         sync.Mutex
	stream     pb.VaultChatService_ChannelClient
	streamStop context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewVaultChatClient(c.ServerEndpointAddr, c.OrgID)
	if err != nil {
		return nil, err
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}
