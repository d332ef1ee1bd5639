// Package server wires the application together: configuration, storage
// backends, the relay hub and the gRPC endpoint, with graceful shutdown on
// OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/vaultchat/vaultchat/internal/keyvault"
	"github.com/vaultchat/vaultchat/internal/logging"
	"github.com/vaultchat/vaultchat/internal/server/attachments"
	"github.com/vaultchat/vaultchat/internal/server/auth"
	"github.com/vaultchat/vaultchat/internal/server/config"
	"github.com/vaultchat/vaultchat/internal/server/relay"
	"github.com/vaultchat/vaultchat/internal/server/shared/db"
	"github.com/vaultchat/vaultchat/internal/server/stores"

	gs "github.com/vaultchat/vaultchat/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	flow        *auth.Flow
	attachments *attachments.Service
	hub         *relay.Hub
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	rm, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	redisClient, err := stores.NewRedisClient(ctx, c.RedisAddr, c.RedisPassword, c.RedisDB)
	if err != nil {
		return nil, fmt.Errorf("redis init error: %w", err)
	}

	challenges := stores.NewRedisChallengeStore(redisClient, c.ChallengeTTL)
	sessions := stores.NewRedisSessionStore(redisClient, c.SessionTTL)
	presence := stores.NewRedisPresenceRegistry(redisClient, c.PresenceTTL)
	queue := stores.NewRedisOfflineQueue(redisClient, c.QueueTTL)

	vault := keyvault.New(c.KeygenWorkers)
	flow := auth.NewFlow(rm.Identities(), challenges, sessions, vault, auth.NewLogSender(logger), logger)
	hub := relay.NewHub(presence, queue, rm.Identities(), logger)
	att := attachments.NewService(c)

	return &App{
		config:      c,
		logger:      logger,
		flow:        flow,
		attachments: att,
		hub:         hub,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.flow, app.attachments, app.hub)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
