package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/vaultchat/vaultchat/internal/logging"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/attachments"
	"github.com/vaultchat/vaultchat/internal/server/auth"
	"github.com/vaultchat/vaultchat/internal/server/relay"
)

type GRPCServer struct {
	pb.UnimplementedVaultChatServiceServer
	address     string
	flow        *auth.Flow
	attachments *attachments.Service
	hub         *relay.Hub
	logger      logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, flow *auth.Flow, att *attachments.Service, hub *relay.Hub) (*GRPCServer, error) {
	return &GRPCServer{
		address:     a,
		logger:      l.With("module", "grpc_server"),
		flow:        flow,
		attachments: att,
		hub:         hub,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionTokenInterceptor))

	// registers service
	pb.RegisterVaultChatServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
