package grpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vaultchat/vaultchat/internal/common"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/relay"
)

// Channel is the relay stream. The first client frame must be auth; after
// that a single writer goroutine pumps the connection's outbox to the stream
// while this goroutine reads. The session is re-checked on every frame so a
// revoked token terminates the stream on its next message.
func (s *GRPCServer) Channel(stream pb.VaultChatService_ChannelServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if err != nil {
		return err
	}
	authFrame := first.GetAuth()
	if authFrame == nil {
		return status.Error(codes.Unauthenticated, "first frame must be auth")
	}

	token := authFrame.SessionToken
	session, err := s.flow.Validate(ctx, token)
	if err != nil {
		return status.Error(codes.Unauthenticated, "invalid session")
	}

	conn, err := s.hub.Register(ctx, session.IdentityID)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return rpcError(err)
	}
	defer s.hub.Unregister(ctx, conn)

	writeErr := make(chan error, 1)
	go func() {
		for {
			select {
			case out := <-conn.Outbox():
				err := stream.Send(out.Frame)
				out.Ack(err)
				if err != nil {
					writeErr <- err
					conn.Close()
					return
				}
			case <-conn.Done():
				writeErr <- nil
				return
			case <-ctx.Done():
				writeErr <- ctx.Err()
				return
			}
		}
	}()

	if err := conn.Send(ctx, &pb.ServerFrame{Frame: &pb.ServerFrame_AuthOk{
		AuthOk: &pb.AuthOkFrame{IdentityId: session.IdentityID},
	}}); err != nil {
		return rpcError(err)
	}

	for {
		frame, err := stream.Recv()
		if err == io.EOF {
			conn.Close()
			return <-writeErr
		}
		if err != nil {
			conn.Close()
			<-writeErr
			return err
		}

		if _, err := s.flow.Validate(ctx, token); err != nil {
			conn.TrySend(&pb.ServerFrame{Frame: &pb.ServerFrame_Error{
				Error: &pb.ErrorFrame{Code: "unauthorized", Message: "session revoked"},
			}})
			conn.Close()
			<-writeErr
			return status.Error(codes.Unauthenticated, "session revoked")
		}

		if err := s.handleFrame(ctx, conn, frame); err != nil {
			conn.Close()
			<-writeErr
			return err
		}
	}
}

// handleFrame dispatches one client frame. Store outages are reported to the
// client as error frames without tearing the stream down; anything else
// terminates the stream.
func (s *GRPCServer) handleFrame(ctx context.Context, conn *relay.Conn, frame *pb.ClientFrame) error {
	switch f := frame.Frame.(type) {

	case *pb.ClientFrame_SendDirect:
		ack, err := s.hub.RouteDirect(ctx, conn, f.SendDirect)
		if err != nil {
			return s.reportFrameError(ctx, conn, err)
		}
		return conn.Send(ctx, &pb.ServerFrame{Frame: &pb.ServerFrame_MessageAck{MessageAck: ack}})

	case *pb.ClientFrame_SendGroup:
		ack, err := s.hub.RouteGroup(ctx, conn, f.SendGroup)
		if err != nil {
			return s.reportFrameError(ctx, conn, err)
		}
		return conn.Send(ctx, &pb.ServerFrame{Frame: &pb.ServerFrame_MessageAck{MessageAck: ack}})

	case *pb.ClientFrame_Typing:
		s.hub.RouteTyping(conn, f.Typing)
		return nil

	case *pb.ClientFrame_ReadReceipt:
		s.hub.RouteReadReceipt(conn, f.ReadReceipt)
		return nil

	case *pb.ClientFrame_GetPending:
		count, err := s.hub.Drain(ctx, conn)
		if err != nil {
			return s.reportFrameError(ctx, conn, err)
		}
		return conn.Send(ctx, &pb.ServerFrame{Frame: &pb.ServerFrame_PendingDrained{
			PendingDrained: &pb.PendingDrainedFrame{Delivered: int32(count)},
		}})

	case *pb.ClientFrame_GetContacts:
		contacts, err := s.hub.Contacts(ctx, conn.IdentityID)
		if err != nil {
			return s.reportFrameError(ctx, conn, err)
		}
		return conn.Send(ctx, &pb.ServerFrame{Frame: &pb.ServerFrame_Contacts{
			Contacts: &pb.ContactListFrame{Contacts: contacts},
		}})

	case *pb.ClientFrame_Heartbeat:
		if err := s.hub.Heartbeat(ctx, conn); err != nil {
			return s.reportFrameError(ctx, conn, err)
		}
		return nil

	case *pb.ClientFrame_Auth:
		// already authenticated; repeated auth frames are ignored
		return nil

	default:
		conn.TrySend(&pb.ServerFrame{Frame: &pb.ServerFrame_Error{
			Error: &pb.ErrorFrame{Code: "bad_frame", Message: "unknown frame type"},
		}})
		return nil
	}
}

func (s *GRPCServer) reportFrameError(ctx context.Context, conn *relay.Conn, err error) error {
	if errors.Is(err, common.ErrServiceUnavailable) {
		s.logger.Warn(ctx, "frame handling degraded", "conn_id", conn.ID, "error", err)
		conn.TrySend(&pb.ServerFrame{Frame: &pb.ServerFrame_Error{
			Error: &pb.ErrorFrame{Code: "unavailable", Message: "temporarily unavailable, retry"},
		}})
		return nil
	}
	return err
}
