package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	pb "github.com/vaultchat/vaultchat/internal/proto"
)

// connect opens the relay stream, authenticates and starts the receive and
// heartbeat loops. On success the roster and any queued messages are
// requested immediately.
func (a *App) connect(ctx context.Context) error {
	streamCtx, cancel := context.WithCancel(ctx)

	stream, err := a.client.OpenChannel(streamCtx)
	if err != nil {
		cancel()
		return err
	}

	if err := stream.Send(&pb.ClientFrame{Frame: &pb.ClientFrame_Auth{
		Auth: &pb.AuthFrame{SessionToken: a.session.Token},
	}}); err != nil {
		cancel()
		return err
	}

	first, err := stream.Recv()
	if err != nil {
		cancel()
		return err
	}
	if first.GetAuthOk() == nil {
		cancel()
		return errors.New("relay refused the session")
	}

	a.mu.Lock()
	a.stream = stream
	a.streamStop = cancel
	a.mu.Unlock()

	go a.receiveLoop(stream)
	go a.heartbeatLoop(streamCtx)

	if err := a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_GetContacts{GetContacts: &pb.GetContactsFrame{}}}); err != nil {
		return err
	}
	return a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_GetPending{GetPending: &pb.GetPendingFrame{}}})
}

func (a *App) disconnect() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.streamStop != nil {
		a.streamStop()
		a.streamStop = nil
		a.stream = nil
	}
}

// sendFrame serializes stream writes; gRPC allows one concurrent sender.
func (a *App) sendFrame(frame *pb.ClientFrame) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stream == nil {
		return errors.New("not connected")
	}
	return a.stream.Send(frame)
}

func (a *App) receiveLoop(stream pb.VaultChatService_ChannelClient) {
	for {
		frame, err := stream.Recv()
		if err != nil {
			return
		}

		switch f := frame.Frame.(type) {

		case *pb.ServerFrame_ReceiveMessage:
			plaintext, err := a.session.Open(f.ReceiveMessage)
			if err != nil {
				printlnFn("[message from", f.ReceiveMessage.GetSenderId(), "could not be decrypted]")
				continue
			}
			printlnFn(fmt.Sprintf("[%s] %s: %s",
				formatTs(f.ReceiveMessage.GetSentAt()), a.displayName(f.ReceiveMessage.GetSenderId()), plaintext))

		case *pb.ServerFrame_ReceiveGroupMessage:
			plaintext, err := a.session.OpenGroup(f.ReceiveGroupMessage)
			if err != nil {
				printlnFn("[group message could not be decrypted]")
				continue
			}
			printlnFn(fmt.Sprintf("[%s] %s@%s: %s",
				formatTs(f.ReceiveGroupMessage.GetSentAt()),
				a.displayName(f.ReceiveGroupMessage.GetSenderId()),
				f.ReceiveGroupMessage.GetGroupId(), plaintext))

		case *pb.ServerFrame_MessageAck:
			printlnFn("delivery:", f.MessageAck.GetStatus().String())

		case *pb.ServerFrame_PresenceUpdate:
			a.session.SetPresence(f.PresenceUpdate.GetIdentityId(), f.PresenceUpdate.GetOnline())
			state := "offline"
			if f.PresenceUpdate.GetOnline() {
				state = "online"
			}
			printlnFn("*", a.displayName(f.PresenceUpdate.GetIdentityId()), "is now", state)

		case *pb.ServerFrame_Typing:
			printlnFn("*", a.displayName(f.Typing.GetSenderId()), "is typing...")

		case *pb.ServerFrame_ReadReceipt:
			printlnFn("* read by", a.displayName(f.ReadReceipt.GetSenderId()))

		case *pb.ServerFrame_Contacts:
			a.session.UpdateContacts(f.Contacts.GetContacts())

		case *pb.ServerFrame_PendingDrained:
			if f.PendingDrained.GetDelivered() > 0 {
				printlnFn(fmt.Sprintf("(%d message(s) delivered while you were away)", f.PendingDrained.GetDelivered()))
			}

		case *pb.ServerFrame_Error:
			printlnFn("server error:", f.Error.GetCode(), f.Error.GetMessage())
		}
	}
}

func (a *App) heartbeatLoop(ctx context.Context) {
	ticker := time.NewTicker(a.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_Heartbeat{Heartbeat: &pb.HeartbeatFrame{}}}); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Send prompts for a recipient and a message, encrypts and ships it.
func (a *App) Send(ctx context.Context) error {
	recipient, err := getSimpleText(a.reader, "Recipient identity id", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.session.SealDirect(recipient, []byte(text))
	if err != nil {
		printlnFn("Send failed:", err)
		return err
	}

	return a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_SendDirect{SendDirect: env}})
}

// SendGroup prompts for a group id, the member list and a message.
func (a *App) SendGroup(ctx context.Context) error {
	groupID, err := getSimpleText(a.reader, "Group id", os.Stdout)
	if err != nil {
		return err
	}
	memberLine, err := getSimpleText(a.reader, "Member identity ids (space separated)", os.Stdout)
	if err != nil {
		return err
	}
	text, err := getSimpleText(a.reader, "Message", os.Stdout)
	if err != nil {
		return err
	}

	env, err := a.session.SealGroup(groupID, strings.Fields(memberLine), []byte(text))
	if err != nil {
		printlnFn("Send failed:", err)
		return err
	}

	return a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_SendGroup{SendGroup: env}})
}

// Contacts prints the cached roster and asks the relay for a fresh one.
func (a *App) Contacts(ctx context.Context) error {
	for _, c := range a.session.Contacts() {
		state := "offline"
		if c.Online {
			state = "online"
		}
		printlnFn(fmt.Sprintf("  %-20s %-24s %s", c.ID, c.DisplayName, state))
	}
	return a.sendFrame(&pb.ClientFrame{Frame: &pb.ClientFrame_GetContacts{GetContacts: &pb.GetContactsFrame{}}})
}

func (a *App) displayName(identityID string) string {
	if c, ok := a.session.Contact(identityID); ok && c.DisplayName != "" {
		return c.DisplayName
	}
	return identityID
}

func formatTs(unixMilli int64) string {
	return time.UnixMilli(unixMilli).Format("15:04:05")
}
