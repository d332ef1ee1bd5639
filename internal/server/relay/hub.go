// Package relay routes encrypted envelopes between live connections and the
// offline queues. The hub never inspects ciphertext: routing uses only the
// addressing fields, and sender identity is always stamped from the
// authenticated connection.
package relay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/logging"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/identities"
	"github.com/vaultchat/vaultchat/internal/server/stores"
)

type Hub struct {
	mu         sync.RWMutex
	conns      map[string]*Conn
	byIdentity map[string]map[string]*Conn

	presence   stores.PresenceRegistry
	queue      stores.OfflineQueue
	identities identities.Repository
	logger     logging.Logger
}

func NewHub(presence stores.PresenceRegistry, queue stores.OfflineQueue,
	repo identities.Repository, logger logging.Logger) *Hub {
	return &Hub{
		conns:      make(map[string]*Conn),
		byIdentity: make(map[string]map[string]*Conn),
		presence:   presence,
		queue:      queue,
		identities: repo,
		logger:     logger.With("component", "relay"),
	}
}

// Register creates a connection for the identity, records presence and
// notifies other online identities. The first connection of an identity
// produces an online broadcast; further ones do not change what others see.
func (h *Hub) Register(ctx context.Context, identityID string) (*Conn, error) {
	conn := newConn(identityID)

	h.mu.Lock()
	first := len(h.byIdentity[identityID]) == 0
	h.conns[conn.ID] = conn
	if h.byIdentity[identityID] == nil {
		h.byIdentity[identityID] = make(map[string]*Conn)
	}
	h.byIdentity[identityID][conn.ID] = conn
	h.mu.Unlock()

	if err := h.presence.Up(ctx, identityID, conn.ID); err != nil {
		h.remove(conn)
		return nil, err
	}

	if first {
		h.broadcastPresence(identityID, true)
	}

	h.logger.Debug(ctx, "connection registered", "conn_id", conn.ID, "identity_id", identityID)
	return conn, nil
}

// Unregister tears the connection down. The identity's offline broadcast
// fires only when its last connection goes away.
func (h *Hub) Unregister(ctx context.Context, conn *Conn) {
	conn.Close()
	h.remove(conn)

	last, err := h.presence.Down(ctx, conn.IdentityID, conn.ID)
	if err != nil {
		h.logger.Warn(ctx, "presence teardown failed", "conn_id", conn.ID, "error", err)
	}
	if last {
		h.broadcastPresence(conn.IdentityID, false)
	}

	h.logger.Debug(ctx, "connection unregistered", "conn_id", conn.ID, "identity_id", conn.IdentityID)
}

func (h *Hub) remove(conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn.ID)
	if set := h.byIdentity[conn.IdentityID]; set != nil {
		delete(set, conn.ID)
		if len(set) == 0 {
			delete(h.byIdentity, conn.IdentityID)
		}
	}
}

// Heartbeat refreshes the connection's presence record.
func (h *Hub) Heartbeat(ctx context.Context, conn *Conn) error {
	return h.presence.Heartbeat(ctx, conn.IdentityID, conn.ID)
}

// RouteDirect delivers a direct envelope. The relay stamps message id,
// sender and server receive time before forwarding; whatever the client put
// in sender_id is discarded. Offline recipients get the frame queued and the
// sender an ack with PENDING status.
func (h *Hub) RouteDirect(ctx context.Context, sender *Conn, env *pb.Envelope) (*pb.MessageAckFrame, error) {
	if env.MessageId == "" {
		env.MessageId = uuid.NewString()
	}
	env.SenderId = sender.IdentityID
	env.SentAt = time.Now().UnixMilli()

	frame := &pb.ServerFrame{Frame: &pb.ServerFrame_ReceiveMessage{ReceiveMessage: env}}

	status, err := h.deliverOrQueue(ctx, env.RecipientId, frame)
	if err != nil {
		return nil, err
	}

	return &pb.MessageAckFrame{MessageId: env.MessageId, Status: status}, nil
}

// RouteGroup fans a group envelope out to every member that has a key wrap,
// except the sender. The envelope is forwarded whole; each member unwraps
// only its own entry. The ack reports DELIVERED only when every member was
// reached live.
func (h *Hub) RouteGroup(ctx context.Context, sender *Conn, env *pb.GroupEnvelope) (*pb.MessageAckFrame, error) {
	if env.MessageId == "" {
		env.MessageId = uuid.NewString()
	}
	env.SenderId = sender.IdentityID
	env.SentAt = time.Now().UnixMilli()

	frame := &pb.ServerFrame{Frame: &pb.ServerFrame_ReceiveGroupMessage{ReceiveGroupMessage: env}}

	status := pb.DeliveryStatus_DELIVERY_STATUS_DELIVERED
	for memberID := range env.WrappedKeys {
		if memberID == sender.IdentityID {
			continue
		}
		memberStatus, err := h.deliverOrQueue(ctx, memberID, frame)
		if err != nil {
			return nil, err
		}
		if memberStatus == pb.DeliveryStatus_DELIVERY_STATUS_PENDING {
			status = pb.DeliveryStatus_DELIVERY_STATUS_PENDING
		}
	}

	return &pb.MessageAckFrame{MessageId: env.MessageId, Status: status}, nil
}

// deliverOrQueue attempts live delivery and falls back to the offline queue.
// The presence registry, not the local conn map, decides whether the
// recipient counts as online: a socket whose heartbeats have gone stale is
// treated as offline and its traffic queued.
func (h *Hub) deliverOrQueue(ctx context.Context, identityID string, frame *pb.ServerFrame) (pb.DeliveryStatus, error) {
	online, err := h.presence.Online(ctx, identityID)
	if err != nil {
		return 0, err
	}

	delivered := false
	if online {
		for _, conn := range h.connsOf(identityID) {
			if err := conn.Send(ctx, frame); err != nil {
				if errors.Is(err, ErrConnClosed) {
					continue
				}
				return 0, err
			}
			delivered = true
		}
	}
	if delivered {
		return pb.DeliveryStatus_DELIVERY_STATUS_DELIVERED, nil
	}

	payload, err := proto.Marshal(frame)
	if err != nil {
		return 0, err
	}
	if err := h.queue.Enqueue(ctx, identityID, payload); err != nil {
		return 0, err
	}
	return pb.DeliveryStatus_DELIVERY_STATUS_PENDING, nil
}

// RouteTyping forwards a typing notification to the peer's live connections.
// Best-effort: nothing is queued and slow receivers are skipped.
func (h *Hub) RouteTyping(sender *Conn, tf *pb.TypingFrame) {
	tf.SenderId = sender.IdentityID
	frame := &pb.ServerFrame{Frame: &pb.ServerFrame_Typing{Typing: tf}}
	for _, conn := range h.connsOf(tf.PeerId) {
		conn.TrySend(frame)
	}
}

// RouteReadReceipt forwards a read receipt to the peer's live connections.
// Best-effort, same as typing.
func (h *Hub) RouteReadReceipt(sender *Conn, rf *pb.ReadReceiptFrame) {
	rf.SenderId = sender.IdentityID
	frame := &pb.ServerFrame{Frame: &pb.ServerFrame_ReadReceipt{ReadReceipt: rf}}
	for _, conn := range h.connsOf(rf.PeerId) {
		conn.TrySend(frame)
	}
}

// Drain replays the connection's offline queue in order. Each frame is
// popped only after the stream writer confirms it was written, so a
// disconnect mid-drain re-delivers rather than loses.
func (h *Hub) Drain(ctx context.Context, conn *Conn) (int, error) {
	count := 0
	for {
		payload, err := h.queue.Peek(ctx, conn.IdentityID)
		if errors.Is(err, common.ErrNotFound) {
			return count, nil
		}
		if err != nil {
			return count, err
		}

		frame := &pb.ServerFrame{}
		if err := proto.Unmarshal(payload, frame); err != nil {
			h.logger.Warn(ctx, "dropping corrupt queued frame", "identity_id", conn.IdentityID, "error", err)
			if err := h.queue.Pop(ctx, conn.IdentityID); err != nil {
				return count, err
			}
			continue
		}

		if err := conn.SendConfirmed(ctx, frame); err != nil {
			return count, err
		}
		if err := h.queue.Pop(ctx, conn.IdentityID); err != nil {
			return count, err
		}
		count++
	}
}

// Contacts lists the roster with live presence, excluding the caller.
func (h *Hub) Contacts(ctx context.Context, selfID string) ([]*pb.Contact, error) {
	roster, err := h.identities.List(ctx)
	if err != nil {
		return nil, err
	}

	contacts := make([]*pb.Contact, 0, len(roster))
	for _, identity := range roster {
		if identity.ID == selfID {
			continue
		}
		online, err := h.presence.Online(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, &pb.Contact{
			IdentityId:  identity.ID,
			DisplayName: identity.DisplayName,
			PublicKey:   identity.PublicKey,
			Online:      online,
		})
	}
	return contacts, nil
}

func (h *Hub) connsOf(identityID string) []*Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()
	set := h.byIdentity[identityID]
	conns := make([]*Conn, 0, len(set))
	for _, conn := range set {
		conns = append(conns, conn)
	}
	return conns
}

func (h *Hub) broadcastPresence(identityID string, online bool) {
	frame := &pb.ServerFrame{Frame: &pb.ServerFrame_PresenceUpdate{
		PresenceUpdate: &pb.PresenceUpdateFrame{IdentityId: identityID, Online: online},
	}}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conn := range h.conns {
		if conn.IdentityID == identityID {
			continue
		}
		conn.TrySend(frame)
	}
}
