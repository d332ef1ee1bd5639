package relay

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultchat/vaultchat/internal/common"
	"github.com/vaultchat/vaultchat/internal/logging"
	pb "github.com/vaultchat/vaultchat/internal/proto"
	"github.com/vaultchat/vaultchat/internal/server/identities"
	"github.com/vaultchat/vaultchat/internal/server/stores"
)

type fakeRoster struct {
	mu   sync.Mutex
	list []*identities.Identity
}

func (r *fakeRoster) Create(ctx context.Context, identity *identities.Identity) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, identity)
	return identity, nil
}

func (r *fakeRoster) GetByOrgPhone(ctx context.Context, orgID, phone string) (*identities.Identity, error) {
	return nil, common.ErrNotFound
}

func (r *fakeRoster) GetByOrgOrPhone(ctx context.Context, orgID, phone string) (*identities.Identity, error) {
	return nil, common.ErrNotFound
}

func (r *fakeRoster) GetByID(ctx context.Context, id string) (*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, identity := range r.list {
		if identity.ID == id {
			return identity, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeRoster) List(ctx context.Context) ([]*identities.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*identities.Identity, len(r.list))
	copy(result, r.list)
	return result, nil
}

func newTestHub(t *testing.T) (*Hub, *fakeRoster) {
	t.Helper()
	return newTestHubWithPresenceTTL(t, time.Minute)
}

func newTestHubWithPresenceTTL(t *testing.T, ttl time.Duration) (*Hub, *fakeRoster) {
	t.Helper()
	roster := &fakeRoster{}
	hub := NewHub(
		stores.NewMemoryPresenceRegistry(ttl),
		stores.NewMemoryOfflineQueue(),
		roster,
		logging.NewSlogLogger(slog.New(slog.DiscardHandler)),
	)
	return hub, roster
}

func recvFrame(t *testing.T, conn *Conn) *pb.ServerFrame {
	t.Helper()
	select {
	case out := <-conn.Outbox():
		out.Ack(nil)
		return out.Frame
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for frame")
		return nil
	}
}

func expectNoFrame(t *testing.T, conn *Conn) {
	t.Helper()
	select {
	case out := <-conn.Outbox():
		t.Fatalf("unexpected frame: %v", out.Frame)
	case <-time.After(20 * time.Millisecond):
	}
}

// drainAll runs Drain while acking every frame the way a healthy stream
// writer would, returning the frames in delivery order.
func drainAll(t *testing.T, hub *Hub, conn *Conn) ([]*pb.ServerFrame, int) {
	t.Helper()
	type result struct {
		count int
		err   error
	}
	done := make(chan result, 1)
	go func() {
		count, err := hub.Drain(context.Background(), conn)
		done <- result{count, err}
	}()

	var frames []*pb.ServerFrame
	for {
		select {
		case out := <-conn.Outbox():
			out.Ack(nil)
			frames = append(frames, out.Frame)
		case res := <-done:
			require.NoError(t, res.err)
			return frames, res.count
		case <-time.After(time.Second):
			t.Fatal("drain did not finish")
		}
	}
}

func TestRouteDirect_Online(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice) // bob's online broadcast

	ack, err := hub.RouteDirect(ctx, alice, &pb.Envelope{
		RecipientId: "bob",
		SenderId:    "mallory", // must be overwritten
		Ciphertext:  []byte("ct"),
		WrappedKey:  []byte("wk"),
		Iv:          []byte("iv"),
	})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_DELIVERED, ack.Status)
	assert.NotEmpty(t, ack.MessageId)

	frame := recvFrame(t, bob)
	env := frame.GetReceiveMessage()
	require.NotNil(t, env)
	assert.Equal(t, "alice", env.SenderId, "sender must be stamped from the connection")
	assert.Equal(t, ack.MessageId, env.MessageId)
	assert.NotZero(t, env.SentAt)
}

func TestRouteDirect_OfflineQueuesAndDrains(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)

	first, err := hub.RouteDirect(ctx, alice, &pb.Envelope{RecipientId: "bob", Ciphertext: []byte("one")})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_PENDING, first.Status)

	second, err := hub.RouteDirect(ctx, alice, &pb.Envelope{RecipientId: "bob", Ciphertext: []byte("two")})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_PENDING, second.Status)

	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice) // bob's online broadcast

	frames, count := drainAll(t, hub, bob)
	assert.Equal(t, 2, count)
	require.Len(t, frames, 2)

	env1 := frames[0].GetReceiveMessage()
	require.NotNil(t, env1)
	assert.Equal(t, []byte("one"), env1.Ciphertext, "queued frames replay in order")
	env2 := frames[1].GetReceiveMessage()
	require.NotNil(t, env2)
	assert.Equal(t, []byte("two"), env2.Ciphertext)

	// a second drain finds nothing
	count, err = hub.Drain(ctx, bob)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRouteDirect_StaleHeartbeatQueues(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHubWithPresenceTTL(t, 10*time.Millisecond)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice)

	// bob's socket stays open but his heartbeats stop
	time.Sleep(25 * time.Millisecond)
	require.NoError(t, hub.Heartbeat(ctx, alice))

	ack, err := hub.RouteDirect(ctx, alice, &pb.Envelope{RecipientId: "bob", Ciphertext: []byte("ct")})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_PENDING, ack.Status,
		"stale recipient counts as offline")
	expectNoFrame(t, bob)

	// a heartbeat brings bob back and delivery goes live again
	require.NoError(t, hub.Heartbeat(ctx, bob))
	ack, err = hub.RouteDirect(ctx, alice, &pb.Envelope{RecipientId: "bob", Ciphertext: []byte("ct2")})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_DELIVERED, ack.Status)
	require.NotNil(t, recvFrame(t, bob).GetReceiveMessage())
}

func TestDrain_UnwrittenFrameStaysQueued(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	for _, body := range []string{"one", "two"} {
		_, err := hub.RouteDirect(ctx, alice, &pb.Envelope{RecipientId: "bob", Ciphertext: []byte(body)})
		require.NoError(t, err)
	}

	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice)

	// the stream writer fails on the first frame: nothing may be popped
	type result struct {
		count int
		err   error
	}
	done := make(chan result, 1)
	go func() {
		count, err := hub.Drain(ctx, bob)
		done <- result{count, err}
	}()

	writeFailed := errors.New("stream write failed")
	select {
	case out := <-bob.Outbox():
		out.Ack(writeFailed)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for drained frame")
	}

	select {
	case res := <-done:
		assert.ErrorIs(t, res.err, writeFailed)
		assert.Zero(t, res.count)
	case <-time.After(time.Second):
		t.Fatal("drain did not finish")
	}

	// the reconnecting client gets both frames, in order
	bob2, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	frames, count := drainAll(t, hub, bob2)
	assert.Equal(t, 2, count)
	require.Len(t, frames, 2)
	assert.Equal(t, []byte("one"), frames[0].GetReceiveMessage().Ciphertext)
	assert.Equal(t, []byte("two"), frames[1].GetReceiveMessage().Ciphertext)
}

func TestRouteGroup(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice)

	env := &pb.GroupEnvelope{
		GroupId:    "g1",
		Ciphertext: []byte("ct"),
		WrappedKeys: map[string][]byte{
			"alice": []byte("wk-a"), // sender: must be skipped
			"bob":   []byte("wk-b"),
			"carol": []byte("wk-c"), // offline
		},
	}

	ack, err := hub.RouteGroup(ctx, alice, env)
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_PENDING, ack.Status, "one member offline")

	got := recvFrame(t, bob).GetReceiveGroupMessage()
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.SenderId)
	assert.Equal(t, "g1", got.GroupId)

	expectNoFrame(t, alice)

	carol, err := hub.Register(ctx, "carol")
	require.NoError(t, err)
	_, count := drainAll(t, hub, carol)
	assert.Equal(t, 1, count)
}

func TestRouteGroup_AllOnline(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice)

	ack, err := hub.RouteGroup(ctx, alice, &pb.GroupEnvelope{
		GroupId:     "g1",
		WrappedKeys: map[string][]byte{"bob": []byte("wk-b")},
	})
	require.NoError(t, err)
	assert.Equal(t, pb.DeliveryStatus_DELIVERY_STATUS_DELIVERED, ack.Status)
	require.NotNil(t, recvFrame(t, bob).GetReceiveGroupMessage())
}

func TestRouteTyping_BestEffort(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	bob, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	recvFrame(t, alice)

	hub.RouteTyping(alice, &pb.TypingFrame{PeerId: "bob"})
	tf := recvFrame(t, bob).GetTyping()
	require.NotNil(t, tf)
	assert.Equal(t, "alice", tf.SenderId)

	// typing to an offline peer is dropped, not queued
	hub.RouteTyping(alice, &pb.TypingFrame{PeerId: "carol"})
	carol, err := hub.Register(ctx, "carol")
	require.NoError(t, err)
	count, err := hub.Drain(ctx, carol)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPresenceBroadcast(t *testing.T) {
	ctx := context.Background()
	hub, _ := newTestHub(t)

	alice, err := hub.Register(ctx, "alice")
	require.NoError(t, err)
	dave, err := hub.Register(ctx, "dave")
	require.NoError(t, err)
	recvFrame(t, alice) // dave's online broadcast

	bob1, err := hub.Register(ctx, "bob")
	require.NoError(t, err)

	for _, watcher := range []*Conn{alice, dave} {
		update := recvFrame(t, watcher).GetPresenceUpdate()
		require.NotNil(t, update)
		assert.Equal(t, "bob", update.IdentityId)
		assert.True(t, update.Online)
	}

	// a second connection does not re-broadcast
	bob2, err := hub.Register(ctx, "bob")
	require.NoError(t, err)
	expectNoFrame(t, alice)

	// offline fires only when the last connection goes
	hub.Unregister(ctx, bob1)
	expectNoFrame(t, alice)

	hub.Unregister(ctx, bob2)
	update := recvFrame(t, alice).GetPresenceUpdate()
	require.NotNil(t, update)
	assert.Equal(t, "bob", update.IdentityId)
	assert.False(t, update.Online)
}

func TestContacts(t *testing.T) {
	ctx := context.Background()
	hub, roster := newTestHub(t)

	_, err := roster.Create(ctx, &identities.Identity{ID: "alice", OrgID: "ops-1", DisplayName: "Alice", PublicKey: []byte("pk-a")})
	require.NoError(t, err)
	_, err = roster.Create(ctx, &identities.Identity{ID: "bob", OrgID: "ops-2", DisplayName: "Bob", PublicKey: []byte("pk-b")})
	require.NoError(t, err)

	_, err = hub.Register(ctx, "bob")
	require.NoError(t, err)

	contacts, err := hub.Contacts(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, contacts, 1, "caller excluded")
	assert.Equal(t, "bob", contacts[0].IdentityId)
	assert.Equal(t, []byte("pk-b"), contacts[0].PublicKey)
	assert.True(t, contacts[0].Online)
}
