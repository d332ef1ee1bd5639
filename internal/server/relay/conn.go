package relay

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	pb "github.com/vaultchat/vaultchat/internal/proto"
)

// ErrConnClosed is returned by Send when the connection has been torn down.
var ErrConnClosed = errors.New("connection closed")

const sendBuffer = 32

// Outbound is one frame waiting for the stream writer. The writer must call
// Ack with the write result after attempting the frame; senders that asked
// for confirmation block on it.
type Outbound struct {
	Frame *pb.ServerFrame
	ack   chan error
}

// Ack reports the write result to a confirming sender. No-op for
// fire-and-forget frames.
func (o Outbound) Ack(err error) {
	if o.ack != nil {
		o.ack <- err
	}
}

// Conn is one live relay connection. All frames leave through the send
// channel and exactly one goroutine (the stream writer) drains it, so
// concurrent routers never interleave writes on the wire.
type Conn struct {
	ID         string
	IdentityID string

	send      chan Outbound
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(identityID string) *Conn {
	return &Conn{
		ID:         uuid.NewString(),
		IdentityID: identityID,
		send:       make(chan Outbound, sendBuffer),
		done:       make(chan struct{}),
	}
}

// Send queues a frame, blocking when the receiver is slow. Message envelopes
// and acks go through here: backpressure is preferred over loss.
func (c *Conn) Send(ctx context.Context, frame *pb.ServerFrame) error {
	select {
	case c.send <- Outbound{Frame: frame}:
		return nil
	case <-c.done:
		return ErrConnClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SendConfirmed queues a frame and waits until the stream writer has actually
// written it. Queue replay uses this: a frame must not be popped from the
// offline queue on the strength of having been buffered.
func (c *Conn) SendConfirmed(ctx context.Context, frame *pb.ServerFrame) error {
	out := Outbound{Frame: frame, ack: make(chan error, 1)}
	select {
	case c.send <- out:
	case <-c.done:
		return ErrConnClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-out.ack:
		return err
	case <-c.done:
		return ErrConnClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySend queues a frame if there is room and drops it otherwise. Presence,
// typing and receipt frames are best-effort and must never block a router.
func (c *Conn) TrySend(frame *pb.ServerFrame) bool {
	select {
	case c.send <- Outbound{Frame: frame}:
		return true
	case <-c.done:
		return false
	default:
		return false
	}
}

// Outbox is drained by the single stream writer goroutine.
func (c *Conn) Outbox() <-chan Outbound {
	return c.send
}

// Done is closed when the connection is torn down.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close is idempotent.
func (c *Conn) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
