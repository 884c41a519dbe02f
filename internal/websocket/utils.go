package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeDeadline = 10 * time.Second
	// Notification streams sit idle between events; the read deadline only
	// reaps connections whose client vanished without a close frame.
	readDeadline = 5 * time.Minute
)

// Conn wraps a websocket connection with a write lock. gorilla/websocket
// permits only one concurrent writer, and the notification forwarder writes
// from a separate goroutine than the request loop, so every outbound frame
// must go through this wrapper.
type Conn struct {
	raw *websocket.Conn
	mu  sync.Mutex
}

// NewConn wraps an upgraded connection.
func NewConn(raw *websocket.Conn) *Conn {
	return &Conn{raw: raw}
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// WriteTyped sends a typed event payload down the connection.
func (c *Conn) WriteTyped(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.raw.SetWriteDeadline(time.Now().Add(writeDeadline))
	return c.raw.WriteJSON(v)
}

// WriteError sends an ErrorResponse down the connection.
func (c *Conn) WriteError(errMsg string) error {
	return c.WriteTyped(ErrorResponse{
		Event: EventError,
		Error: errMsg,
	})
}

// ReadJSON decodes the next client message into v, refreshing the read
// deadline first. Reads stay single-goroutine and take no lock.
func (c *Conn) ReadJSON(v interface{}) error {
	c.raw.SetReadDeadline(time.Now().Add(readDeadline))
	return c.raw.ReadJSON(v)
}
