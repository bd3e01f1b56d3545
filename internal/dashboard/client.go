package dashboard

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Client is one admitted dashboard connection. InterviewerID and InterviewID
// are bound during the handshake and never change; handlers must use these,
// never client-supplied identity.
type Client struct {
	Conn *websocket.Conn

	InterviewerID string
	InterviewID   string

	mu    sync.Mutex
	hook  func(Frame)
	alive bool
}

func NewClient(conn *websocket.Conn, interviewerID, interviewID string) *Client {
	return &Client{
		Conn:          conn,
		InterviewerID: interviewerID,
		InterviewID:   interviewID,
		alive:         true,
	}
}

// SetSendHook replaces the default WebSocket sender (used in tests).
func (c *Client) SetSendHook(fn func(Frame)) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

func (c *Client) Send(frame Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		c.hook(frame)
		return
	}
	if c.Conn == nil {
		return
	}
	_ = c.Conn.WriteJSON(frame)
}

// MarkAlive flips the liveness flag; called on pong receipt and on any
// inbound frame.
func (c *Client) MarkAlive() {
	c.mu.Lock()
	c.alive = true
	c.mu.Unlock()
}

func (c *Client) Alive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive
}

// ResetAlive clears the flag ahead of a ping sweep; the connection must
// prove itself again before the next sweep.
func (c *Client) ResetAlive() {
	c.mu.Lock()
	c.alive = false
	c.mu.Unlock()
}

// Ping sends a protocol-level ping. Pong receipt flips the alive flag via
// the conn's pong handler.
func (c *Client) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil || c.Conn == nil {
		return nil
	}
	return c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// Close tears the transport down without a close frame.
func (c *Client) Close() {
	if c.Conn != nil {
		_ = c.Conn.Close()
	}
}

// CloseWithReason writes a close frame, then tears the transport down.
func (c *Client) CloseWithReason(code int, reason string) {
	if c.Conn == nil {
		return
	}
	msg := websocket.FormatCloseMessage(code, reason)
	_ = c.Conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	_ = c.Conn.Close()
}
