package net

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/config"
)

// Client speaks the viewer's websocket protocol and implements
// backend.Backend. Calls are synchronous writes; the read loop only drains
// server notices. A write mutex serializes frames since gorilla allows one
// concurrent writer per connection.
type Client struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	id           string
	writeTimeout time.Duration
	log          *zap.Logger
	closeCh      chan struct{}
}

var _ backend.Backend = (*Client)(nil)

// Dial connects to the viewer, sends the hello frame, and starts the read
// and keepalive loops.
func Dial(ctx context.Context, cfg config.BackendConfig, log *zap.Logger) (*Client, error) {
	dialer := websocket.Dialer{HandshakeTimeout: cfg.DialTimeout}
	conn, _, err := dialer.DialContext(ctx, cfg.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial viewer %s: %w", cfg.URL, err)
	}

	c := &Client{
		conn:         conn,
		id:           uuid.NewString(),
		writeTimeout: cfg.WriteTimeout,
		log:          log,
		closeCh:      make(chan struct{}),
	}
	if err := c.send(ctx, &Envelope{Type: TypeHello, ClientID: c.id, Token: cfg.Token}); err != nil {
		conn.Close()
		return nil, fmt.Errorf("hello: %w", err)
	}

	go c.readLoop()
	if cfg.PingInterval > 0 {
		go c.pingLoop(cfg.PingInterval)
	}

	log.Info("connected to viewer", zap.String("url", cfg.URL), zap.String("client", c.id))
	return c, nil
}

// AcquireRecording opens the recording stream for an application/recording
// pair. The stream id is derived from the pair, so re-acquiring is safe.
func (c *Client) AcquireRecording(ctx context.Context, applicationID, recordingID string) (backend.Recording, error) {
	rec := &recording{
		app:    applicationID,
		rec:    recordingID,
		stream: streamID(applicationID, recordingID),
	}
	env := &Envelope{Type: TypeOpen, Stream: rec.stream, App: applicationID, Recording: recordingID}
	if err := c.send(ctx, env); err != nil {
		return nil, fmt.Errorf("open recording %s/%s: %w", applicationID, recordingID, err)
	}
	return rec, nil
}

// Log publishes a payload under an entity path into a recording.
func (c *Client) Log(ctx context.Context, entityPath string, p backend.Payload, rec backend.Recording) error {
	if rec == nil {
		return fmt.Errorf("log %q: nil recording", entityPath)
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", p.Kind(), err)
	}
	env := &Envelope{
		Type:      TypeLog,
		Stream:    rec.Native(),
		Path:      entityPath,
		Archetype: p.Kind().String(),
		Payload:   body,
	}
	return c.send(ctx, env)
}

// LogFile reads a geometry file and ships its bytes to the viewer's file
// ingestion entry point, addressed by the native stream id.
func (c *Client) LogFile(ctx context.Context, filePath string, stream backend.StreamID) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read mesh file: %w", err)
	}
	env := &Envelope{Type: TypeLogFile, Stream: stream, Path: filePath, Data: data}
	return c.send(ctx, env)
}

// Close stops the background loops and closes the connection.
func (c *Client) Close() error {
	close(c.closeCh)
	deadline := time.Now().Add(time.Second)
	c.mu.Lock()
	c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) send(ctx context.Context, env *Envelope) error {
	deadline := time.Now().Add(c.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(deadline)
	return c.conn.WriteJSON(env)
}

// readLoop drains server frames. Notices are logged; anything else is
// ignored. Exits when the connection drops.
func (c *Client) readLoop() {
	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			select {
			case <-c.closeCh:
			default:
				c.log.Warn("viewer connection lost", zap.Error(err))
			}
			return
		}
		if env.Type != TypeNotice {
			continue
		}
		if env.Level == "error" {
			c.log.Error("viewer notice", zap.String("message", env.Message))
		} else {
			c.log.Info("viewer notice", zap.String("message", env.Message))
		}
	}
}

func (c *Client) pingLoop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.closeCh:
			return
		case <-t.C:
			deadline := time.Now().Add(c.writeTimeout)
			c.mu.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, deadline)
			c.mu.Unlock()
			if err != nil {
				c.log.Warn("keepalive ping failed", zap.Error(err))
				return
			}
		}
	}
}
