package net

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/config"
)

// wsServer upgrades one connection and forwards every received envelope.
type wsServer struct {
	*httptest.Server
	frames chan Envelope
}

func newWSServer(t *testing.T) *wsServer {
	t.Helper()
	s := &wsServer{frames: make(chan Envelope, 16)}
	upgrader := websocket.Upgrader{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		for {
			var env Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			s.frames <- env
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *wsServer) next(t *testing.T) Envelope {
	t.Helper()
	select {
	case env := <-s.frames:
		return env
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for frame")
		return Envelope{}
	}
}

func dialTest(t *testing.T, s *wsServer) *Client {
	t.Helper()
	cfg := config.BackendConfig{
		URL:          "ws" + strings.TrimPrefix(s.URL, "http"),
		Token:        "secret",
		DialTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	}
	c, err := Dial(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestDial_SendsHello(t *testing.T) {
	s := newWSServer(t)
	dialTest(t, s)

	hello := s.next(t)
	assert.Equal(t, TypeHello, hello.Type)
	assert.Equal(t, "secret", hello.Token)
	assert.NotEmpty(t, hello.ClientID)
}

func TestAcquireRecording(t *testing.T) {
	s := newWSServer(t)
	c := dialTest(t, s)
	s.next(t) // hello

	rec, err := c.AcquireRecording(context.Background(), "win", "world")
	require.NoError(t, err)
	assert.Equal(t, "win", rec.ApplicationID())
	assert.Equal(t, "world", rec.RecordingID())
	assert.Equal(t, streamID("win", "world"), rec.Native())

	open := s.next(t)
	assert.Equal(t, TypeOpen, open.Type)
	assert.Equal(t, "win", open.App)
	assert.Equal(t, "world", open.Recording)
	assert.Equal(t, rec.Native(), open.Stream)
}

func TestLog(t *testing.T) {
	s := newWSServer(t)
	c := dialTest(t, s)
	s.next(t) // hello

	rec, err := c.AcquireRecording(context.Background(), "win", "world")
	require.NoError(t, err)
	s.next(t) // open

	p := backend.NewBox("b1", 1, 2, 3, backend.Color{255, 0, 0, 255})
	require.NoError(t, c.Log(context.Background(), "b1", p, rec))

	frame := s.next(t)
	assert.Equal(t, TypeLog, frame.Type)
	assert.Equal(t, "b1", frame.Path)
	assert.Equal(t, "Boxes3D", frame.Archetype)
	assert.Equal(t, rec.Native(), frame.Stream)

	var decoded backend.Boxes
	require.NoError(t, json.Unmarshal(frame.Payload, &decoded))
	assert.Equal(t, p.Sizes, decoded.Sizes)
}

func TestLog_NilRecording(t *testing.T) {
	s := newWSServer(t)
	c := dialTest(t, s)
	err := c.Log(context.Background(), "b1", backend.NewFloor(), nil)
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	s := newWSServer(t)
	c := dialTest(t, s)
	s.next(t) // hello

	path := filepath.Join(t.TempDir(), "robot.dae")
	require.NoError(t, os.WriteFile(path, []byte("mesh-bytes"), 0o644))

	stream := streamID("win", "world")
	require.NoError(t, c.LogFile(context.Background(), path, stream))

	frame := s.next(t)
	assert.Equal(t, TypeLogFile, frame.Type)
	assert.Equal(t, stream, frame.Stream)
	assert.Equal(t, path, frame.Path)
	assert.Equal(t, []byte("mesh-bytes"), frame.Data)
}

func TestLogFile_MissingFile(t *testing.T) {
	s := newWSServer(t)
	c := dialTest(t, s)
	err := c.LogFile(context.Background(), "/nonexistent/robot.dae", 1)
	assert.Error(t, err)
}

func TestStreamID_StablePerPair(t *testing.T) {
	assert.Equal(t, streamID("win", "world"), streamID("win", "world"))
	assert.NotEqual(t, streamID("win", "world"), streamID("win", "other"))
	assert.NotEqual(t, streamID("win", "world"), streamID("other", "world"))
}
