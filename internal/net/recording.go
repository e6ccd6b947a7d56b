package net

import (
	"github.com/cespare/xxhash/v2"

	"github.com/vizbridge/server/internal/backend"
)

// recording implements backend.Recording for streams opened on this client.
type recording struct {
	app    string
	rec    string
	stream backend.StreamID
}

func (r *recording) ApplicationID() string    { return r.app }
func (r *recording) RecordingID() string      { return r.rec }
func (r *recording) Native() backend.StreamID { return r.stream }

// streamID derives the stable transport id for an application/recording pair.
// Re-opening the same pair yields the same stream, which is what makes
// AcquireRecording idempotent on the viewer side.
func streamID(app, rec string) backend.StreamID {
	return backend.StreamID(xxhash.Sum64String(app + "/" + rec))
}
