package net

import (
	"encoding/json"

	"github.com/vizbridge/server/internal/backend"
)

// Envelope types. The viewer ignores unknown fields, so one frame shape
// covers the whole protocol.
const (
	TypeHello   = "hello"    // client id + token, first frame after dial
	TypeOpen    = "open"     // materialize a recording stream
	TypeLog     = "log"      // publish a payload under an entity path
	TypeLogFile = "log_file" // ingest a geometry file's bytes
	TypeNotice  = "notice"   // server → client diagnostic
)

// Envelope is the JSON frame exchanged with the viewer.
type Envelope struct {
	Type string `json:"type"`

	// hello
	ClientID string `json:"client_id,omitempty"`
	Token    string `json:"token,omitempty"`

	// open / log / log_file
	Stream    backend.StreamID `json:"stream,omitempty"`
	App       string           `json:"app,omitempty"`
	Recording string           `json:"recording,omitempty"`
	Path      string           `json:"path,omitempty"`
	Archetype string           `json:"archetype,omitempty"`
	Payload   json.RawMessage  `json:"payload,omitempty"`
	Data      []byte           `json:"data,omitempty"` // file bytes, base64 on the wire

	// notice
	Level   string `json:"level,omitempty"`
	Message string `json:"message,omitempty"`
}
