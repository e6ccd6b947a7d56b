package backend

import "context"

// StreamID is the transport-native identity of a recording stream. The file
// ingestion entry point addresses streams by this id directly; it does not
// accept the Recording wrapper used everywhere else.
type StreamID uint64

// Recording is an opaque handle to one live recording on the viewer, keyed
// by an (application id, recording id) pair.
type Recording interface {
	ApplicationID() string
	RecordingID() string
	Native() StreamID
}

// Backend is the remote viewer contract the facade logs into. Calls are
// synchronous and never retried; failures surface to the caller as-is.
type Backend interface {
	// AcquireRecording opens (or re-opens) the recording identified by the
	// application/recording id pair.
	AcquireRecording(ctx context.Context, applicationID, recordingID string) (Recording, error)

	// Log publishes a payload under an entity path into a recording.
	Log(ctx context.Context, entityPath string, p Payload, rec Recording) error

	// LogFile streams the contents of a geometry file into a recording,
	// addressed by the native stream id.
	LogFile(ctx context.Context, filePath string, stream StreamID) error
}
