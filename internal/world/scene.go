package world

import "github.com/vizbridge/server/internal/backend"

// Scene pairs a declared scene name with its recording stream. Rec stays nil
// until the scene is attached to a window; the viewer creates the actual
// window and scene together at that point.
type Scene struct {
	Name string
	Rec  backend.Recording
}

// Bound reports whether the scene has acquired a recording.
func (s *Scene) Bound() bool { return s.Rec != nil }
