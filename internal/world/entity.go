package world

import "github.com/vizbridge/server/internal/backend"

// Entity is one named primitive known to the registry. Name is the identifier
// after any scene prefix has been stripped. Scenes is the set of scenes the
// entity has been logged into; Scene records are shared by reference, so
// membership compares identity.
type Entity struct {
	Name    string
	Payload backend.Payload
	Scenes  []*Scene
}

// MemberOf reports whether the entity has been logged into the given scene.
func (e *Entity) MemberOf(s *Scene) bool {
	for _, m := range e.Scenes {
		if m == s {
			return true
		}
	}
	return false
}

// AddScene records scene membership. Adding the same scene twice is a no-op.
func (e *Entity) AddScene(s *Scene) {
	if !e.MemberOf(s) {
		e.Scenes = append(e.Scenes, s)
	}
}
