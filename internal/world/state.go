package world

import "github.com/vizbridge/server/internal/backend"

// State owns all registry state: declared window names, declared scenes, and
// entities bucketed by archetype. Accessed only from the control goroutine —
// no locks needed. Callers sharing one State across goroutines must add their
// own mutual exclusion around every operation.
type State struct {
	Windows []string
	Scenes  []*Scene

	buckets [backend.NumArchetypes][]*Entity
}

func NewState() *State {
	return &State{}
}

// AddWindow declares a window name. Duplicates are allowed; windows carry no
// state of their own.
func (st *State) AddWindow(name string) {
	st.Windows = append(st.Windows, name)
}

// HasWindow reports whether a window with the given name was declared.
func (st *State) HasWindow(name string) bool {
	for _, w := range st.Windows {
		if w == name {
			return true
		}
	}
	return false
}

// AddScene declares a scene with no recording yet.
func (st *State) AddScene(name string) *Scene {
	sc := &Scene{Name: name}
	st.Scenes = append(st.Scenes, sc)
	return sc
}

// FindScene returns the first scene with the given name, or nil. Duplicate
// names are not rejected at registration, so first match wins.
func (st *State) FindScene(name string) *Scene {
	for _, sc := range st.Scenes {
		if sc.Name == name {
			return sc
		}
	}
	return nil
}

// Recording returns the recording bound to the named scene, or nil when the
// scene is unknown or not yet attached to a window.
func (st *State) Recording(sceneName string) backend.Recording {
	if sc := st.FindScene(sceneName); sc != nil {
		return sc.Rec
	}
	return nil
}

// Register inserts an entity into the bucket for its payload's archetype.
func (st *State) Register(e *Entity) {
	k := e.Payload.Kind()
	st.buckets[k] = append(st.buckets[k], e)
}

// FindEntity scans every bucket for the first entity with the given name.
// O(total entities); the registry is small and calls are interactive.
func (st *State) FindEntity(name string) *Entity {
	for k := range st.buckets {
		for _, e := range st.buckets[k] {
			if e.Name == name {
				return e
			}
		}
	}
	return nil
}

// EntityCount returns the total number of registered entities.
func (st *State) EntityCount() int {
	n := 0
	for k := range st.buckets {
		n += len(st.buckets[k])
	}
	return n
}
