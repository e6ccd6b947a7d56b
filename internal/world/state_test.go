package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vizbridge/server/internal/backend"
)

func TestFindScene_FirstMatchWins(t *testing.T) {
	st := NewState()
	first := st.AddScene("world")
	st.AddScene("world")

	assert.Same(t, first, st.FindScene("world"))
	assert.Nil(t, st.FindScene("nope"))
}

func TestHasWindow_DuplicatesAllowed(t *testing.T) {
	st := NewState()
	st.AddWindow("win")
	st.AddWindow("win")
	assert.True(t, st.HasWindow("win"))
	assert.False(t, st.HasWindow("other"))
	assert.Len(t, st.Windows, 2)
}

func TestRecording(t *testing.T) {
	st := NewState()
	sc := st.AddScene("world")
	assert.Nil(t, st.Recording("world"), "unbound scene has no recording")
	assert.Nil(t, st.Recording("nope"))

	sc.Rec = stubRecording{}
	assert.NotNil(t, st.Recording("world"))
}

type stubRecording struct{}

func (stubRecording) ApplicationID() string    { return "app" }
func (stubRecording) RecordingID() string      { return "rec" }
func (stubRecording) Native() backend.StreamID { return 1 }

func TestFindEntity_AcrossBuckets(t *testing.T) {
	st := NewState()
	box := &Entity{Name: "box", Payload: backend.NewBox("box", 1, 1, 1, backend.Color{})}
	sphere := &Entity{Name: "sphere", Payload: backend.NewSphere("sphere", 1, backend.Color{})}
	st.Register(box)
	st.Register(sphere)

	assert.Same(t, box, st.FindEntity("box"))
	assert.Same(t, sphere, st.FindEntity("sphere"))
	assert.Nil(t, st.FindEntity("ghost"))
	assert.Equal(t, 2, st.EntityCount())
}

func TestMembership_IdentityAndIdempotence(t *testing.T) {
	st := NewState()
	a := st.AddScene("world")
	b := st.AddScene("world") // duplicate name, distinct record
	e := &Entity{Name: "e", Payload: backend.NewFloor()}

	e.AddScene(a)
	e.AddScene(a)
	require.Len(t, e.Scenes, 1)

	assert.True(t, e.MemberOf(a))
	assert.False(t, e.MemberOf(b), "membership compares identity, not name")
}
