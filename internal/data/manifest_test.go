package data

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/gui"
	"github.com/vizbridge/server/internal/world"
)

type nullRecording struct{ stream backend.StreamID }

func (r nullRecording) ApplicationID() string    { return "" }
func (r nullRecording) RecordingID() string      { return "" }
func (r nullRecording) Native() backend.StreamID { return r.stream }

// nullBackend accepts everything and counts log calls.
type nullBackend struct {
	logs int
}

func (b *nullBackend) AcquireRecording(context.Context, string, string) (backend.Recording, error) {
	return nullRecording{}, nil
}

func (b *nullBackend) Log(context.Context, string, backend.Payload, backend.Recording) error {
	b.logs++
	return nil
}

func (b *nullBackend) LogFile(context.Context, string, backend.StreamID) error {
	b.logs++
	return nil
}

const sampleManifest = `
windows:
  - main
scenes:
  - name: world
    window: main
  - name: staging
entities:
  - kind: floor
    name: world/ground
  - kind: box
    name: world/crate
    size: [1, 1, 0.5]
    color: [200, 120, 40, 255]
  - kind: arrow
    name: pointer
    radius: 0.05
    length: 1.5
    color: [255, 0, 0, 255]
    group: world
  - kind: sphere
    name: marker
    radius: 0.2
    color: [0, 0, 255, 255]
`

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, sampleManifest))
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, m.Windows)
	require.Len(t, m.Scenes, 2)
	assert.Equal(t, "main", m.Scenes[0].Window)
	assert.Len(t, m.Entities, 4)
}

func TestApply(t *testing.T) {
	m, err := LoadManifest(writeManifest(t, sampleManifest))
	require.NoError(t, err)

	be := &nullBackend{}
	st := world.NewState()
	g := gui.New(st, be, nil, zap.NewNop())
	require.NoError(t, m.Apply(context.Background(), g))

	assert.True(t, st.HasWindow("main"))
	require.NotNil(t, st.FindScene("world"))
	assert.True(t, st.FindScene("world").Bound())
	assert.False(t, st.FindScene("staging").Bound())

	// ground and crate logged immediately, pointer via its group, marker held.
	assert.Equal(t, 3, be.logs)
	assert.NotNil(t, st.FindEntity("ground"))
	assert.NotNil(t, st.FindEntity("crate"))
	require.NotNil(t, st.FindEntity("pointer"))
	assert.Len(t, st.FindEntity("pointer").Scenes, 1)
	require.NotNil(t, st.FindEntity("marker"))
	assert.Empty(t, st.FindEntity("marker").Scenes)
}

func TestApply_BadShapes(t *testing.T) {
	be := &nullBackend{}
	g := gui.New(world.NewState(), be, nil, zap.NewNop())
	ctx := context.Background()

	m := &Manifest{Entities: []EntityEntry{{Kind: "line", Name: "l", Points: [][3]float64{{0, 0, 0}}}}}
	assert.ErrorContains(t, m.Apply(ctx, g), "line needs 2 points")

	m = &Manifest{Entities: []EntityEntry{{Kind: "warp", Name: "w"}}}
	assert.ErrorContains(t, m.Apply(ctx, g), "unknown primitive kind")
}
