package gui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	g, _ := newTestGui(t)
	require.NoError(t, g.CreateScene(context.Background(), "world"))

	tests := []struct {
		ident     string
		wantScene string // "" = bare
		wantName  string
	}{
		{"box", "", "box"},
		{"world/box", "world", "box"},
		{"world/sub/box", "world", "sub/box"},
		{"unknown/box", "", "unknown/box"},
		{"world/", "", "world/"},
		{"/box", "", "/box"},
		{"", "", ""},
	}
	for _, tt := range tests {
		got := g.resolveTarget(tt.ident)
		if tt.wantScene == "" {
			assert.Nil(t, got.scene, "ident %q", tt.ident)
		} else {
			require.NotNil(t, got.scene, "ident %q", tt.ident)
			assert.Equal(t, tt.wantScene, got.scene.Name, "ident %q", tt.ident)
		}
		assert.Equal(t, tt.wantName, got.name, "ident %q", tt.ident)
	}
}

func TestResolveTarget_SeesLaterRegistrations(t *testing.T) {
	g, _ := newTestGui(t)

	got := g.resolveTarget("world/box")
	assert.Nil(t, got.scene, "scene not registered yet")

	require.NoError(t, g.CreateScene(context.Background(), "world"))
	got = g.resolveTarget("world/box")
	require.NotNil(t, got.scene, "resolution is re-evaluated, never cached")
	assert.Equal(t, "box", got.name)
}
