package data

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vizbridge/server/internal/backend"
	"github.com/vizbridge/server/internal/gui"
)

// Manifest describes windows, scenes, and primitives to declare at startup.
// Entries go through the facade in order, so entity names follow the same
// immediate/deferred rules as API calls.
type Manifest struct {
	Windows  []string      `yaml:"windows"`
	Scenes   []SceneEntry  `yaml:"scenes"`
	Entities []EntityEntry `yaml:"entities"`
}

type SceneEntry struct {
	Name   string `yaml:"name"`
	Window string `yaml:"window"` // optional: attach to this window on load
}

// EntityEntry is one primitive declaration. Kind selects which parameter
// fields apply; unused fields are ignored.
type EntityEntry struct {
	Kind   string       `yaml:"kind"` // box, arrow, capsule, line, square_face, triangle_face, sphere, floor, mesh_file
	Name   string       `yaml:"name"`
	Size   [3]float64   `yaml:"size"`   // box full extents
	Radius float64      `yaml:"radius"` // arrow, capsule, sphere
	Length float64      `yaml:"length"` // arrow
	Height float64      `yaml:"height"` // capsule
	Points [][3]float64 `yaml:"points"` // line (2), triangle_face (3), square_face (4)
	Color  [4]uint8     `yaml:"color"`
	Path   string       `yaml:"path"`  // mesh_file
	Group  string       `yaml:"group"` // optional: AddToGroup after creation
}

// LoadManifest loads a scene manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// Apply declares everything in the manifest through the facade: windows
// first, then scenes (with their window bindings), then entities.
func (m *Manifest) Apply(ctx context.Context, g *gui.Gui) error {
	for _, w := range m.Windows {
		if _, err := g.CreateWindow(ctx, w); err != nil {
			return fmt.Errorf("window %q: %w", w, err)
		}
	}
	for _, sc := range m.Scenes {
		if err := g.CreateScene(ctx, sc.Name); err != nil {
			return fmt.Errorf("scene %q: %w", sc.Name, err)
		}
		if sc.Window != "" {
			if err := g.AddSceneToWindow(ctx, sc.Name, sc.Window); err != nil {
				return fmt.Errorf("scene %q: %w", sc.Name, err)
			}
		}
	}
	for _, e := range m.Entities {
		if err := applyEntity(ctx, g, e); err != nil {
			return fmt.Errorf("entity %q: %w", e.Name, err)
		}
	}
	return nil
}

func applyEntity(ctx context.Context, g *gui.Gui, e EntityEntry) error {
	color := backend.Color(e.Color)
	var err error
	switch e.Kind {
	case "box":
		err = g.AddBox(ctx, e.Name, e.Size[0], e.Size[1], e.Size[2], color)
	case "arrow":
		err = g.AddArrow(ctx, e.Name, e.Radius, e.Length, color)
	case "capsule":
		err = g.AddCapsule(ctx, e.Name, e.Radius, e.Height, color)
	case "line":
		if len(e.Points) != 2 {
			return fmt.Errorf("line needs 2 points, got %d", len(e.Points))
		}
		err = g.AddLine(ctx, e.Name, e.Points[0], e.Points[1], color)
	case "square_face":
		if len(e.Points) != 4 {
			return fmt.Errorf("square_face needs 4 points, got %d", len(e.Points))
		}
		err = g.AddSquareFace(ctx, e.Name, e.Points[0], e.Points[1], e.Points[2], e.Points[3], color)
	case "triangle_face":
		if len(e.Points) != 3 {
			return fmt.Errorf("triangle_face needs 3 points, got %d", len(e.Points))
		}
		err = g.AddTriangleFace(ctx, e.Name, e.Points[0], e.Points[1], e.Points[2], color)
	case "sphere":
		err = g.AddSphere(ctx, e.Name, e.Radius, color)
	case "floor":
		err = g.AddFloor(ctx, e.Name)
	case "mesh_file":
		err = g.AddMeshFromPath(ctx, e.Name, e.Path)
	default:
		return fmt.Errorf("unknown primitive kind %q", e.Kind)
	}
	if err != nil {
		return err
	}
	if e.Group != "" {
		return g.AddToGroup(ctx, e.Name, e.Group)
	}
	return nil
}
