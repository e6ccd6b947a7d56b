package gui

import (
	"context"

	"github.com/vizbridge/server/internal/backend"
)

// Primitive entry points. Each builds its payload and hands it to the shared
// add protocol; the identifier as given (scene prefix included) is used for
// the display label, matching the legacy API.

// AddBox adds a solid box with the given full extents.
func (g *Gui) AddBox(ctx context.Context, name string, sx, sy, sz float64, color backend.Color) error {
	return g.add(ctx, name, backend.NewBox(name, sx, sy, sz, color))
}

// AddArrow adds an arrow of the given radius and length pointing along +Z.
func (g *Gui) AddArrow(ctx context.Context, name string, radius, length float64, color backend.Color) error {
	return g.add(ctx, name, backend.NewArrow(name, radius, length, color))
}

// AddCapsule adds a capsule of the given radius and height.
func (g *Gui) AddCapsule(ctx context.Context, name string, radius, height float64, color backend.Color) error {
	return g.add(ctx, name, backend.NewCapsule(radius, height, color))
}

// AddLine adds a line segment between two points.
func (g *Gui) AddLine(ctx context.Context, name string, p1, p2 backend.Vec3, color backend.Color) error {
	return g.add(ctx, name, backend.NewLine(name, p1, p2, color))
}

// AddSquareFace adds a quad face through four corners.
func (g *Gui) AddSquareFace(ctx context.Context, name string, p1, p2, p3, p4 backend.Vec3, color backend.Color) error {
	return g.add(ctx, name, backend.NewSquareFace(p1, p2, p3, p4, color))
}

// AddTriangleFace adds a single triangle face.
func (g *Gui) AddTriangleFace(ctx context.Context, name string, p1, p2, p3 backend.Vec3, color backend.Color) error {
	return g.add(ctx, name, backend.NewTriangleFace(p1, p2, p3, color))
}

// AddSphere adds a sphere of the given radius at the origin.
func (g *Gui) AddSphere(ctx context.Context, name string, radius float64, color backend.Color) error {
	return g.add(ctx, name, backend.NewSphere(name, radius, color))
}

// AddFloor adds the standard grey ground plane.
func (g *Gui) AddFloor(ctx context.Context, name string) error {
	return g.add(ctx, name, backend.NewFloor())
}

// AddMeshFromPath adds a mesh whose geometry the viewer ingests from a file.
func (g *Gui) AddMeshFromPath(ctx context.Context, name, path string) error {
	return g.add(ctx, name, backend.NewMeshFromPath(path))
}
