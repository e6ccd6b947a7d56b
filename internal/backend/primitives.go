package backend

// Primitive constructors. These bake in the same geometry the legacy viewer
// produced: arrows point along +Z, spheres are single points at the origin,
// lines carry a fixed 0.1 radius, the floor is a large flat grey box.

// NewArrow builds a single arrow of the given length pointing along +Z.
func NewArrow(label string, radius, length float64, color Color) *Arrows {
	return &Arrows{
		Vectors: []Vec3{{0, 0, length}},
		Radii:   []float64{radius},
		Colors:  []Color{color},
		Labels:  []string{label},
	}
}

// NewBox builds a single solid box with the given full extents.
func NewBox(label string, sx, sy, sz float64, color Color) *Boxes {
	return &Boxes{
		Sizes:  []Vec3{{sx, sy, sz}},
		Colors: []Color{color},
		Labels: []string{label},
		Solid:  true,
	}
}

// NewFloor builds the standard ground plane: a 200x200x0.5 grey slab.
func NewFloor() *Boxes {
	return &Boxes{
		Sizes:  []Vec3{{200, 200, 0.5}},
		Colors: []Color{{125, 125, 125, 255}},
		Solid:  true,
	}
}

// NewCapsule builds a single capsule of the given height and radius.
func NewCapsule(radius, height float64, color Color) *Capsules {
	return &Capsules{
		Lengths: []float64{height},
		Radii:   []float64{radius},
		Colors:  []Color{color},
	}
}

// NewLine builds a two-point line strip.
func NewLine(label string, p1, p2 Vec3, color Color) *LineStrips {
	return &LineStrips{
		Strips: [][]Vec3{{p1, p2}},
		Radii:  []float64{0.1},
		Colors: []Color{color},
		Labels: []string{label},
	}
}

// NewSquareFace builds a quad from four corners, triangulated on every
// corner combination so winding order never leaves a hole.
func NewSquareFace(p1, p2, p3, p4 Vec3, color Color) *Mesh {
	return &Mesh{
		VertexPositions: []Vec3{p1, p2, p3, p4},
		TriangleIndices: [][3]uint32{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}},
		VertexColors:    []Color{color},
	}
}

// NewTriangleFace builds a single triangle.
func NewTriangleFace(p1, p2, p3 Vec3, color Color) *Mesh {
	return &Mesh{
		VertexPositions: []Vec3{p1, p2, p3},
		VertexColors:    []Color{color},
	}
}

// NewSphere builds a single point at the origin with the given radius.
func NewSphere(label string, radius float64, color Color) *Points {
	return &Points{
		Positions: []Vec3{{0, 0, 0}},
		Radii:     []float64{radius},
		Colors:    []Color{color},
		Labels:    []string{label},
	}
}

// NewMeshFromPath references a mesh file for viewer-side ingestion.
func NewMeshFromPath(path string) *MeshFromPath {
	return &MeshFromPath{Path: path}
}
