package backend

// Archetype identifies the category of a loggable primitive.
type Archetype uint8

const (
	ArchetypeArrows Archetype = iota
	ArchetypeBoxes
	ArchetypeCapsules
	ArchetypeLineStrips
	ArchetypeMesh
	ArchetypeMeshFromPath
	ArchetypePoints

	// NumArchetypes sizes per-archetype bucket arrays.
	NumArchetypes = 7
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeArrows:
		return "Arrows3D"
	case ArchetypeBoxes:
		return "Boxes3D"
	case ArchetypeCapsules:
		return "Capsules3D"
	case ArchetypeLineStrips:
		return "LineStrips3D"
	case ArchetypeMesh:
		return "Mesh3D"
	case ArchetypeMeshFromPath:
		return "MeshFromPath"
	case ArchetypePoints:
		return "Points3D"
	}
	return "Unknown"
}

// Vec3 is a 3D position or direction.
type Vec3 [3]float64

// Color is an RGBA color, one byte per channel.
type Color [4]uint8

// Payload is the viewer-specific data for one primitive. Exactly one concrete
// variant exists per archetype, so dispatch at log time is a single switch.
type Payload interface {
	Kind() Archetype
}

// Arrows is a batch of arrows anchored at the origin.
type Arrows struct {
	Vectors []Vec3    `json:"vectors"`
	Radii   []float64 `json:"radii"`
	Colors  []Color   `json:"colors"`
	Labels  []string  `json:"labels,omitempty"`
}

func (*Arrows) Kind() Archetype { return ArchetypeArrows }

// Boxes is a batch of axis-aligned boxes given by their full extents.
type Boxes struct {
	Sizes  []Vec3   `json:"sizes"`
	Colors []Color  `json:"colors"`
	Labels []string `json:"labels,omitempty"`
	Solid  bool     `json:"solid"`
}

func (*Boxes) Kind() Archetype { return ArchetypeBoxes }

// Capsules is a batch of capsules aligned with +Z.
type Capsules struct {
	Lengths []float64 `json:"lengths"`
	Radii   []float64 `json:"radii"`
	Colors  []Color   `json:"colors"`
}

func (*Capsules) Kind() Archetype { return ArchetypeCapsules }

// LineStrips is a batch of polylines.
type LineStrips struct {
	Strips [][]Vec3  `json:"strips"`
	Radii  []float64 `json:"radii"`
	Colors []Color   `json:"colors"`
	Labels []string  `json:"labels,omitempty"`
}

func (*LineStrips) Kind() Archetype { return ArchetypeLineStrips }

// Mesh is a triangle mesh. TriangleIndices may be empty, in which case the
// vertices form a single implicit triangle.
type Mesh struct {
	VertexPositions []Vec3      `json:"vertex_positions"`
	TriangleIndices [][3]uint32 `json:"triangle_indices,omitempty"`
	VertexColors    []Color     `json:"vertex_colors"`
}

func (*Mesh) Kind() Archetype { return ArchetypeMesh }

// MeshFromPath references a mesh file on disk. It is never logged through the
// generic entry point; the viewer ingests the file contents directly.
type MeshFromPath struct {
	Path string `json:"path"`
}

func (*MeshFromPath) Kind() Archetype { return ArchetypeMeshFromPath }

// Points is a batch of points with per-point radii.
type Points struct {
	Positions []Vec3    `json:"positions"`
	Radii     []float64 `json:"radii"`
	Colors    []Color   `json:"colors"`
	Labels    []string  `json:"labels,omitempty"`
}

func (*Points) Kind() Archetype { return ArchetypePoints }
