package render

import "github.com/solweaver/orrery/pkg/math3d"

// Vertex carries the source mesh attributes plus the transformed copies
// written by the vertex shader stage. The raw fields are immutable source
// geometry; the transformed fields are only meaningful after a transform
// pass and are recomputed every frame.
type Vertex struct {
	Position math3d.Vec3 // Object-space position
	Normal   math3d.Vec3 // Object-space normal
	UV       math3d.Vec2 // Texture coordinates
	Color    Color       // Base vertex color

	TransformedPosition math3d.Vec3 // Screen pixels (x, y) + depth (z)
	TransformedNormal   math3d.Vec3 // Model-rotated normal
}

// NewVertex creates a vertex with transformed fields seeded from the raw
// geometry.
func NewVertex(pos, normal math3d.Vec3, uv math3d.Vec2) Vertex {
	return Vertex{
		Position:            pos,
		Normal:              normal,
		UV:                  uv,
		TransformedPosition: pos,
		TransformedNormal:   normal,
	}
}

// Fragment is a candidate pixel write produced by rasterizing a triangle.
// Fragments are transient: created per triangle per frame and consumed
// immediately by the shading dispatch.
type Fragment struct {
	X, Y   int         // Pixel coordinates
	Depth  float64     // Depth in depth-buffer units
	Color  Color       // Interpolated vertex color
	Normal math3d.Vec3 // Interpolated (model-rotated) normal
	UV     math3d.Vec2 // Interpolated texture coordinates
}
