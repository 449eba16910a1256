package render

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
)

// Projection constants shared by every draw call.
const (
	FOV  = 45 * math.Pi / 180
	Near = 0.1
	Far  = 1000.0
)

// Uniforms is the read-only per-draw-call parameter bundle. One instance is
// built per object per frame and must not be mutated during the draw call.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4
	Time       int  // Frame counter, advanced once per accepted frame
	Debug      bool // Enables shader debug visualization
}

// ModelMatrix builds a model matrix from a translation, uniform scale and
// Z·Y·X Euler rotation. Rotation is applied in object-local space before the
// combined scale/translation affine, matching
// (translate · scale) · (Rz · Ry · Rx).
func ModelMatrix(translation math3d.Vec3, scale float64, rotation math3d.Vec3) math3d.Mat4 {
	rot := math3d.RotateZ(rotation.Z).
		Mul(math3d.RotateY(rotation.Y)).
		Mul(math3d.RotateX(rotation.X))
	return math3d.Translate(translation).Mul(math3d.ScaleUniform(scale)).Mul(rot)
}

// ViewMatrix builds a standard look-at view matrix.
func ViewMatrix(eye, center, up math3d.Vec3) math3d.Mat4 {
	return math3d.LookAt(eye, center, up)
}

// ProjectionMatrix builds the perspective projection for a window of the
// given pixel dimensions.
func ProjectionMatrix(width, height float64) math3d.Mat4 {
	return math3d.Perspective(FOV, width/height, Near, Far)
}

// ViewportMatrix maps NDC to pixel coordinates. Screen-space Y grows
// downward (the Y axis is flipped); depth passes through unchanged.
func ViewportMatrix(width, height float64) math3d.Mat4 {
	return math3d.Mat4{
		width / 2, 0, 0, 0,
		0, -height / 2, 0, 0,
		0, 0, 1, 0,
		width / 2, height / 2, 0, 1,
	}
}

// VertexShader transforms a vertex through model, view and projection with a
// perspective divide, then the viewport mapping to pixel coordinates. The
// normal receives the model rotation only; viewport and projection never
// touch normals. The input vertex is not mutated.
func (u *Uniforms) VertexShader(v Vertex) Vertex {
	clip := u.Projection.Mul(u.View).Mul(u.Model).
		MulVec4(math3d.V4FromV3(v.Position, 1))
	ndc := clip.PerspectiveDivide()

	out := v
	out.TransformedPosition = u.Viewport.MulVec3(ndc)
	out.TransformedNormal = u.Model.MulVec3Dir(v.Normal).Normalize()
	return out
}
