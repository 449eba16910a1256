package render

import (
	"math"
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
)

func defaultUniforms(w, h float64) *Uniforms {
	return &Uniforms{
		Model:      math3d.Identity(),
		View:       ViewMatrix(math3d.V3(0, 0, 25), math3d.Zero3(), math3d.Up()),
		Projection: ProjectionMatrix(w, h),
		Viewport:   ViewportMatrix(w, h),
	}
}

// Applying the stages one matrix at a time must agree with the combined
// matrix product used by the vertex shader.
func TestStagedEqualsCombined(t *testing.T) {
	u := defaultUniforms(100, 80)
	u.Model = ModelMatrix(math3d.V3(3, -2, 1), 1.5, math3d.V3(0.2, 0.4, 0.1))

	points := []math3d.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 3},
		{X: -4, Y: 0.5, Z: -7},
	}

	for _, p := range points {
		staged := u.Model.MulVec4(math3d.V4FromV3(p, 1))
		staged = u.View.MulVec4(staged)
		staged = u.Projection.MulVec4(staged)
		screenStaged := u.Viewport.MulVec3(staged.PerspectiveDivide())

		out := u.VertexShader(NewVertex(p, math3d.Up(), math3d.V2(0, 0)))

		if screenStaged.Distance(out.TransformedPosition) > 1e-9 {
			t.Errorf("point %v: staged %v != combined %v",
				p, screenStaged, out.TransformedPosition)
		}
	}
}

// A point above the center in world space ends up in the upper half of the
// screen, where Y indices are smaller.
func TestViewportFlipsY(t *testing.T) {
	u := defaultUniforms(100, 100)

	above := u.VertexShader(NewVertex(math3d.V3(0, 5, 0), math3d.Up(), math3d.V2(0, 0)))
	below := u.VertexShader(NewVertex(math3d.V3(0, -5, 0), math3d.Up(), math3d.V2(0, 0)))

	if above.TransformedPosition.Y >= 50 {
		t.Errorf("world-up point at screen Y %v, want upper half",
			above.TransformedPosition.Y)
	}
	if below.TransformedPosition.Y <= 50 {
		t.Errorf("world-down point at screen Y %v, want lower half",
			below.TransformedPosition.Y)
	}
}

func TestViewportCentersOrigin(t *testing.T) {
	u := defaultUniforms(200, 100)
	out := u.VertexShader(NewVertex(math3d.Zero3(), math3d.Up(), math3d.V2(0, 0)))

	if math.Abs(out.TransformedPosition.X-100) > 1e-6 {
		t.Errorf("origin screen X = %v, want 100", out.TransformedPosition.X)
	}
	if math.Abs(out.TransformedPosition.Y-50) > 1e-6 {
		t.Errorf("origin screen Y = %v, want 50", out.TransformedPosition.Y)
	}
}

// Normals receive model rotation but never projection or viewport; a pure
// translation must leave them untouched.
func TestNormalIgnoresTranslation(t *testing.T) {
	u := defaultUniforms(100, 100)
	u.Model = ModelMatrix(math3d.V3(50, -20, 10), 1, math3d.Zero3())

	out := u.VertexShader(NewVertex(math3d.Zero3(), math3d.Up(), math3d.V2(0, 0)))

	if out.TransformedNormal.Distance(math3d.Up()) > 1e-9 {
		t.Errorf("translated normal = %v, want unchanged", out.TransformedNormal)
	}
}

func TestNormalFollowsRotation(t *testing.T) {
	u := defaultUniforms(100, 100)
	u.Model = ModelMatrix(math3d.Zero3(), 1, math3d.V3(0, 0, math.Pi/2))

	out := u.VertexShader(NewVertex(math3d.Zero3(), math3d.V3(1, 0, 0), math3d.V2(0, 0)))

	// Rz(90°) maps +X to +Y.
	if out.TransformedNormal.Distance(math3d.Up()) > 1e-9 {
		t.Errorf("rotated normal = %v, want +Y", out.TransformedNormal)
	}
}

func TestVertexShaderDoesNotMutateInput(t *testing.T) {
	u := defaultUniforms(100, 100)
	v := NewVertex(math3d.V3(1, 2, 3), math3d.Up(), math3d.V2(0.5, 0.5))
	before := v

	u.VertexShader(v)

	if v != before {
		t.Errorf("input vertex mutated: %+v != %+v", v, before)
	}
}

// A pure rotation model matrix must leave a unit normal's length intact.
func TestModelMatrixRotationOrder(t *testing.T) {
	rot := math3d.V3(0.3, 0.7, 1.1)
	m := ModelMatrix(math3d.Zero3(), 1, rot)

	want := math3d.RotateZ(rot.Z).
		Mul(math3d.RotateY(rot.Y)).
		Mul(math3d.RotateX(rot.X)).
		MulVec3(math3d.V3(1, 2, 3))
	got := m.MulVec3(math3d.V3(1, 2, 3))

	if got.Distance(want) > 1e-9 {
		t.Errorf("rotation order: got %v, want Rz·Ry·Rx giving %v", got, want)
	}
}
