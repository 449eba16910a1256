package scene

import (
	"math"
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
)

func TestOrbitPreservesDistance(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 25), math3d.Zero3())
	before := cam.Eye.Distance(cam.Center)

	cam.Orbit(0.3, -0.2)
	cam.Orbit(1.1, 0.4)

	after := cam.Eye.Distance(cam.Center)
	if math.Abs(after-before) > 1e-9 {
		t.Errorf("orbit changed eye distance: %v -> %v", before, after)
	}
	if cam.Center != math3d.Zero3() {
		t.Errorf("orbit moved the center: %v", cam.Center)
	}
}

func TestPanKeepsEye(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 25), math3d.Zero3())
	eye := cam.Eye

	cam.Pan(0.2, 0.1)

	if cam.Eye != eye {
		t.Errorf("pan moved the eye: %v", cam.Eye)
	}
	if cam.Center == math3d.Zero3() {
		t.Error("pan did not move the center")
	}
}

func TestZoomStopsShortOfCenter(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 25), math3d.Zero3())

	cam.Zoom(100)

	dist := cam.Eye.Distance(cam.Center)
	if dist < 1-1e-9 {
		t.Errorf("zoom crossed the center, distance %v", dist)
	}
}

func TestMoveTranslatesBoth(t *testing.T) {
	cam := NewCamera(math3d.V3(0, 0, 25), math3d.Zero3())
	offset := cam.Center.Sub(cam.Eye)

	cam.Move(2, -1, 3)

	got := cam.Center.Sub(cam.Eye)
	if got.Distance(offset) > 1e-9 {
		t.Errorf("move changed the eye-to-center offset: %v -> %v", offset, got)
	}
	if cam.Eye == (math3d.V3(0, 0, 25)) {
		t.Error("move did not translate the eye")
	}
}
