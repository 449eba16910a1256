package models

import (
	"path/filepath"
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

func TestLoadRejectsUnknownFormat(t *testing.T) {
	if _, err := Load("model.stl"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	// Dispatch reaches the right loader; the missing file surfaces as an
	// open error rather than a format error.
	for _, name := range []string{"a.obj", "a.glb", "a.GLTF"} {
		if _, err := Load(filepath.Join(t.TempDir(), name)); err == nil {
			t.Errorf("%s: expected an error for a missing file", name)
		}
	}
}

func TestCalculateNormalsKeepsExisting(t *testing.T) {
	m := NewMesh("t")
	n := math3d.V3(0, 1, 0)
	m.Vertices = []render.Vertex{
		render.NewVertex(math3d.V3(0, 0, 0), n, math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(1, 0, 0), n, math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(0, 0, 1), n, math3d.V2(0, 0)),
	}

	m.CalculateNormals()

	if m.Vertices[0].Normal != n {
		t.Errorf("existing normal replaced: %v", m.Vertices[0].Normal)
	}
}

func TestCalculateNormalsFillsMissing(t *testing.T) {
	m := NewMesh("t")
	zero := math3d.Zero3()
	m.Vertices = []render.Vertex{
		render.NewVertex(math3d.V3(0, 0, 0), zero, math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(1, 0, 0), zero, math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(0, 1, 0), zero, math3d.V2(0, 0)),
	}

	m.CalculateNormals()

	want := math3d.V3(0, 0, 1)
	for i, v := range m.Vertices {
		if v.Normal.Distance(want) > 1e-9 {
			t.Errorf("vertex %d normal = %v, want %v", i, v.Normal, want)
		}
	}
}

func TestBounds(t *testing.T) {
	m := NewMesh("t")
	m.Vertices = []render.Vertex{
		render.NewVertex(math3d.V3(-1, 2, 0), math3d.Up(), math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(3, -4, 5), math3d.Up(), math3d.V2(0, 0)),
		render.NewVertex(math3d.V3(0, 0, -2), math3d.Up(), math3d.V2(0, 0)),
	}

	bmin, bmax := m.Bounds()
	if bmin != math3d.V3(-1, -4, -2) || bmax != math3d.V3(3, 2, 5) {
		t.Errorf("bounds = %v %v", bmin, bmax)
	}
}
