// Package models provides mesh loading and procedural geometry for the
// orrery. Meshes are flattened triangle lists: every three consecutive
// vertices form one triangle.
package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

// Mesh is a flattened triangle-list vertex array.
type Mesh struct {
	Name     string
	Vertices []render.Vertex
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (v0, v1, v2 render.Vertex) {
	return m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]
}

// Load reads a mesh file, dispatching on the extension (.obj, .glb, .gltf).
func Load(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported model format: %s (use .obj or .glb)", path)
	}
}

// CalculateNormals assigns flat per-face normals to any triangle whose
// vertices carry zero-length normals.
func (m *Mesh) CalculateNormals() {
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		if m.Vertices[i].Normal.LenSq() > 1e-6 &&
			m.Vertices[i+1].Normal.LenSq() > 1e-6 &&
			m.Vertices[i+2].Normal.LenSq() > 1e-6 {
			continue
		}
		e1 := m.Vertices[i+1].Position.Sub(m.Vertices[i].Position)
		e2 := m.Vertices[i+2].Position.Sub(m.Vertices[i].Position)
		n := e1.Cross(e2).Normalize()
		for j := range 3 {
			m.Vertices[i+j].Normal = n
			m.Vertices[i+j].TransformedNormal = n
		}
	}
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (bmin, bmax math3d.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	bmin = m.Vertices[0].Position
	bmax = bmin
	for _, v := range m.Vertices[1:] {
		p := v.Position
		bmin = math3d.V3(minf(bmin.X, p.X), minf(bmin.Y, p.Y), minf(bmin.Z, p.Z))
		bmax = math3d.V3(maxf(bmax.X, p.X), maxf(bmax.Y, p.Y), maxf(bmax.Z, p.Z))
	}
	return
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
