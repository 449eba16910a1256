package models

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

// Sphere generates a unit UV sphere with the given resolution. Positions
// double as normals; UV holds (longitude, latitude) in [0, 1]. Triangles
// wind clockwise seen from outside, which is the orientation the
// screen-space cull keeps after the viewport Y flip.
func Sphere(slices, stacks int) *Mesh {
	mesh := NewMesh("sphere")

	point := func(slice, stack int) render.Vertex {
		theta := 2 * math.Pi * float64(slice) / float64(slices)
		phi := math.Pi * float64(stack) / float64(stacks)
		p := math3d.V3(
			math.Sin(phi)*math.Cos(theta),
			math.Cos(phi),
			math.Sin(phi)*math.Sin(theta),
		)
		uv := math3d.V2(float64(slice)/float64(slices), float64(stack)/float64(stacks))
		return render.NewVertex(p, p, uv)
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			p00 := point(slice, stack)
			p10 := point(slice+1, stack)
			p01 := point(slice, stack+1)
			p11 := point(slice+1, stack+1)

			if stack > 0 { // Top cap rows degenerate at the pole
				mesh.Vertices = append(mesh.Vertices, p00, p11, p10)
			}
			if stack < stacks-1 { // Bottom cap likewise
				mesh.Vertices = append(mesh.Vertices, p00, p01, p11)
			}
		}
	}
	return mesh
}

// RingAnnulus generates a flat two-sided annulus in the XZ plane with outer
// radius 1. UV.X carries the normalized radial distance so the ring shader
// can band and clip by radius.
func RingAnnulus(segments int, inner float64) *Mesh {
	mesh := NewMesh("ring")

	point := func(seg int, radius float64, up bool) render.Vertex {
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		p := math3d.V3(radius*math.Cos(theta), 0, radius*math.Sin(theta))
		n := math3d.Up()
		if !up {
			n = n.Negate()
		}
		return render.NewVertex(p, n, math3d.V2(radius, 0))
	}

	for seg := 0; seg < segments; seg++ {
		i00 := point(seg, inner, true)
		i10 := point(seg+1, inner, true)
		o00 := point(seg, 1, true)
		o10 := point(seg+1, 1, true)

		// Top face.
		mesh.Vertices = append(mesh.Vertices, i00, o00, o10)
		mesh.Vertices = append(mesh.Vertices, i00, o10, i10)

		// Bottom face, reversed winding so both sides survive culling.
		i00d := point(seg, inner, false)
		i10d := point(seg+1, inner, false)
		o00d := point(seg, 1, false)
		o10d := point(seg+1, 1, false)
		mesh.Vertices = append(mesh.Vertices, i00d, o10d, o00d)
		mesh.Vertices = append(mesh.Vertices, i00d, i10d, o10d)
	}
	return mesh
}

// ShipHull generates a small faceted wedge: a pointed nose along +Z with a
// flat stern. Normals are flat per face.
func ShipHull() *Mesh {
	mesh := NewMesh("ship")

	nose := math3d.V3(0, 0, 1.2)
	sternL := math3d.V3(-0.5, 0, -0.6)
	sternR := math3d.V3(0.5, 0, -0.6)
	keel := math3d.V3(0, -0.25, -0.4)
	mast := math3d.V3(0, 0.35, -0.4)

	// addFace takes corners counter-clockwise around the outward normal and
	// emits them clockwise, the orientation the screen-space cull keeps after
	// the viewport Y flip.
	addFace := func(a, b, c math3d.Vec3) {
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		mesh.Vertices = append(mesh.Vertices,
			render.NewVertex(a, n, math3d.Vec2{}),
			render.NewVertex(c, n, math3d.Vec2{}),
			render.NewVertex(b, n, math3d.Vec2{}),
		)
	}

	// Upper hull.
	addFace(nose, mast, sternL)
	addFace(nose, sternR, mast)
	// Lower hull.
	addFace(nose, sternL, keel)
	addFace(nose, keel, sternR)
	// Stern.
	addFace(sternL, mast, sternR)
	addFace(sternL, sternR, keel)

	return mesh
}
