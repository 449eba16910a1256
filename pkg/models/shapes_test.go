package models

import (
	"math"
	"testing"
)

func TestSphereGeometry(t *testing.T) {
	mesh := Sphere(16, 16)

	if mesh.TriangleCount() == 0 {
		t.Fatal("empty sphere")
	}
	if mesh.VertexCount()%3 != 0 {
		t.Fatalf("vertex count %d not a multiple of 3", mesh.VertexCount())
	}

	for i, v := range mesh.Vertices {
		if math.Abs(v.Position.Len()-1) > 1e-9 {
			t.Fatalf("vertex %d at radius %v, want unit sphere", i, v.Position.Len())
		}
		// Unit sphere normals equal positions.
		if v.Normal.Distance(v.Position) > 1e-9 {
			t.Fatalf("vertex %d normal %v != position %v", i, v.Normal, v.Position)
		}
	}

	bmin, bmax := mesh.Bounds()
	if bmax.Y < 0.99 || bmin.Y > -0.99 {
		t.Errorf("sphere does not reach the poles: bounds %v %v", bmin, bmax)
	}
}

// Every sphere triangle winds clockwise seen from outside, the orientation
// the screen-space cull keeps after the viewport Y flip.
func TestSphereWindingConsistent(t *testing.T) {
	mesh := Sphere(12, 12)
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		face := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
		centroid := v0.Position.Add(v1.Position).Add(v2.Position).Scale(1.0 / 3)
		if face.Dot(centroid) >= 0 {
			t.Fatalf("triangle %d winds counter-clockwise", i)
		}
	}
}

func TestRingAnnulusGeometry(t *testing.T) {
	mesh := RingAnnulus(32, 0.4)

	if mesh.TriangleCount() != 32*4 {
		t.Fatalf("triangle count = %d, want 4 per segment", mesh.TriangleCount())
	}

	for i, v := range mesh.Vertices {
		if v.Position.Y != 0 {
			t.Fatalf("vertex %d off the plane: %v", i, v.Position)
		}
		r := math.Hypot(v.Position.X, v.Position.Z)
		if r < 0.4-1e-9 || r > 1+1e-9 {
			t.Fatalf("vertex %d at radius %v outside [0.4, 1]", i, r)
		}
		// UV.X carries the radial coordinate for the ring shader.
		if math.Abs(v.UV.X-r) > 1e-9 {
			t.Fatalf("vertex %d UV.X = %v, want radius %v", i, v.UV.X, r)
		}
	}
}

func TestRingAnnulusTwoSided(t *testing.T) {
	mesh := RingAnnulus(16, 0.4)
	up, down := 0, 0
	for _, v := range mesh.Vertices {
		if v.Normal.Y > 0 {
			up++
		} else if v.Normal.Y < 0 {
			down++
		}
	}
	if up == 0 || down == 0 || up != down {
		t.Errorf("face split up=%d down=%d, want both sides equally", up, down)
	}
}

func TestShipHull(t *testing.T) {
	mesh := ShipHull()

	if mesh.TriangleCount() == 0 {
		t.Fatal("empty hull")
	}
	for i, v := range mesh.Vertices {
		if v.Normal.Len() < 0.999 {
			t.Fatalf("vertex %d normal not unit length: %v", i, v.Normal)
		}
	}

	// Faces wind clockwise around their outward shading normal, matching
	// the sphere convention.
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		face := v1.Position.Sub(v0.Position).Cross(v2.Position.Sub(v0.Position))
		if face.Dot(v0.Normal) >= 0 {
			t.Fatalf("triangle %d winds against its normal", i)
		}
	}

	// The nose points along +Z.
	bmin, bmax := mesh.Bounds()
	if bmax.Z <= 0 || bmax.Z <= -bmin.Z {
		t.Errorf("hull not nose-forward: bounds %v %v", bmin, bmax)
	}
}
