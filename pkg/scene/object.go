package scene

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/shaders"
)

// Object is a single body in the scene. Bodies with a nonzero OrbitRadius
// circle the origin; the rest stay at BasePosition.
type Object struct {
	BasePosition math3d.Vec3
	Shader       shaders.Kind
	Scale        float64
	OrbitRadius  float64
	OrbitSpeed   float64
	Trail        *Trail
}

// Orbiting reports whether the object moves along an orbit.
func (o *Object) Orbiting() bool {
	return o.OrbitRadius > 0
}

// PositionAt returns the object's world position at the given frame time.
// The result depends only on the inputs, so replaying a time sequence
// reproduces the same positions exactly.
func (o *Object) PositionAt(time int) math3d.Vec3 {
	if !o.Orbiting() {
		return o.BasePosition
	}
	return shaders.OrbitPosition(float64(time), o.OrbitRadius, o.OrbitSpeed)
}

// orbitSpeed slows the outer bodies down so the lineup does not move in
// lockstep. Index 1 is the innermost orbiting body.
func orbitSpeed(index int) float64 {
	return 0.02 / math.Sqrt(float64(index))
}

// DefaultObjects builds the standard lineup: a sun at the origin and six
// planets on widening circular orbits.
func DefaultObjects() []*Object {
	planets := []struct {
		kind   shaders.Kind
		radius float64
		scale  float64
	}{
		{shaders.VolcanicPlanet, 10, 1.0},
		{shaders.Earth, 20, 1.5},
		{shaders.RockyPlanet, 30, 1.3},
		{shaders.GasGiant, 40, 4.0},
		{shaders.RingPlanet, 50, 3.5},
		{shaders.IcyPlanet, 60, 0.8},
	}

	objects := []*Object{
		{Shader: shaders.Sun, Scale: 10},
	}
	for i, p := range planets {
		objects = append(objects, &Object{
			Shader:      p.kind,
			Scale:       p.scale,
			OrbitRadius: p.radius,
			OrbitSpeed:  orbitSpeed(i + 1),
			Trail:       NewTrail(DefaultTrailLen),
		})
	}
	return objects
}
