package shaders

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
)

// moonSpeed is the fixed angular speed of moons, radians per frame.
const moonSpeed = 0.03

// OrbitPosition returns the world position of a body orbiting the origin in
// the ecliptic plane. It is deterministic: identical (time, radius, speed)
// inputs always yield bit-identical output, so replaying a time sequence
// reproduces the same trajectory. Used both for placing geometry and for
// trail recording.
func OrbitPosition(time, radius, speed float64) math3d.Vec3 {
	a := time * speed
	return math3d.V3(radius*math.Cos(a), 0, radius*math.Sin(a))
}

// MoonPosition returns a moon's offset from its parent planet at the given
// time. The orbit is inclined: the moon bobs above and below the ecliptic
// twice per revolution. Deterministic, like OrbitPosition.
func MoonPosition(time, radius float64) math3d.Vec3 {
	a := time * moonSpeed
	return math3d.V3(
		radius*math.Cos(a),
		0.25*radius*math.Sin(2*a),
		radius*math.Sin(a),
	)
}
