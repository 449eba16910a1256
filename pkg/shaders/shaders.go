// Package shaders implements the per-object procedural appearance functions
// of the orrery scene and the orbital motion helpers. Every shader is a pure
// function of fragment attributes and the frame time; no shader mutates
// shared state.
package shaders

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

// Kind identifies which procedural appearance function applies to a draw
// call. The set is closed; dispatch is an exhaustive switch.
type Kind int

const (
	Sun Kind = iota
	RockyPlanet
	VolcanicPlanet
	Earth
	GasGiant
	RingPlanet
	IcyPlanet
	Ring
	Moon
	Ship
	Star
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Sun:
		return "sun"
	case RockyPlanet:
		return "rocky"
	case VolcanicPlanet:
		return "volcanic"
	case Earth:
		return "earth"
	case GasGiant:
		return "gas"
	case RingPlanet:
		return "ringed"
	case IcyPlanet:
		return "icy"
	case Ring:
		return "ring"
	case Moon:
		return "moon"
	case Ship:
		return "ship"
	case Star:
		return "star"
	}
	return "unknown"
}

// Ring band limits as a fraction of the annulus' outer radius, encoded in
// the ring mesh's UV.X. The inner limit sits above the mesh's inner rim, so
// the discard trims the rim into the visible band.
const (
	ringInner = 0.6
	ringOuter = 1.0
)

// Fixed key light used by the diffuse surface shaders.
var lightDir = math3d.V3(0.6, 0.4, 0.7).Normalize()

// Shade computes the final color for a fragment under the given uniforms and
// shader kind. It returns the color, a depth bias to add to the fragment's
// emitted depth, and false when the fragment is discarded (ring fragments
// outside the annulus band).
func Shade(frag render.Fragment, u *render.Uniforms, kind Kind) (render.Color, float64, bool) {
	n := frag.Normal.Normalize()
	t := float64(u.Time)

	if u.Debug {
		// Normal visualization, handy when a mesh winds the wrong way.
		return render.RGB(
			uint8((n.X+1)*127.5),
			uint8((n.Y+1)*127.5),
			uint8((n.Z+1)*127.5),
		), 0, true
	}

	switch kind {
	case Sun:
		return shadeSun(n, t), 0, true
	case RockyPlanet:
		return shadeRocky(n), 0, true
	case VolcanicPlanet:
		return shadeVolcanic(n, t), 0, true
	case Earth:
		return shadeEarth(n, t), 0, true
	case GasGiant:
		return shadeGasGiant(n, t), 0, true
	case RingPlanet:
		return shadeRingPlanet(n, t), 0, true
	case IcyPlanet:
		return shadeIcy(n), 0, true
	case Ring:
		c, ok := shadeRing(frag.UV.X)
		return c, 0, ok
	case Moon:
		return shadeMoon(n), 0, true
	case Ship:
		return shadeShip(n), 0, true
	case Star:
		// Skybox stars ignore lighting; the per-star gray arrives as the
		// fragment color.
		return frag.Color, 0, true
	}
	return frag.Color, 0, true
}

// shadeSun pulses an emissive orange with time and adds surface granulation.
func shadeSun(n math3d.Vec3, t float64) render.Color {
	pulse := 0.85 + 0.15*math.Sin(t*0.1)
	granule := 0.08 * fractal(n, 3, 9.0)
	base := render.RGB(255, 160, 30)
	return base.Scale(pulse + granule)
}

func shadeRocky(n math3d.Vec3) render.Color {
	m := (fractal(n, 4, 5.0) + 1) / 2
	crust := render.RGB(155, 115, 85)
	basin := render.RGB(90, 75, 65)
	return basin.Lerp(crust, m).Scale(diffuse(n))
}

func shadeVolcanic(n math3d.Vec3, t float64) render.Color {
	veins := fractal(n, 4, 6.0)
	basalt := render.RGB(45, 35, 35).Scale(diffuse(n))
	if veins > 0.35 {
		// Lava veins glow and breathe with time; emissive, no diffuse.
		glow := 0.75 + 0.25*math.Sin(t*0.15+veins*8)
		return render.RGB(255, 90, 10).Scale(glow)
	}
	return basalt
}

func shadeEarth(n math3d.Vec3, t float64) render.Color {
	var surface render.Color
	elevation := fractal(n, 4, 3.0)
	switch {
	case elevation > 0.32:
		surface = render.RGB(150, 140, 110) // Highlands
	case elevation > 0.12:
		surface = render.RGB(60, 140, 60) // Lowlands
	default:
		surface = render.RGB(20, 65, 160) // Ocean
	}

	// Cloud layer drifts: sample the noise field with the normal rotated
	// around the poles over time.
	drifted := n.RotateAround(math3d.Up(), t*0.01)
	cloud := fractal(drifted, 3, 4.5)
	if cloud > 0.25 {
		surface = surface.Lerp(render.RGB(240, 240, 240), 0.7)
	}
	return surface.Scale(diffuse(n))
}

// shadeGasGiant animates cloud bands as a periodic function of the normal's
// latitude angle and time.
func shadeGasGiant(n math3d.Vec3, t float64) render.Color {
	lat := math.Asin(clamp(n.Y, -1, 1))
	turb := 0.6 * fractal(n, 3, 4.0)
	band := math.Sin(lat*11 + t*0.04 + turb)
	light := render.RGB(215, 185, 145)
	dark := render.RGB(160, 120, 85)
	return dark.Lerp(light, (band+1)/2).Scale(diffuse(n))
}

func shadeRingPlanet(n math3d.Vec3, t float64) render.Color {
	lat := math.Asin(clamp(n.Y, -1, 1))
	band := math.Sin(lat*7 + t*0.02 + 0.4*fractal(n, 2, 3.0))
	light := render.RGB(205, 175, 135)
	dark := render.RGB(140, 110, 80)
	return dark.Lerp(light, (band+1)/2).Scale(diffuse(n))
}

func shadeIcy(n math3d.Vec3) render.Color {
	m := (fractal(n, 4, 7.0) + 1) / 2
	ice := render.RGB(225, 238, 248)
	crevasse := render.RGB(150, 190, 220)
	return crevasse.Lerp(ice, m).Scale(diffuse(n))
}

// shadeRing shades the annulus by radial distance and discards fragments
// outside the band, producing a hollow disc. The radial coordinate arrives
// normalized in UV.X. No depth bias: the ring clears the planet sphere, so
// the plain depth test decides which of the two is in front.
func shadeRing(rho float64) (render.Color, bool) {
	if rho < ringInner || rho > ringOuter {
		return render.Color{}, false
	}
	grooves := 0.5 + 0.5*math.Sin(rho*48)
	c := render.RGB(195, 175, 150).Scale(0.4 + 0.45*grooves)
	return c, true
}

func shadeMoon(n math3d.Vec3) render.Color {
	m := (fractal(n, 4, 8.0) + 1) / 2
	bright := render.RGB(180, 180, 175)
	maria := render.RGB(105, 105, 105)
	return maria.Lerp(bright, m).Scale(diffuse(n))
}

func shadeShip(n math3d.Vec3) render.Color {
	return render.RGB(135, 145, 155).Scale(diffuse(n))
}

// diffuse is the ambient + directional term shared by the surface shaders.
func diffuse(n math3d.Vec3) float64 {
	return 0.3 + 0.7*math.Max(0, n.Dot(lightDir))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// periodic is a sin-product lattice over the sphere, in [-1, 1]. It is
// continuous in p and needs no lookup tables, which keeps the shaders pure.
func periodic(p math3d.Vec3, freq float64) float64 {
	return (math.Sin(p.X*freq)*math.Sin(p.Y*freq*1.3+1.7) +
		math.Sin(p.Y*freq*0.8+4.1)*math.Sin(p.Z*freq) +
		math.Sin(p.Z*freq*1.2+2.3)*math.Sin(p.X*freq*0.9)) / 3
}

// fractal layers periodic noise, halving amplitude and doubling frequency
// per octave. Result in [-1, 1].
func fractal(p math3d.Vec3, octaves int, freq float64) float64 {
	var sum, norm float64
	amp := 1.0
	for range octaves {
		sum += periodic(p, freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}
