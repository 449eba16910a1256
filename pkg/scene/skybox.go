package scene

import (
	"math"
	"math/rand"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
	"github.com/solweaver/orrery/pkg/shaders"
)

// skyDepth is the depth assigned to every star pixel. It is far behind any
// scene geometry (NDC depth lives in [-1, 1]) but closer than the cleared
// depth buffer, so stars show through empty space and never over bodies.
const skyDepth = 1000.0

type star struct {
	direction  math3d.Vec3
	brightness float64
	size       int
}

// Skybox is a field of background stars pinned to directions on the unit
// sphere. Stars follow the eye, so they read as infinitely distant.
type Skybox struct {
	stars []star
}

// NewSkybox generates count stars from the given seed. The same seed always
// produces the same field.
func NewSkybox(count int, seed int64) *Skybox {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, count)
	for i := range stars {
		// Uniform direction on the sphere.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		stars[i] = star{
			direction:  math3d.V3(r*math.Cos(theta), z, r*math.Sin(theta)),
			brightness: 0.3 + rng.Float64()*0.7,
			size:       1 + rng.Intn(3),
		}
	}
	return &Skybox{stars: stars}
}

// Draw projects every star and plots it at the fixed sky depth. Bigger stars
// light up neighboring pixels.
func (s *Skybox) Draw(fb *render.Framebuffer, u *render.Uniforms, eye math3d.Vec3) {
	pv := u.Projection.Mul(u.View)
	for _, st := range s.stars {
		world := eye.Add(st.direction.Scale(render.Far))
		clip := pv.MulVec4(math3d.V4FromV3(world, 1))
		if clip.W <= 0 {
			continue
		}
		screen := u.Viewport.MulVec3(clip.PerspectiveDivide())
		if screen.Z < 0 {
			continue
		}

		x, y := int(screen.X), int(screen.Y)
		col, _, ok := shaders.Shade(render.Fragment{
			X: x, Y: y,
			Depth: skyDepth,
			Color: render.Gray(st.brightness),
		}, u, shaders.Star)
		if !ok {
			continue
		}

		switch st.size {
		case 2:
			// 2x2 block.
			fb.Point(x, y, skyDepth, col)
			fb.Point(x+1, y, skyDepth, col)
			fb.Point(x, y+1, skyDepth, col)
			fb.Point(x+1, y+1, skyDepth, col)
		case 3:
			// Plus shape.
			fb.Point(x, y, skyDepth, col)
			fb.Point(x-1, y, skyDepth, col)
			fb.Point(x+1, y, skyDepth, col)
			fb.Point(x, y-1, skyDepth, col)
			fb.Point(x, y+1, skyDepth, col)
		default:
			fb.Point(x, y, skyDepth, col)
		}
	}
}
