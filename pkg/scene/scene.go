// Package scene describes the orbiting-planet scene and drives frame
// rendering: object lineup, camera, starfield, trails and the per-frame
// transform/rasterize/shade loop.
package scene

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/models"
	"github.com/solweaver/orrery/pkg/render"
	"github.com/solweaver/orrery/pkg/shaders"
)

// Satellite geometry. The ring annulus mesh has unit outer radius, so
// ringScale is its world outer radius; it must clear the 3.5 planet sphere
// so the depth test can occlude the ring's far side behind the planet.
const (
	ringScale  = 7.0
	ringInner  = 0.5 // annulus mesh inner radius fraction
	moonRadius = 1.3 // moon orbit radius around the rocky planet
	moonScale  = 0.5

	starCount = 300
	starSeed  = 42
)

var trailColor = render.RGB(90, 90, 110)

// Scene owns the objects, camera and meshes and renders frames into a
// framebuffer. Rendering is single threaded; one frame runs to completion
// before the next starts.
type Scene struct {
	Camera  *Camera
	Objects []*Object
	Sky     *Skybox

	Sphere *models.Mesh
	Ring   *models.Mesh
	Ship   *models.Mesh

	ShowShip bool
	Debug    bool

	fb   *render.Framebuffer
	rast *render.Rasterizer
	time int
}

// New creates a scene with the default planet lineup, procedural meshes and
// a seeded starfield, rendering into fb.
func New(fb *render.Framebuffer, cam *Camera) *Scene {
	return &Scene{
		Camera:   cam,
		Objects:  DefaultObjects(),
		Sky:      NewSkybox(starCount, starSeed),
		Sphere:   models.Sphere(24, 24),
		Ring:     models.RingAnnulus(48, ringInner),
		Ship:     models.ShipHull(),
		ShowShip: true,
		fb:       fb,
		rast:     render.NewRasterizer(fb.Width, fb.Height),
	}
}

// Resize points the scene at a new framebuffer, typically after a window
// size change.
func (s *Scene) Resize(fb *render.Framebuffer) {
	s.fb = fb
	s.rast = render.NewRasterizer(fb.Width, fb.Height)
}

// Framebuffer returns the buffer frames are rendered into.
func (s *Scene) Framebuffer() *render.Framebuffer {
	return s.fb
}

// Time returns the current frame counter.
func (s *Scene) Time() int {
	return s.time
}

// RenderFrame advances time by one step and renders the complete scene.
func (s *Scene) RenderFrame() {
	s.time++
	s.fb.Clear()

	w, h := float64(s.fb.Width), float64(s.fb.Height)
	base := render.Uniforms{
		View:       render.ViewMatrix(s.Camera.Eye, s.Camera.Center, s.Camera.Up),
		Projection: render.ProjectionMatrix(w, h),
		Viewport:   render.ViewportMatrix(w, h),
		Time:       s.time,
		Debug:      s.Debug,
	}

	s.Sky.Draw(s.fb, &base, s.Camera.Eye)

	rotation := math3d.V3(0, float64(s.time)*0.01, 0)
	for _, o := range s.Objects {
		pos := o.PositionAt(s.time)

		u := base
		u.Model = render.ModelMatrix(pos, o.Scale, rotation)
		s.drawMesh(&u, s.Sphere, o.Shader)

		switch o.Shader {
		case shaders.RingPlanet:
			ru := base
			ru.Model = render.ModelMatrix(pos, ringScale, math3d.Zero3())
			s.drawMesh(&ru, s.Ring, shaders.Ring)
		case shaders.RockyPlanet:
			mu := base
			moonPos := pos.Add(shaders.MoonPosition(float64(s.time), moonRadius*o.Scale))
			mu.Model = render.ModelMatrix(moonPos, moonScale, rotation)
			s.drawMesh(&mu, s.Sphere, shaders.Moon)
		}

		if o.Orbiting() {
			o.Trail.Push(pos)
			s.drawTrail(o.Trail, &base)
		}
	}

	if s.ShowShip {
		s.drawShip(&base)
	}
}

// drawMesh runs every triangle of the mesh through the vertex shader, the
// rasterizer and the fragment shader, compositing surviving fragments into
// the framebuffer.
func (s *Scene) drawMesh(u *render.Uniforms, mesh *models.Mesh, kind shaders.Kind) {
	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)
		frags := s.rast.Triangle(u.VertexShader(v0), u.VertexShader(v1), u.VertexShader(v2))
		for _, f := range frags {
			col, bias, ok := shaders.Shade(f, u, kind)
			if !ok {
				continue
			}
			s.fb.Point(f.X, f.Y, f.Depth+bias, col)
		}
	}
}

// drawTrail draws the recorded orbit positions as a depth-tested polyline.
// Segments with an endpoint behind the camera are skipped.
func (s *Scene) drawTrail(t *Trail, u *render.Uniforms) {
	px, py := 0, 0
	pd := 0.0
	have := false
	for i := 0; i < t.Len(); i++ {
		x, y, d, ok := s.project(t.At(i), u)
		if !ok {
			have = false
			continue
		}
		if have {
			s.fb.DrawSegment(px, py, pd, x, y, d, trailColor)
		}
		px, py, pd = x, y, d
		have = true
	}
}

// drawShip renders the ship hull just ahead of and below the camera, nose
// pointing along the view direction.
func (s *Scene) drawShip(u *render.Uniforms) {
	fwd := s.Camera.Forward()
	pos := s.Camera.Eye.
		Add(fwd.Scale(4)).
		Sub(s.Camera.Up.Scale(0.9))
	yaw := math.Atan2(fwd.X, fwd.Z)

	su := *u
	su.Model = render.ModelMatrix(pos, 0.6, math3d.V3(0, yaw, 0))
	s.drawMesh(&su, s.Ship, shaders.Ship)
}

// project maps a world position to pixel coordinates and depth. It reports
// false for points behind the camera.
func (s *Scene) project(world math3d.Vec3, u *render.Uniforms) (x, y int, depth float64, ok bool) {
	clip := u.Projection.Mul(u.View).MulVec4(math3d.V4FromV3(world, 1))
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	screen := u.Viewport.MulVec3(clip.PerspectiveDivide())
	if screen.Z < -1 || screen.Z > 1 {
		return 0, 0, 0, false
	}
	return int(screen.X), int(screen.Y), screen.Z, true
}
