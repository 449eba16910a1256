package scene

import (
	"github.com/solweaver/orrery/pkg/math3d"
)

// Camera holds the view parameters. Eye is where the camera sits, Center is
// what it looks at, Up orients the frame.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3
}

// NewCamera creates a camera at eye looking at center with +Y up.
func NewCamera(eye, center math3d.Vec3) *Camera {
	return &Camera{
		Eye:    eye,
		Center: center,
		Up:     math3d.V3(0, 1, 0),
	}
}

// Forward returns the unit vector from eye to center.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Center.Sub(c.Eye).Normalize()
}

// Right returns the unit vector pointing to the camera's right.
func (c *Camera) Right() math3d.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// Orbit rotates the eye around the center, yaw about the up axis and pitch
// about the camera's right axis.
func (c *Camera) Orbit(yaw, pitch float64) {
	radius := c.Eye.Sub(c.Center)
	radius = radius.RotateAround(c.Up, yaw)
	radius = radius.RotateAround(c.Right(), pitch)
	c.Eye = c.Center.Add(radius)
}

// Pan swings the look target around the eye. yaw rotates about the up axis,
// pitch about the camera's right axis. The eye stays put.
func (c *Camera) Pan(yaw, pitch float64) {
	radius := c.Center.Sub(c.Eye)
	radius = radius.RotateAround(c.Up, yaw)
	radius = radius.RotateAround(c.Right(), pitch)
	c.Center = c.Eye.Add(radius)
}

// Zoom moves the eye along the view direction. Positive delta moves toward
// the center; the eye never crosses it.
func (c *Camera) Zoom(delta float64) {
	dir := c.Center.Sub(c.Eye)
	dist := dir.Len()
	if dist-delta < 1 {
		delta = dist - 1
	}
	c.Eye = c.Eye.Add(dir.Normalize().Scale(delta))
}

// Move translates both eye and center by the given offsets in the camera's
// own frame: x along right, y along up, z along forward.
func (c *Camera) Move(x, y, z float64) {
	offset := c.Right().Scale(x).
		Add(c.Up.Scale(y)).
		Add(c.Forward().Scale(z))
	c.Eye = c.Eye.Add(offset)
	c.Center = c.Center.Add(offset)
}
