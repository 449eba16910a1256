// Package render implements the software rendering pipeline for the orrery:
// transform stage, triangle rasterization, depth-buffered framebuffer and
// terminal presentation.
package render

import (
	"image/color"

	"github.com/solweaver/orrery/pkg/math3d"
)

// Color is a packed RGB value. Alpha is not tracked; the pipeline composites
// purely through the depth buffer.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// FromHex unpacks a 0xRRGGBB value.
func FromHex(h uint32) Color {
	return Color{
		R: uint8(h >> 16),
		G: uint8(h >> 8),
		B: uint8(h),
	}
}

// Hex packs the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// RGBA converts to the stdlib color type (opaque) for image export and
// terminal cells.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Scale multiplies each channel by f, clamping to [0, 255].
func (c Color) Scale(f float64) Color {
	return Color{
		clampChannel(float64(c.R) * f),
		clampChannel(float64(c.G) * f),
		clampChannel(float64(c.B) * f),
	}
}

// Add returns the saturating channel-wise sum.
func (c Color) Add(o Color) Color {
	return Color{
		clampChannel(float64(c.R) + float64(o.R)),
		clampChannel(float64(c.G) + float64(o.G)),
		clampChannel(float64(c.B) + float64(o.B)),
	}
}

// Lerp returns the linear blend between c and o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return o
	}
	return Color{
		clampChannel(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		clampChannel(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		clampChannel(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Gray returns a gray level from a [0, 1] brightness.
func Gray(brightness float64) Color {
	v := clampChannel(brightness * 255)
	return Color{v, v, v}
}

// BlendBarycentric interpolates three colors using barycentric weights.
func BlendBarycentric(c0, c1, c2 Color, bc math3d.Vec3) Color {
	return Color{
		clampChannel(float64(c0.R)*bc.X + float64(c1.R)*bc.Y + float64(c2.R)*bc.Z),
		clampChannel(float64(c0.G)*bc.X + float64(c1.G)*bc.Y + float64(c2.G)*bc.Z),
		clampChannel(float64(c0.B)*bc.X + float64(c1.B)*bc.Y + float64(c2.B)*bc.Z),
	}
}
