package render

import (
	"image"
	"image/png"
	"math"
	"os"
)

// Framebuffer holds a width x height color buffer and a parallel depth
// buffer. A pixel's stored color always corresponds to the smallest depth
// written to that pixel since the last Clear (less-than depth test).
//
// Single-writer use only: one goroutine owns the buffers for the duration of
// a frame.
type Framebuffer struct {
	Width      int
	Height     int
	Pixels     []Color   // Row-major color data
	Depth      []float64 // Row-major depth data, +Inf = empty
	Background Color
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
		Depth:  make([]float64, width*height),
	}
	fb.Clear()
	return fb
}

// SetBackground sets the color used by Clear.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.Background = c
}

// Clear resets every pixel to the background color and every depth cell to
// +Inf. Uses copy-doubling for fast fills.
func (fb *Framebuffer) Clear() {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = fb.Background
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
	fb.Depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.Depth[i:], fb.Depth[:i])
	}
}

// Point writes c at (x, y) iff the coordinates are in bounds and depth is
// strictly less than the stored depth at that cell. Out-of-bounds writes are
// silent no-ops; rasterization legitimately produces candidates at the
// viewport edges.
func (fb *Framebuffer) Point(x, y int, depth float64, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if depth < fb.Depth[idx] {
		fb.Depth[idx] = depth
		fb.Pixels[idx] = c
	}
}

// GetPixel returns the color at (x, y), or the zero color out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or +Inf out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DrawSegment draws a line segment as a run of linearly interpolated
// depth-tested points. Used for orbit trails; this is point plotting, not
// triangle rasterization.
func (fb *Framebuffer) DrawSegment(x0, y0 int, d0 float64, x1, y1 int, d1 float64, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	steps := max(absInt(dx), absInt(dy))
	if steps == 0 {
		fb.Point(x0, y0, d0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(dx)*t))
		y := y0 + int(math.Round(float64(dy)*t))
		fb.Point(x, y, d0+(d1-d0)*t, c)
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x].RGBA())
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
