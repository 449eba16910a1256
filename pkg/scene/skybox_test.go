package scene

import (
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

func TestSkyboxStarShapes(t *testing.T) {
	eye := math3d.Zero3()
	forward := math3d.V3(0, 0, -1)
	w, h := 64, 48
	u := &render.Uniforms{
		View:       render.ViewMatrix(eye, forward, math3d.V3(0, 1, 0)),
		Projection: render.ProjectionMatrix(float64(w), float64(h)),
		Viewport:   render.ViewportMatrix(float64(w), float64(h)),
	}

	plot := func(size int) map[[2]int]bool {
		fb := render.NewFramebuffer(w, h)
		fb.Clear()
		sky := &Skybox{stars: []star{{direction: forward, brightness: 0.8, size: size}}}
		sky.Draw(fb, u, eye)
		got := map[[2]int]bool{}
		for y := 0; y < fb.Height; y++ {
			for x := 0; x < fb.Width; x++ {
				if fb.GetPixel(x, y) != fb.Background {
					got[[2]int{x, y}] = true
				}
			}
		}
		return got
	}

	single := plot(1)
	if len(single) != 1 {
		t.Fatalf("size 1 plotted %d pixels, want 1", len(single))
	}
	var cx, cy int
	for p := range single {
		cx, cy = p[0], p[1]
	}

	tests := []struct {
		name    string
		size    int
		offsets [][2]int
	}{
		{"block", 2, [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{"plus", 3, [][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := plot(tt.size)
			if len(got) != len(tt.offsets) {
				t.Fatalf("size %d plotted %d pixels, want %d", tt.size, len(got), len(tt.offsets))
			}
			for _, off := range tt.offsets {
				if !got[[2]int{cx + off[0], cy + off[1]}] {
					t.Errorf("size %d missing pixel at offset (%d,%d)", tt.size, off[0], off[1])
				}
			}
		})
	}
}
