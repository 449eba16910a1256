package render

import (
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
)

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hex  uint32
	}{
		{"black", 0x000000},
		{"white", 0xFFFFFF},
		{"background", 0x335555},
		{"red", 0xFF0000},
		{"mixed", 0x12AB9C},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHex(tt.hex).Hex(); got != tt.hex {
				t.Errorf("FromHex(%#06x).Hex() = %#06x", tt.hex, got)
			}
		})
	}
}

func TestScaleClamps(t *testing.T) {
	c := RGB(100, 200, 50)

	if got := c.Scale(2); got != RGB(200, 255, 100) {
		t.Errorf("Scale(2) = %v", got)
	}
	if got := c.Scale(-1); got != RGB(0, 0, 0) {
		t.Errorf("Scale(-1) = %v", got)
	}
	if got := c.Scale(0.5); got != RGB(50, 100, 25) {
		t.Errorf("Scale(0.5) = %v", got)
	}
}

func TestAddSaturates(t *testing.T) {
	if got := RGB(200, 10, 100).Add(RGB(100, 20, 155)); got != RGB(255, 30, 255) {
		t.Errorf("Add = %v", got)
	}
}

func TestLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(200, 100, 50)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := a.Lerp(b, 0.5); got != RGB(100, 50, 25) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	// Out-of-range t clamps to the endpoints.
	if got := a.Lerp(b, 2); got != b {
		t.Errorf("Lerp(2) = %v", got)
	}
}

func TestBlendBarycentric(t *testing.T) {
	r := RGB(255, 0, 0)
	g := RGB(0, 255, 0)
	b := RGB(0, 0, 255)

	// Full weight on one corner returns that corner's color.
	if got := BlendBarycentric(r, g, b, math3d.V3(1, 0, 0)); got != r {
		t.Errorf("corner weight = %v", got)
	}
	// Centroid mixes evenly.
	got := BlendBarycentric(r, g, b, math3d.V3(1.0/3, 1.0/3, 1.0/3))
	if got.R != got.G || got.G != got.B {
		t.Errorf("centroid blend not even: %v", got)
	}
}

func TestGray(t *testing.T) {
	if got := Gray(0); got != RGB(0, 0, 0) {
		t.Errorf("Gray(0) = %v", got)
	}
	if got := Gray(1); got != RGB(255, 255, 255) {
		t.Errorf("Gray(1) = %v", got)
	}
	if got := Gray(1.5); got != RGB(255, 255, 255) {
		t.Errorf("Gray(1.5) = %v", got)
	}
}
