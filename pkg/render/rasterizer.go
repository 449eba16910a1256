package render

import (
	"math"

	"github.com/solweaver/orrery/pkg/math3d"
)

// Rasterizer converts transformed triangles into fragments using edge
// functions with incremental stepping. It is stateless across triangles
// apart from configuration; callers composite the fragments themselves.
type Rasterizer struct {
	Width  int
	Height int

	// EyeCull switches the backface-cull reference point from the world
	// origin to Eye. The origin reference matches the historical behavior;
	// it classifies by dot(face normal, v0 - origin) in transformed space,
	// which only approximates a true camera-relative cull.
	EyeCull bool
	Eye     math3d.Vec3
}

// NewRasterizer creates a rasterizer for a viewport of the given pixel size.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{Width: width, Height: height}
}

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C, the signed
// area test against the directed edge (x0,y0)->(x1,y1).
func edgeCoeffs(x0, y0, x1, y1 float64) (a, b, c float64) {
	a = y0 - y1
	b = x1 - x0
	c = x0*y1 - x1*y0
	return
}

// Triangle rasterizes one triangle of transformed vertices and returns its
// fragments. Backfacing and degenerate (zero-area) triangles produce no
// fragments. Pixels exactly on an edge are included so adjacent triangles
// share seams without gaps.
func (r *Rasterizer) Triangle(v0, v1, v2 Vertex) []Fragment {
	t0 := v0.TransformedPosition
	t1 := v1.TransformedPosition
	t2 := v2.TransformedPosition

	// Backface cull: geometric normal in transformed space against a view
	// direction from the first vertex toward the reference point.
	normal := t1.Sub(t0).Cross(t2.Sub(t0))
	ref := math3d.Zero3()
	if r.EyeCull {
		ref = r.Eye
	}
	if normal.Dot(t0.Sub(ref)) < 0 {
		return nil
	}

	// Integer bounding box, clipped to the framebuffer.
	minX := int(math.Max(0, math.Floor(min3(t0.X, t1.X, t2.X))))
	maxX := int(math.Min(float64(r.Width-1), math.Ceil(max3(t0.X, t1.X, t2.X))))
	minY := int(math.Max(0, math.Floor(min3(t0.Y, t1.Y, t2.Y))))
	maxY := int(math.Min(float64(r.Height-1), math.Ceil(max3(t0.Y, t1.Y, t2.Y))))
	if minX > maxX || minY > maxY {
		return nil
	}

	// Edge 0: t1->t2, edge 1: t2->t0, edge 2: t0->t1. Weight i tracks
	// vertex i.
	a0, b0, c0 := edgeCoeffs(t1.X, t1.Y, t2.X, t2.Y)
	a1, b1, c1 := edgeCoeffs(t2.X, t2.Y, t0.X, t0.Y)
	a2, b2, c2 := edgeCoeffs(t0.X, t0.Y, t1.X, t1.Y)

	area2 := t1.Sub(t0).Cross(t2.Sub(t0)).Z // 2 * signed screen area
	if area2 == 0 {
		return nil
	}
	if area2 < 0 {
		// Normalize the winding sign so inside means all weights >= 0.
		a0, b0, c0 = -a0, -b0, -c0
		a1, b1, c1 = -a1, -b1, -c1
		a2, b2, c2 = -a2, -b2, -c2
		area2 = -area2
	}
	invArea := 1.0 / area2

	// Evaluate the edge functions at the first pixel center, then step
	// incrementally across the box.
	px := float64(minX) + 0.5
	py := float64(minY) + 0.5
	w0Row := a0*px + b0*py + c0
	w1Row := a1*px + b1*py + c1
	w2Row := a2*px + b2*py + c2

	frags := make([]Fragment, 0, (maxX-minX+1)*(maxY-minY+1)/2)

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row

		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				bc := math3d.V3(w0*invArea, w1*invArea, w2*invArea)

				// Depth and attributes interpolate linearly. Perspective
				// correction (dividing through interpolated 1/w) is not
				// needed at this scene's precision but would slot in here.
				depth := bc.X*t0.Z + bc.Y*t1.Z + bc.Z*t2.Z

				frags = append(frags, Fragment{
					X:     x,
					Y:     y,
					Depth: depth,
					Color: BlendBarycentric(v0.Color, v1.Color, v2.Color, bc),
					Normal: v0.TransformedNormal.Scale(bc.X).
						Add(v1.TransformedNormal.Scale(bc.Y)).
						Add(v2.TransformedNormal.Scale(bc.Z)),
					UV: math3d.V2(
						bc.X*v0.UV.X+bc.Y*v1.UV.X+bc.Z*v2.UV.X,
						bc.X*v0.UV.Y+bc.Y*v1.UV.Y+bc.Z*v2.UV.Y,
					),
				})
			}

			w0 += a0
			w1 += a1
			w2 += a2
		}

		w0Row += b0
		w1Row += b1
		w2Row += b2
	}

	return frags
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
