package scene

import "github.com/solweaver/orrery/pkg/math3d"

// DefaultTrailLen is the capacity of orbit trails.
const DefaultTrailLen = 100

// Trail is a bounded ordered sequence of past world positions. When full,
// pushing drops the oldest entry first (ring buffer semantics).
type Trail struct {
	points []math3d.Vec3
	start  int
	count  int
}

// NewTrail creates a trail holding at most capacity positions.
func NewTrail(capacity int) *Trail {
	return &Trail{points: make([]math3d.Vec3, capacity)}
}

// Cap returns the trail's capacity.
func (t *Trail) Cap() int {
	return len(t.points)
}

// Len returns the number of recorded positions.
func (t *Trail) Len() int {
	return t.count
}

// Push appends a position, evicting the oldest when at capacity.
func (t *Trail) Push(p math3d.Vec3) {
	if len(t.points) == 0 {
		return
	}
	if t.count < len(t.points) {
		t.points[(t.start+t.count)%len(t.points)] = p
		t.count++
		return
	}
	t.points[t.start] = p
	t.start = (t.start + 1) % len(t.points)
}

// At returns the i-th recorded position, oldest first.
func (t *Trail) At(i int) math3d.Vec3 {
	return t.points[(t.start+i)%len(t.points)]
}
