package scene

import (
	"testing"

	"github.com/solweaver/orrery/pkg/math3d"
)

func TestTrailGrowsToCapacity(t *testing.T) {
	tr := NewTrail(5)
	if tr.Len() != 0 || tr.Cap() != 5 {
		t.Fatalf("new trail len=%d cap=%d", tr.Len(), tr.Cap())
	}

	for i := 0; i < 3; i++ {
		tr.Push(math3d.V3(float64(i), 0, 0))
	}
	if tr.Len() != 3 {
		t.Fatalf("len = %d, want 3", tr.Len())
	}
	for i := 0; i < 3; i++ {
		if got := tr.At(i); got.X != float64(i) {
			t.Errorf("At(%d) = %v", i, got)
		}
	}
}

func TestTrailDropsOldestWhenFull(t *testing.T) {
	tr := NewTrail(4)
	for i := 0; i < 10; i++ {
		tr.Push(math3d.V3(float64(i), 0, 0))
	}

	if tr.Len() != 4 {
		t.Fatalf("len = %d, want capacity 4", tr.Len())
	}
	// The four most recent positions survive, oldest first.
	for i := 0; i < 4; i++ {
		want := float64(6 + i)
		if got := tr.At(i); got.X != want {
			t.Errorf("At(%d) = %v, want X=%v", i, got, want)
		}
	}
}

func TestTrailZeroCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(math3d.V3(1, 2, 3))
	if tr.Len() != 0 {
		t.Errorf("len = %d, zero-capacity trail must stay empty", tr.Len())
	}
}
