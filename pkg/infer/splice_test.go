package infer

import (
	"testing"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

func TestSplice_SharedWaypoint(t *testing.T) {
	merged, ok := Splice(models.Path{300, 200}, models.Path{200, 100})
	if !ok {
		t.Fatal("Expected splice to succeed at shared hop 200")
	}
	if !merged.Equal(models.Path{200, 100}) {
		t.Errorf("Splice = %v, want 200 100", merged)
	}
}

func TestSplice_DeepestWaypointWins(t *testing.T) {
	// Shared hops 1 (positions 0,1) and 2 (positions 1,2): the pair
	// maximizing i+j is hop 2, keeping the most of both inputs.
	merged, ok := Splice(models.Path{1, 2, 9}, models.Path{5, 1, 2, 7})
	if !ok {
		t.Fatal("Expected splice to succeed")
	}
	if !merged.Equal(models.Path{9, 2, 7}) {
		t.Errorf("Splice = %v, want 9 2 7", merged)
	}
}

func TestSplice_LastOccurrenceInDestination(t *testing.T) {
	// Hop 1 appears twice in the destination path; position pair (0, 2)
	// maximizes the sum, so the later occurrence splices.
	merged, ok := Splice(models.Path{1, 9}, models.Path{1, 5, 1, 7})
	if !ok {
		t.Fatal("Expected splice to succeed")
	}
	if !merged.Equal(models.Path{9, 1, 7}) {
		t.Errorf("Splice = %v, want 9 1 7", merged)
	}
}

func TestSplice_EqualSumKeepsFirstSourcePosition(t *testing.T) {
	// (0,1) and (1,0) tie on i+j; the earlier source position is kept.
	merged, ok := Splice(models.Path{1, 2}, models.Path{2, 1})
	if !ok {
		t.Fatal("Expected splice to succeed")
	}
	if !merged.Equal(models.Path{2, 1}) {
		t.Errorf("Splice = %v, want 2 1", merged)
	}
}

func TestSplice_SelfIsShort(t *testing.T) {
	// Splicing a path with itself picks the full overlap and must not
	// produce anything longer than the input.
	src := models.Path{1, 2, 3}
	merged, ok := Splice(src, src)
	if !ok {
		t.Fatal("Expected self-splice to succeed")
	}
	if len(merged) > len(src) {
		t.Errorf("Self-splice grew the path: %v", merged)
	}
	if !merged.Equal(models.Path{3}) {
		t.Errorf("Self-splice = %v, want 3", merged)
	}
}

func TestSplice_NoSharedHop(t *testing.T) {
	if _, ok := Splice(models.Path{1, 2}, models.Path{3, 4}); ok {
		t.Error("Expected splice to fail without a shared hop")
	}
}

func TestSplice_WaypointAppearsOnce(t *testing.T) {
	merged, ok := Splice(models.Path{5, 7}, models.Path{7, 8})
	if !ok {
		t.Fatal("Expected splice to succeed")
	}
	count := 0
	for _, hop := range merged {
		if hop == 7 {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Waypoint 7 appears %d times in %v, want once", count, merged)
	}
}
