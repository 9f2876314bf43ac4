package models

import "testing"

func TestASNSetUnionWith(t *testing.T) {
	s := NewASNSet(1, 2)
	s.UnionWith(NewASNSet(2, 3))

	if s.Len() != 3 {
		t.Fatalf("Expected 3 members after union, got %d", s.Len())
	}
	for _, asn := range []ASN{1, 2, 3} {
		if !s.Contains(asn) {
			t.Errorf("Expected %d after union", asn)
		}
	}
}

func TestASNSetIntersectWith(t *testing.T) {
	s := NewASNSet(1, 2, 3)
	s.IntersectWith(NewASNSet(2, 3, 4))

	if s.Len() != 2 {
		t.Fatalf("Expected 2 members after intersection, got %d", s.Len())
	}
	if s.Contains(1) || !s.Contains(2) || !s.Contains(3) {
		t.Errorf("Unexpected intersection result: %v", s.Sorted())
	}

	s.IntersectWith(NewASNSet(9))
	if s.Len() != 0 {
		t.Errorf("Expected empty set after disjoint intersection, got %v", s.Sorted())
	}
}

func TestASNSetSubsetOf(t *testing.T) {
	if !NewASNSet(1, 2).SubsetOf(NewASNSet(1, 2, 3)) {
		t.Error("Expected {1,2} ⊆ {1,2,3}")
	}
	if NewASNSet(1, 4).SubsetOf(NewASNSet(1, 2, 3)) {
		t.Error("Expected {1,4} ⊄ {1,2,3}")
	}
	if !NewASNSet().SubsetOf(NewASNSet(1)) {
		t.Error("Expected empty set to be subset of anything")
	}
}

func TestASNSetClone(t *testing.T) {
	s := NewASNSet(1, 2)
	c := s.Clone()
	c.Add(3)

	if s.Contains(3) {
		t.Error("Mutating clone leaked into original")
	}
	if !c.Contains(1) || !c.Contains(2) {
		t.Error("Clone lost members")
	}
}

func TestCountHelpers(t *testing.T) {
	a := NewASNSet(1, 2, 3)
	b := NewASNSet(3, 4)

	if got := CountOnlyIn(a, b); got != 2 {
		t.Errorf("CountOnlyIn(a, b) = %d, want 2", got)
	}
	if got := CountOnlyIn(b, a); got != 1 {
		t.Errorf("CountOnlyIn(b, a) = %d, want 1", got)
	}
	if got := CountCommon(a, b); got != 1 {
		t.Errorf("CountCommon(a, b) = %d, want 1", got)
	}
	if got := CountCommon(b, a); got != 1 {
		t.Errorf("CountCommon(b, a) = %d, want 1", got)
	}
	if got := CountCommon(a, NewASNSet()); got != 0 {
		t.Errorf("CountCommon(a, empty) = %d, want 0", got)
	}
}

func TestPathSetDeduplicates(t *testing.T) {
	s := make(PathSet)
	s.Add(Path{1, 2, 3})
	s.Add(Path{1, 2, 3})
	s.Add(Path{1, 2})

	if s.Len() != 2 {
		t.Fatalf("Expected 2 distinct paths, got %d", s.Len())
	}

	other := make(PathSet)
	other.Add(Path{1, 2})
	other.Add(Path{4})
	s.AddAll(other)

	if s.Len() != 3 {
		t.Errorf("Expected 3 distinct paths after AddAll, got %d", s.Len())
	}
}
