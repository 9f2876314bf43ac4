package models

import "testing"

func TestParsePathField_Literal(t *testing.T) {
	paths, err := ParsePathField("6939 3356 13335")
	if err != nil {
		t.Fatalf("ParsePathField failed: %v", err)
	}
	if paths.Len() != 1 {
		t.Fatalf("Expected 1 path, got %d", paths.Len())
	}
	if !paths.Contains(Path{6939, 3356, 13335}) {
		t.Errorf("Expected path 6939 3356 13335, got %v", paths)
	}
}

func TestParsePathField_ASSet(t *testing.T) {
	// An AS-SET hop multiplies out: {1,2} 3 denotes exactly two
	// concrete paths.
	paths, err := ParsePathField("{1,2} 3")
	if err != nil {
		t.Fatalf("ParsePathField failed: %v", err)
	}
	if paths.Len() != 2 {
		t.Fatalf("Expected 2 paths, got %d: %v", paths.Len(), paths)
	}
	if !paths.Contains(Path{1, 3}) {
		t.Errorf("Expected path 1 3 in %v", paths)
	}
	if !paths.Contains(Path{2, 3}) {
		t.Errorf("Expected path 2 3 in %v", paths)
	}
}

func TestParsePathField_CartesianProduct(t *testing.T) {
	paths, err := ParsePathField("9 {1,2} (3,4)")
	if err != nil {
		t.Fatalf("ParsePathField failed: %v", err)
	}
	if paths.Len() != 4 {
		t.Fatalf("Expected 4 paths, got %d: %v", paths.Len(), paths)
	}
	for _, want := range []Path{{9, 1, 3}, {9, 2, 3}, {9, 1, 4}, {9, 2, 4}} {
		if !paths.Contains(want) {
			t.Errorf("Expected path %v in %v", want, paths)
		}
	}
}

func TestParsePathField_BracketVariants(t *testing.T) {
	for _, field := range []string{"{5,6}", "(5,6)", "[5,6]"} {
		paths, err := ParsePathField(field)
		if err != nil {
			t.Fatalf("ParsePathField(%q) failed: %v", field, err)
		}
		if paths.Len() != 2 {
			t.Errorf("ParsePathField(%q): expected 2 paths, got %d", field, paths.Len())
		}
	}
}

func TestParsePathField_BadToken(t *testing.T) {
	for _, field := range []string{"not-an-asn", "1 2 x", "{1,y} 3", ""} {
		if _, err := ParsePathField(field); err == nil {
			t.Errorf("ParsePathField(%q): expected error, got none", field)
		}
	}
}

func TestPathLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Path
		want bool
	}{
		{"shorter wins", Path{9, 9, 9}, Path{1, 1, 1, 1}, true},
		{"longer loses", Path{1, 1, 1, 1}, Path{9, 9, 9}, false},
		{"equal length lexicographic", Path{1, 5}, Path{2, 5}, true},
		{"equal length later hop decides", Path{1, 5}, Path{1, 6}, true},
		{"identical", Path{1, 5}, Path{1, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("(%v).Less(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPathKeyAndEqual(t *testing.T) {
	p := Path{300, 200, 100}
	if p.Key() != "300 200 100" {
		t.Errorf("Key() = %q, want \"300 200 100\"", p.Key())
	}
	if !p.Equal(Path{300, 200, 100}) {
		t.Error("Expected identical paths to be equal")
	}
	if p.Equal(Path{300, 200}) {
		t.Error("Expected prefix path to differ")
	}
	if p.Equal(Path{300, 200, 101}) {
		t.Error("Expected differing hop to differ")
	}
}

func TestPathHopSet(t *testing.T) {
	hops := Path{1, 2, 1, 3}.HopSet()
	if hops.Len() != 3 {
		t.Fatalf("Expected 3 distinct hops, got %d", hops.Len())
	}
	for _, asn := range []ASN{1, 2, 3} {
		if !hops.Contains(asn) {
			t.Errorf("Expected hop set to contain %d", asn)
		}
	}
}
