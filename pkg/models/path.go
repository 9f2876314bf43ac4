package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is one observed or inferred AS-level route, ordered hop by hop.
type Path []ASN

// Key returns the canonical string form of the path ("300 200 100").
// Two paths are the same route iff their keys are equal.
func (p Path) Key() string {
	var b strings.Builder
	for i, asn := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(uint64(asn), 10))
	}
	return b.String()
}

func (p Path) String() string { return p.Key() }

// Equal reports whether both paths have identical hop sequences.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Less orders paths by hop count first, then hop-by-hop numerically.
// The secondary comparison makes winner selection deterministic when
// several candidates share the minimal length.
func (p Path) Less(other Path) bool {
	if len(p) != len(other) {
		return len(p) < len(other)
	}
	for i := range p {
		if p[i] != other[i] {
			return p[i] < other[i]
		}
	}
	return false
}

// HopSet returns the set of ASes appearing anywhere on the path.
func (p Path) HopSet() ASNSet {
	s := make(ASNSet, len(p))
	for _, asn := range p {
		s.Add(asn)
	}
	return s
}

// ParsePathField expands a space-separated AS-path field into the set of
// concrete paths it denotes. A token is either a literal ASN or a bracket
// group ("{3356,1299}", "(174)", "[6939,3257]") listing the alternative
// ASes for that hop; groups multiply out as a cartesian product across
// positions, one concrete path per combination.
func ParsePathField(field string) (PathSet, error) {
	tokens := strings.Split(field, " ")
	current := []Path{{}}
	for _, tok := range tokens {
		alts, err := ParsePathToken(tok)
		if err != nil {
			return nil, err
		}
		next := make([]Path, 0, len(current)*len(alts))
		for _, asn := range alts {
			for _, prefix := range current {
				hops := make(Path, len(prefix), len(prefix)+1)
				copy(hops, prefix)
				next = append(next, append(hops, asn))
			}
		}
		current = next
	}
	result := make(PathSet, len(current))
	for _, p := range current {
		result.Add(p)
	}
	return result, nil
}

// ParsePathToken parses one AS-path token into its alternative ASes: a
// single element for a literal, one per member for a bracketed AS-SET.
func ParsePathToken(tok string) ([]ASN, error) {
	if !strings.ContainsAny(tok, "{([") {
		asn, err := ParseASN(tok)
		if err != nil {
			return nil, fmt.Errorf("as-path token %q: %w", tok, err)
		}
		return []ASN{asn}, nil
	}
	trimmed := strings.Trim(tok, "{}()[]")
	members := strings.Split(trimmed, ",")
	alts := make([]ASN, 0, len(members))
	for _, m := range members {
		asn, err := ParseASN(m)
		if err != nil {
			return nil, fmt.Errorf("as-set member %q in token %q: %w", m, tok, err)
		}
		alts = append(alts, asn)
	}
	return alts, nil
}
