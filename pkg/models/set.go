package models

import "sort"

// ASNSet is a mutable set of AS numbers.
type ASNSet map[ASN]struct{}

// NewASNSet builds a set from the given members.
func NewASNSet(asns ...ASN) ASNSet {
	s := make(ASNSet, len(asns))
	for _, asn := range asns {
		s.Add(asn)
	}
	return s
}

func (s ASNSet) Add(asn ASN)           { s[asn] = struct{}{} }
func (s ASNSet) Contains(asn ASN) bool { _, ok := s[asn]; return ok }
func (s ASNSet) Len() int              { return len(s) }

// Clone returns an independent copy.
func (s ASNSet) Clone() ASNSet {
	c := make(ASNSet, len(s))
	for asn := range s {
		c[asn] = struct{}{}
	}
	return c
}

// UnionWith adds every member of other to the receiver.
func (s ASNSet) UnionWith(other ASNSet) {
	for asn := range other {
		s[asn] = struct{}{}
	}
}

// IntersectWith removes every member of the receiver not present in other.
func (s ASNSet) IntersectWith(other ASNSet) {
	for asn := range s {
		if !other.Contains(asn) {
			delete(s, asn)
		}
	}
}

// SubsetOf reports whether every member of s is in other.
func (s ASNSet) SubsetOf(other ASNSet) bool {
	for asn := range s {
		if !other.Contains(asn) {
			return false
		}
	}
	return true
}

// Sorted returns the members in ascending order.
func (s ASNSet) Sorted() []ASN {
	out := make([]ASN, 0, len(s))
	for asn := range s {
		out = append(out, asn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CountOnlyIn returns |a \ b|.
func CountOnlyIn(a, b ASNSet) int {
	n := 0
	for asn := range a {
		if !b.Contains(asn) {
			n++
		}
	}
	return n
}

// CountCommon returns |a ∩ b|.
func CountCommon(a, b ASNSet) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for asn := range a {
		if b.Contains(asn) {
			n++
		}
	}
	return n
}

// PathSet is a set of distinct AS paths, keyed by hop sequence.
type PathSet map[string]Path

func (s PathSet) Add(p Path) { s[p.Key()] = p }
func (s PathSet) Len() int   { return len(s) }

// AddAll unions other into the receiver.
func (s PathSet) AddAll(other PathSet) {
	for k, p := range other {
		s[k] = p
	}
}

// Contains reports whether an identical path is already stored.
func (s PathSet) Contains(p Path) bool {
	_, ok := s[p.Key()]
	return ok
}
