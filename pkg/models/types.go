// Package models defines the core data structures shared across bgp-vantage:
// AS numbers, business relations, AS paths and the set types built on them.
package models

import "strconv"

// ASN identifies one autonomous system.
type ASN uint32

// ParseASN parses a decimal AS number.
func ParseASN(s string) (ASN, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return ASN(v), nil
}

// Relation is the business relation between an ordered pair of ASes.
// The numeric order is load-bearing: valley-free classification requires
// the relation sequence along a path to be non-decreasing under it.
type Relation uint8

const (
	RelationUnknown Relation = iota
	RelationConsumes
	RelationPeers
	RelationProvides
)

func (r Relation) String() string {
	switch r {
	case RelationConsumes:
		return "consumes"
	case RelationPeers:
		return "peers"
	case RelationProvides:
		return "provides"
	default:
		return "unknown"
	}
}
