// Package kb builds and serves the routing knowledge base: AS business
// relations, the per-family prefix tries of observed AS paths, the
// destination traffic weights and the known-ASN inventory.
//
// A knowledge base is built exactly once from its three input files and
// never mutated afterwards, so one instance can be shared by reference
// across any number of concurrent readers without locking.
package kb

import (
	"net/netip"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
	"github.com/hervehildenbrand/bgp-vantage/pkg/rib"
)

type asPair struct {
	a, b models.ASN
}

// KnowledgeBase is the immutable aggregate every view reads from.
type KnowledgeBase struct {
	relations   map[asPair]models.Relation
	v4          *rib.Table
	v6          *rib.Table
	weights     map[netip.Prefix]uint64
	asns        models.ASNSet
	fingerprint string
}

// Relation returns the business relation from a toward b, or
// RelationUnknown when no relationship was loaded for the pair.
func (k *KnowledgeBase) Relation(a, b models.ASN) models.Relation {
	return k.relations[asPair{a, b}]
}

// Lookup longest-prefix matches addr against the table of its family.
func (k *KnowledgeBase) Lookup(addr netip.Addr) (*rib.Entry, bool) {
	return k.table(addr).Lookup(addr)
}

// Exact returns the paths stored for exactly this prefix, if any.
func (k *KnowledgeBase) Exact(prefix netip.Prefix) (*rib.Entry, bool) {
	return k.table(prefix.Addr()).Exact(prefix)
}

// Weights maps each destination prefix to the number of destination
// addresses that longest-matched it. The returned map is the knowledge
// base's own and must not be modified.
func (k *KnowledgeBase) Weights() map[netip.Prefix]uint64 {
	return k.weights
}

// KnownASNs returns every AS number seen in the routing table, ascending.
func (k *KnowledgeBase) KnownASNs() []models.ASN {
	return k.asns.Sorted()
}

// Fingerprint identifies the input snapshot: a hash of the byte content
// of the three files the knowledge base was built from.
func (k *KnowledgeBase) Fingerprint() string {
	return k.fingerprint
}

// Stats returns size counters for logging.
func (k *KnowledgeBase) Stats() map[string]interface{} {
	return map[string]interface{}{
		"relations":    len(k.relations),
		"prefixes_v4":  k.v4.Len(),
		"prefixes_v6":  k.v6.Len(),
		"destinations": len(k.weights),
		"asns":         k.asns.Len(),
	}
}

func (k *KnowledgeBase) table(addr netip.Addr) *rib.Table {
	if addr.Is4() {
		return k.v4
	}
	return k.v6
}
