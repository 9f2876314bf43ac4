// Package rib implements the prefix-indexed path store: a binary trie
// per address family with longest-prefix and exact match lookups.
package rib

import (
	"net/netip"

	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

// Entry is the stored value for one prefix: the canonical (masked) prefix
// and the set of distinct AS paths observed announcing it.
type Entry struct {
	Prefix netip.Prefix
	Paths  models.PathSet
}

// Table is a binary trie over prefix bits, one per address family. It is
// filled once at knowledge-base build time and read-only afterwards.
type Table struct {
	root *node
	size int
}

type node struct {
	child [2]*node
	entry *Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{root: &node{}}
}

// Len returns the number of stored prefixes.
func (t *Table) Len() int { return t.size }

// Insert stores paths under prefix, replacing any previous entry for the
// exact same prefix. The prefix is canonicalized to its masked form.
func (t *Table) Insert(prefix netip.Prefix, paths models.PathSet) {
	prefix = prefix.Masked()
	addr := prefix.Addr().AsSlice()
	n := t.root
	for i := 0; i < prefix.Bits(); i++ {
		b := bit(addr, i)
		if n.child[b] == nil {
			n.child[b] = &node{}
		}
		n = n.child[b]
	}
	if n.entry == nil {
		t.size++
	}
	n.entry = &Entry{Prefix: prefix, Paths: paths}
}

// Lookup returns the most specific stored entry whose prefix covers addr.
func (t *Table) Lookup(addr netip.Addr) (*Entry, bool) {
	slice := addr.AsSlice()
	best := t.root.entry
	n := t.root
	for i := 0; i < len(slice)*8; i++ {
		n = n.child[bit(slice, i)]
		if n == nil {
			break
		}
		if n.entry != nil {
			best = n.entry
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Exact returns the entry stored for exactly this prefix, if any.
func (t *Table) Exact(prefix netip.Prefix) (*Entry, bool) {
	prefix = prefix.Masked()
	addr := prefix.Addr().AsSlice()
	n := t.root
	for i := 0; i < prefix.Bits(); i++ {
		n = n.child[bit(addr, i)]
		if n == nil {
			return nil, false
		}
	}
	if n.entry == nil {
		return nil, false
	}
	return n.entry, true
}

// bit returns bit i of the address in network order.
func bit(addr []byte, i int) int {
	return int(addr[i/8]>>(7-uint(i%8))) & 1
}
