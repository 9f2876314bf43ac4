// Package infer reconstructs plausible AS-level paths between a vantage
// address and every weighted destination prefix of a knowledge base, by
// splicing partially-known announced paths at shared waypoints and
// preferring candidates that respect valley-free routing policy.
package infer

import (
	"net/netip"

	"github.com/hervehildenbrand/bgp-vantage/pkg/kb"
	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

// Engine infers paths against one knowledge base. The optional cache
// memoizes whole per-vantage results across runs over the same snapshot.
type Engine struct {
	kb    *kb.KnowledgeBase
	cache *PathCache
}

// New creates an engine. cache may be nil.
func New(base *kb.KnowledgeBase, cache *PathCache) *Engine {
	return &Engine{kb: base, cache: cache}
}

// KB returns the knowledge base the engine infers against.
func (e *Engine) KB() *kb.KnowledgeBase {
	return e.kb
}

// Reconstruct returns the best inferred path from vantage to every
// destination prefix with positive traffic weight. A vantage whose
// address matches no announced prefix yields an empty result, as does any
// destination for which no candidate path can be spliced.
func (e *Engine) Reconstruct(vantage netip.Addr) map[netip.Prefix]models.Path {
	if e.cache != nil {
		if paths, ok := e.cache.Get(vantage); ok {
			return paths
		}
	}

	result := make(map[netip.Prefix]models.Path)
	if anchor, ok := e.kb.Lookup(vantage); ok {
		for prefix, weight := range e.kb.Weights() {
			if weight == 0 {
				continue
			}
			dest, ok := e.kb.Exact(prefix)
			if !ok {
				continue
			}
			if best, ok := e.bestPath(anchor.Paths, dest.Paths); ok {
				result[prefix] = best
			}
		}
	}

	if e.cache != nil {
		e.cache.Put(vantage, result)
	}
	return result
}

// bestPath splices every (source, destination) path pair and picks the
// winner: the least valley-free candidate if any exists, otherwise the
// least candidate overall, under the hop-count-then-lexicographic order.
func (e *Engine) bestPath(src, dst models.PathSet) (models.Path, bool) {
	var best, bestValleyFree models.Path
	for _, s := range src {
		for _, d := range dst {
			cand, ok := Splice(s, d)
			if !ok {
				continue
			}
			if e.ValleyFree(cand) {
				if bestValleyFree == nil || cand.Less(bestValleyFree) {
					bestValleyFree = cand
				}
			} else if best == nil || cand.Less(best) {
				best = cand
			}
		}
	}
	if bestValleyFree != nil {
		return bestValleyFree, true
	}
	if best != nil {
		return best, true
	}
	return nil, false
}

// ValleyFree reports whether the relation sequence along consecutive hops
// never decreases: once a route goes downhill through a provider-to-
// customer edge it must keep descending. A hop pair with no known
// relation disqualifies the path. Paths of at most one hop pass
// trivially.
func (e *Engine) ValleyFree(p models.Path) bool {
	state := models.RelationUnknown
	for i := 0; i+1 < len(p); i++ {
		rel := e.kb.Relation(p[i], p[i+1])
		if rel == models.RelationUnknown || rel < state {
			return false
		}
		state = rel
	}
	return true
}
