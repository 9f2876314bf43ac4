// Package view accumulates, per analytical viewpoint, which ASes appear
// on the inferred paths toward each weighted destination, and compares
// viewpoints through two traffic-weighted dissimilarity metrics.
package view

import (
	"math"
	"net/netip"

	"github.com/hervehildenbrand/bgp-vantage/pkg/infer"
	"github.com/hervehildenbrand/bgp-vantage/pkg/kb"
	"github.com/hervehildenbrand/bgp-vantage/pkg/models"
)

// View is one viewpoint over a fixed knowledge base. It starts empty and
// grows only by adding vantage addresses; for every destination some
// vantage reached, it tracks the ASes on every vantage's path (hard core,
// shrinking) and on any vantage's path (all seen, growing).
//
// A View is not safe for concurrent mutation; compute independent views
// on separate goroutines instead.
type View struct {
	kb       *kb.KnowledgeBase
	engine   *infer.Engine
	vantages []netip.Addr
	hardCore map[netip.Prefix]models.ASNSet
	allSeen  map[netip.Prefix]models.ASNSet
}

// New creates an empty view over the engine's knowledge base.
func New(engine *infer.Engine) *View {
	return &View{
		kb:       engine.KB(),
		engine:   engine,
		hardCore: make(map[netip.Prefix]models.ASNSet),
		allSeen:  make(map[netip.Prefix]models.ASNSet),
	}
}

// AddVantage reconstructs paths from addr to every weighted destination
// and folds the winning paths' hop sets into the accumulators: union into
// allSeen, intersection into hardCore, first write initializing both.
// Destinations the vantage could not reach are left untouched.
func (v *View) AddVantage(addr netip.Addr) {
	for prefix, path := range v.engine.Reconstruct(addr) {
		hops := path.HopSet()
		if seen, ok := v.allSeen[prefix]; ok {
			seen.UnionWith(hops)
		} else {
			v.allSeen[prefix] = hops.Clone()
		}
		if core, ok := v.hardCore[prefix]; ok {
			core.IntersectWith(hops)
		} else {
			v.hardCore[prefix] = hops
		}
	}
	v.vantages = append(v.vantages, addr)
}

// Vantages returns the addresses added so far, in order.
func (v *View) Vantages() []netip.Addr {
	return append([]netip.Addr(nil), v.vantages...)
}

// Destinations returns the number of destination prefixes reached by at
// least one vantage.
func (v *View) Destinations() int {
	return len(v.allSeen)
}

// HardCore returns the hard-core set for one destination prefix.
func (v *View) HardCore(prefix netip.Prefix) (models.ASNSet, bool) {
	s, ok := v.hardCore[prefix]
	return s, ok
}

// AllSeen returns the all-seen set for one destination prefix.
func (v *View) AllSeen(prefix netip.Prefix) (models.ASNSet, bool) {
	s, ok := v.allSeen[prefix]
	return s, ok
}

// HardCoreMean returns the mean hard-core set size over the destinations
// the view has reached. ok is false when no destination was reached; the
// mean is undefined then.
func (v *View) HardCoreMean() (float64, bool) {
	return meanSize(v.hardCore)
}

// AllSeenMean is the all-seen counterpart of HardCoreMean.
func (v *View) AllSeenMean() (float64, bool) {
	return meanSize(v.allSeen)
}

func meanSize(sets map[netip.Prefix]models.ASNSet) (float64, bool) {
	if len(sets) == 0 {
		return 0, false
	}
	total := 0
	for _, s := range sets {
		total += s.Len()
	}
	return float64(total) / float64(len(sets)), true
}

// CoreDissimilarity measures how differently two views perceive the
// network core: per weighted destination, the symmetric difference of the
// hard-core sets over their total size, averaged with traffic weights.
// Destinations where both sets are empty are excluded. ok is false when
// the views reference different knowledge bases; the comparison is then
// not meaningful, which is a defined non-result rather than an error.
func (v *View) CoreDissimilarity(other *View) (float64, bool) {
	if v.kb != other.kb {
		return 0, false
	}
	var num, den float64
	for prefix, weight := range v.kb.Weights() {
		sa := v.hardCore[prefix]
		sb := other.hardCore[prefix]
		size := sa.Len() + sb.Len()
		if size == 0 {
			continue
		}
		diff := models.CountOnlyIn(sa, sb) + models.CountOnlyIn(sb, sa)
		num += float64(weight) * float64(diff) / float64(size)
		den += float64(weight)
	}
	if den == 0 {
		return 0, true
	}
	return num / den, true
}

// JaccardDissimilarity is the all-seen counterpart of CoreDissimilarity:
// per weighted destination, one minus the Jaccard index of the all-seen
// sets, excluding destinations with an empty union.
func (v *View) JaccardDissimilarity(other *View) (float64, bool) {
	if v.kb != other.kb {
		return 0, false
	}
	var num, den float64
	for prefix, weight := range v.kb.Weights() {
		sa := v.allSeen[prefix]
		sb := other.allSeen[prefix]
		common := models.CountCommon(sa, sb)
		union := sa.Len() + sb.Len() - common
		if union == 0 {
			continue
		}
		num += float64(weight) * (1 - float64(common)/float64(union))
		den += float64(weight)
	}
	if den == 0 {
		return 0, true
	}
	return num / den, true
}

// Summary collects the reportable numbers for one named view. Means over
// a view that reached nothing come out as NaN.
func (v *View) Summary(name string) models.ViewSummary {
	hc, ok := v.HardCoreMean()
	if !ok {
		hc = math.NaN()
	}
	as, ok := v.AllSeenMean()
	if !ok {
		as = math.NaN()
	}
	return models.ViewSummary{
		Name:         name,
		Vantages:     len(v.vantages),
		Destinations: v.Destinations(),
		HardCoreMean: hc,
		AllSeenMean:  as,
	}
}
