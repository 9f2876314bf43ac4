package infer

import "github.com/hervehildenbrand/bgp-vantage/pkg/models"

// Splice joins a path announced for the vantage's own network with a path
// announced for the destination at a shared AS hop. Among all position
// pairs (i, j) with src[i] == dst[j], the pair maximizing i+j wins: the
// waypoint deepest into both paths keeps the most of each input. The
// merged path is src[i:] reversed followed by dst[j+1:], so the waypoint
// appears exactly once, contributed by the source side.
func Splice(src, dst models.Path) (models.Path, bool) {
	si, dj, ok := branchingPoint(src, dst)
	if !ok {
		return nil, false
	}
	merged := make(models.Path, 0, len(src)-si+len(dst)-dj-1)
	for i := len(src) - 1; i >= si; i-- {
		merged = append(merged, src[i])
	}
	merged = append(merged, dst[dj+1:]...)
	return merged, true
}

// branchingPoint finds the shared hop deepest into both paths. For each
// source position only the last matching destination position can win,
// since it maximizes the sum for that hop.
func branchingPoint(src, dst models.Path) (int, int, bool) {
	var bestI, bestJ int
	found := false
	for i, asn := range src {
		for j := len(dst) - 1; j >= 0; j-- {
			if dst[j] == asn {
				if !found || i+j > bestI+bestJ {
					bestI, bestJ, found = i, j, true
				}
				break
			}
		}
	}
	return bestI, bestJ, found
}
