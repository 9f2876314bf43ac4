package models

// ViewSummary is the per-view line of the final report.
type ViewSummary struct {
	Name         string
	Vantages     int
	Destinations int
	HardCoreMean float64 // NaN when the view saw no destination
	AllSeenMean  float64 // NaN when the view saw no destination
}

// ViewDistance is one pairwise comparison between two views. Comparable is
// false when the views were built over different knowledge bases, in which
// case the two scores carry no meaning.
type ViewDistance struct {
	A, B       string
	Core       float64
	Jaccard    float64
	Comparable bool
}
