package dataset

import "sort"

// Project returns the group's samples sorted ascending by temperature.
// The sort is stable: equal temperatures keep their original relative
// order. An absent signature yields an empty series.
func Project(g *Grouping, sig string) []Sample {
	src := g.Samples(sig)
	if len(src) == 0 {
		return nil
	}
	out := make([]Sample, len(src))
	copy(out, src)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Temperature < out[j].Temperature
	})
	return out
}

// Representative returns the series' first sample, the source of
// temperature-invariant display fields (composition, label). ok is false
// for an empty series; callers must handle a missing representative.
func Representative(series []Sample) (Sample, bool) {
	if len(series) == 0 {
		return Sample{}, false
	}
	return series[0], true
}
