package dataset

// Grouping partitions samples by composition signature. Group keys keep
// first-seen order and samples keep input order within a group, so an
// identical input sequence always reproduces identical contents and order.
type Grouping struct {
	keys   []string
	groups map[string][]Sample
}

// Group partitions the given samples by their Signature.
func Group(samples []Sample) *Grouping {
	g := &Grouping{groups: make(map[string][]Sample)}
	for _, s := range samples {
		sig := s.Signature()
		if _, ok := g.groups[sig]; !ok {
			g.keys = append(g.keys, sig)
		}
		g.groups[sig] = append(g.groups[sig], s)
	}
	return g
}

// Keys returns the signatures in first-seen order.
func (g *Grouping) Keys() []string { return g.keys }

// Samples returns the group under sig in input order, or nil if absent.
func (g *Grouping) Samples(sig string) []Sample { return g.groups[sig] }

// Len returns the number of groups.
func (g *Grouping) Len() int { return len(g.keys) }
