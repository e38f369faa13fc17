package dataset

import "testing"

func TestProjectSortsByTemperature(t *testing.T) {
	samples := []Sample{
		mkSample(1, 53.5, 1488, 2.268),
		mkSample(2, 53.5, 1470, 2.232),
	}
	g := Group(samples)
	series := Project(g, samples[0].Signature())
	if len(series) != 2 {
		t.Fatalf("series length = %d, want 2", len(series))
	}
	if series[0].Temperature != 1470 || series[1].Temperature != 1488 {
		t.Fatalf("series not ascending: %v, %v", series[0].Temperature, series[1].Temperature)
	}
	if series[0].Viscosity != 2.232 || series[1].Viscosity != 2.268 {
		t.Fatalf("viscosity pairing broken: %v, %v", series[0].Viscosity, series[1].Viscosity)
	}
}

func TestProjectStableSort(t *testing.T) {
	// temperatures [1450, 1420, 1450] in order A,B,C must sort to B,A,C
	a := mkSample(1, 50, 1450, 2.0)
	b := mkSample(2, 50, 1420, 2.1)
	c := mkSample(3, 50, 1450, 2.2)
	g := Group([]Sample{a, b, c})
	series := Project(g, a.Signature())
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	gotIDs := []int{series[0].ID, series[1].ID, series[2].ID}
	wantIDs := []int{2, 1, 3}
	for i := range wantIDs {
		if gotIDs[i] != wantIDs[i] {
			t.Fatalf("order = %v, want %v", gotIDs, wantIDs)
		}
	}
}

func TestProjectDoesNotMutateGroup(t *testing.T) {
	a := mkSample(1, 50, 1500, 2.0)
	b := mkSample(2, 50, 1400, 2.1)
	g := Group([]Sample{a, b})
	_ = Project(g, a.Signature())
	grp := g.Samples(a.Signature())
	if grp[0].ID != 1 || grp[1].ID != 2 {
		t.Fatalf("projection mutated the group: %+v", grp)
	}
}

func TestProjectAbsentSignature(t *testing.T) {
	g := Group([]Sample{mkSample(1, 50, 1500, 2.0)})
	if s := Project(g, "no-such-signature"); len(s) != 0 {
		t.Fatalf("absent signature produced %d samples", len(s))
	}
}

func TestRepresentative(t *testing.T) {
	a := mkSample(1, 50, 1500, 2.0)
	a.Label = "basalt"
	b := mkSample(2, 50, 1400, 2.1)
	b.Label = "ignored"
	g := Group([]Sample{a, b})
	series := Project(g, a.Signature())
	rep, ok := Representative(series)
	if !ok {
		t.Fatalf("expected a representative")
	}
	// lowest-temperature sample leads the projected series
	if rep.ID != 2 {
		t.Fatalf("representative ID = %d, want 2", rep.ID)
	}
	if _, ok := Representative(nil); ok {
		t.Fatalf("empty series must not have a representative")
	}
}
