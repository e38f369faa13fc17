package dataset

import "testing"

func mkSample(id int, sio2, temp, visc float64) Sample {
	return Sample{ID: id, SiO2: sio2, Temperature: temp, Viscosity: visc, Measured: true}
}

func TestGroupIsPartition(t *testing.T) {
	samples := []Sample{
		mkSample(1, 53.5, 1488, 2.268),
		mkSample(2, 60.1, 1500, 1.9),
		mkSample(3, 53.5, 1470, 2.232),
		mkSample(4, 60.1, 1450, 2.1),
		mkSample(5, 48.2, 1400, 2.8),
	}
	g := Group(samples)
	total := 0
	seen := map[int]bool{}
	for _, sig := range g.Keys() {
		for _, s := range g.Samples(sig) {
			if seen[s.ID] {
				t.Fatalf("sample %d appears in more than one group", s.ID)
			}
			seen[s.ID] = true
			total++
		}
	}
	if total != len(samples) {
		t.Fatalf("sum of group sizes = %d, want %d", total, len(samples))
	}
	if g.Len() != 3 {
		t.Fatalf("groups = %d, want 3", g.Len())
	}
}

func TestGroupRoundingAbsorbsFloatNoise(t *testing.T) {
	a := mkSample(1, 53.500001, 1488, 2.268)
	b := mkSample(2, 53.4999994, 1470, 2.232)
	g := Group([]Sample{a, b})
	if g.Len() != 1 {
		t.Fatalf("groups = %d, want 1 (values differ only past 2nd decimal)", g.Len())
	}
	if a.Signature() != b.Signature() {
		t.Fatalf("signatures differ: %q vs %q", a.Signature(), b.Signature())
	}
}

func TestGroupOrderDeterministic(t *testing.T) {
	samples := []Sample{
		mkSample(1, 60.1, 1500, 1.9),
		mkSample(2, 53.5, 1488, 2.268),
		mkSample(3, 60.1, 1450, 2.1),
	}
	g1 := Group(samples)
	g2 := Group(samples)
	k1, k2 := g1.Keys(), g2.Keys()
	if len(k1) != len(k2) {
		t.Fatalf("key counts differ: %d vs %d", len(k1), len(k2))
	}
	for i := range k1 {
		if k1[i] != k2[i] {
			t.Fatalf("key order differs at %d: %q vs %q", i, k1[i], k2[i])
		}
	}
	// first-seen order across groups, input order within a group
	if k1[0] != samples[0].Signature() {
		t.Fatalf("first group key is not the first-seen signature")
	}
	grp := g1.Samples(samples[0].Signature())
	if len(grp) != 2 || grp[0].ID != 1 || grp[1].ID != 3 {
		t.Fatalf("group order not input order: %+v", grp)
	}
}

func TestGroupEmptyInput(t *testing.T) {
	g := Group(nil)
	if g.Len() != 0 {
		t.Fatalf("groups = %d, want 0", g.Len())
	}
	if s := g.Samples("anything"); s != nil {
		t.Fatalf("absent signature returned %v", s)
	}
}

func TestSignatureFixedOrder(t *testing.T) {
	s := Sample{SiO2: 53.5, Al2O3: 14.1, FexOy: 11.2, Na2O: 2.9, K2O: 0.8, CaO: 9.4, MgO: 6.5, TiO2: 1.6}
	want := "53.50|14.10|11.20|2.90|0.80|9.40|6.50|1.60"
	if got := s.Signature(); got != want {
		t.Fatalf("Signature = %q, want %q", got, want)
	}
}
