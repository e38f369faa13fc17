package dataset

import (
	"errors"
	"testing"
)

func TestNewDataset(t *testing.T) {
	rows := []*Row{
		textRow("SiO2", "53.5", "temp", "1488", "viscosity", "2.268"),
		textRow("SiO2", "53.5", "temperature", "1470", "log10", "2.232"),
	}
	ds, err := NewDataset("melts.csv", rows)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if len(ds.Samples) != 2 {
		t.Fatalf("samples = %d, want 2", len(ds.Samples))
	}
	if ds.Provenance != "Imported melts.csv (2 rows)" {
		t.Fatalf("provenance = %q", ds.Provenance)
	}

	// each import gets a fresh identity token
	ds2, err := NewDataset("melts.csv", rows)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	if ds.ID == ds2.ID {
		t.Fatalf("two imports share the same identity token")
	}
}

func TestNewDatasetNoSamples(t *testing.T) {
	rows := []*Row{textRow("foo", "bar")}
	_, err := NewDataset("junk.csv", rows)
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("err = %v, want ErrNoSamples", err)
	}
}

// End-to-end pipeline over fuzzy column names: two rows with the same
// composition but different temperature/viscosity spellings land in one
// group and project in ascending temperature order.
func TestPipelineScenario(t *testing.T) {
	rows := []*Row{
		textRow("SiO2", "53.5", "temp", "1488", "viscosity", "2.268"),
		textRow("SiO2", "53.5", "temperature", "1470", "log10", "2.232"),
	}
	samples := Normalize(rows)
	if len(samples) != 2 {
		t.Fatalf("accepted %d, want 2", len(samples))
	}
	g := Group(samples)
	if g.Len() != 1 {
		t.Fatalf("groups = %d, want 1", g.Len())
	}
	series := Project(g, g.Keys()[0])
	if series[0].Temperature != 1470 || series[0].Viscosity != 2.232 {
		t.Fatalf("series[0] = %+v", series[0])
	}
	if series[1].Temperature != 1488 || series[1].Viscosity != 2.268 {
		t.Fatalf("series[1] = %+v", series[1])
	}
}
