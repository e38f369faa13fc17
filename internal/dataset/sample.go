package dataset

import (
	"fmt"
	"strings"
)

// Sample is one normalized melt-chemistry measurement: eight oxide weight
// percents, a temperature in °C and a log10(Pa·s) viscosity.
type Sample struct {
	ID int

	SiO2  float64
	Al2O3 float64
	FexOy float64
	Na2O  float64
	K2O   float64
	CaO   float64
	MgO   float64
	TiO2  float64

	Temperature float64
	Viscosity   float64

	Label    string
	Measured bool
}

// Accepted reports whether the sample carries usable data: a positive
// temperature plus either a viscosity reading or a silica content. A
// measured viscosity of exactly 0.0 is indistinguishable from the
// unresolved-field default and only survives via the SiO2 branch.
func (s Sample) Accepted() bool {
	return s.Temperature > 0 && (s.Viscosity != 0 || s.SiO2 != 0)
}

// Composition returns the oxide fields in canonical order.
func (s Sample) Composition() [8]float64 {
	return [8]float64{s.SiO2, s.Al2O3, s.FexOy, s.Na2O, s.K2O, s.CaO, s.MgO, s.TiO2}
}

// CompositionFields names the oxide fields in the same order as Composition.
var CompositionFields = [8]string{"SiO2", "Al2O3", "FexOy", "Na2O", "K2O", "CaO", "MgO", "TiO2"}

// Signature derives the grouping key: each oxide rounded to 2 decimals and
// joined in fixed field order. Rounding absorbs float noise from re-parsed
// decimal text; raw-value equality must not be used for grouping.
func (s Sample) Signature() string {
	comp := s.Composition()
	parts := make([]string, len(comp))
	for i, v := range comp {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, "|")
}
