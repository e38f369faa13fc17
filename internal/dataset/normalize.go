package dataset

// Normalize builds one Sample per input row via the field resolver and keeps
// only rows passing the acceptance predicate. IDs form a dense 1..N sequence
// over the accepted output, in input order; they do not come from the source
// data. Pure transformation: a row that fails to parse resolves to defaults
// and is filtered, never reported individually.
func Normalize(rows []*Row) []Sample {
	out := make([]Sample, 0, len(rows))
	for _, r := range rows {
		s := Sample{
			SiO2:  Number(r, "SiO2"),
			Al2O3: Number(r, "Al2O3"),
			FexOy: firstNumber(r, "Fe", "FexOy"),
			Na2O:  Number(r, "Na2O"),
			K2O:   Number(r, "K2O"),
			CaO:   Number(r, "CaO"),
			MgO:   Number(r, "MgO"),
			TiO2:  Number(r, "TiO2"),

			Temperature: firstNumber(r, "temp", "temperature"),
			Viscosity:   firstNumber(r, "viscosity", "log10", "Value"),

			Label:    firstText(r, "remark", "source", "name"),
			Measured: true,
		}
		if !s.Accepted() {
			continue
		}
		s.ID = len(out) + 1
		out = append(out, s)
	}
	return out
}
