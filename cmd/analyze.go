package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meltworks/slagview-cli/internal/dataset"
	"github.com/meltworks/slagview-cli/internal/decode"
)

var (
	sheetName  string
	sheetIndex int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Import a dataset file and summarize its composition groups",
	Args:  cobra.ExactArgs(1),
	Example: `  slagview analyze melts.xlsx
  slagview analyze melts.xlsx --sheet-name "Run 2"
  slagview analyze measurements.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, g, err := importDataset(args[0])
		if err != nil {
			if errors.Is(err, dataset.ErrNoSamples) {
				fmt.Fprintln(os.Stderr, "⚠ No valid rows found: every row was missing a temperature and usable composition or viscosity data.")
				return nil
			}
			return err
		}

		fmt.Printf("%s\n", ds.Provenance)
		fmt.Printf("Accepted samples: %d\n", len(ds.Samples))
		fmt.Printf("Composition groups: %d\n\n", g.Len())
		for i, sig := range g.Keys() {
			series := dataset.Project(g, sig)
			rep, ok := dataset.Representative(series)
			if !ok {
				continue
			}
			fmt.Printf("group %d: %d samples, T %.0f..%.0f °C\n",
				i+1, len(series), series[0].Temperature, series[len(series)-1].Temperature)
			fmt.Printf("  %s\n", formatComposition(rep))
			if rep.Label != "" {
				fmt.Printf("  label: %s\n", rep.Label)
			}
			if debug {
				fmt.Printf("  signature: %s\n", sig)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&sheetName, "sheet-name", "", "xlsx worksheet name (default: first sheet)")
	analyzeCmd.Flags().IntVar(&sheetIndex, "sheet-index", 0, "1-based xlsx worksheet index")
	rootCmd.AddCommand(analyzeCmd)
}

// importDataset decodes and normalizes one file. Sheet selection flags only
// apply to .xlsx inputs; config supplies defaults when flags are unset.
func importDataset(path string) (*dataset.Dataset, *dataset.Grouping, error) {
	name := sheetName
	idx := sheetIndex
	if cfg != nil {
		if name == "" {
			name = cfg.SheetName
		}
		if idx <= 0 {
			idx = cfg.SheetIndex
		}
	}

	var rows []*dataset.Row
	var err error
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") && (name != "" || idx > 1) {
		rows, err = decode.XLSXFile(path, name, idx)
	} else {
		rows, err = decode.File(path)
	}
	if err != nil {
		return nil, nil, err
	}

	ds, err := dataset.NewDataset(filepath.Base(path), rows)
	if err != nil {
		return nil, nil, err
	}
	return ds, dataset.Group(ds.Samples), nil
}

func formatComposition(s dataset.Sample) string {
	comp := s.Composition()
	parts := make([]string, 0, len(comp))
	for i, name := range dataset.CompositionFields {
		if comp[i] == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %.2f", name, comp[i]))
	}
	if len(parts) == 0 {
		return "(no composition data)"
	}
	return strings.Join(parts, ", ") + " wt%"
}
