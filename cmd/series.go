package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meltworks/slagview-cli/internal/dataset"
)

var seriesGroup int

var seriesCmd = &cobra.Command{
	Use:   "series <file>",
	Short: "Print the temperature-ordered series for one composition group",
	Args:  cobra.ExactArgs(1),
	Example: `  slagview series melts.xlsx
  slagview series melts.xlsx --group 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, g, err := importDataset(args[0])
		if err != nil {
			if errors.Is(err, dataset.ErrNoSamples) {
				fmt.Fprintln(os.Stderr, "⚠ No valid rows found.")
				return nil
			}
			return err
		}

		var sel dataset.Selection
		active := sel.Update(g, ds.ID)
		if seriesGroup > 0 {
			keys := g.Keys()
			if seriesGroup > len(keys) {
				return fmt.Errorf("group %d does not exist (have %d)", seriesGroup, len(keys))
			}
			active = keys[seriesGroup-1]
		}

		series := dataset.Project(g, active)
		rep, ok := dataset.Representative(series)
		if !ok {
			return fmt.Errorf("group has no samples")
		}

		fmt.Printf("%s\n", ds.Provenance)
		fmt.Printf("Composition: %s\n", formatComposition(rep))
		if rep.Label != "" {
			fmt.Printf("Label: %s\n", rep.Label)
		}
		fmt.Printf("\n%6s  %10s  %12s\n", "id", "T (°C)", "log10 η")
		for _, s := range series {
			fmt.Printf("%6d  %10.1f  %12.3f\n", s.ID, s.Temperature, s.Viscosity)
		}
		return nil
	},
}

func init() {
	seriesCmd.Flags().IntVar(&seriesGroup, "group", 0, "1-based group index (default: first group)")
	seriesCmd.Flags().StringVar(&sheetName, "sheet-name", "", "xlsx worksheet name (default: first sheet)")
	seriesCmd.Flags().IntVar(&sheetIndex, "sheet-index", 0, "1-based xlsx worksheet index")
	rootCmd.AddCommand(seriesCmd)
}
