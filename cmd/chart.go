package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meltworks/slagview-cli/internal/dataset"
	"github.com/meltworks/slagview-cli/internal/render"
)

var chartOutput string

var chartCmd = &cobra.Command{
	Use:   "chart <file>",
	Short: "Render viscosity-vs-temperature curves per group to an HTML file",
	Args:  cobra.ExactArgs(1),
	Example: `  slagview chart melts.xlsx
  slagview chart melts.csv -o viscosity.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, g, err := importDataset(args[0])
		if err != nil {
			if errors.Is(err, dataset.ErrNoSamples) {
				fmt.Fprintln(os.Stderr, "⚠ No valid rows found, nothing to chart.")
				return nil
			}
			return err
		}

		out, err := os.Create(chartOutput)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()

		if err := render.Chart(out, ds, g); err != nil {
			return err
		}
		fmt.Printf("Wrote %d groups to %s\n", g.Len(), chartOutput)
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "viscosity.html", "output HTML path")
	chartCmd.Flags().StringVar(&sheetName, "sheet-name", "", "xlsx worksheet name (default: first sheet)")
	chartCmd.Flags().IntVar(&sheetIndex, "sheet-index", 0, "1-based xlsx worksheet index")
	rootCmd.AddCommand(chartCmd)
}
