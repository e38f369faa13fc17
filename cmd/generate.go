package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meltworks/slagview-cli/internal/ai"
	"github.com/meltworks/slagview-cli/internal/codegen"
	"github.com/meltworks/slagview-cli/internal/dataset"
)

var (
	genTarget      string
	genFeatures    []string
	genTestSize    float64
	genModelType   string
	genModel       string
	genMaxTokens   int
	genTemp        float64
	genTimeoutSec  int
	genDryRun      bool
	genPromptLimit int
	genOutputPath  string

	genDBHost     string
	genDBPort     int
	genDBUser     string
	genDBPassword string
	genDBName     string
	genDBTable    string
)

var generateCmd = &cobra.Command{
	Use:   "generate <file>",
	Short: "Generate a model-training script for the dataset via the chat API",
	Example: `  slagview generate melts.xlsx --target Viscosity --features SiO2,Al2O3,CaO,Temperature
  slagview generate melts.csv --target Viscosity --features SiO2,Temperature --model-type random_forest --dry-run
  slagview generate melts.csv --target Viscosity --features SiO2 --db-host db.lab --db-name melts --db-table runs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _, err := importDataset(args[0])
		if err != nil {
			if errors.Is(err, dataset.ErrNoSamples) {
				fmt.Fprintln(os.Stderr, "⚠ No valid rows found, nothing to generate from.")
				return nil
			}
			return err
		}

		gc := &codegen.GenerationConfig{
			Target:   genTarget,
			Features: genFeatures,
			TestSize: genTestSize,
			Model:    codegen.ModelType(genModelType),
			DB: codegen.DBConfig{
				Host:     genDBHost,
				Port:     genDBPort,
				User:     genDBUser,
				Password: genDBPassword,
				Database: genDBName,
				Table:    genDBTable,
			},
		}
		system, user, err := codegen.BuildPrompt(ds, gc, genPromptLimit)
		if err != nil {
			return err
		}
		if genDryRun {
			fmt.Println(user)
			return nil
		}

		model := genModel
		maxTokens := genMaxTokens
		temp := genTemp
		if cfg != nil {
			if model == "" {
				model = cfg.DefaultModel
			}
			if maxTokens <= 0 {
				maxTokens = cfg.MaxTokens
			}
			if !cmd.Flags().Changed("temperature") {
				temp = cfg.Temperature
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(genTimeoutSec)*time.Second)
		defer cancel()
		resp, err := apiClient().Generate(ctx, ai.GenerateRequest{
			Model: model,
			Messages: []ai.Message{
				{Role: "system", Content: system},
				{Role: "user", Content: user},
			},
			MaxTokens:   maxTokens,
			Temperature: temp,
		})
		if err != nil {
			return err
		}
		text := resp.Text()
		if text == "" {
			return fmt.Errorf("empty response from model")
		}
		if debug && resp.RequestID != "" {
			fmt.Fprintf(os.Stderr, "request_id=%s tokens=%d\n", resp.RequestID, resp.Usage.TotalTokens)
		}

		if genOutputPath != "" {
			if err := os.WriteFile(genOutputPath, []byte(text), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("Wrote script to %s\n", genOutputPath)
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genTarget, "target", "Viscosity", "target column for the generated script")
	generateCmd.Flags().StringSliceVar(&genFeatures, "features", nil, "feature columns, comma separated")
	generateCmd.Flags().Float64Var(&genTestSize, "test-size", 0.2, "test split fraction in (0,1)")
	generateCmd.Flags().StringVar(&genModelType, "model-type", string(codegen.ModelLinear), "regression model type")
	generateCmd.Flags().StringVar(&genModel, "model", "", "chat model id (default from config)")
	generateCmd.Flags().IntVar(&genMaxTokens, "max-tokens", 0, "completion token limit (default from config)")
	generateCmd.Flags().Float64Var(&genTemp, "temperature", 0.2, "sampling temperature")
	generateCmd.Flags().IntVar(&genTimeoutSec, "timeout-sec", 180, "overall request timeout in seconds")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "print the prompt instead of calling the API")
	generateCmd.Flags().IntVar(&genPromptLimit, "prompt-limit", 0, "truncate the prompt to this many tokens (0 = no limit)")
	generateCmd.Flags().StringVarP(&genOutputPath, "output", "o", "", "write the generated script to this path")

	generateCmd.Flags().StringVar(&genDBHost, "db-host", "", "database host for the generated script")
	generateCmd.Flags().IntVar(&genDBPort, "db-port", 5432, "database port")
	generateCmd.Flags().StringVar(&genDBUser, "db-user", "", "database user")
	generateCmd.Flags().StringVar(&genDBPassword, "db-password", "", "database password (never embedded in the prompt)")
	generateCmd.Flags().StringVar(&genDBName, "db-name", "", "database name")
	generateCmd.Flags().StringVar(&genDBTable, "db-table", "", "training table name")

	generateCmd.Flags().StringVar(&sheetName, "sheet-name", "", "xlsx worksheet name (default: first sheet)")
	generateCmd.Flags().IntVar(&sheetIndex, "sheet-index", 0, "1-based xlsx worksheet index")
	rootCmd.AddCommand(generateCmd)
}
