package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/meltworks/slagview-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change persisted configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		key := cfg.APIKey
		if key != "" {
			key = "(set)"
		} else {
			key = "(unset)"
		}
		fmt.Printf("api_key:             %s\n", key)
		fmt.Printf("default_model:       %s\n", cfg.DefaultModel)
		fmt.Printf("max_tokens:          %d\n", cfg.MaxTokens)
		fmt.Printf("temperature:         %g\n", cfg.Temperature)
		fmt.Printf("http_timeout_sec:    %d\n", cfg.HTTPTimeoutSec)
		fmt.Printf("retry_max_attempts:  %d\n", cfg.RetryMaxAttempts)
		fmt.Printf("retry_base_delay_ms: %d\n", cfg.RetryBaseDelayMs)
		fmt.Printf("retry_max_delay_ms:  %d\n", cfg.RetryMaxDelayMs)
		fmt.Printf("sheet_name:          %s\n", cfg.SheetName)
		fmt.Printf("sheet_index:         %d\n", cfg.SheetIndex)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one configuration value and save it",
	Args:  cobra.ExactArgs(2),
	Example: `  slagview config set api_key sk-...
  slagview config set default_model openai/gpt-4o-mini
  slagview config set sheet_index 2`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		key, val := args[0], args[1]
		switch key {
		case "api_key":
			cfg.APIKey = val
		case "default_model":
			cfg.DefaultModel = val
		case "sheet_name":
			cfg.SheetName = val
		case "max_tokens", "http_timeout_sec", "retry_max_attempts", "retry_base_delay_ms", "retry_max_delay_ms", "sheet_index":
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("%s expects an integer: %w", key, err)
			}
			switch key {
			case "max_tokens":
				cfg.MaxTokens = n
			case "http_timeout_sec":
				cfg.HTTPTimeoutSec = n
			case "retry_max_attempts":
				cfg.RetryMaxAttempts = n
			case "retry_base_delay_ms":
				cfg.RetryBaseDelayMs = n
			case "retry_max_delay_ms":
				cfg.RetryMaxDelayMs = n
			case "sheet_index":
				cfg.SheetIndex = n
			}
		case "temperature":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("temperature expects a number: %w", err)
			}
			cfg.Temperature = f
		default:
			return fmt.Errorf("unknown config key %q", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
