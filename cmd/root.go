package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meltworks/slagview-cli/internal/ai"
	cfgpkg "github.com/meltworks/slagview-cli/internal/config"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Retry/HTTP flags (override config if set)
	flagHTTPTimeoutSec   int
	flagRetryMaxAttempts int
	flagRetryBaseDelayMs int
	flagRetryMaxDelayMs  int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "slagview",
	Short: "Slagview CLI: normalize, group and chart melt-chemistry datasets",
	Long: `Slagview ingests spreadsheet or delimited-text viscosity measurements with
unpredictable column names, normalizes them into a fixed melt-chemistry
schema, groups records into physical samples by composition, and projects
temperature-ordered series for display or model-script generation.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.slagview/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxAttempts, "retry-max", 0, "max retry attempts on 429/5xx (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryBaseDelayMs, "retry-base-ms", 0, "base retry backoff in ms (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxDelayMs, "retry-max-ms", 0, "max retry backoff cap in ms (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: import/series/chart work without config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("http-timeout") && flagHTTPTimeoutSec > 0 {
		cfg.HTTPTimeoutSec = flagHTTPTimeoutSec
	}
	if f.Changed("retry-max") && flagRetryMaxAttempts > 0 {
		cfg.RetryMaxAttempts = flagRetryMaxAttempts
	}
	if f.Changed("retry-base-ms") && flagRetryBaseDelayMs > 0 {
		cfg.RetryBaseDelayMs = flagRetryBaseDelayMs
	}
	if f.Changed("retry-max-ms") && flagRetryMaxDelayMs > 0 {
		cfg.RetryMaxDelayMs = flagRetryMaxDelayMs
	}
}

// apiClient builds a chat client from config plus the SLAGVIEW_API_KEY
// environment override.
func apiClient() *ai.Client {
	apiKey := os.Getenv("SLAGVIEW_API_KEY")
	timeout := 60
	retryMax := 3
	baseMs := 500
	maxMs := 4000
	if cfg != nil {
		if apiKey == "" {
			apiKey = cfg.APIKey
		}
		if cfg.HTTPTimeoutSec > 0 {
			timeout = cfg.HTTPTimeoutSec
		}
		if cfg.RetryMaxAttempts > 0 {
			retryMax = cfg.RetryMaxAttempts
		}
		if cfg.RetryBaseDelayMs > 0 {
			baseMs = cfg.RetryBaseDelayMs
		}
		if cfg.RetryMaxDelayMs > 0 {
			maxMs = cfg.RetryMaxDelayMs
		}
	}
	return ai.NewClient(apiKey,
		time.Duration(timeout)*time.Second,
		retryMax,
		time.Duration(baseMs)*time.Millisecond,
		time.Duration(maxMs)*time.Millisecond)
}
