package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/shelflens-cli/internal/ai"
	"github.com/KaramelBytes/shelflens-cli/internal/analysis"
	cfgpkg "github.com/KaramelBytes/shelflens-cli/internal/config"
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
	Use:   "shelflens",
	Short: "ShelfLens CLI: catalog space-efficiency analytics",
	Long: `ShelfLens computes space-efficiency analytics from a product catalog and a
customer purchase log: per-product efficiency scores, segment aggregates,
co-purchase affinity, and customer profiles, with optional AI narratives.`,
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
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.shelflens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagHTTPTimeoutSec, "http-timeout", 0, "HTTP client timeout in seconds (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxAttempts, "retry-max", 0, "max retry attempts on 429/5xx (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryBaseDelayMs, "retry-base-ms", 0, "base retry backoff in ms (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagRetryMaxDelayMs, "retry-max-ms", 0, "max retry backoff cap in ms (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
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

// newAIClient builds the chat client from config, honoring env API key.
func newAIClient() *ai.Client {
	apiKey := os.Getenv("SHELFLENS_API_KEY")
	timeout := 60 * time.Second
	retryMax := 3
	baseDelay := 500 * time.Millisecond
	maxDelay := 4 * time.Second
	if cfg != nil {
		if cfg.APIKey != "" && apiKey == "" {
			apiKey = cfg.APIKey
		}
		if cfg.HTTPTimeoutSec > 0 {
			timeout = time.Duration(cfg.HTTPTimeoutSec) * time.Second
		}
		if cfg.RetryMaxAttempts > 0 {
			retryMax = cfg.RetryMaxAttempts
		}
		if cfg.RetryBaseDelayMs > 0 {
			baseDelay = time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond
		}
		if cfg.RetryMaxDelayMs > 0 {
			maxDelay = time.Duration(cfg.RetryMaxDelayMs) * time.Millisecond
		}
	}
	return ai.NewClient(apiKey, timeout, retryMax, baseDelay, maxDelay)
}

// runPipeline reads the two input files and executes one analysis run.
func runPipeline(productsPath, customersPath, delimiter string, maxPairs int) (*analysis.Result, error) {
	productsText, err := os.ReadFile(productsPath)
	if err != nil {
		return nil, fmt.Errorf("read products file: %w", err)
	}
	customersText, err := os.ReadFile(customersPath)
	if err != nil {
		return nil, fmt.Errorf("read customers file: %w", err)
	}
	opt := analysis.DefaultOptions()
	if cfg != nil {
		if cfg.MaxPairsPerCustomer > 0 {
			opt.MaxPairRowsPerCustomer = cfg.MaxPairsPerCustomer
		}
		if delimiter == "" {
			delimiter = cfg.Delimiter
		}
	}
	if maxPairs > 0 {
		opt.MaxPairRowsPerCustomer = maxPairs
	}
	switch delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", delimiter)
	}
	res, err := analysis.Run(string(productsText), string(customersText), opt)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "⚠ Warning: %s\n", w)
	}
	return res, nil
}
