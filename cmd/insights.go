package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/shelflens-cli/internal/ai"
	"github.com/KaramelBytes/shelflens-cli/internal/analysis"
)

var (
	insProducts   string
	insCustomers  string
	insDelimiter  string
	insViews      []string
	insModel      string
	insTimeoutSec int
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Generate AI narratives for one or more analysis views",
	Example: `  shelflens insights --products catalog.csv --customers purchases.csv --view segment
  shelflens insights --products catalog.csv --customers purchases.csv --view segment --view affinity`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if insProducts == "" || insCustomers == "" {
			return fmt.Errorf("--products and --customers are required")
		}
		views := insViews
		if len(views) == 0 {
			views = []string{string(analysis.ViewFoundational)}
		}
		parsed := make([]analysis.View, 0, len(views))
		for _, v := range views {
			view, err := analysis.ParseView(v)
			if err != nil {
				return err
			}
			parsed = append(parsed, view)
		}
		res, err := runPipeline(insProducts, insCustomers, insDelimiter, 0)
		if err != nil {
			return err
		}

		model := insModel
		maxTokens := 1024
		temperature := 0.7
		promptLimit := 0
		if cfg != nil {
			if model == "" {
				model = cfg.DefaultModel
			}
			if cfg.MaxTokens > 0 {
				maxTokens = cfg.MaxTokens
			}
			temperature = cfg.Temperature
			promptLimit = cfg.PromptTokenLimit
		}
		narrator := &ai.Narrator{
			Client:           newAIClient(),
			Model:            model,
			MaxTokens:        maxTokens,
			Temperature:      temperature,
			PromptTokenLimit: promptLimit,
		}

		// Per-view narrative cache. Views repeated on the command line hit the
		// cache instead of issuing a second call for the same result set.
		cache := make(map[analysis.View]string)
		for _, view := range parsed {
			text, ok := cache[view]
			if !ok {
				ctx, cancel := context.WithTimeout(context.Background(), time.Duration(insTimeoutSec)*time.Second)
				generated, err := narrator.Narrate(ctx, view, res)
				cancel()
				if err != nil {
					// Narrative failure is isolated to this view; the tables stand.
					fmt.Fprintf(os.Stderr, "⚠ Warning: %s view narrative failed: %v\n", view, err)
					text = ai.FallbackNotice(view)
				} else {
					text = generated
				}
				cache[view] = text
			}
			fmt.Printf("--- %s ---\n%s\n\n", view, text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
	insightsCmd.Flags().StringVar(&insProducts, "products", "", "product catalog file (CSV/TSV)")
	insightsCmd.Flags().StringVar(&insCustomers, "customers", "", "customer purchase log file (CSV/TSV)")
	insightsCmd.Flags().StringVar(&insDelimiter, "delimiter", "", "delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	insightsCmd.Flags().StringArrayVar(&insViews, "view", nil, "view to narrate: foundational|segment|affinity|profiles (repeatable)")
	insightsCmd.Flags().StringVar(&insModel, "model", "", "model to use (overrides config)")
	insightsCmd.Flags().IntVar(&insTimeoutSec, "timeout-sec", 120, "per-view generation timeout in seconds")
}
