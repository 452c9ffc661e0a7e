package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	anaProducts  string
	anaCustomers string
	anaDelimiter string
	anaMaxPairs  int
	anaOutput    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the space-efficiency pipeline on a catalog and purchase log",
	Example: `  shelflens analyze --products catalog.csv --customers purchases.csv
  shelflens analyze --products catalog.csv --customers purchases.csv -o report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if anaProducts == "" || anaCustomers == "" {
			return fmt.Errorf("--products and --customers are required")
		}
		res, err := runPipeline(anaProducts, anaCustomers, anaDelimiter, anaMaxPairs)
		if err != nil {
			return err
		}
		md := res.Markdown()
		if anaOutput != "" {
			if err := os.WriteFile(anaOutput, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote analysis to %s\n", anaOutput)
			return nil
		}
		fmt.Println(md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaProducts, "products", "", "product catalog file (CSV/TSV)")
	analyzeCmd.Flags().StringVar(&anaCustomers, "customers", "", "customer purchase log file (CSV/TSV)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	analyzeCmd.Flags().IntVar(&anaMaxPairs, "max-pairs", 0, "per-customer purchase row cap for affinity pairing")
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "optional path to write the report")
}
