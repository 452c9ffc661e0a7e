package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/shelflens-cli/internal/analysis"
)

var (
	expProducts  string
	expCustomers string
	expDelimiter string
	expView      string
	expOutput    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export one analysis table as CSV",
	Example: `  shelflens export --products catalog.csv --customers purchases.csv --view segment
  shelflens export --products catalog.csv --customers purchases.csv --view affinity -o pairs.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if expProducts == "" || expCustomers == "" {
			return fmt.Errorf("--products and --customers are required")
		}
		view, err := analysis.ParseView(expView)
		if err != nil {
			return err
		}
		res, err := runPipeline(expProducts, expCustomers, expDelimiter, 0)
		if err != nil {
			return err
		}
		out := os.Stdout
		if expOutput != "" {
			f, err := os.Create(expOutput)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}
		if err := res.ExportCSV(out, view); err != nil {
			return fmt.Errorf("export %s: %w", view, err)
		}
		if expOutput != "" {
			fmt.Printf("✓ Exported %s view to %s\n", view, expOutput)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&expProducts, "products", "", "product catalog file (CSV/TSV)")
	exportCmd.Flags().StringVar(&expCustomers, "customers", "", "customer purchase log file (CSV/TSV)")
	exportCmd.Flags().StringVar(&expDelimiter, "delimiter", "", "delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	exportCmd.Flags().StringVar(&expView, "view", "", "view to export: foundational|segment|affinity|profiles")
	exportCmd.Flags().StringVarP(&expOutput, "output", "o", "", "output file (stdout if omitted)")
}
