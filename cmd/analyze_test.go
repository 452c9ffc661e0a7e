package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixtures(t *testing.T) (products, customers string) {
	t.Helper()
	dir := t.TempDir()
	products = filepath.Join(dir, "catalog.csv")
	customers = filepath.Join(dir, "purchases.csv")
	productCSV := "Product Name,Product Sales Revenue,Units Sold,Square Inches,Page Number,Catalog Price\n" +
		"A,1000,40,10,1,24.99\n" +
		"B,500,25,10,1,19.99\n"
	customerCSV := "Customer Email,Product Name,Units Purchased,Revenue Generated,Age Range,Income Tier,Location\n" +
		"a@x.com,A,1,200,25-34,High,West\n" +
		"a@x.com,B,1,100,25-34,High,West\n"
	if err := os.WriteFile(products, []byte(productCSV), 0o644); err != nil {
		t.Fatalf("write products: %v", err)
	}
	if err := os.WriteFile(customers, []byte(customerCSV), 0o644); err != nil {
		t.Fatalf("write customers: %v", err)
	}
	return products, customers
}

func TestRunPipelineFromFiles(t *testing.T) {
	products, customers := writeFixtures(t)
	res, err := runPipeline(products, customers, "", 0)
	if err != nil {
		t.Fatalf("runPipeline: %v", err)
	}
	if len(res.Products) != 2 || len(res.Affinity) != 1 {
		t.Fatalf("tables = %d products, %d pairs", len(res.Products), len(res.Affinity))
	}
}

func TestRunPipelineMissingFile(t *testing.T) {
	_, customers := writeFixtures(t)
	_, err := runPipeline(filepath.Join(t.TempDir(), "nope.csv"), customers, "", 0)
	if err == nil || !strings.Contains(err.Error(), "read products file") {
		t.Fatalf("err = %v", err)
	}
}

func TestRunPipelineBadDelimiter(t *testing.T) {
	products, customers := writeFixtures(t)
	_, err := runPipeline(products, customers, "|", 0)
	if err == nil || !strings.Contains(err.Error(), "unsupported --delimiter") {
		t.Fatalf("err = %v", err)
	}
}
