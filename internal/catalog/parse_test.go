package catalog

import (
	"strings"
	"testing"
)

const productCSV = `Product Name,Product Sales Revenue,Units Sold,Square Inches,Page Number,Catalog Price
Widget,"$1,000.00",40,10,1,24.99
Gadget,500.00,25,10,1,19.99
Doodad,250,10,5,2,9.99
`

const customerCSV = `Customer Email,Product Name,Units Purchased,Revenue Generated,Age Range,Income Tier,Location
a@example.com,Widget,1,24.99,25-34,High,West
a@example.com,Gadget,2,39.98,25-34,High,West
b@example.com,Doodad,1,9.99,35-44,Low,East
`

func TestParseProducts(t *testing.T) {
	rows, warnings, err := ParseProducts(productCSV, 0)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %#v", warnings)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	w := rows[0]
	if w.Name != "Widget" || w.SalesRevenue != 1000 || w.UnitsSold != 40 || w.SquareInches != 10 || w.PageNumber != 1 || w.CatalogPrice != 24.99 {
		t.Fatalf("widget = %#v", w)
	}
}

func TestParseProductsDropsMalformedRows(t *testing.T) {
	text := "Product Name,Product Sales Revenue,Units Sold,Square Inches,Page Number,Catalog Price\n" +
		"Widget,1000,40,10,1,24.99\n" +
		"Broken,abc,40,10,1,24.99\n" +
		",500,25,10,1,19.99\n" +
		"Gadget,500,25,10,1,19.99\n"
	rows, warnings, err := ParseProducts(text, 0)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if len(warnings) != 2 {
		t.Fatalf("warnings = %#v, want 2", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "dropped") {
			t.Fatalf("warning %q missing drop note", w)
		}
	}
}

func TestParseProductsDropsPageZero(t *testing.T) {
	text := "Product Name,Product Sales Revenue,Units Sold,Square Inches,Page Number,Catalog Price\n" +
		"Widget,1000,40,10,0,24.99\n" +
		"Gadget,500,25,10,1,19.99\n"
	rows, warnings, err := ParseProducts(text, 0)
	if err != nil {
		t.Fatalf("ParseProducts: %v", err)
	}
	// Pages are 1-based, so page 0 is as malformed as a negative one.
	if len(rows) != 1 || rows[0].Name != "Gadget" {
		t.Fatalf("rows = %#v, want only Gadget", rows)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "dropped") {
		t.Fatalf("warnings = %#v", warnings)
	}
}

func TestParseProductsMissingColumn(t *testing.T) {
	_, _, err := ParseProducts("Product Name,Units Sold\nWidget,40\n", 0)
	if err == nil || !strings.Contains(err.Error(), "missing column") {
		t.Fatalf("err = %v, want missing column", err)
	}
}

func TestParseProductsEmptyInput(t *testing.T) {
	_, _, err := ParseProducts("", 0)
	if err == nil || !strings.Contains(err.Error(), "empty input") {
		t.Fatalf("err = %v, want empty input", err)
	}
}

func TestParseCustomers(t *testing.T) {
	rows, warnings, err := ParseCustomers(customerCSV, 0)
	if err != nil {
		t.Fatalf("ParseCustomers: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("warnings = %#v", warnings)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	c := rows[1]
	if c.Email != "a@example.com" || c.ProductName != "Gadget" || c.UnitsPurchased != 2 || c.RevenueGenerated != 39.98 {
		t.Fatalf("row = %#v", c)
	}
	if c.AgeRange != "25-34" || c.IncomeTier != "High" || c.Location != "West" {
		t.Fatalf("demographics = %#v", c)
	}
}

func TestSniffDelimiter(t *testing.T) {
	cases := []struct {
		in   string
		want rune
	}{
		{"a,b,c\n1,2,3", ','},
		{"a;b;c\n1;2;3", ';'},
		{"a\tb\tc\n1\t2\t3", '\t'},
		{"single", ','},
	}
	for _, c := range cases {
		if got := SniffDelimiter(c.in); got != c.want {
			t.Errorf("SniffDelimiter(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseCustomersSemicolonDelimiter(t *testing.T) {
	text := strings.ReplaceAll(customerCSV, ",", ";")
	// The ages contain '-' not ',' so a straight swap is safe here.
	rows, _, err := ParseCustomers(text, 0)
	if err != nil {
		t.Fatalf("ParseCustomers: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
}
