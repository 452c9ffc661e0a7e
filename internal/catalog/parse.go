package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Expected header names, exact strings.
const (
	colProductName   = "Product Name"
	colSalesRevenue  = "Product Sales Revenue"
	colUnitsSold     = "Units Sold"
	colSquareInches  = "Square Inches"
	colPageNumber    = "Page Number"
	colCatalogPrice  = "Catalog Price"
	colCustomerEmail = "Customer Email"
	colUnitsBought   = "Units Purchased"
	colRevenueGen    = "Revenue Generated"
	colAgeRange      = "Age Range"
	colIncomeTier    = "Income Tier"
	colLocation      = "Location"
)

// SniffDelimiter picks the most frequent of ',', ';', '\t' in the header line.
func SniffDelimiter(text string) rune {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	best := ','
	bestN := strings.Count(line, ",")
	if n := strings.Count(line, ";"); n > bestN {
		best, bestN = ';', n
	}
	if n := strings.Count(line, "\t"); n > bestN {
		best = '\t'
	}
	return best
}

// ParseProducts parses the product catalog text. Rows with missing names,
// non-numeric numeric fields, or too few fields are dropped and reported as
// warnings; only a missing/invalid header is an error.
func ParseProducts(text string, delim rune) ([]ProductRecord, []string, error) {
	r, idx, err := openTable(text, delim, []string{
		colProductName, colSalesRevenue, colUnitsSold, colSquareInches, colPageNumber, colCatalogPrice,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("product file: %w", err)
	}
	var out []ProductRecord
	var warnings []string
	row := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("product file: read row %d: %w", row+1, err)
		}
		row++
		p := ProductRecord{Name: field(rec, idx[colProductName])}
		ok := p.Name != ""
		if ok {
			p.SalesRevenue, ok = parseAmount(field(rec, idx[colSalesRevenue]))
		}
		if ok {
			p.UnitsSold, ok = parseCount(field(rec, idx[colUnitsSold]))
		}
		if ok {
			p.SquareInches, ok = parseAmount(field(rec, idx[colSquareInches]))
		}
		if ok {
			p.PageNumber, ok = parsePage(field(rec, idx[colPageNumber]))
		}
		if ok {
			p.CatalogPrice, ok = parseAmount(field(rec, idx[colCatalogPrice]))
		}
		if !ok {
			warnings = append(warnings, fmt.Sprintf("product row %d dropped: malformed fields", row))
			continue
		}
		out = append(out, p)
	}
	return out, warnings, nil
}

// ParseCustomers parses the purchase log text with the same drop-and-warn
// policy as ParseProducts.
func ParseCustomers(text string, delim rune) ([]CustomerRecord, []string, error) {
	r, idx, err := openTable(text, delim, []string{
		colCustomerEmail, colProductName, colUnitsBought, colRevenueGen, colAgeRange, colIncomeTier, colLocation,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("customer file: %w", err)
	}
	var out []CustomerRecord
	var warnings []string
	row := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, fmt.Errorf("customer file: read row %d: %w", row+1, err)
		}
		row++
		c := CustomerRecord{
			Email:       field(rec, idx[colCustomerEmail]),
			ProductName: field(rec, idx[colProductName]),
			AgeRange:    field(rec, idx[colAgeRange]),
			IncomeTier:  field(rec, idx[colIncomeTier]),
			Location:    field(rec, idx[colLocation]),
		}
		ok := c.Email != "" && c.ProductName != ""
		if ok {
			c.UnitsPurchased, ok = parseCount(field(rec, idx[colUnitsBought]))
		}
		if ok {
			c.RevenueGenerated, ok = parseAmount(field(rec, idx[colRevenueGen]))
		}
		if !ok {
			warnings = append(warnings, fmt.Sprintf("customer row %d dropped: malformed fields", row))
			continue
		}
		out = append(out, c)
	}
	return out, warnings, nil
}

// openTable reads the header row and maps the required column names to their
// positions. Column matching is exact after trimming surrounding whitespace.
func openTable(text string, delim rune, required []string) (*csv.Reader, map[string]int, error) {
	if delim == 0 {
		delim = SniffDelimiter(text)
	}
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("empty input")
		}
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", name)
		}
	}
	return r, idx, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseAmount coerces currency-ish values: "$1,234.50" -> 1234.5.
func parseAmount(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

func parseCount(s string) (int, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parsePage parses a page number. Pages are 1-based, so 0 is malformed.
func parsePage(s string) (int, bool) {
	n, ok := parseCount(s)
	if !ok || n < 1 {
		return 0, false
	}
	return n, true
}
