package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ExportCSV writes the named view's table as comma-delimited text with a
// header row. Columns follow struct field order; numbers keep whatever
// rounding the table already applied, so a re-parse reproduces the rows.
func (r *Result) ExportCSV(w io.Writer, view View) error {
	cw := csv.NewWriter(w)
	var err error
	switch view {
	case ViewFoundational:
		err = exportProducts(cw, r.Products)
	case ViewSegment:
		err = exportSegments(cw, r.Segments)
	case ViewAffinity:
		err = exportAffinity(cw, r.Affinity)
	case ViewProfiles:
		err = exportProfiles(cw, r.Profiles)
	default:
		return fmt.Errorf("unknown view %q", view)
	}
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func exportProducts(cw *csv.Writer, rows []EnrichedProduct) error {
	if err := cw.Write([]string{
		"Product Name", "Product Sales Revenue", "Units Sold", "Square Inches", "Page Number", "Catalog Price",
		"Revenue Per Area", "SEI", "Catalog Avg Revenue Per Area", "Page Avg Revenue Per Area", "Page Position Ratio",
	}); err != nil {
		return err
	}
	for _, p := range rows {
		rec := []string{
			p.Name, num(p.SalesRevenue), strconv.Itoa(p.UnitsSold), num(p.SquareInches), strconv.Itoa(p.PageNumber), num(p.CatalogPrice),
			num(p.RevenuePerArea), num(p.SEI), num(p.CatalogAvgRevenuePerArea), num(p.PageAvgRevenuePerArea), num(p.PagePositionRatio),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportSegments(cw *csv.Writer, rows []SegmentAnalysis) error {
	if err := cw.Write([]string{
		"Segment", "Customer Count", "Total Revenue", "Weighted Avg SEI", "Total Area Consumed", "Revenue Per Area",
	}); err != nil {
		return err
	}
	for _, s := range rows {
		rec := []string{
			s.Segment, strconv.Itoa(s.CustomerCount), num(s.TotalRevenue), num(s.WeightedAvgSEI), num(s.TotalAreaConsumed), num(s.RevenuePerArea),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportAffinity(cw *csv.Writer, rows []AffinityPair) error {
	if err := cw.Write([]string{
		"Product A", "Product B", "SEI A", "SEI B", "Co-Purchase Count", "Combined Efficiency",
	}); err != nil {
		return err
	}
	for _, p := range rows {
		rec := []string{
			p.ProductA, p.ProductB, num(p.SEIA), num(p.SEIB), strconv.Itoa(p.CoPurchaseCount), num(p.CombinedEfficiency),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportProfiles(cw *csv.Writer, rows []CustomerProfile) error {
	if err := cw.Write([]string{
		"Customer Email", "Age Range", "Income Tier", "Products Bought", "Total Spent", "Avg SEI", "Revenue Weighted SEI",
	}); err != nil {
		return err
	}
	for _, p := range rows {
		rec := []string{
			p.Email, p.AgeRange, p.IncomeTier, strconv.Itoa(p.ProductsBought), num(p.TotalSpent), num(p.AvgSEI), num(p.RevenueWeightedSEI),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
