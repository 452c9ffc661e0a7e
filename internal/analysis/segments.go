package analysis

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/shelflens-cli/internal/catalog"
)

// SegmentAnalysis is one derived demographic segment with its aggregates.
type SegmentAnalysis struct {
	Segment           string
	CustomerCount     int
	TotalRevenue      float64
	WeightedAvgSEI    float64
	TotalAreaConsumed float64
	RevenuePerArea    float64
}

// SegmentKeyFunc derives the grouping key for a purchase row. Swapping the
// function changes the segmentation scheme without touching the aggregation.
type SegmentKeyFunc func(catalog.CustomerRecord) string

// DefaultSegmentKey groups on income tier and location.
func DefaultSegmentKey(c catalog.CustomerRecord) string {
	return fmt.Sprintf("%s Income %s", c.IncomeTier, c.Location)
}

// AnalyzeSegments joins purchase rows to enriched products and aggregates by
// segment key. Rows referencing unknown products are dropped with a warning.
// A segment whose consumed area is zero makes revenue-per-area undefined and
// fails the run with a DataError.
func AnalyzeSegments(customers []catalog.CustomerRecord, products map[string]*EnrichedProduct, keyFn SegmentKeyFunc) ([]SegmentAnalysis, []string, error) {
	if keyFn == nil {
		keyFn = DefaultSegmentKey
	}
	type segAcc struct {
		emails      map[string]struct{}
		revenue     float64
		weightedSEI float64
		area        float64
	}
	accs := make(map[string]*segAcc)
	var order []string
	var warnings []string
	for _, c := range customers {
		p, ok := products[c.ProductName]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("segment: customer %s references unknown product %q; row dropped", c.Email, c.ProductName))
			continue
		}
		key := keyFn(c)
		acc := accs[key]
		if acc == nil {
			acc = &segAcc{emails: make(map[string]struct{})}
			accs[key] = acc
			order = append(order, key)
		}
		acc.emails[c.Email] = struct{}{}
		acc.revenue += c.RevenueGenerated
		acc.weightedSEI += c.RevenueGenerated * p.SEI
		acc.area += float64(c.UnitsPurchased) * p.SquareInches
	}

	type segRow struct {
		s   SegmentAnalysis
		rpa float64
	}
	rows := make([]segRow, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		if acc.area == 0 {
			return nil, nil, dataErrorf("segment %q consumed zero area; revenue-per-area undefined", key)
		}
		rpa := acc.revenue / acc.area
		s := SegmentAnalysis{
			Segment:           key,
			CustomerCount:     len(acc.emails),
			TotalRevenue:      acc.revenue,
			TotalAreaConsumed: acc.area,
			RevenuePerArea:    round2(rpa),
		}
		if acc.revenue > 0 {
			s.WeightedAvgSEI = round1(acc.weightedSEI / acc.revenue)
		}
		rows = append(rows, segRow{s: s, rpa: rpa})
	}
	// Descending by the full-precision quotient so rounding never manufactures
	// ties; genuine ties keep input iteration order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].rpa > rows[j].rpa
	})
	out := make([]SegmentAnalysis, len(rows))
	for i, r := range rows {
		out[i] = r.s
	}
	return out, warnings, nil
}
