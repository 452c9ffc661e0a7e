package analysis

import (
	"math"

	"github.com/KaramelBytes/shelflens-cli/internal/catalog"
)

// EnrichedProduct is a ProductRecord plus the derived efficiency fields.
// Created in one batch pass and never mutated afterwards.
type EnrichedProduct struct {
	catalog.ProductRecord
	RevenuePerArea           float64
	SEI                      float64
	CatalogAvgRevenuePerArea float64
	PageAvgRevenuePerArea    float64
	PagePositionRatio        float64
}

// EnrichProducts computes per-product and per-page efficiency scores.
//
// The catalog average is area-weighted: sum(revenue)/sum(area), not the mean
// of per-product ratios. Page averages use the same weighting scoped to the
// page, so a product alone on its page gets a position ratio of exactly 1.
func EnrichProducts(products []catalog.ProductRecord) ([]EnrichedProduct, error) {
	if len(products) == 0 {
		return nil, dataErrorf("product set is empty")
	}
	seen := make(map[string]struct{}, len(products))
	var totalRevenue, totalArea float64
	type pageAcc struct{ revenue, area float64 }
	pages := make(map[int]*pageAcc)
	for _, p := range products {
		if _, dup := seen[p.Name]; dup {
			return nil, dataErrorf("duplicate product name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
		if p.SquareInches <= 0 {
			return nil, dataErrorf("product %q has non-positive area %g", p.Name, p.SquareInches)
		}
		totalRevenue += p.SalesRevenue
		totalArea += p.SquareInches
		pa := pages[p.PageNumber]
		if pa == nil {
			pa = &pageAcc{}
			pages[p.PageNumber] = pa
		}
		pa.revenue += p.SalesRevenue
		pa.area += p.SquareInches
	}
	if totalArea == 0 {
		return nil, dataErrorf("total catalog area is zero")
	}
	catalogAvg := totalRevenue / totalArea

	out := make([]EnrichedProduct, 0, len(products))
	for _, p := range products {
		rpa := p.SalesRevenue / p.SquareInches
		pa := pages[p.PageNumber]
		pageAvg := pa.revenue / pa.area
		e := EnrichedProduct{
			ProductRecord:            p,
			RevenuePerArea:           rpa,
			CatalogAvgRevenuePerArea: catalogAvg,
			PageAvgRevenuePerArea:    pageAvg,
		}
		if catalogAvg > 0 {
			e.SEI = rpa / catalogAvg * 100
		}
		if pageAvg > 0 {
			e.PagePositionRatio = rpa / pageAvg
		}
		out = append(out, e)
	}
	return out, nil
}

// IndexByName builds the product-name lookup used by the joins downstream.
func IndexByName(products []EnrichedProduct) map[string]*EnrichedProduct {
	idx := make(map[string]*EnrichedProduct, len(products))
	for i := range products {
		idx[products[i].Name] = &products[i]
	}
	return idx
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
