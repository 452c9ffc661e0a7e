package analysis

import (
	"fmt"
	"strings"
)

// RenderView returns a compact text table for one view, suitable for stdout
// or for embedding in a narrative prompt.
func (r *Result) RenderView(view View) string {
	var b strings.Builder
	switch view {
	case ViewFoundational:
		b.WriteString("[PRODUCT EFFICIENCY]\n")
		for _, p := range r.Products {
			fmt.Fprintf(&b, "- %s: SEI %.1f, rev/area %.2f (page %d, position ratio %.2f)\n",
				p.Name, p.SEI, p.RevenuePerArea, p.PageNumber, p.PagePositionRatio)
		}
	case ViewSegment:
		b.WriteString("[SEGMENT ANALYSIS]\n")
		for _, s := range r.Segments {
			fmt.Fprintf(&b, "- %s: %d customers, revenue %.2f, weighted SEI %.1f, rev/area %.2f\n",
				s.Segment, s.CustomerCount, s.TotalRevenue, s.WeightedAvgSEI, s.RevenuePerArea)
		}
	case ViewAffinity:
		b.WriteString("[PRODUCT AFFINITY]\n")
		for _, p := range r.Affinity {
			fmt.Fprintf(&b, "- %s + %s: bought together %dx, combined efficiency %.1f (SEI %.1f / %.1f)\n",
				p.ProductA, p.ProductB, p.CoPurchaseCount, p.CombinedEfficiency, p.SEIA, p.SEIB)
		}
	case ViewProfiles:
		b.WriteString("[CUSTOMER PROFILES]\n")
		for _, p := range r.Profiles {
			fmt.Fprintf(&b, "- %s (%s, %s income): %d products, spent %.2f, avg SEI %.1f, weighted SEI %.1f\n",
				p.Email, p.AgeRange, p.IncomeTier, p.ProductsBought, p.TotalSpent, p.AvgSEI, p.RevenueWeightedSEI)
		}
	}
	return b.String()
}

// RenderSummary renders the insight digest as a bracketed section.
func (r *Result) RenderSummary() string {
	var b strings.Builder
	b.WriteString("[INSIGHTS]\n")
	s := r.Summary
	if s.TopSegment != nil {
		fmt.Fprintf(&b, "- Top segment by rev/area: %s (%.2f)\n", s.TopSegment.Segment, s.TopSegment.RevenuePerArea)
	}
	if s.BottomSegment != nil {
		fmt.Fprintf(&b, "- Bottom segment by rev/area: %s (%.2f)\n", s.BottomSegment.Segment, s.BottomSegment.RevenuePerArea)
	}
	if s.HighestSEISegment != nil {
		fmt.Fprintf(&b, "- Highest-efficiency segment: %s (weighted SEI %.1f)\n", s.HighestSEISegment.Segment, s.HighestSEISegment.WeightedAvgSEI)
	}
	if s.TopPair != nil {
		fmt.Fprintf(&b, "- Top affinity pair: %s + %s (combined %.1f)\n", s.TopPair.ProductA, s.TopPair.ProductB, s.TopPair.CombinedEfficiency)
	}
	fmt.Fprintf(&b, "- Pairs with combined efficiency > 150: %d\n", s.HighEfficiencyPairs)
	if s.TopCustomer != nil {
		fmt.Fprintf(&b, "- Top customer: %s (weighted SEI %.1f)\n", s.TopCustomer.Email, s.TopCustomer.RevenueWeightedSEI)
	}
	fmt.Fprintf(&b, "- Mean customer avg SEI: %.1f\n", s.MeanAvgSEI)
	fmt.Fprintf(&b, "- Customers with more than one product: %d\n", s.RepeatCustomers)
	return b.String()
}

// Markdown renders the whole run: the four tables, the insight digest, and
// any accumulated warnings.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("[ANALYSIS RUN]\n")
	fmt.Fprintf(&b, "Run: %s\n", r.RunID)
	fmt.Fprintf(&b, "Products: %d, Segments: %d, Pairs: %d, Profiles: %d\n\n", len(r.Products), len(r.Segments), len(r.Affinity), len(r.Profiles))
	for _, v := range []View{ViewFoundational, ViewSegment, ViewAffinity, ViewProfiles} {
		b.WriteString(r.RenderView(v))
		b.WriteString("\n")
	}
	b.WriteString(r.RenderSummary())
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}
