package analysis

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/shelflens-cli/internal/catalog"
)

// CustomerProfile aggregates one customer's purchase history into an
// efficiency profile. Demographics come from the customer's first joined row;
// later rows that disagree are ignored.
type CustomerProfile struct {
	Email              string
	AgeRange           string
	IncomeTier         string
	ProductsBought     int
	TotalSpent         float64
	AvgSEI             float64
	RevenueWeightedSEI float64
}

// AnalyzeProfiles groups joined purchase rows by customer identifier,
// preserving strict input order. AvgSEI is a simple row mean; the weighted
// variant weights each row's SEI by its revenue.
func AnalyzeProfiles(customers []catalog.CustomerRecord, products map[string]*EnrichedProduct) ([]CustomerProfile, []string) {
	type profAcc struct {
		ageRange    string
		incomeTier  string
		rows        int
		spent       float64
		seiSum      float64
		weightedSEI float64
	}
	accs := make(map[string]*profAcc)
	var order []string
	var warnings []string
	for _, c := range customers {
		p, ok := products[c.ProductName]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("profile: customer %s references unknown product %q; row dropped", c.Email, c.ProductName))
			continue
		}
		acc := accs[c.Email]
		if acc == nil {
			acc = &profAcc{ageRange: c.AgeRange, incomeTier: c.IncomeTier}
			accs[c.Email] = acc
			order = append(order, c.Email)
		}
		acc.rows++
		acc.spent += c.RevenueGenerated
		acc.seiSum += p.SEI
		acc.weightedSEI += c.RevenueGenerated * p.SEI
	}

	out := make([]CustomerProfile, 0, len(order))
	for _, email := range order {
		acc := accs[email]
		prof := CustomerProfile{
			Email:          email,
			AgeRange:       acc.ageRange,
			IncomeTier:     acc.incomeTier,
			ProductsBought: acc.rows,
			TotalSpent:     acc.spent,
			AvgSEI:         round1(acc.seiSum / float64(acc.rows)),
		}
		if acc.spent > 0 {
			prof.RevenueWeightedSEI = round1(acc.weightedSEI / acc.spent)
		}
		out = append(out, prof)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RevenueWeightedSEI > out[j].RevenueWeightedSEI
	})
	return out, warnings
}
