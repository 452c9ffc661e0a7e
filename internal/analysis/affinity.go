package analysis

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/shelflens-cli/internal/catalog"
)

// AffinityPair is one unordered product pair co-purchased by at least one
// customer. ProductA sorts lexicographically before ProductB.
type AffinityPair struct {
	ProductA           string
	ProductB           string
	SEIA               float64
	SEIB               float64
	CoPurchaseCount    int
	CombinedEfficiency float64
}

// DefaultMaxPairRows bounds pair enumeration per customer. Enumeration is
// C(k,2) over a customer's k purchase rows; customers above the cap are
// skipped for pairing (with a warning) so a pathological purchase log cannot
// blow up the run.
const DefaultMaxPairRows = 64

const pairKeySep = " + "

// AnalyzeAffinity enumerates co-purchase pairs per customer and aggregates
// pairwise efficiency. Pair keys are order-normalized, so buying B then A
// lands in the same bucket as A then B. Pairs whose products are missing from
// the enriched set are dropped softly.
func AnalyzeAffinity(customers []catalog.CustomerRecord, products map[string]*EnrichedProduct, maxRows int) ([]AffinityPair, []string) {
	if maxRows <= 0 {
		maxRows = DefaultMaxPairRows
	}
	byCustomer := make(map[string][]string)
	var customerOrder []string
	for _, c := range customers {
		if _, ok := byCustomer[c.Email]; !ok {
			customerOrder = append(customerOrder, c.Email)
		}
		byCustomer[c.Email] = append(byCustomer[c.Email], c.ProductName)
	}

	type pairBucket struct {
		a, b  string
		count int
	}
	buckets := make(map[string]*pairBucket)
	var keyOrder []string
	var warnings []string
	for _, email := range customerOrder {
		names := byCustomer[email]
		if len(names) < 2 {
			continue
		}
		if len(names) > maxRows {
			warnings = append(warnings, fmt.Sprintf("affinity: customer %s has %d purchase rows (cap %d); skipped for pairing", email, len(names), maxRows))
			continue
		}
		for i := 0; i < len(names); i++ {
			for j := i + 1; j < len(names); j++ {
				a, b := names[i], names[j]
				if a == b {
					// Same product bought twice is not an affinity.
					continue
				}
				if b < a {
					a, b = b, a
				}
				key := a + pairKeySep + b
				bucket, ok := buckets[key]
				if !ok {
					bucket = &pairBucket{a: a, b: b}
					buckets[key] = bucket
					keyOrder = append(keyOrder, key)
				}
				bucket.count++
			}
		}
	}

	out := make([]AffinityPair, 0, len(keyOrder))
	for _, key := range keyOrder {
		bucket := buckets[key]
		pa, okA := products[bucket.a]
		pb, okB := products[bucket.b]
		if !okA || !okB {
			warnings = append(warnings, fmt.Sprintf("affinity: pair %q references unknown product; dropped", key))
			continue
		}
		out = append(out, AffinityPair{
			ProductA:           bucket.a,
			ProductB:           bucket.b,
			SEIA:               round1(pa.SEI),
			SEIB:               round1(pb.SEI),
			CoPurchaseCount:    bucket.count,
			CombinedEfficiency: round1((pa.SEI + pb.SEI) / 2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CombinedEfficiency > out[j].CombinedEfficiency
	})
	return out, warnings
}
