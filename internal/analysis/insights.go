package analysis

// InsightSummary is a read-only digest over the four analysis tables, used as
// the input contract for downstream narrative generation. Pointer fields are
// nil when the corresponding table is empty.
type InsightSummary struct {
	TopSegment        *SegmentAnalysis
	BottomSegment     *SegmentAnalysis
	HighestSEISegment *SegmentAnalysis
	TopPair           *AffinityPair
	// HighEfficiencyPairs counts pairs with combined efficiency above 150.
	HighEfficiencyPairs int
	TopCustomer         *CustomerProfile
	// MeanAvgSEI is the simple, unweighted mean of the already-rounded
	// per-profile AvgSEI values.
	MeanAvgSEI      float64
	RepeatCustomers int
}

// Summarize extracts the headline scalars from the sorted analysis tables.
// Pure selection; it computes nothing the tables do not already hold.
func Summarize(segments []SegmentAnalysis, pairs []AffinityPair, profiles []CustomerProfile) InsightSummary {
	var s InsightSummary
	if len(segments) > 0 {
		s.TopSegment = &segments[0]
		s.BottomSegment = &segments[len(segments)-1]
		best := 0
		for i := range segments {
			if segments[i].WeightedAvgSEI > segments[best].WeightedAvgSEI {
				best = i
			}
		}
		s.HighestSEISegment = &segments[best]
	}
	if len(pairs) > 0 {
		s.TopPair = &pairs[0]
		for i := range pairs {
			if pairs[i].CombinedEfficiency > 150 {
				s.HighEfficiencyPairs++
			}
		}
	}
	if len(profiles) > 0 {
		s.TopCustomer = &profiles[0]
		var sum float64
		for i := range profiles {
			sum += profiles[i].AvgSEI
			if profiles[i].ProductsBought > 1 {
				s.RepeatCustomers++
			}
		}
		s.MeanAvgSEI = sum / float64(len(profiles))
	}
	return s
}
