package analysis

import "testing"

func TestSummarize(t *testing.T) {
	segments := []SegmentAnalysis{
		{Segment: "High Income West", WeightedAvgSEI: 110.0, RevenuePerArea: 12.5},
		{Segment: "Mid Income North", WeightedAvgSEI: 140.0, RevenuePerArea: 9.0},
		{Segment: "Low Income East", WeightedAvgSEI: 70.0, RevenuePerArea: 4.0},
	}
	pairs := []AffinityPair{
		{ProductA: "A", ProductB: "B", CombinedEfficiency: 160.0},
		{ProductA: "A", ProductB: "C", CombinedEfficiency: 151.0},
		{ProductA: "B", ProductB: "C", CombinedEfficiency: 90.0},
	}
	profiles := []CustomerProfile{
		{Email: "a@x.com", ProductsBought: 3, AvgSEI: 120.0, RevenueWeightedSEI: 130.0},
		{Email: "b@x.com", ProductsBought: 1, AvgSEI: 80.0, RevenueWeightedSEI: 80.0},
	}
	s := Summarize(segments, pairs, profiles)
	if s.TopSegment == nil || s.TopSegment.Segment != "High Income West" {
		t.Fatalf("top segment = %+v", s.TopSegment)
	}
	if s.BottomSegment == nil || s.BottomSegment.Segment != "Low Income East" {
		t.Fatalf("bottom segment = %+v", s.BottomSegment)
	}
	// Argmax over weighted SEI is independent of the revenue-per-area sort.
	if s.HighestSEISegment == nil || s.HighestSEISegment.Segment != "Mid Income North" {
		t.Fatalf("highest SEI segment = %+v", s.HighestSEISegment)
	}
	if s.TopPair == nil || s.TopPair.ProductA != "A" || s.TopPair.ProductB != "B" {
		t.Fatalf("top pair = %+v", s.TopPair)
	}
	if s.HighEfficiencyPairs != 2 {
		t.Fatalf("high-efficiency pairs = %d, want 2", s.HighEfficiencyPairs)
	}
	if s.TopCustomer == nil || s.TopCustomer.Email != "a@x.com" {
		t.Fatalf("top customer = %+v", s.TopCustomer)
	}
	if s.MeanAvgSEI != 100.0 {
		t.Fatalf("mean avg SEI = %f, want 100.0", s.MeanAvgSEI)
	}
	if s.RepeatCustomers != 1 {
		t.Fatalf("repeat customers = %d, want 1", s.RepeatCustomers)
	}
}

func TestSummarizeEmptyTables(t *testing.T) {
	s := Summarize(nil, nil, nil)
	if s.TopSegment != nil || s.TopPair != nil || s.TopCustomer != nil {
		t.Fatalf("summary of empty tables should have nil heads: %+v", s)
	}
	if s.HighEfficiencyPairs != 0 || s.RepeatCustomers != 0 || s.MeanAvgSEI != 0 {
		t.Fatalf("summary of empty tables should be zero: %+v", s)
	}
}
