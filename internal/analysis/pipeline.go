package analysis

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/KaramelBytes/shelflens-cli/internal/catalog"
)

// Options controls one analysis run.
type Options struct {
	// Delimiter for both input files. If 0, auto-detects among ',', ';', '\t'.
	Delimiter rune
	// MaxPairRowsPerCustomer caps affinity pair enumeration; 0 uses the default.
	MaxPairRowsPerCustomer int
	// SegmentKey overrides the segmentation scheme; nil uses DefaultSegmentKey.
	SegmentKey SegmentKeyFunc
}

// DefaultOptions returns the defaults for an analysis run.
func DefaultOptions() Options {
	return Options{MaxPairRowsPerCustomer: DefaultMaxPairRows}
}

// Result holds one complete run: the four derived tables plus the insight
// summary. Derived fields are deterministic functions of the two inputs, so
// re-running on identical text yields identical tables.
type Result struct {
	RunID    uuid.UUID
	Products []EnrichedProduct
	Segments []SegmentAnalysis
	Affinity []AffinityPair
	Profiles []CustomerProfile
	Summary  InsightSummary
	// Warnings accumulates soft failures: dropped rows, join misses, pairing
	// cap skips. They never abort the run.
	Warnings []string
}

// Run executes the full pipeline on the two raw input texts. It either
// returns a complete result or a single error with a human-readable message;
// fatal input problems satisfy IsDataError. It never panics across this
// boundary.
func Run(productsText, customersText string, opt Options) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = dataErrorf("analysis failed: %v", r)
		}
	}()

	productRows, pw, err := catalog.ParseProducts(productsText, opt.Delimiter)
	if err != nil {
		return nil, &DataError{Msg: err.Error()}
	}
	enriched, err := EnrichProducts(productRows)
	if err != nil {
		return nil, err
	}
	customerRows, cw, err := catalog.ParseCustomers(customersText, opt.Delimiter)
	if err != nil {
		return nil, &DataError{Msg: err.Error()}
	}

	index := IndexByName(enriched)
	segments, sw, err := AnalyzeSegments(customerRows, index, opt.SegmentKey)
	if err != nil {
		return nil, err
	}
	pairs, aw := AnalyzeAffinity(customerRows, index, opt.MaxPairRowsPerCustomer)
	profiles, fw := AnalyzeProfiles(customerRows, index)

	res = &Result{
		RunID:    uuid.New(),
		Products: enriched,
		Segments: segments,
		Affinity: pairs,
		Profiles: profiles,
		Summary:  Summarize(segments, pairs, profiles),
	}
	for _, w := range [][]string{pw, cw, sw, aw, fw} {
		res.Warnings = append(res.Warnings, w...)
	}
	return res, nil
}

// View identifies one of the four analysis tables.
type View string

const (
	ViewFoundational View = "foundational"
	ViewSegment      View = "segment"
	ViewAffinity     View = "affinity"
	ViewProfiles     View = "profiles"
)

// ParseView validates a view identifier.
func ParseView(s string) (View, error) {
	switch View(s) {
	case ViewFoundational, ViewSegment, ViewAffinity, ViewProfiles:
		return View(s), nil
	}
	return "", fmt.Errorf("unknown view %q (use foundational|segment|affinity|profiles)", s)
}
