package analysis

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
)

func exportRows(t *testing.T, res *Result, view View) [][]string {
	t.Helper()
	var buf bytes.Buffer
	if err := res.ExportCSV(&buf, view); err != nil {
		t.Fatalf("ExportCSV(%s): %v", view, err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse %s export: %v", view, err)
	}
	return rows
}

func TestExportRoundTrip(t *testing.T) {
	res, err := Run(productsText, customersText, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	cases := []struct {
		view View
		rows int
	}{
		{ViewFoundational, len(res.Products)},
		{ViewSegment, len(res.Segments)},
		{ViewAffinity, len(res.Affinity)},
		{ViewProfiles, len(res.Profiles)},
	}
	for _, c := range cases {
		rows := exportRows(t, res, c.view)
		if len(rows) != c.rows+1 {
			t.Errorf("%s: rows = %d, want %d + header", c.view, len(rows), c.rows)
		}
	}
}

func TestExportSegmentValues(t *testing.T) {
	res, err := Run(productsText, customersText, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows := exportRows(t, res, ViewSegment)
	if rows[0][0] != "Segment" {
		t.Fatalf("header = %#v", rows[0])
	}
	top := rows[1]
	if top[0] != res.Segments[0].Segment {
		t.Fatalf("segment = %q, want %q", top[0], res.Segments[0].Segment)
	}
	rpa, err := strconv.ParseFloat(top[5], 64)
	if err != nil {
		t.Fatalf("parse rev/area: %v", err)
	}
	if rpa != res.Segments[0].RevenuePerArea {
		t.Fatalf("rev/area = %f, want %f", rpa, res.Segments[0].RevenuePerArea)
	}
}

func TestExportProfileValues(t *testing.T) {
	res, err := Run(productsText, customersText, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows := exportRows(t, res, ViewProfiles)
	top := rows[1]
	if top[0] != res.Profiles[0].Email {
		t.Fatalf("email = %q, want %q", top[0], res.Profiles[0].Email)
	}
	bought, err := strconv.Atoi(top[3])
	if err != nil || bought != res.Profiles[0].ProductsBought {
		t.Fatalf("products bought = %q", top[3])
	}
}
