package report

import (
	"strings"
	"testing"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/record"
)

func testRecords() []record.Record {
	return classify.ApplyAll([]record.Record{
		{
			ID:            "r1",
			Title:         "Eliot and The Waste Land",
			Authors:       []string{"A. One", "B. Two"},
			Year:          "2018",
			Journal:       "Journal of Modern Literature",
			Publisher:     "Indiana University Press",
			Country:       "US",
			Keywords:      []string{"eliot", "poetry"},
			Abstract:      "Line one.\nLine two.",
			DOI:           "10.1234/a",
			FullTextLinks: []string{"https://example.org/1"},
			Subjects:      []string{"English literature"},
		},
		{
			ID:      "r2",
			Title:   "Wilde and aestheticism",
			Authors: []string{"C. Three"},
			Year:    "n.d.",
			Journal: "The Poetry Magazine",
			Country: "GB",
		},
		{
			ID:      "r3",
			Title:   "An unclassifiable piece",
			Year:    "2020",
			Journal: "Journal of Letters", // academic beats literary
			Country: "US",
		},
	})
}

func TestBuildPartition(t *testing.T) {
	recs := testRecords()
	rpt := Build(recs)

	// Union of era buckets equals the input set exactly once each;
	// same for medium buckets.
	for _, buckets := range []map[string][]record.Record{rpt.EraBuckets, rpt.MediumBuckets} {
		seen := make(map[string]int)
		total := 0
		for _, bucket := range buckets {
			for _, rec := range bucket {
				seen[rec.ID]++
				total++
			}
		}
		if total != len(recs) {
			t.Errorf("buckets hold %d records, want %d", total, len(recs))
		}
		for id, n := range seen {
			if n != 1 {
				t.Errorf("record %s appears %d times across buckets", id, n)
			}
		}
	}
}

func TestBuildBucketsPreserveInputOrder(t *testing.T) {
	recs := classify.ApplyAll([]record.Record{
		{ID: "a"},
		{ID: "b"},
		{ID: "c"},
	})
	rpt := Build(recs)

	general := rpt.EraBuckets[string(classify.EraGeneral)]
	if len(general) != 3 {
		t.Fatalf("general bucket has %d records, want 3", len(general))
	}
	for i, id := range []string{"a", "b", "c"} {
		if general[i].ID != id {
			t.Errorf("bucket position %d: ID = %q, want %q", i, general[i].ID, id)
		}
	}
}

func TestBuildDoesNotAlterLabels(t *testing.T) {
	recs := testRecords()
	rpt := Build(recs)

	for i, row := range rpt.Rows {
		if row.Era != recs[i].Era || row.Medium != recs[i].Medium {
			t.Errorf("row %d labels (%q, %q) differ from record (%q, %q)",
				i, row.Era, row.Medium, recs[i].Era, recs[i].Medium)
		}
	}
}

func TestNewRow(t *testing.T) {
	recs := testRecords()
	row := NewRow(recs[0])

	if row.Authors != "A. One; B. Two" {
		t.Errorf("Authors = %q", row.Authors)
	}
	if row.Keywords != "eliot; poetry" {
		t.Errorf("Keywords = %q", row.Keywords)
	}
	if strings.ContainsAny(row.Abstract, "\n\r") {
		t.Errorf("Abstract not cleaned: %q", row.Abstract)
	}
	if row.AbstractLength != len(recs[0].Abstract) {
		t.Errorf("AbstractLength = %d, want %d", row.AbstractLength, len(recs[0].Abstract))
	}
	if row.HasDOI != "Yes" || row.HasFullText != "Yes" {
		t.Errorf("HasDOI = %q, HasFullText = %q", row.HasDOI, row.HasFullText)
	}
	if row.KeywordCount != 2 {
		t.Errorf("KeywordCount = %d, want 2", row.KeywordCount)
	}

	empty := NewRow(record.Record{ID: "e"})
	if empty.HasDOI != "No" || empty.HasFullText != "No" {
		t.Errorf("empty record: HasDOI = %q, HasFullText = %q", empty.HasDOI, empty.HasFullText)
	}
}

func TestAbstractLengthCountsCharacters(t *testing.T) {
	// "fin de siècle café" is 18 characters but 20 UTF-8 bytes.
	row := NewRow(record.Record{ID: "a", Abstract: "fin de siècle café"})
	if row.AbstractLength != 18 {
		t.Errorf("AbstractLength = %d, want 18", row.AbstractLength)
	}
}

func TestSummaryYearRangeSkipsNonNumeric(t *testing.T) {
	recs := classify.ApplyAll([]record.Record{
		{ID: "a", Year: "2018"},
		{ID: "b", Year: "n.d."},
		{ID: "c", Year: ""},
		{ID: "d", Year: "1995"},
		{ID: "e", Year: "c. 1922"},
	})

	s := Build(recs).Summary

	if s.YearRange == nil {
		t.Fatal("YearRange = nil, want range over numeric years")
	}
	if s.YearRange.Earliest != 1995 || s.YearRange.Latest != 2018 {
		t.Errorf("YearRange = %+v, want 1995-2018", s.YearRange)
	}
}

func TestSummaryYearRangeAbsentWhenNoNumericYears(t *testing.T) {
	recs := classify.ApplyAll([]record.Record{
		{ID: "a", Year: "n.d."},
		{ID: "b"},
	})

	s := Build(recs).Summary
	if s.YearRange != nil {
		t.Errorf("YearRange = %+v, want nil", s.YearRange)
	}
}

func TestSummaryCounts(t *testing.T) {
	recs := testRecords()
	s := Build(recs).Summary

	if s.Total != 3 {
		t.Errorf("Total = %d, want 3", s.Total)
	}
	if s.CountriesRepresented != 2 { // US, GB; US deduplicated
		t.Errorf("CountriesRepresented = %d, want 2", s.CountriesRepresented)
	}
	if s.JournalsRepresented != 3 {
		t.Errorf("JournalsRepresented = %d, want 3", s.JournalsRepresented)
	}
	if s.WithDOI != 1 {
		t.Errorf("WithDOI = %d, want 1", s.WithDOI)
	}
	if s.WithFullText != 1 {
		t.Errorf("WithFullText = %d, want 1", s.WithFullText)
	}

	eraTotal := 0
	for _, n := range s.EraDistribution {
		eraTotal += n
	}
	if eraTotal != s.Total {
		t.Errorf("era distribution sums to %d, want %d", eraTotal, s.Total)
	}
}

func TestOrderHelpers(t *testing.T) {
	rpt := Build(testRecords())

	eras := rpt.EraOrder()
	for i := 1; i < len(eras); i++ {
		if indexOfEra(eras[i-1]) >= indexOfEra(eras[i]) {
			t.Errorf("EraOrder() not in canonical order: %v", eras)
		}
	}

	for _, era := range eras {
		if len(rpt.EraBuckets[era]) == 0 {
			t.Errorf("EraOrder() includes empty bucket %q", era)
		}
	}
}

func indexOfEra(label string) int {
	for i, era := range classify.Eras {
		if string(era) == label {
			return i
		}
	}
	return -1
}

func TestNumericYear(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"1922", 1922, true},
		{"2020", 2020, true},
		{"", 0, false},
		{"n.d.", 0, false},
		{"19x2", 0, false},
		{" 1922", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := numericYear(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("numericYear(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
