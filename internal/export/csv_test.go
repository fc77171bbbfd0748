package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/modcorpus/modcorpus/internal/report"
)

func testReport() ([]record.Record, report.Report) {
	recs := classify.ApplyAll([]record.Record{
		{
			ID:            "r1",
			Title:         "Eliot and The Waste Land",
			Authors:       []string{"A. One", "B. Two"},
			Year:          "2018",
			Journal:       "Journal of Modern Literature",
			Publisher:     "Indiana University Press",
			Country:       "US",
			Keywords:      []string{"eliot", "poetry"},
			Abstract:      "An abstract, with a comma.",
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
	})
	return recs, report.Build(recs)
}

func TestWriteCSV(t *testing.T) {
	_, rpt := testReport()

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rpt.Rows); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	r := csv.NewReader(&buf)
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}

	if len(rows) != 3 { // header + 2 records
		t.Fatalf("CSV has %d rows, want 3", len(rows))
	}

	header := strings.Join(rows[0], ",")
	want := "id,title,authors,year,era,journal,publisher,country,medium," +
		"keywords,abstract,doi,full_text_links,subjects," +
		"abstract_length,has_doi,has_full_text,keyword_count"
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}

	first := rows[1]
	if first[0] != "r1" {
		t.Errorf("first row id = %q", first[0])
	}
	if first[2] != "A. One; B. Two" {
		t.Errorf("authors cell = %q", first[2])
	}
	if first[4] != string(classify.EraHigh) {
		t.Errorf("era cell = %q", first[4])
	}
	if first[15] != "Yes" || first[16] != "Yes" {
		t.Errorf("has_doi = %q, has_full_text = %q", first[15], first[16])
	}
	if first[17] != "2" {
		t.Errorf("keyword_count = %q", first[17])
	}

	second := rows[2]
	if second[15] != "No" || second[16] != "No" {
		t.Errorf("has_doi = %q, has_full_text = %q", second[15], second[16])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty report should produce only the header, got %d lines", len(lines))
	}
}
