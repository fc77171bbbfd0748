// Package report aggregates classified records into buckets, summary
// statistics, and a flattened tabular projection. Everything here is a pure
// projection over already-classified records; labels are never recomputed or
// altered.
package report

import (
	"strings"
	"unicode/utf8"

	"github.com/modcorpus/modcorpus/internal/classify"
	"github.com/modcorpus/modcorpus/internal/record"
)

// Report is the full derived view over a classified record collection.
type Report struct {
	// Buckets map each label to its records in input order. Every record
	// appears in exactly one era bucket and exactly one medium bucket.
	EraBuckets    map[string][]record.Record `json:"era_buckets"`
	MediumBuckets map[string][]record.Record `json:"medium_buckets"`

	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

// Row is the flattened projection of a record used for tabular output.
// Multi-valued fields are joined with "; " and the abstract has newlines
// replaced with spaces.
type Row struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Authors        string `json:"authors"`
	Year           string `json:"year"`
	Era            string `json:"era"`
	Journal        string `json:"journal"`
	Publisher      string `json:"publisher"`
	Country        string `json:"country"`
	Medium         string `json:"medium"`
	Keywords       string `json:"keywords"`
	Abstract       string `json:"abstract"`
	DOI            string `json:"doi"`
	FullTextLinks  string `json:"full_text_links"`
	Subjects       string `json:"subjects"`
	AbstractLength int    `json:"abstract_length"`
	HasDOI         string `json:"has_doi"`       // Yes/No
	HasFullText    string `json:"has_full_text"` // Yes/No
	KeywordCount   int    `json:"keyword_count"`
}

// YearRange is the span of purely-numeric year values in a collection.
type YearRange struct {
	Earliest int `json:"earliest"`
	Latest   int `json:"latest"`
}

// Summary holds the derived statistics over a classified collection.
type Summary struct {
	Total              int            `json:"total"`
	EraDistribution    map[string]int `json:"era_distribution"`
	MediumDistribution map[string]int `json:"medium_distribution"`

	// YearRange is nil when no record has a purely numeric year string.
	// Non-numeric years ("n.d.", empty) are excluded, never an error.
	YearRange *YearRange `json:"year_range,omitempty"`

	CountriesRepresented int `json:"countries_represented"`
	JournalsRepresented  int `json:"journals_represented"`
	WithDOI              int `json:"papers_with_doi"`
	WithFullText         int `json:"papers_with_full_text"`
}

// Build aggregates classified records into a Report. Bucket and row order
// follow input order.
func Build(recs []record.Record) Report {
	rpt := Report{
		EraBuckets:    make(map[string][]record.Record),
		MediumBuckets: make(map[string][]record.Record),
		Rows:          make([]Row, 0, len(recs)),
	}

	for _, rec := range recs {
		rpt.EraBuckets[rec.Era] = append(rpt.EraBuckets[rec.Era], rec)
		rpt.MediumBuckets[rec.Medium] = append(rpt.MediumBuckets[rec.Medium], rec)
		rpt.Rows = append(rpt.Rows, NewRow(rec))
	}

	rpt.Summary = buildSummary(recs)
	return rpt
}

// NewRow flattens a record into its tabular projection.
func NewRow(rec record.Record) Row {
	return Row{
		ID:             rec.ID,
		Title:          rec.Title,
		Authors:        strings.Join(rec.Authors, "; "),
		Year:           rec.Year,
		Era:            rec.Era,
		Journal:        rec.Journal,
		Publisher:      rec.Publisher,
		Country:        rec.Country,
		Medium:         rec.Medium,
		Keywords:       strings.Join(rec.Keywords, "; "),
		Abstract:       cleanAbstract(rec.Abstract),
		DOI:            rec.DOI,
		FullTextLinks:  strings.Join(rec.FullTextLinks, "; "),
		Subjects:       strings.Join(rec.Subjects, "; "),
		AbstractLength: utf8.RuneCountInString(rec.Abstract),
		HasDOI:         yesNo(rec.HasDOI()),
		HasFullText:    yesNo(rec.HasFullText()),
		KeywordCount:   len(rec.Keywords),
	}
}

func buildSummary(recs []record.Record) Summary {
	s := Summary{
		Total:              len(recs),
		EraDistribution:    make(map[string]int),
		MediumDistribution: make(map[string]int),
	}

	countries := make(map[string]bool)
	journals := make(map[string]bool)

	for _, rec := range recs {
		s.EraDistribution[rec.Era]++
		s.MediumDistribution[rec.Medium]++

		if rec.Country != "" {
			countries[rec.Country] = true
		}
		if rec.Journal != "" {
			journals[rec.Journal] = true
		}
		if rec.HasDOI() {
			s.WithDOI++
		}
		if rec.HasFullText() {
			s.WithFullText++
		}

		if year, ok := numericYear(rec.Year); ok {
			if s.YearRange == nil {
				s.YearRange = &YearRange{Earliest: year, Latest: year}
			} else {
				if year < s.YearRange.Earliest {
					s.YearRange.Earliest = year
				}
				if year > s.YearRange.Latest {
					s.YearRange.Latest = year
				}
			}
		}
	}

	s.CountriesRepresented = len(countries)
	s.JournalsRepresented = len(journals)
	return s
}

// numericYear parses a year string consisting entirely of ASCII digits.
// Anything else (empty, "n.d.", "c. 1922") is excluded from the year range.
func numericYear(year string) (int, bool) {
	if year == "" {
		return 0, false
	}
	n := 0
	for _, c := range year {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// EraOrder returns the era labels present in the report, in canonical order.
func (r Report) EraOrder() []string {
	var labels []string
	for _, era := range classify.Eras {
		if _, ok := r.EraBuckets[string(era)]; ok {
			labels = append(labels, string(era))
		}
	}
	return labels
}

// MediumOrder returns the medium labels present in the report, in canonical order.
func (r Report) MediumOrder() []string {
	var labels []string
	for _, medium := range classify.Mediums {
		if _, ok := r.MediumBuckets[string(medium)]; ok {
			labels = append(labels, string(medium))
		}
	}
	return labels
}

func cleanAbstract(abstract string) string {
	abstract = strings.ReplaceAll(abstract, "\n", " ")
	return strings.ReplaceAll(abstract, "\r", " ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
