// Package export renders reports into their output formats: analysis CSV,
// comprehensive JSON, per-era JSON files, and a dataset README.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/modcorpus/modcorpus/internal/report"
)

// csvHeader is the fixed column order for the analysis CSV.
var csvHeader = []string{
	"id", "title", "authors", "year", "era",
	"journal", "publisher", "country", "medium",
	"keywords", "abstract", "doi", "full_text_links", "subjects",
	"abstract_length", "has_doi", "has_full_text", "keyword_count",
}

// WriteCSV writes the tabular projection as CSV suitable for statistical
// analysis tools. Row order follows the report's row order.
func WriteCSV(w io.Writer, rows []report.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i, row := range rows {
		fields := []string{
			row.ID, row.Title, row.Authors, row.Year, row.Era,
			row.Journal, row.Publisher, row.Country, row.Medium,
			row.Keywords, row.Abstract, row.DOI, row.FullTextLinks, row.Subjects,
			strconv.Itoa(row.AbstractLength), row.HasDOI, row.HasFullText,
			strconv.Itoa(row.KeywordCount),
		}
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	return nil
}
