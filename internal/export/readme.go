package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/modcorpus/modcorpus/internal/report"
)

// readmeTemplate documents the generated dataset for downstream analysts.
var readmeTemplate = template.Must(template.New("readme").Parse(`# {{.Query}} — classified papers from {{.Database}}

## Files:

1. **comprehensive.json** - Complete dataset with metadata and analysis
2. **analysis.csv** - CSV format for statistical analysis
3. **era_*.json** - Separate files for each modernist era

## Data Structure:

### Era Categories:
- **Early Modernism (1890s-1910s)**: Pre-war experimental beginnings
- **High Modernism (1910s-1920s)**: Peak experimental period
- **Late Modernism (1930s-1950s)**: Institutionalization and response to crisis
- **General Modernism**: Papers that don't fit specific era categories

### Publication Medium Categories:
- **Academic Journal**: Scholarly peer-reviewed journals
- **Literary Magazine**: Literary and cultural magazines
- **Other Publication**: Books, series, and other publication types

### Metadata Fields:
- **Bibliographic**: title, authors, year, journal, publisher, country
- **Content**: abstract, keywords, subjects
- **Access**: DOI, full-text links
- **Categorization**: era, medium classification

## Dataset Summary:
- Source: {{.Database}}
- Query: "{{.Query}}"
- Papers analyzed: {{.Summary.Total}}
- Journals represented: {{.Summary.JournalsRepresented}}
- Countries represented: {{.Summary.CountriesRepresented}}
- Papers with DOI: {{.Summary.WithDOI}}
- Papers with full text: {{.Summary.WithFullText}}
{{- if .Summary.YearRange}}
- Year range: {{.Summary.YearRange.Earliest}}–{{.Summary.YearRange.Latest}}
{{- end}}

### Era Distribution:
{{- range .Eras}}
- {{.Label}}: {{.Count}} papers
{{- end}}

### Medium Distribution:
{{- range .Mediums}}
- {{.Label}}: {{.Count}} papers
{{- end}}

## Usage for Text Analysis:

### CSV File (analysis.csv):
- Import into R, Python pandas, Excel, or other analysis tools
- All text fields cleaned for analysis

### JSON Files:
- Programmatic access to structured data
- Preserve original data types and nested structures
`))

// readmeData is the template context for RenderReadme.
type readmeData struct {
	Query    string
	Database string
	Summary  report.Summary
	Eras     []labelCount
	Mediums  []labelCount
}

type labelCount struct {
	Label string
	Count int
}

// RenderReadme writes the dataset README describing the generated files and
// the label distributions.
func RenderReadme(w io.Writer, rpt report.Report, meta Meta) error {
	data := readmeData{
		Query:    meta.SearchQuery,
		Database: meta.Database,
		Summary:  rpt.Summary,
	}
	for _, era := range rpt.EraOrder() {
		data.Eras = append(data.Eras, labelCount{Label: era, Count: len(rpt.EraBuckets[era])})
	}
	for _, medium := range rpt.MediumOrder() {
		data.Mediums = append(data.Mediums, labelCount{Label: medium, Count: len(rpt.MediumBuckets[medium])})
	}

	if err := readmeTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering README: %w", err)
	}
	return nil
}
