package export

import (
	"strings"

	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/modcorpus/modcorpus/internal/report"
)

// EraFile is the per-era output document, carrying the file name it should
// be written to.
type EraFile struct {
	Name       string          `json:"-"`
	Era        string          `json:"era"`
	PaperCount int             `json:"paper_count"`
	Papers     []record.Record `json:"papers"`
}

// EraFiles returns one document per era present in the report, in canonical
// label order.
func EraFiles(rpt report.Report) []EraFile {
	var files []EraFile
	for _, era := range rpt.EraOrder() {
		papers := rpt.EraBuckets[era]
		files = append(files, EraFile{
			Name:       EraFileName(era),
			Era:        era,
			PaperCount: len(papers),
			Papers:     papers,
		})
	}
	return files
}

// EraFileName slugs an era label into a file name, e.g.
// "Early Modernism (1890s-1910s)" -> "era_early_modernism_1890s_1910s.json".
func EraFileName(era string) string {
	slug := strings.ToLower(era)
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "(", "")
	slug = strings.ReplaceAll(slug, ")", "")
	slug = strings.ReplaceAll(slug, "-", "_")
	return "era_" + slug + ".json"
}
