package export

import (
	"time"

	"github.com/google/uuid"
	"github.com/modcorpus/modcorpus/internal/record"
	"github.com/modcorpus/modcorpus/internal/report"
)

// Meta describes the extraction a report was built from.
type Meta struct {
	SearchQuery string // e.g. "modernism British"
	Database    string // e.g. "DOAJ (Directory of Open Access Journals)"
	TotalInDB   int    // Total reported by the export, may exceed records analyzed
}

// Comprehensive is the complete structured output document: metadata, summary
// statistics, label-organized record groups, and text-analysis-ready corpora.
type Comprehensive struct {
	Metadata          Metadata                   `json:"metadata"`
	SummaryStatistics report.Summary             `json:"summary_statistics"`
	OrganizedByEra    map[string][]record.Record `json:"organized_by_era"`
	OrganizedByMedium map[string][]record.Record `json:"organized_by_medium"`
	TextAnalysisReady TextAnalysisReady          `json:"text_analysis_ready"`
}

// Metadata identifies when and from what the dataset was extracted.
type Metadata struct {
	ExtractionID   string     `json:"extraction_id"`
	ExtractionDate string     `json:"extraction_date"` // RFC 3339
	TotalInDOAJ    int        `json:"total_papers_in_doaj"`
	PapersAnalyzed int        `json:"papers_analyzed"`
	SearchQuery    string     `json:"search_query"`
	Database       string     `json:"database"`
	Categories     Categories `json:"categories"`
}

// Categories lists the labels present in the dataset.
type Categories struct {
	ByEra    []string `json:"by_era"`
	ByMedium []string `json:"by_medium"`
}

// TextAnalysisReady holds corpus projections for downstream text analysis.
type TextAnalysisReady struct {
	AllAbstracts      []AbstractEntry `json:"all_abstracts"`
	AllKeywords       []KeywordEntry  `json:"all_keywords"`
	FullTextAvailable []record.Record `json:"full_text_available"`
}

// AbstractEntry is one record's abstract with enough context for corpus work.
type AbstractEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Era      string `json:"era"`
	Year     string `json:"year"`
}

// KeywordEntry is one record's keywords with enough context for topic modeling.
type KeywordEntry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Keywords []string `json:"keywords"`
	Era      string   `json:"era"`
	Year     string   `json:"year"`
}

// BuildComprehensive assembles the comprehensive output document from a
// report and its source records. The extraction timestamp is taken at call
// time; each call gets a fresh extraction ID.
func BuildComprehensive(recs []record.Record, rpt report.Report, meta Meta) Comprehensive {
	totalInDB := meta.TotalInDB
	if totalInDB == 0 {
		totalInDB = len(recs)
	}

	out := Comprehensive{
		Metadata: Metadata{
			ExtractionID:   uuid.NewString(),
			ExtractionDate: time.Now().Format(time.RFC3339),
			TotalInDOAJ:    totalInDB,
			PapersAnalyzed: len(recs),
			SearchQuery:    meta.SearchQuery,
			Database:       meta.Database,
			Categories: Categories{
				ByEra:    rpt.EraOrder(),
				ByMedium: rpt.MediumOrder(),
			},
		},
		SummaryStatistics: rpt.Summary,
		OrganizedByEra:    rpt.EraBuckets,
		OrganizedByMedium: rpt.MediumBuckets,
	}

	out.TextAnalysisReady.AllAbstracts = make([]AbstractEntry, 0, len(recs))
	out.TextAnalysisReady.AllKeywords = make([]KeywordEntry, 0, len(recs))

	for _, rec := range recs {
		out.TextAnalysisReady.AllAbstracts = append(out.TextAnalysisReady.AllAbstracts, AbstractEntry{
			ID:       rec.ID,
			Title:    rec.Title,
			Abstract: rec.Abstract,
			Era:      rec.Era,
			Year:     rec.Year,
		})
		out.TextAnalysisReady.AllKeywords = append(out.TextAnalysisReady.AllKeywords, KeywordEntry{
			ID:       rec.ID,
			Title:    rec.Title,
			Keywords: rec.Keywords,
			Era:      rec.Era,
			Year:     rec.Year,
		})
		if rec.HasFullText() {
			out.TextAnalysisReady.FullTextAvailable = append(out.TextAnalysisReady.FullTextAvailable, rec)
		}
	}

	return out
}
