// Package classify assigns era and medium labels to bibliographic records
// using keyword heuristics over their free-text fields.
package classify

import (
	"strings"

	"github.com/modcorpus/modcorpus/internal/record"
)

// Era is a literary-historical period label.
type Era string

// Era labels. EraGeneral is the catch-all when no indicator set wins a
// strict majority.
const (
	EraEarly   Era = "Early Modernism (1890s-1910s)"
	EraHigh    Era = "High Modernism (1910s-1920s)"
	EraLate    Era = "Late Modernism (1930s-1950s)"
	EraGeneral Era = "General Modernism"
)

// Medium is a publication venue category.
type Medium string

// Medium labels. MediumOther is the catch-all.
const (
	MediumAcademic Medium = "Academic Journal"
	MediumLiterary Medium = "Literary Magazine"
	MediumOther    Medium = "Other Publication"
)

// Eras lists all era labels in canonical order.
var Eras = []Era{EraEarly, EraHigh, EraLate, EraGeneral}

// Mediums lists all medium labels in canonical order.
var Mediums = []Medium{MediumAcademic, MediumLiterary, MediumOther}

// Indicator tables. These are read-only lookup data; each entry is matched
// as a lowercase substring and counted at most once per record.
var (
	earlyIndicators = []string{
		"wilde", "aestheticism", "decadence", "fin de siècle",
		"symbolism", "pater", "beardsley", "symons",
	}
	highIndicators = []string{
		"pound", "eliot", "joyce", "woolf", "yeats",
		"imagism", "vorticism", "stream of consciousness",
		"waste land", "ulysses",
	}
	lateIndicators = []string{
		"auden", "spender", "isherwood", "macneice",
		"thirties", "1930s", "spanish civil war", "world war ii",
	}

	academicWords = []string{
		"journal", "review", "studies", "quarterly", "university", "research",
	}
	literaryWords = []string{
		"magazine", "letters", "writing", "poetry", "literature", "arts",
	}
)

// Classify returns the era and medium labels for a record. It is a pure
// function of the record's text fields: identical input always yields
// identical labels.
func Classify(rec record.Record) (Era, Medium) {
	return ClassifyEra(rec), ClassifyMedium(rec)
}

// ClassifyEra assigns an era label from the record's title, abstract, and
// keywords. An era wins only with a strict majority: its indicator count must
// exceed both other counts. Ties (including all-zero) fall through to
// EraGeneral, so counts of (2,2,0) classify as General Modernism rather than
// picking between the tied leaders.
func ClassifyEra(rec record.Record) Era {
	content := strings.ToLower(
		rec.Title + " " + rec.Abstract + " " + strings.Join(rec.Keywords, " "),
	)

	early := countIndicators(content, earlyIndicators)
	high := countIndicators(content, highIndicators)
	late := countIndicators(content, lateIndicators)

	switch {
	case early > high && early > late:
		return EraEarly
	case high > early && high > late:
		return EraHigh
	case late > early && late > high:
		return EraLate
	default:
		return EraGeneral
	}
}

// ClassifyMedium assigns a medium label from the journal title and publisher.
// Academic indicators are checked first and take precedence when both sets
// match.
func ClassifyMedium(rec record.Record) Medium {
	content := strings.ToLower(rec.Journal + " " + rec.Publisher)

	if containsAny(content, academicWords) {
		return MediumAcademic
	}
	if containsAny(content, literaryWords) {
		return MediumLiterary
	}
	return MediumOther
}

// countIndicators counts how many indicators occur in content as substrings.
// Each indicator counts at most once regardless of repetition.
func countIndicators(content string, indicators []string) int {
	count := 0
	for _, ind := range indicators {
		if strings.Contains(content, ind) {
			count++
		}
	}
	return count
}

func containsAny(content string, words []string) bool {
	for _, w := range words {
		if strings.Contains(content, w) {
			return true
		}
	}
	return false
}

// Apply classifies a record and returns a copy with its Era and Medium
// fields populated.
func Apply(rec record.Record) record.Record {
	era, medium := Classify(rec)
	rec.Era = string(era)
	rec.Medium = string(medium)
	return rec
}

// ApplyAll classifies every record in input order.
func ApplyAll(recs []record.Record) []record.Record {
	out := make([]record.Record, len(recs))
	for i, rec := range recs {
		out[i] = Apply(rec)
	}
	return out
}
