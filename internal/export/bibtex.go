package export

import (
	"fmt"
	"strings"

	"github.com/modcorpus/modcorpus/internal/record"
)

// ToBibTeX converts a record to a BibTeX @article entry.
func ToBibTeX(rec record.Record) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@article{%s,\n", rec.ID))

	if len(rec.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(rec.Authors, " and ")))
	}

	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))

	if rec.Journal != "" {
		b.WriteString(fmt.Sprintf("  journal = {%s},\n", escapeLatex(rec.Journal)))
	}
	if rec.Publisher != "" {
		b.WriteString(fmt.Sprintf("  publisher = {%s},\n", escapeLatex(rec.Publisher)))
	}

	// Year is kept verbatim; DOAJ exports may carry non-numeric values
	if rec.Year != "" {
		b.WriteString(fmt.Sprintf("  year = {%s},\n", escapeLatex(rec.Year)))
	}

	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", rec.DOI))
	}
	if len(rec.FullTextLinks) > 0 {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", rec.FullTextLinks[0]))
	}

	if len(rec.Keywords) > 0 {
		b.WriteString(fmt.Sprintf("  keywords = {%s},\n", escapeLatex(strings.Join(rec.Keywords, ", "))))
	}

	if rec.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(rec.Abstract)))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple records to BibTeX format.
func ToBibTeXList(recs []record.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, ToBibTeX(rec))
	}
	return strings.Join(entries, "\n")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
