// Package record defines the core domain types for classified bibliographic records.
package record

// Record represents a single bibliographic entry from a DOAJ search export,
// together with its derived era and medium labels.
type Record struct {
	// Identity
	ID  string `json:"id"`            // DOAJ article identifier
	DOI string `json:"doi,omitempty"` // Digital Object Identifier, if present

	// Metadata
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Year      string   `json:"year"` // As exported; may be empty or non-numeric ("n.d.")
	Journal   string   `json:"journal"`
	Publisher string   `json:"publisher"`
	Country   string   `json:"country"`
	Keywords  []string `json:"keywords"`
	Abstract  string   `json:"abstract"`
	Subjects  []string `json:"subjects"`

	// Access
	FullTextLinks []string `json:"full_text_links,omitempty"`

	// Classification (derived, recomputable from the text fields above)
	Era    string `json:"era"`
	Medium string `json:"medium"`
}

// HasDOI reports whether the record carries a DOI.
func (r Record) HasDOI() bool {
	return r.DOI != ""
}

// HasFullText reports whether the record has at least one full-text link.
func (r Record) HasFullText() bool {
	return len(r.FullTextLinks) > 0
}
