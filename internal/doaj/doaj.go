// Package doaj parses DOAJ search-export JSON into domain records.
package doaj

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/modcorpus/modcorpus/internal/record"
)

// FlexibleString can unmarshal from either string or number JSON values.
// DOAJ exports are inconsistent about the year field's type.
type FlexibleString string

func (f *FlexibleString) UnmarshalJSON(data []byte) error {
	// Handle null
	if string(data) == "null" {
		*f = ""
		return nil
	}

	// Try string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleString(s)
		return nil
	}

	// Try number
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleString(n.String())
		return nil
	}

	// Try int directly
	var i int
	if err := json.Unmarshal(data, &i); err == nil {
		*f = FlexibleString(strconv.Itoa(i))
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into FlexibleString", string(data))
}

func (f FlexibleString) String() string {
	return string(f)
}

// SearchExport is the top-level shape of a DOAJ article search response.
type SearchExport struct {
	Total   int     `json:"total"`
	Results []Entry `json:"results"`
}

// Entry is a single article in a DOAJ export. Every field is optional;
// extraction substitutes empty values for anything absent.
type Entry struct {
	ID      string `json:"id"`
	BibJSON struct {
		Title    string         `json:"title"`
		Abstract string         `json:"abstract"`
		Year     FlexibleString `json:"year"`
		Keywords []string       `json:"keywords"`
		Author   []struct {
			Name string `json:"name"`
		} `json:"author"`
		Journal struct {
			Title     string `json:"title"`
			Publisher string `json:"publisher"`
			Country   string `json:"country"`
		} `json:"journal"`
		Identifier []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"identifier"`
		Link []struct {
			Type string `json:"type"`
			URL  string `json:"url"`
		} `json:"link"`
		Subject []struct {
			Term string `json:"term"`
		} `json:"subject"`
	} `json:"bibjson"`
}

// Parse parses a DOAJ search export and returns its records in input order,
// along with the export's reported total. Missing fields never fail an entry;
// they simply yield empty values, so downstream heuristics need no nil checks.
func Parse(data []byte) ([]record.Record, int, error) {
	var export SearchExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, 0, fmt.Errorf("parsing DOAJ export: %w", err)
	}

	recs := make([]record.Record, len(export.Results))
	for i, entry := range export.Results {
		recs[i] = entryToRecord(entry)
	}

	return recs, export.Total, nil
}

// entryToRecord flattens a DOAJ entry's nested sub-structures into a Record.
func entryToRecord(entry Entry) record.Record {
	bib := entry.BibJSON

	var authors []string
	for _, a := range bib.Author {
		authors = append(authors, a.Name)
	}

	// First identifier with type "doi" wins
	var doi string
	for _, id := range bib.Identifier {
		if id.Type == "doi" {
			doi = id.ID
			break
		}
	}

	var links []string
	for _, l := range bib.Link {
		if l.Type == "fulltext" {
			links = append(links, l.URL)
		}
	}

	var subjects []string
	for _, s := range bib.Subject {
		subjects = append(subjects, s.Term)
	}

	return record.Record{
		ID:            entry.ID,
		DOI:           doi,
		Title:         bib.Title,
		Authors:       authors,
		Year:          bib.Year.String(),
		Journal:       bib.Journal.Title,
		Publisher:     bib.Journal.Publisher,
		Country:       bib.Journal.Country,
		Keywords:      bib.Keywords,
		Abstract:      bib.Abstract,
		Subjects:      subjects,
		FullTextLinks: links,
	}
}
