package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modcorpus/modcorpus/internal/record"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectRecordFields contains the standard field list for SELECT queries.
const selectRecordFields = `id, doi, title, year, journal, publisher, country,
	abstract, era, medium,
	authors_json, keywords_json, links_json, subjects_json`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main records table
		CREATE TABLE IF NOT EXISTS records (
			id TEXT PRIMARY KEY,
			doi TEXT,
			title TEXT NOT NULL,
			year TEXT,
			journal TEXT,
			publisher TEXT,
			country TEXT,
			abstract TEXT,
			era TEXT NOT NULL,
			medium TEXT NOT NULL,
			authors_json TEXT NOT NULL,
			keywords_json TEXT,
			links_json TEXT,
			subjects_json TEXT
		);

		-- Indexes for label filtering
		CREATE INDEX IF NOT EXISTS idx_records_era ON records(era);
		CREATE INDEX IF NOT EXISTS idx_records_medium ON records(medium);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS records_fts USING fts5(
			id,
			title,
			abstract,
			authors_text,
			keywords_text
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
// Returns the number of records loaded.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	recs, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM records"); err != nil {
		return 0, fmt.Errorf("clearing records table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM records_fts"); err != nil {
		return 0, fmt.Errorf("clearing records_fts table: %w", err)
	}

	recStmt, err := d.db.Prepare(`
		INSERT INTO records (
			id, doi, title, year, journal, publisher, country,
			abstract, era, medium,
			authors_json, keywords_json, links_json, subjects_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing records insert: %w", err)
	}
	defer recStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO records_fts (id, title, abstract, authors_text, keywords_text)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for _, rec := range recs {
		authorsJSON, err := json.Marshal(rec.Authors)
		if err != nil {
			return 0, fmt.Errorf("marshaling authors for %s: %w", rec.ID, err)
		}

		_, err = recStmt.Exec(
			rec.ID, nullableStringValue(rec.DOI), rec.Title, rec.Year,
			rec.Journal, rec.Publisher, rec.Country,
			rec.Abstract, rec.Era, rec.Medium,
			string(authorsJSON),
			nullableString(marshalNonEmpty(rec.Keywords)),
			nullableString(marshalNonEmpty(rec.FullTextLinks)),
			nullableString(marshalNonEmpty(rec.Subjects)),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting record %s: %w", rec.ID, err)
		}

		_, err = ftsStmt.Exec(
			rec.ID, rec.Title, rec.Abstract,
			strings.Join(rec.Authors, ", "),
			strings.Join(rec.Keywords, ", "),
		)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", rec.ID, err)
		}
	}

	return len(recs), nil
}

// marshalNonEmpty marshals a slice, returning nil for empty slices so they
// store as NULL.
func marshalNonEmpty(vals []string) []byte {
	if len(vals) == 0 {
		return nil
	}
	data, err := json.Marshal(vals)
	if err != nil {
		return nil
	}
	return data
}

// GetByID retrieves a record by its ID. Returns nil when not found.
func (d *DB) GetByID(id string) (*record.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectRecordFields+` FROM records WHERE id = ?`, id)
	return scanRecord(row)
}

// GetByDOI retrieves a record by its DOI. Returns nil when not found.
func (d *DB) GetByDOI(doi string) (*record.Record, error) {
	row := d.db.QueryRow(`SELECT `+selectRecordFields+` FROM records WHERE doi = ?`, doi)
	return scanRecord(row)
}

// ListAll returns all records in insertion (rowid) order, optionally limited.
func (d *DB) ListAll(limit int) ([]record.Record, error) {
	query := `SELECT ` + selectRecordFields + ` FROM records ORDER BY rowid`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListFilters contains optional label filters for ListFiltered.
type ListFilters struct {
	Era    string // Exact era label ("" = any)
	Medium string // Exact medium label ("" = any)
}

// ListFiltered returns records matching the given label filters, in
// insertion order, optionally limited.
func (d *DB) ListFiltered(filters ListFilters, limit int) ([]record.Record, error) {
	query := `SELECT ` + selectRecordFields + ` FROM records WHERE 1=1`
	var args []interface{}

	if filters.Era != "" {
		query += " AND era = ?"
		args = append(args, filters.Era)
	}
	if filters.Medium != "" {
		query += " AND medium = ?"
		args = append(args, filters.Medium)
	}

	query += " ORDER BY rowid"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing filtered records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Search performs a full-text search and returns matching records.
func (d *DB) Search(query string, limit int) ([]record.Record, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectRecordFields+`
		FROM records
		WHERE id IN (SELECT id FROM records_fts WHERE records_fts MATCH ?)
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// SearchField performs a search on a specific field.
func (d *DB) SearchField(field, value string, limit int) ([]record.Record, error) {
	var ftsQuery string

	switch field {
	case "author":
		ftsQuery = "authors_text:" + prepareFTSQuery(value)
	case "title":
		ftsQuery = "title:" + prepareFTSQuery(value)
	case "keyword":
		ftsQuery = "keywords_text:" + prepareFTSQuery(value)
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	rows, err := d.db.Query(`
		SELECT `+selectRecordFields+`
		FROM records
		WHERE id IN (SELECT id FROM records_fts WHERE records_fts MATCH ?)
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", field, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Count returns the total number of records.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count)
	return count, err
}

// CountByEra returns record counts grouped by era label.
func (d *DB) CountByEra() (map[string]int, error) {
	return d.countBy("era")
}

// CountByMedium returns record counts grouped by medium label.
func (d *DB) CountByMedium() (map[string]int, error) {
	return d.countBy("medium")
}

func (d *DB) countBy(column string) (map[string]int, error) {
	rows, err := d.db.Query("SELECT " + column + ", COUNT(*) FROM records GROUP BY " + column)
	if err != nil {
		return nil, fmt.Errorf("counting by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		counts[label] = count
	}
	return counts, rows.Err()
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*record.Record, error) {
	var rec record.Record
	var doi, year, journal, publisher, country, abstract sql.NullString
	var authorsJSON string
	var keywordsJSON, linksJSON, subjectsJSON sql.NullString

	err := s.Scan(
		&rec.ID, &doi, &rec.Title, &year, &journal, &publisher, &country,
		&abstract, &rec.Era, &rec.Medium,
		&authorsJSON, &keywordsJSON, &linksJSON, &subjectsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	// Handle nullable fields
	rec.DOI = doi.String
	rec.Year = year.String
	rec.Journal = journal.String
	rec.Publisher = publisher.String
	rec.Country = country.String
	rec.Abstract = abstract.String

	// Parse JSON fields
	if err := json.Unmarshal([]byte(authorsJSON), &rec.Authors); err != nil {
		return nil, fmt.Errorf("parsing authors JSON for %s: %w", rec.ID, err)
	}
	if keywordsJSON.Valid && keywordsJSON.String != "" {
		if err := json.Unmarshal([]byte(keywordsJSON.String), &rec.Keywords); err != nil {
			return nil, fmt.Errorf("parsing keywords JSON for %s: %w", rec.ID, err)
		}
	}
	if linksJSON.Valid && linksJSON.String != "" {
		if err := json.Unmarshal([]byte(linksJSON.String), &rec.FullTextLinks); err != nil {
			return nil, fmt.Errorf("parsing links JSON for %s: %w", rec.ID, err)
		}
	}
	if subjectsJSON.Valid && subjectsJSON.String != "" {
		if err := json.Unmarshal([]byte(subjectsJSON.String), &rec.Subjects); err != nil {
			return nil, fmt.Errorf("parsing subjects JSON for %s: %w", rec.ID, err)
		}
	}

	return &rec, nil
}

func scanRecords(rows *sql.Rows) ([]record.Record, error) {
	var recs []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			recs = append(recs, *rec)
		}
	}
	return recs, rows.Err()
}

func nullableString(b []byte) sql.NullString {
	if len(b) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

// nullableStringValue converts a string to sql.NullString, treating empty as NULL.
func nullableStringValue(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	// For simple queries, just quote the terms
	// FTS5 uses double quotes for phrase matching
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	// If query contains special chars, quote it
	if strings.ContainsAny(query, "\"*+-:(){}[]^~") {
		// Escape internal quotes and wrap in quotes
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
