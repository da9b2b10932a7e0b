// Package sqlite detects SQLite database files and extracts their schema as
// a textual summary.
package sqlite

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// HeaderLength is the number of leading bytes needed for detection.
const HeaderLength = 16

const (
	driverName    = "sqlite"
	schemaBanner  = "-- SQLite3 Database Schema"
	tablesHeader  = "-- Tables"
	viewsHeader   = "-- Views"
	indexesHeader = "-- Indexes"

	tablesQuery  = "SELECT name, sql FROM sqlite_master WHERE type='table' ORDER BY name"
	viewsQuery   = "SELECT name, sql FROM sqlite_master WHERE type='view' ORDER BY name"
	indexesQuery = "SELECT name, sql FROM sqlite_master WHERE type='index' AND name NOT LIKE 'sqlite_%' ORDER BY name"
)

// headerMagic marks a SQLite 3 database file, regardless of its extension.
var headerMagic = []byte("SQLite format 3")

// IsDatabaseHeader reports whether the byte prefix identifies a SQLite 3
// database file.
func IsDatabaseHeader(prefix []byte) bool {
	return bytes.HasPrefix(prefix, headerMagic)
}

// ExtractSchema opens the database read-only and renders its schema payload:
// a banner line followed by the table, view, and index definitions recorded
// in the schema catalog. Each group is ordered by object name and every
// definition is terminated with a semicolon on its own line. Internal
// auto-generated indexes are omitted. Any open or query failure returns an
// error and no payload.
func ExtractSchema(databasePath string) (string, error) {
	database, openError := sql.Open(driverName, "file:"+databasePath+"?mode=ro")
	if openError != nil {
		return "", fmt.Errorf("opening database %s: %w", databasePath, openError)
	}
	defer database.Close()

	tables, tablesError := objectDefinitions(database, tablesQuery)
	if tablesError != nil {
		return "", fmt.Errorf("reading table definitions from %s: %w", databasePath, tablesError)
	}
	views, viewsError := objectDefinitions(database, viewsQuery)
	if viewsError != nil {
		return "", fmt.Errorf("reading view definitions from %s: %w", databasePath, viewsError)
	}
	indexes, indexesError := objectDefinitions(database, indexesQuery)
	if indexesError != nil {
		return "", fmt.Errorf("reading index definitions from %s: %w", databasePath, indexesError)
	}

	var sections []string
	if len(tables) > 0 {
		sections = append(sections, tablesHeader)
		sections = append(sections, tables...)
	}
	if len(views) > 0 {
		sections = append(sections, "\n"+viewsHeader)
		sections = append(sections, views...)
	}
	if len(indexes) > 0 {
		sections = append(sections, "\n"+indexesHeader)
		sections = append(sections, indexes...)
	}
	return schemaBanner + "\n" + strings.Join(sections, "\n"), nil
}

// objectDefinitions runs one catalog query and collects the recorded SQL
// statements. Rows without statement text, such as shadow tables, are skipped.
func objectDefinitions(database *sql.DB, query string) ([]string, error) {
	rows, queryError := database.Query(query)
	if queryError != nil {
		return nil, queryError
	}
	defer rows.Close()

	var definitions []string
	for rows.Next() {
		var objectName string
		var objectSQL sql.NullString
		if scanError := rows.Scan(&objectName, &objectSQL); scanError != nil {
			return nil, scanError
		}
		if !objectSQL.Valid || objectSQL.String == "" {
			continue
		}
		definitions = append(definitions, objectSQL.String+";")
	}
	return definitions, rows.Err()
}
