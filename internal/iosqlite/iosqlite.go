// Package iosqlite exports decode results to an embedded SQLite file
// so downstream analysis can query the mapping and the augmented
// table with SQL instead of re-parsing CSV.
package iosqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/gnames/gnlichen/pkg/tabular"
	_ "modernc.org/sqlite"
)

var columnCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// Export writes the codename mapping and the augmented target table
// into a fresh SQLite database at path. Existing tables are replaced.
func Export(
	path string,
	mapping *codename.Mapping,
	target *tabular.Table,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer db.Close()

	if err = exportMapping(db, mapping); err != nil {
		return err
	}
	if err = exportRecords(db, target); err != nil {
		return err
	}

	slog.Info("SQLite export finished",
		"file", path,
		"codenames", mapping.Len(),
		"records", len(target.Rows),
	)
	return nil
}

func exportMapping(db *sql.DB, mapping *codename.Mapping) error {
	ddl := `
DROP TABLE IF EXISTS codenames;
CREATE TABLE codenames (
	codename TEXT PRIMARY KEY,
	scientific_name TEXT NOT NULL,
	name_id TEXT NOT NULL
);
`
	if _, err := db.Exec(ddl); err != nil {
		return ExecError(err)
	}

	tx, err := db.Begin()
	if err != nil {
		return ExecError(err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		"INSERT INTO codenames (codename, scientific_name, name_id) VALUES (?, ?, ?)",
	)
	if err != nil {
		return ExecError(err)
	}
	defer stmt.Close()

	for _, pair := range mapping.Pairs() {
		if _, err = stmt.Exec(pair.Codename, pair.Name, pair.NameID); err != nil {
			return ExecError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ExecError(err)
	}
	return nil
}

func exportRecords(db *sql.DB, target *tabular.Table) error {
	cols := columnNames(target.Header)

	var defs []string
	for _, c := range cols {
		defs = append(defs, fmt.Sprintf("%q TEXT", c))
	}
	ddl := fmt.Sprintf(
		"DROP TABLE IF EXISTS records;\nCREATE TABLE records (%s);",
		strings.Join(defs, ", "),
	)
	if _, err := db.Exec(ddl); err != nil {
		return ExecError(err)
	}

	tx, err := db.Begin()
	if err != nil {
		return ExecError(err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(
		strings.Repeat("?, ", len(cols)), ", ",
	)
	stmt, err := tx.Prepare(
		fmt.Sprintf("INSERT INTO records VALUES (%s)", placeholders),
	)
	if err != nil {
		return ExecError(err)
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for _, row := range target.Rows {
		for i := range cols {
			args[i] = row[i]
		}
		if _, err = stmt.Exec(args...); err != nil {
			return ExecError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ExecError(err)
	}
	return nil
}

// columnNames converts CSV headers to SQL-friendly column names and
// disambiguates duplicates with numeric suffixes.
func columnNames(header []string) []string {
	res := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.Trim(
			columnCleanRe.ReplaceAllString(strings.ToLower(h), "_"), "_",
		)
		if name == "" {
			name = fmt.Sprintf("col%d", i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name] = 1
		res[i] = name
	}
	return res
}
