// Package iocsv reads and writes the CSV tables GNlichen works with.
// Reading is deliberately forgiving: field datasets come from many
// labs and some files only parse with lax quoting or turn out to be
// tab-separated. The reader walks through fallback strategies until
// one yields a table.
package iocsv

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gnlichen/pkg/tabular"
)

// strategy describes one attempt at parsing a file.
type strategy struct {
	name    string
	comma   rune
	lazy    bool
	skipBad bool
}

// strategies are tried in order; the first one that produces a header
// and at least one row wins. The last two mirror pandas'
// engine="python", on_bad_lines="skip" retries of the original
// pipeline.
var strategies = []strategy{
	{name: "strict", comma: ','},
	{name: "lax", comma: ',', lazy: true, skipBad: true},
	{name: "tab", comma: '\t', lazy: true, skipBad: true},
}

// ReadTable parses a CSV file into a Table. The first record is the
// header. All fallback strategies failing is a fatal error.
func ReadTable(path string) (*tabular.Table, error) {
	var lastErr error
	for _, st := range strategies {
		tbl, err := readWith(path, st)
		if err == nil {
			if st.name != "strict" {
				slog.Info("Parsed with fallback strategy",
					"file", path, "strategy", st.name)
			}
			return tbl, nil
		}
		lastErr = err
	}
	return nil, ReadError(path, lastErr)
}

func readWith(path string, st strategy) (*tabular.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = st.comma
	r.LazyQuotes = st.lazy
	if st.skipBad {
		r.FieldsPerRecord = -1
	}

	header, err := r.Read()
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if st.skipBad {
				continue
			}
			return nil, err
		}
		rows = append(rows, rec)
	}

	// Every table this tool consumes has several columns. A
	// single-column header means the separator guess was wrong
	// (a tab-separated file read with a comma), so let the next
	// strategy try.
	if len(header) < 2 {
		return nil, errors.New("only one column found, wrong separator")
	}

	return tabular.New(header, rows), nil
}

// WriteTable serializes a Table to a CSV file.
func WriteTable(path string, t *tabular.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(t.Header); err != nil {
		return WriteError(path, err)
	}
	if err = w.WriteAll(t.Rows); err != nil {
		return WriteError(path, err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return WriteError(path, err)
	}
	return nil
}
