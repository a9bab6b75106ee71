// Package tabular provides an in-memory model for the CSV tables
// gnlichen works with: a header plus string rows. Columns are located
// by case-insensitive substring match, the way the source datasets
// are queried ("nitrogen" finds "Nitrogen mg/kg dw"). This is a pure
// package - reading and writing files lives in internal/iocsv.
package tabular

import (
	"strconv"
	"strings"
)

// Table holds one parsed CSV file. Rows are normalized to the header
// width on creation.
type Table struct {
	Header []string
	Rows   [][]string
}

// missingSentinels are the values the element-analysis datasets use
// for "not detected" besides an empty cell.
var missingSentinels = map[string]struct{}{
	"n.d.": {},
	"n.d":  {},
	"nd":   {},
}

// New creates a Table, padding or truncating every row to the header
// width so later column access never goes out of range.
func New(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: make([][]string, len(rows))}
	for i, row := range rows {
		if len(row) == len(header) {
			t.Rows[i] = row
			continue
		}
		fixed := make([]string, len(header))
		copy(fixed, row)
		t.Rows[i] = fixed
	}
	return t
}

// FindColumn locates a column by header, ignoring case. An exact
// header match wins; otherwise the first header containing name as a
// substring is returned. The second value is false when no header
// matches.
func (t *Table) FindColumn(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, h := range t.Header {
		if strings.ToLower(h) == name {
			return i, true
		}
	}
	for i, h := range t.Header {
		if strings.Contains(strings.ToLower(h), name) {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at row, col.
func (t *Table) Cell(row, col int) string {
	return t.Rows[row][col]
}

// SetCell overwrites the value at row, col.
func (t *Table) SetCell(row, col int, val string) {
	t.Rows[row][col] = val
}

// AppendColumn adds a new column with the given header and values,
// one value per row. Missing values are left empty.
func (t *Table) AppendColumn(header string, values []string) {
	t.Header = append(t.Header, header)
	for i := range t.Rows {
		var v string
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
}

// Filter returns a new Table keeping only the rows for which keep
// returns true. The header is shared, rows are not copied.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	res := &Table{Header: t.Header}
	for _, row := range t.Rows {
		if keep(row) {
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}

// IsMissing reports whether a cell value is blank or one of the
// dataset's missing-value sentinels.
func IsMissing(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	_, ok := missingSentinels[s]
	return ok
}

// ParseNumeric converts a cell to a float. The second value is false
// for blanks, sentinels and anything that does not parse.
func ParseNumeric(s string) (float64, bool) {
	if IsMissing(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FilterNumeric drops rows whose column col is missing or not a
// number, and optionally rows outside [min, max]. Nil bounds are
// ignored.
func (t *Table) FilterNumeric(col int, min, max *float64) *Table {
	return t.Filter(func(row []string) bool {
		v, ok := ParseNumeric(row[col])
		if !ok {
			return false
		}
		if min != nil && v < *min {
			return false
		}
		if max != nil && v > *max {
			return false
		}
		return true
	})
}

// FilterPresent drops rows whose column col is blank or a
// missing-value sentinel.
func (t *Table) FilterPresent(col int) *Table {
	return t.Filter(func(row []string) bool {
		return !IsMissing(row[col])
	})
}

// NumericColumn returns the parsed values of column col for rows
// where it holds a number. Use after FilterNumeric when all rows are
// expected to parse.
func (t *Table) NumericColumn(col int) []float64 {
	res := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if v, ok := ParseNumeric(row[col]); ok {
			res = append(res, v)
		}
	}
	return res
}
