package tabular_test

import (
	"testing"

	"github.com/gnames/gnlichen/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *tabular.Table {
	return tabular.New(
		[]string{"Region", "Nitrogen mg/kg dw", "Air pollution score"},
		[][]string{
			{"north", "1.2", "3"},
			{"south", "n.d.", "2"},
			{"east", "0.8", ""},
			{"west", "2.4", "3"},
		},
	)
}

func TestNewNormalizesRowWidth(t *testing.T) {
	tbl := tabular.New(
		[]string{"a", "b", "c"},
		[][]string{
			{"1"},
			{"1", "2", "3", "4"},
		},
	)

	for _, row := range tbl.Rows {
		assert.Len(t, row, 3)
	}
	assert.Equal(t, "1", tbl.Cell(1, 0))
	assert.Equal(t, "3", tbl.Cell(1, 2))
}

func TestFindColumn(t *testing.T) {
	tbl := sampleTable()

	tests := []struct {
		msg, name string
		want      int
		found     bool
	}{
		{"exact header", "Region", 0, true},
		{"substring", "nitrogen", 1, true},
		{"case-insensitive", "AIR POLLUTION", 2, true},
		{"no match", "sulfur", 0, false},
	}

	for _, v := range tests {
		idx, ok := tbl.FindColumn(v.name)
		assert.Equal(t, v.found, ok, v.msg)
		if v.found {
			assert.Equal(t, v.want, idx, v.msg)
		}
	}
}

// An exact header beats an earlier substring match: "Name" must find
// the name column even when a codename column mentioning "name"
// comes first.
func TestFindColumnPrefersExact(t *testing.T) {
	tbl := tabular.New(
		[]string{"Code for scientific name", "Name"},
		nil,
	)

	idx, ok := tbl.FindColumn("Name")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = tbl.FindColumn("scientific name")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestIsMissing(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"n.d.", true},
		{"N.D.", true},
		{"nd", true},
		{"0", false},
		{"north", false},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, tabular.IsMissing(v.input), v.input)
	}
}

func TestFilterNumeric(t *testing.T) {
	tbl := sampleTable()

	res := tbl.FilterNumeric(1, nil, nil)
	require.Len(t, res.Rows, 3)

	min := 1.0
	res = tbl.FilterNumeric(1, &min, nil)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "north", res.Cell(0, 0))
	assert.Equal(t, "west", res.Cell(1, 0))

	max := 1.5
	res = tbl.FilterNumeric(1, &min, &max)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, "north", res.Cell(0, 0))
}

func TestFilterPresent(t *testing.T) {
	tbl := sampleTable()

	res := tbl.FilterPresent(2)
	require.Len(t, res.Rows, 3)
	for _, row := range res.Rows {
		assert.False(t, tabular.IsMissing(row[2]))
	}
}

func TestAppendColumn(t *testing.T) {
	tbl := sampleTable()
	tbl.AppendColumn("Nitrogen mg/kg dw_binned", []string{"low", "", "low"})

	require.Len(t, tbl.Header, 4)
	assert.Equal(t, "low", tbl.Cell(0, 3))
	assert.Equal(t, "", tbl.Cell(3, 3))
	for _, row := range tbl.Rows {
		assert.Len(t, row, 4)
	}
}

func TestNumericColumn(t *testing.T) {
	tbl := sampleTable()
	vals := tbl.NumericColumn(1)
	assert.Equal(t, []float64{1.2, 0.8, 2.4}, vals)
}
