package iosqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/gnames/gnlichen/internal/iosqlite"
	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/gnames/gnlichen/pkg/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.sqlite")

	mapping, err := codename.BuildMapping(
		context.Background(),
		[]string{"Parmelia sulcata Taylor", "Parmelia sulfurea"},
		1,
	)
	require.NoError(t, err)

	target := tabular.New(
		[]string{"Region", "Code for scientific name", "Name"},
		[][]string{
			{"north", "parsulc", "Parmelia sulcata"},
			{"south", "parsulf", "Parmelia sulfurea"},
		},
	)

	require.NoError(t, iosqlite.Export(path, mapping, target))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var name string
	err = db.QueryRow(
		"SELECT scientific_name FROM codenames WHERE codename = ?",
		"parsulc",
	).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "Parmelia sulcata", name)

	var count int
	err = db.QueryRow("SELECT count(*) FROM records").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var region string
	err = db.QueryRow(
		"SELECT region FROM records WHERE code_for_scientific_name = ?",
		"parsulf",
	).Scan(&region)
	require.NoError(t, err)
	assert.Equal(t, "south", region)
}
