package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnlichen/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnlichen"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnlichen"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnlichen", "logs"),
		},
		{
			msg: "bins file",
			fn:  config.BinsFilePath,
			res: filepath.Join(tempHome, ".config", "gnlichen", "bins.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Decode defaults
		assert.Equal(t, "plantlist.csv", cfg.Decode.ReferenceFile)
		assert.Equal(t, "air_lichen_query.csv", cfg.Decode.TargetFile)
		assert.Equal(t, "air_lichen_scinames.csv", cfg.Decode.OutputFile)
		assert.Equal(t, "Scientific Name with Author", cfg.Decode.ReferenceNameColumn)
		assert.Equal(t, "Code for scientific name", cfg.Decode.CodeColumn)
		assert.Equal(t, "Name", cfg.Decode.NameColumn)
		assert.False(t, cfg.Decode.WithVerify)
		assert.Empty(t, cfg.Decode.SQLiteFile)

		// Clean defaults
		assert.Equal(t, "element_analysis.csv", cfg.Clean.OutputFile)
		assert.Contains(t, cfg.Clean.Elements, "nitrogen")
		assert.Contains(t, cfg.Clean.NumericColumns, "Air pollution score")
		assert.Contains(t, cfg.Clean.CategoryColumns, "region")

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})
}

func TestOptions(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptDecodeReferenceFile("ref.csv"),
		config.OptDecodeNameColumn("Species name"),
		config.OptCleanElements([]string{"zinc"}),
		config.OptJobsNumber(3),
		config.OptLogLevel("debug"),
	})

	assert.Equal(t, "ref.csv", cfg.Decode.ReferenceFile)
	assert.Equal(t, "Species name", cfg.Decode.NameColumn)
	assert.Equal(t, []string{"zinc"}, cfg.Clean.Elements)
	assert.Equal(t, 3, cfg.JobsNumber)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestOptionsRejectInvalid(t *testing.T) {
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptDecodeReferenceFile("   "),
		config.OptJobsNumber(-1),
		config.OptLogLevel("loud"),
		config.OptLogDestination("teletype"),
	})

	// Invalid values are ignored, defaults survive.
	assert.Equal(t, "plantlist.csv", cfg.Decode.ReferenceFile)
	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDecodeOutputFile("out.csv"),
		config.OptBaselineScoreColumn("pollution"),
	})

	restored := config.New()
	restored.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Decode, restored.Decode)
	assert.Equal(t, cfg.Clean.Elements, restored.Clean.Elements)
	assert.Equal(t, cfg.Baseline, restored.Baseline)
	assert.Equal(t, cfg.Log, restored.Log)
	assert.Equal(t, cfg.JobsNumber, restored.JobsNumber)
}
