// Package ioclean implements the Cleaner interface: it filters the
// raw element-analysis table down to rows with complete measurements
// and adds categorical bin columns for downstream analysis.
package ioclean

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlichen/internal/iocsv"
	"github.com/gnames/gnlichen/internal/iofs"
	"github.com/gnames/gnlichen/pkg/bins"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/gnames/gnlichen/pkg/gnlichen"
)

// cleaner implements the Cleaner interface.
type cleaner struct {
	cfg *config.Config
}

// New creates a new Cleaner.
func New(cfg *config.Config) gnlichen.Cleaner {
	return &cleaner{cfg: cfg}
}

// Clean filters and bins the dataset. Numeric columns keep only rows
// that parse as numbers, category columns keep only non-blank rows;
// every numeric column then gets a companion "<header>_binned"
// column.
func (c *cleaner) Clean(ctx context.Context) error {
	startTime := time.Now()
	cfg := c.cfg.Clean

	binsCfg, err := c.loadBinsConfig()
	if err != nil {
		return err
	}

	tbl, err := iocsv.ReadTable(cfg.InputFile)
	if err != nil {
		return err
	}
	total := len(tbl.Rows)

	// numeric holds the column index and header of every column to
	// bin after filtering. Filtering only drops rows, so indices
	// stay valid.
	type numericCol struct {
		idx    int
		header string
	}
	var numeric []numericCol

	for _, name := range append(
		append([]string{}, cfg.Elements...), cfg.NumericColumns...,
	) {
		idx, ok := tbl.FindColumn(name)
		if !ok {
			return MissingColumnError(cfg.InputFile, name)
		}
		tbl = tbl.FilterNumeric(idx, nil, nil)
		numeric = append(numeric, numericCol{idx: idx, header: tbl.Header[idx]})
	}

	for _, name := range cfg.CategoryColumns {
		idx, ok := tbl.FindColumn(name)
		if !ok {
			return MissingColumnError(cfg.InputFile, name)
		}
		tbl = tbl.FilterPresent(idx)
	}

	if len(tbl.Rows) == 0 {
		return EmptyResultError(cfg.InputFile)
	}

	for _, col := range numeric {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		scheme := binsCfg.Scheme(col.header)
		labels, cuts, err := scheme.Apply(tbl.NumericColumn(col.idx))
		if err != nil {
			return BinningError(col.header, err)
		}
		tbl.AppendColumn(col.header+"_binned", labels)
		slog.Debug("Column binned",
			"column", col.header, "cuts", cuts, "labels", scheme.Labels)
	}

	if err = iocsv.WriteTable(cfg.OutputFile, tbl); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Clean finished",
		"input_rows", total,
		"kept_rows", len(tbl.Rows),
		"binned_columns", len(numeric),
		"output", cfg.OutputFile,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Kept <em>%s</em> of %s rows, binned %d columns",
		humanize.Comma(int64(len(tbl.Rows))),
		humanize.Comma(int64(total)),
		len(numeric),
	)

	return nil
}

// loadBinsConfig reads bins.yaml from the config directory when it
// exists, otherwise falls back to the embedded defaults.
func (c *cleaner) loadBinsConfig() (*bins.Config, error) {
	data := []byte(iofs.BinsYAML)

	if c.cfg.HomeDir != "" {
		path := config.BinsFilePath(c.cfg.HomeDir)
		if fileData, err := os.ReadFile(path); err == nil {
			data = fileData
		}
	}

	res, err := bins.ParseConfig(data)
	if err != nil {
		return nil, BinsConfigError(err)
	}
	return res, nil
}
