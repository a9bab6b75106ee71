// Package iobaseline implements the Baseline interface: a
// majority-class predictor over the air pollution score, the floor
// any real model of the cleaned dataset has to beat.
package iobaseline

import (
	"context"
	"log/slog"

	"github.com/gnames/gnlichen/internal/iocsv"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/gnames/gnlichen/pkg/gnlichen"
	"github.com/gnames/gnlichen/pkg/tabular"
)

// baseline implements the Baseline interface.
type baseline struct {
	cfg *config.Config
}

// New creates a new Baseline.
func New(cfg *config.Config) gnlichen.Baseline {
	return &baseline{cfg: cfg}
}

// Report finds the most frequent score value and its share of usable
// rows. Ties keep the value that appeared first in the table.
func (b *baseline) Report(ctx context.Context) (gnlichen.BaselineResult, error) {
	var res gnlichen.BaselineResult
	cfg := b.cfg.Baseline

	tbl, err := iocsv.ReadTable(cfg.InputFile)
	if err != nil {
		return res, err
	}

	col, ok := tbl.FindColumn(cfg.ScoreColumn)
	if !ok {
		return res, MissingColumnError(cfg.InputFile, cfg.ScoreColumn)
	}

	counts := make(map[string]int)
	var order []string
	for _, row := range tbl.Rows {
		v := row[col]
		if tabular.IsMissing(v) {
			continue
		}
		if _, ok := counts[v]; !ok {
			order = append(order, v)
		}
		counts[v]++
		res.Total++
	}

	if res.Total == 0 {
		return res, EmptyColumnError(cfg.InputFile, tbl.Header[col])
	}

	for _, v := range order {
		if counts[v] > res.Count {
			res.Value = v
			res.Count = counts[v]
		}
	}

	slog.Info("Baseline computed",
		"column", tbl.Header[col],
		"value", res.Value,
		"accuracy", res.Accuracy(),
	)
	return res, nil
}
