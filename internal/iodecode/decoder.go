// Package iodecode implements the Decoder interface: it builds the
// codename→scientific-name mapping from a taxonomic reference table
// and fills blank name fields of the target table. This is an impure
// I/O package; the codename algorithm itself lives in pkg/codename.
package iodecode

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlichen/internal/iocsv"
	"github.com/gnames/gnlichen/internal/iosqlite"
	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/gnames/gnlichen/pkg/config"
	"github.com/gnames/gnlichen/pkg/gnlichen"
	"github.com/gnames/gnlichen/pkg/tabular"
)

// decoder implements the Decoder interface.
type decoder struct {
	cfg *config.Config
}

// New creates a new Decoder.
func New(cfg *config.Config) gnlichen.Decoder {
	return &decoder{cfg: cfg}
}

// Decode runs the whole decode pipeline: reference parsing, codename
// resolution, the fill-only join and output serialization. The
// reference table is never mutated; of the target table only blank
// name cells are written.
func (d *decoder) Decode(ctx context.Context) error {
	startTime := time.Now()
	cfg := d.cfg.Decode

	mapping, err := d.buildMapping(ctx)
	if err != nil {
		return err
	}

	if cfg.WithVerify {
		d.verifyMapping(ctx, mapping)
	}

	target, err := iocsv.ReadTable(cfg.TargetFile)
	if err != nil {
		return err
	}

	filled, err := fillNames(target, mapping, cfg)
	if err != nil {
		return err
	}

	if err = iocsv.WriteTable(cfg.OutputFile, target); err != nil {
		return err
	}

	if cfg.SQLiteFile != "" {
		if err = iosqlite.Export(cfg.SQLiteFile, mapping, target); err != nil {
			return err
		}
		gn.Info("SQLite export written to <em>%s</em>", cfg.SQLiteFile)
	}

	duration := time.Since(startTime)
	slog.Info("Decode finished",
		"target_rows", len(target.Rows),
		"filled", filled,
		"output", cfg.OutputFile,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info("Filled <em>%s</em> name fields in %s",
		humanize.Comma(int64(filled)),
		gnfmt.TimeString(duration.Seconds()),
	)

	return nil
}

// buildMapping reads the reference table and resolves every row to a
// unique codename.
func (d *decoder) buildMapping(
	ctx context.Context,
) (*codename.Mapping, error) {
	cfg := d.cfg.Decode

	ref, err := iocsv.ReadTable(cfg.ReferenceFile)
	if err != nil {
		return nil, err
	}

	nameCol, ok := ref.FindColumn(cfg.ReferenceNameColumn)
	if !ok {
		return nil, MissingColumnError(cfg.ReferenceFile, cfg.ReferenceNameColumn)
	}

	names := make([]string, len(ref.Rows))
	for i, row := range ref.Rows {
		names[i] = row[nameCol]
	}

	mapping, err := codename.BuildMapping(ctx, names, d.cfg.JobsNumber)
	if err != nil {
		return nil, MappingError(err)
	}

	slog.Info("Built codename mapping",
		"reference_rows", len(names),
		"codenames", mapping.Len(),
	)
	return mapping, nil
}

// fillNames performs the fill-only join: a name cell is written only
// when it is blank and its row's codename has a mapping entry.
func fillNames(
	target *tabular.Table,
	mapping *codename.Mapping,
	cfg config.DecodeConfig,
) (int, error) {
	codeCol, ok := target.FindColumn(cfg.CodeColumn)
	if !ok {
		return 0, MissingColumnError(cfg.TargetFile, cfg.CodeColumn)
	}
	nameCol, ok := target.FindColumn(cfg.NameColumn)
	if !ok {
		return 0, MissingColumnError(cfg.TargetFile, cfg.NameColumn)
	}

	bar := pb.Full.Start(len(target.Rows))
	bar.Set("prefix", "Filling names: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var filled int
	for i, row := range target.Rows {
		bar.Increment()

		pair, ok := mapping.Lookup(row[codeCol])
		if !ok {
			continue
		}
		if !tabular.IsMissing(row[nameCol]) {
			continue
		}

		target.SetCell(i, nameCol, pair.Name)
		filled++
	}

	return filled, nil
}
