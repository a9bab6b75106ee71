// Package gnlichen defines the interfaces of the GNlichen pipelines.
// Implementations live in internal/io* packages; everything here is
// I/O free.
package gnlichen

import (
	"context"
)

// Decoder resolves species codenames of the target table into full
// scientific names using a taxonomic reference table.
type Decoder interface {
	// Decode builds the codename→name mapping from the reference
	// table and fills blank name fields of the target table. Cells
	// that already hold a name, and rows whose codename has no match,
	// pass through untouched.
	Decode(ctx context.Context) error
}

// Cleaner filters the raw element-analysis table down to complete
// rows and adds categorical bin columns for the configured numeric
// columns.
type Cleaner interface {
	Clean(ctx context.Context) error
}

// Baseline computes the majority-class baseline over the air
// pollution score of a cleaned dataset.
type Baseline interface {
	// Report returns the most frequent score value and the share of
	// rows holding it.
	Report(ctx context.Context) (BaselineResult, error)
}

// BaselineResult holds the majority-class baseline figures.
type BaselineResult struct {
	// Value is the most frequent score.
	Value string

	// Count is the number of rows holding Value.
	Count int

	// Total is the number of rows with a usable score.
	Total int
}

// Accuracy is the share of rows a constant predictor of Value would
// get right.
func (r BaselineResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Count) / float64(r.Total)
}
