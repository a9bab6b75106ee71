package iodecode

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/gnames/gnlichen/pkg/parserpool"
	"golang.org/x/sync/errgroup"
)

// verifyMapping cross-checks every reconstructed name against
// gnparser's botanical canonical form. The heuristic parser covers a
// bounded vocabulary, so disagreements are possible and only logged,
// never fatal - the check exists to spot reference tables drifting
// away from what the heuristics expect.
func (d *decoder) verifyMapping(ctx context.Context, mapping *codename.Mapping) {
	jobs := d.cfg.JobsNumber
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	pool := parserpool.NewPool(jobs)
	defer pool.Close()

	var mismatches atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, pair := range mapping.Pairs() {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			res := pool.Parse(pair.Name)
			var canonical string
			if res.Parsed {
				canonical = res.Canonical.Simple
			}
			// Our display form spells the rank out, gnparser's
			// simple canonical omits it.
			want := strings.ReplaceAll(pair.Name, " subsp. ", " ")
			if canonical != want {
				mismatches.Add(1)
				slog.Warn("Reconstructed name disagrees with gnparser",
					"codename", pair.Codename,
					"name", pair.Name,
					"canonical", canonical,
				)
			}
			return nil
		})
	}
	// Workers only fail on cancellation; mismatches are not errors.
	_ = g.Wait()

	if n := mismatches.Load(); n > 0 {
		slog.Warn("Verification finished with disagreements",
			"checked", mapping.Len(), "mismatches", n)
		return
	}
	slog.Info("Verification finished", "checked", mapping.Len())
}
