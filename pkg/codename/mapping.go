package codename

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/gnames/gnuuid"
	"golang.org/x/sync/errgroup"
)

// Pair links one codename to the scientific name it stands for.
// NameID is the deterministic UUID v5 of the name string, the same
// scheme gndb uses for name_strings identifiers.
type Pair struct {
	Codename string
	Name     string
	NameID   string
}

// Mapping is the deduplicated codename lookup table built from a
// taxonomic reference list. It preserves the order in which pairs
// were first produced.
type Mapping struct {
	pairs  []Pair
	byCode map[string]int
}

// BuildMapping parses every reference name, groups the results by
// base key and resolves each collision group to unique codenames.
// Groups are independent, so they are resolved concurrently with up
// to jobs workers (0 means runtime.NumCPU()). Identical
// (codename, name) pairs are deduplicated; a codename reused for a
// different name keeps its first name and logs a warning.
func BuildMapping(
	ctx context.Context,
	names []string,
	jobs int,
) (*Mapping, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	taxa := make([]ParsedTaxon, len(names))
	keys := make([]string, len(names))
	for i, name := range names {
		taxa[i] = Parse(name)
		keys[i] = BaseKey(taxa[i].Genus, taxa[i].Species, taxa[i].Subspecies)
	}

	// Group row indices by base key, keeping table order inside
	// each group.
	groups := make(map[string][]int)
	for i, key := range keys {
		groups[key] = append(groups[key], i)
	}

	codes := make([]string, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for key, rows := range groups {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			epithets := make([]string, len(rows))
			for j, row := range rows {
				epithets[j] = taxa[row].Species
			}

			// Rows of one group are disjoint from every other
			// group, so writing codes needs no locking.
			for j, code := range Resolve(key, epithets) {
				codes[rows[j]] = code
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Mapping{byCode: make(map[string]int, len(names))}
	for i, code := range codes {
		name := taxa[i].ScientificName()
		if at, ok := m.byCode[code]; ok {
			if m.pairs[at].Name != name {
				slog.Warn("Codename reused for a different name",
					"codename", code,
					"kept", m.pairs[at].Name,
					"dropped", name,
				)
			}
			continue
		}
		m.byCode[code] = len(m.pairs)
		m.pairs = append(m.pairs, Pair{
			Codename: code,
			Name:     name,
			NameID:   gnuuid.New(name).String(),
		})
	}

	return m, nil
}

// Lookup returns the pair registered for a codename.
func (m *Mapping) Lookup(code string) (Pair, bool) {
	at, ok := m.byCode[code]
	if !ok {
		return Pair{}, false
	}
	return m.pairs[at], true
}

// Pairs returns all pairs in first-seen order.
func (m *Mapping) Pairs() []Pair {
	return m.pairs
}

// Len returns the number of distinct codenames in the mapping.
func (m *Mapping) Len() int {
	return len(m.pairs)
}
