// Package bins converts numeric dataset columns into categorical
// labels. The default scheme splits a column into equal-frequency
// tertiles (low/medium/high); explicit cut points can be supplied per
// column through a bins.yaml file. Threshold tables are configuration
// data, not logic.
package bins

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLabels are used when a scheme does not name its own.
var DefaultLabels = []string{"low", "medium", "high"}

// Scheme describes how one column is binned. When Thresholds is
// empty the cut points are computed from the column's quantiles so
// that each label covers roughly the same number of rows.
type Scheme struct {
	// Column is matched against headers by case-insensitive substring.
	Column string `yaml:"column"`

	// Labels, ordered low to high. len(Thresholds) must be
	// len(Labels)-1 when thresholds are explicit.
	Labels []string `yaml:"labels,omitempty"`

	// Thresholds are explicit upper bounds for every label but the
	// last, in ascending order.
	Thresholds []float64 `yaml:"thresholds,omitempty"`
}

// Config is the content of bins.yaml.
type Config struct {
	Schemes []Scheme `yaml:"schemes"`
}

// ParseConfig decodes a bins.yaml document.
func ParseConfig(data []byte) (*Config, error) {
	var res Config
	if err := yaml.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("cannot parse bins config: %w", err)
	}
	for i := range res.Schemes {
		s := &res.Schemes[i]
		if len(s.Labels) == 0 {
			s.Labels = DefaultLabels
		}
		if len(s.Thresholds) > 0 &&
			len(s.Thresholds) != len(s.Labels)-1 {
			return nil, fmt.Errorf(
				"scheme %q: %d thresholds for %d labels",
				s.Column, len(s.Thresholds), len(s.Labels),
			)
		}
	}
	return &res, nil
}

// Scheme returns the scheme configured for a column header, or a
// default quantile scheme when none matches.
func (c *Config) Scheme(header string) Scheme {
	for _, s := range c.Schemes {
		if s.Column != "" && containsFold(header, s.Column) {
			return s
		}
	}
	return Scheme{Column: header, Labels: DefaultLabels}
}

// Apply labels every value of the column. Quantile cut points are
// computed when the scheme has no explicit thresholds. It errors on
// an empty column or on quantiles too degenerate to separate the
// requested labels.
func (s Scheme) Apply(values []float64) ([]string, []float64, error) {
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("scheme %q: no values to bin", s.Column)
	}

	cuts := s.Thresholds
	if len(cuts) == 0 {
		var err error
		cuts, err = quantileCuts(values, len(s.Labels))
		if err != nil {
			return nil, nil, fmt.Errorf("scheme %q: %w", s.Column, err)
		}
	}

	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = assign(v, cuts, s.Labels)
	}
	return labels, cuts, nil
}

// quantileCuts computes q-1 interior quantiles with linear
// interpolation over the sorted values.
func quantileCuts(values []float64, q int) ([]float64, error) {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	cuts := make([]float64, 0, q-1)
	for i := 1; i < q; i++ {
		cuts = append(cuts, quantile(sorted, float64(i)/float64(q)))
	}

	for i := 1; i < len(cuts); i++ {
		if cuts[i] <= cuts[i-1] {
			return nil, fmt.Errorf(
				"duplicate bin edge %v, not enough distinct values", cuts[i],
			)
		}
	}
	return cuts, nil
}

func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func assign(v float64, cuts []float64, labels []string) string {
	for i, cut := range cuts {
		if v <= cut {
			return labels[i]
		}
	}
	return labels[len(labels)-1]
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
