// Package codename derives compact deterministic identifiers (codenames)
// from scientific names of lichen-forming taxa.
//
// A codename starts as a base key built from the first letters of the
// genus, species and subspecies epithets. When several taxa collide on
// the same base key the codename is extended letter by letter from the
// species epithet until unique, with a numeric suffix as the final
// fallback. This is a pure package - no I/O.
package codename

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ParsedTaxon holds the normalized epithets extracted from a free-text
// scientific name. Every field is lowercase ASCII letters only.
// Subspecies is empty when the name has no subspecific epithet.
type ParsedTaxon struct {
	Genus      string
	Species    string
	Subspecies string
}

// UncertaintyQualifiers mark tentative identifications such as
// "Cladonia cf. pyxidata". The qualifier and the epithet that follows
// it contribute nothing to the codename.
var UncertaintyQualifiers = map[string]struct{}{
	"sp":  {},
	"cf":  {},
	"aff": {},
	"nr":  {},
}

// RankQualifiers mark that the next token is a subspecific epithet,
// as in "Peltigera canina var. spuria".
var RankQualifiers = map[string]struct{}{
	"subsp": {},
	"ssp":   {},
	"var":   {},
	"forma": {},
	"f":     {},
}

// stripMarks decomposes characters and removes combining marks, so
// "ë" becomes "e" before the ASCII filter runs.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// epithetRe matches a clean epithet token. Hyphens are allowed for
// names like "muscorum-corticola".
var epithetRe = regexp.MustCompile(`^[A-Za-z-]+$`)

// Normalize prepares a Latin name token for keying: accents are
// stripped, the result is lowercased and every character outside a-z
// is removed. It is total - malformed input yields an empty string.
func Normalize(token string) string {
	s, _, err := transform.String(stripMarks, token)
	if err != nil {
		s = token
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Parse splits a "Genus species [rank qualifier epithet] Author" string
// into normalized epithets. It is a best-effort heuristic over the
// bounded qualifier vocabulary above, not a nomenclatural grammar:
// authorship, years and punctuation are skipped, uncertainty
// qualifiers drop the token that follows them. Parse never fails;
// unusable input produces empty fields.
func Parse(raw string) ParsedTaxon {
	var res ParsedTaxon

	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return res
	}

	res.Genus = Normalize(tokens[0])

	i := 1
	for i < len(tokens) {
		tok := tokens[i]
		t := strings.Trim(strings.ToLower(tok), ".")

		if _, ok := UncertaintyQualifiers[t]; ok {
			i += 2
			continue
		}

		if res.Species == "" && epithetRe.MatchString(tok) {
			res.Species = Normalize(tok)
			i++
			continue
		}

		if _, ok := RankQualifiers[t]; ok && i+1 < len(tokens) {
			res.Subspecies = Normalize(tokens[i+1])
			i += 2
			continue
		}

		i++
	}

	return res
}

// BaseKey builds the fixed-prefix identifier from the first three
// letters of each epithet. An empty subspecies contributes nothing.
// Taxa that share a base key form a collision group.
func BaseKey(genus, species, subspecies string) string {
	return strings.ToLower(prefix(genus, 3) + prefix(species, 3) + prefix(subspecies, 3))
}

// ScientificName rebuilds the display form of a parsed taxon:
// "Genus species" or "Genus species subsp. subspecies".
func (p ParsedTaxon) ScientificName() string {
	name := capitalize(p.Genus) + " " + p.Species
	if p.Subspecies != "" {
		name += " subsp. " + p.Subspecies
	}
	return name
}

func prefix(s string, n int) string {
	rr := []rune(s)
	if len(rr) > n {
		rr = rr[:n]
	}
	return string(rr)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	rr := []rune(s)
	rr[0] = unicode.ToUpper(rr[0])
	return string(rr)
}
