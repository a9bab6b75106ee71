package codename_test

import (
	"testing"

	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		msg, input, want string
	}{
		{"plain lowercase", "parietina", "parietina"},
		{"mixed case", "Xanthoria", "xanthoria"},
		{"accents stripped", "Müller", "muller"},
		{"combining marks removed", "coëruleum", "coeruleum"},
		{"digits removed", "caesia1871", "caesia"},
		{"punctuation removed", "subsp.", "subsp"},
		{"hyphen removed", "muscorum-corticola", "muscorumcorticola"},
		{"empty input", "", ""},
		{"only noise", "(1871)", ""},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, codename.Normalize(v.input), v.msg)
	}
}

// Normalize and Parse are pure: repeated calls on the same input must
// agree byte for byte.
func TestNormalizeDeterministic(t *testing.T) {
	inputs := []string{"Müller", "Physcia", "coëruleum", ""}
	for _, s := range inputs {
		assert.Equal(t, codename.Normalize(s), codename.Normalize(s))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		msg, input string
		want       codename.ParsedTaxon
	}{
		{
			msg:   "binomial",
			input: "Xanthoria parietina",
			want:  codename.ParsedTaxon{Genus: "xanthoria", Species: "parietina"},
		},
		{
			msg:   "binomial with author",
			input: "Physcia adscendens (Fr.) H. Olivier",
			want:  codename.ParsedTaxon{Genus: "physcia", Species: "adscendens"},
		},
		{
			msg:   "variety",
			input: "Peltigera canina var. spuria (Ach.) Schaer.",
			want: codename.ParsedTaxon{
				Genus: "peltigera", Species: "canina", Subspecies: "spuria",
			},
		},
		{
			msg:   "subspecies without period",
			input: "Ramalina farinacea subsp pendulina",
			want: codename.ParsedTaxon{
				Genus: "ramalina", Species: "farinacea", Subspecies: "pendulina",
			},
		},
		{
			msg:   "uncertain identification skips the epithet",
			input: "Cladonia cf. pyxidata",
			want:  codename.ParsedTaxon{Genus: "cladonia"},
		},
		{
			msg:   "genus only with sp.",
			input: "Usnea sp.",
			want:  codename.ParsedTaxon{Genus: "usnea"},
		},
		{
			msg:   "author year is noise",
			input: "Evernia prunastri (L.) Ach. 1810",
			want:  codename.ParsedTaxon{Genus: "evernia", Species: "prunastri"},
		},
		{
			msg:   "hyphenated epithet",
			input: "Lepraria muscorum-corticola",
			want: codename.ParsedTaxon{
				Genus: "lepraria", Species: "muscorumcorticola",
			},
		},
		{
			msg:   "rank qualifier at end without epithet is skipped",
			input: "Peltigera canina var.",
			want:  codename.ParsedTaxon{Genus: "peltigera", Species: "canina"},
		},
		{
			msg:   "empty string",
			input: "",
			want:  codename.ParsedTaxon{},
		},
		{
			msg:   "whitespace only",
			input: "   ",
			want:  codename.ParsedTaxon{},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, codename.Parse(v.input), v.msg)
	}
}

func TestBaseKey(t *testing.T) {
	tests := []struct {
		msg                        string
		genus, species, subspecies string
		want                       string
	}{
		{"binomial", "xanthoria", "parietina", "", "xanpar"},
		{"trinomial", "peltigera", "canina", "spuria", "pelcanspu"},
		{"short epithets", "ab", "c", "", "abc"},
		{"genus only", "usnea", "", "", "usn"},
		{"all empty", "", "", "", ""},
	}

	for _, v := range tests {
		res := codename.BaseKey(v.genus, v.species, v.subspecies)
		assert.Equal(t, v.want, res, v.msg)
	}
}

func TestScientificName(t *testing.T) {
	tests := []struct {
		msg   string
		taxon codename.ParsedTaxon
		want  string
	}{
		{
			msg:   "binomial",
			taxon: codename.ParsedTaxon{Genus: "xanthoria", Species: "parietina"},
			want:  "Xanthoria parietina",
		},
		{
			msg: "trinomial",
			taxon: codename.ParsedTaxon{
				Genus: "peltigera", Species: "canina", Subspecies: "spuria",
			},
			want: "Peltigera canina subsp. spuria",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.want, v.taxon.ScientificName(), v.msg)
	}
}
