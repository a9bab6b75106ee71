package codename_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnlichen/pkg/codename"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSingleMember(t *testing.T) {
	res := codename.Resolve("xanpar", []string{"parietina"})
	assert.Equal(t, []string{"xanpar"}, res)
}

func TestResolveExtension(t *testing.T) {
	// Both epithets start with "sul", so the shared base key grows by
	// the first differing letter.
	res := codename.Resolve("parsul", []string{"sulcata", "sulfurea"})
	assert.Equal(t, []string{"parsulc", "parsulf"}, res)
}

func TestResolveExtensionMultipleLetters(t *testing.T) {
	// "allophana" and "allosema" differ first at offset 4, so two
	// rounds of extension are needed.
	res := codename.Resolve("lecall", []string{"allophana", "allosema"})
	assert.Equal(t, []string{"lecallop", "lecallos"}, res)
}

func TestResolveShortEpithetStopsGrowing(t *testing.T) {
	// The short epithet runs out of letters and keeps its codename
	// while the longer one grows past it.
	res := codename.Resolve("clapyx", []string{"pyxi", "pyxidata"})
	require.Len(t, res, 2)
	assert.Equal(t, "clapyxi", res[0])
	assert.Equal(t, "clapyxid", res[1])
}

func TestResolveTrueDuplicates(t *testing.T) {
	// Identical epithets can never be separated by extension; the
	// numeric fallback takes over, first row wins the bare name.
	res := codename.Resolve("parsul", []string{"sulcata", "sulcata", "sulcata"})
	require.Len(t, res, 3)
	assert.Equal(t, res[0]+"2", res[1])
	assert.Equal(t, res[0]+"3", res[2])
	assertAllDistinct(t, res)
}

func TestResolveEmptyEpithets(t *testing.T) {
	// Malformed reference rows degrade to empty epithets but still
	// resolve to distinct codenames.
	res := codename.Resolve("", []string{"", ""})
	require.Len(t, res, 2)
	assertAllDistinct(t, res)
}

func TestResolveMixedGroup(t *testing.T) {
	epithets := []string{"sulcata", "sulfurea", "sulcata", "sulphurata"}
	res := codename.Resolve("parsul", epithets)
	require.Len(t, res, len(epithets))
	assertAllDistinct(t, res)

	// Base-key consistency: every codename still starts with the
	// group's base key.
	for _, code := range res {
		assert.True(t, strings.HasPrefix(code, "parsul"), code)
	}
}

func TestResolveOrderStable(t *testing.T) {
	// Extension follows original row order, so swapping the rows
	// swaps the assigned codenames.
	a := codename.Resolve("phycae", []string{"caesia", "caesiella"})
	b := codename.Resolve("phycae", []string{"caesiella", "caesia"})
	assertAllDistinct(t, a)
	assertAllDistinct(t, b)
	assert.NotEqual(t, a, b)
}

// Resolution of a group is bounded by the longest epithet plus the
// fallback pass, so even adversarial groups terminate quickly.
func TestResolveLargeGroupTerminates(t *testing.T) {
	epithets := make([]string, 200)
	for i := range epithets {
		epithets[i] = "sulcata"
	}
	res := codename.Resolve("parsul", epithets)
	require.Len(t, res, 200)
	assertAllDistinct(t, res)
}

func assertAllDistinct(t *testing.T, codes []string) {
	t.Helper()
	seen := make(map[string]int)
	for i, code := range codes {
		if prev, ok := seen[code]; ok {
			t.Fatalf("codename %q assigned to rows %d and %d", code, prev, i)
		}
		seen[code] = i
	}
}
