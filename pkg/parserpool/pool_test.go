package parserpool_test

import (
	"sync"
	"testing"

	"github.com/gnames/gnlichen/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name    string
		jobsNum int
	}{
		{"default size (0 = NumCPU)", 0},
		{"custom size 2", 2},
		{"custom size 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := parserpool.NewPool(tt.jobsNum)
			require.NotNil(t, pool)
			defer pool.Close()

			res := pool.Parse("Xanthoria parietina (L.) Th. Fr.")
			assert.True(t, res.Parsed)
			assert.Equal(t, "Xanthoria parietina", res.Canonical.Simple)
		})
	}
}

func TestParseTrinomial(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	res := pool.Parse("Peltigera canina var. spuria (Ach.) Schaer.")
	require.True(t, res.Parsed)
	assert.Equal(t, "Peltigera canina spuria", res.Canonical.Simple)
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				res := pool.Parse("Evernia prunastri (L.) Ach.")
				if !res.Parsed {
					t.Error("name not parsed")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestClose(t *testing.T) {
	pool := parserpool.NewPool(1)
	res := pool.Parse("Physcia adscendens")
	require.True(t, res.Parsed)

	// Close should not panic, not even when called twice.
	pool.Close()
	pool.Close()
}
