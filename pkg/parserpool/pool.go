// Package parserpool provides a pool of gnparser instances for
// concurrent name parsing. This is a pure package - parsing is
// computation, not I/O.
//
// GNlichen only needs the botanical code: lichen-forming fungi are
// governed by the ICNafp.
package parserpool

import (
	"runtime"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/gnparser/ent/parsed"
)

// Pool provides a pool of gnparser instances for concurrent parsing.
type Pool interface {
	// Parse parses a scientific name string. It retrieves a parser
	// from the pool, parses the name, and returns the parser to the
	// pool. This method is safe for concurrent use.
	Parse(nameString string) parsed.Parsed

	// Close shuts down the parser pool and releases resources.
	// After calling Close, the pool should not be used.
	Close()
}

// pool implements the Pool interface using gnparser.NewPool.
type pool struct {
	ch       chan gnparser.GNparser
	poolSize int
}

// NewPool creates a new botanical parser pool with the specified
// number of workers. If jobsNum is 0, it defaults to runtime.NumCPU().
func NewPool(jobsNum int) Pool {
	poolSize := jobsNum
	if poolSize == 0 {
		poolSize = runtime.NumCPU()
	}

	cfg := gnparser.NewConfig(
		gnparser.OptCode(nomcode.Botanical),
	)
	ch := gnparser.NewPool(cfg, poolSize)

	return &pool{ch: ch, poolSize: poolSize}
}

// Parse parses a scientific name string with a parser borrowed from
// the pool. It blocks while all parsers are busy.
func (p *pool) Parse(nameString string) parsed.Parsed {
	parser := <-p.ch
	res := parser.ParseName(nameString)
	p.ch <- parser
	return res
}

// Close shuts down the parser pool and releases resources.
func (p *pool) Close() {
	if p.ch == nil {
		return
	}
	close(p.ch)
	for range p.ch {
	}
	p.ch = nil
}
