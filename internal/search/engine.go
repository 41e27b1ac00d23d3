// Package search enumerates candidate names depth first and reports every name
// whose FNV-1a hash equals the target.
//
// The tree is walked in alphabet order at every level, so matches come out in a
// stable order. Level d generates the (d+1)-th symbol:
//
//   - level 0 takes symbols from the configured letter range and is never pruned;
//   - level 1 consults the ban list's start table;
//   - deeper levels consult the inner table, except the last level, which only
//     tests the hash and does not recurse.
//
// With a suffix configured every node also tests hash(prefix+run+suffix).
package search

import (
	"context"

	"github.com/wwnames/fnvbrute/internal/alphabet"
	"github.com/wwnames/fnvbrute/internal/banlist"
	"github.com/wwnames/fnvbrute/internal/fnvhash"
)

// Engine is immutable once built and may serve any number of concurrent
// traversals.
type Engine struct {
	cfg   Config
	table *banlist.Table
	base  uint32

	firstLo, firstHi int
	lo, hi           int
}

// New primes the prefix hash and resolves the letter ranges. A nil table or
// cfg.IgnoreBanList disables pruning.
func New(cfg Config, table *banlist.Table) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:  cfg,
		base: fnvhash.ExtendString(fnvhash.OffsetBasis, cfg.Prefix),
		lo:   0,
		hi:   alphabet.Size - 1,
	}
	if !cfg.IgnoreBanList {
		e.table = table
	}
	e.firstLo, e.firstHi, _ = alphabet.Bounds(cfg.StartLetter, cfg.EndLetter)
	if cfg.RestrictLetters {
		e.lo, e.hi = e.firstLo, e.firstHi
	}
	return e, nil
}

// Config returns the parameters the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Letters returns the first symbols the search will start from, in order.
func (e *Engine) Letters() []byte {
	return []byte(alphabet.Symbols[e.firstLo : e.firstHi+1])
}

// Run searches sequentially and reports matches to emit as they are found.
// ctx is only checked between first symbols.
func (e *Engine) Run(ctx context.Context, emit Emitter) (Stats, error) {
	progress, _ := emit.(ProgressEmitter)

	s := e.newState(emit)
	s.testPrefix()

	for i := e.firstLo; i <= e.firstHi; i++ {
		if err := ctx.Err(); err != nil {
			return s.stats, err
		}
		if progress != nil {
			progress.Letter(alphabet.Symbols[i])
		}
		s.root(i)
		s.stats.Letters++
	}
	return s.stats, nil
}

// state is the mutable part of one traversal. buf[d] holds the symbol chosen
// at level d; siblings overwrite it.
type state struct {
	e     *Engine
	emit  Emitter
	buf   [MaxDepth]byte
	stats Stats
}

func (e *Engine) newState(emit Emitter) *state {
	return &state{e: e, emit: emit}
}

func (s *state) testPrefix() {
	if s.e.cfg.Prefix != "" && s.e.base == s.e.cfg.Target {
		s.report(-1, false)
	}
}

func (s *state) root(i int) {
	c := alphabet.Symbols[i]
	h := fnvhash.Extend(s.e.base, c)
	s.stats.Nodes++
	s.buf[0] = c
	s.test(0, h)
	if s.e.cfg.MaxDepth > 1 {
		s.visit(1, h)
	}
}

func (s *state) visit(d int, h uint32) {
	e := s.e
	last := d+1 == e.cfg.MaxDepth

	pos := banlist.Inner
	if d == 1 {
		pos = banlist.Start
	}
	prune := e.table != nil && !(last && pos == banlist.Inner)
	prev := s.buf[d-1]

	for i := e.lo; i <= e.hi; i++ {
		c := alphabet.Symbols[i]
		if prune && !e.table.Allowed(pos, prev, c) {
			continue
		}

		next := fnvhash.Extend(h, c)
		s.stats.Nodes++
		s.buf[d] = c
		s.test(d, next)

		if !last {
			s.visit(d+1, next)
		}
	}
}

func (s *state) test(d int, h uint32) {
	cfg := &s.e.cfg
	if cfg.Suffix != "" {
		if fnvhash.WithSuffix(h, cfg.Suffix, cfg.Target) {
			s.report(d, true)
		}
		return
	}
	if h == cfg.Target {
		s.report(d, false)
	}
}

func (s *state) report(d int, withSuffix bool) {
	cfg := &s.e.cfg
	run := string(s.buf[:d+1])
	name := cfg.Prefix + run
	if withSuffix {
		name += cfg.Suffix
	}
	s.stats.Matches++
	s.emit.Match(Match{Target: cfg.Target, Name: name, Run: run})
}
