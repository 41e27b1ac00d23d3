package search

import (
	"errors"
	"fmt"

	"github.com/wwnames/fnvbrute/internal/alphabet"
)

// MaxDepth is the exclusive upper bound for Config.MaxDepth.
const MaxDepth = 16

// DefaultDepth is used by the driver when no depth is configured.
const DefaultDepth = 7

// Config holds the immutable parameters of one search.
type Config struct {
	Target uint32
	Prefix string
	Suffix string

	// StartLetter and EndLetter bound the first generated symbol (inclusive).
	// Zero means the first or last alphabet symbol respectively.
	StartLetter byte
	EndLetter   byte
	// RestrictLetters applies the letter range at every depth.
	RestrictLetters bool

	// MaxDepth is the maximum number of generated symbols.
	MaxDepth int

	IgnoreBanList bool
}

// Validate reports the first problem that would make the search meaningless.
func (c Config) Validate() error {
	if c.MaxDepth < 1 || c.MaxDepth >= MaxDepth {
		return fmt.Errorf("max depth must be between 1 and %d, got %d", MaxDepth-1, c.MaxDepth)
	}
	lo, hi, ok := alphabet.Bounds(c.StartLetter, c.EndLetter)
	if !ok {
		return fmt.Errorf("letter range %q..%q is not in the alphabet", c.StartLetter, c.EndLetter)
	}
	if lo > hi {
		return errors.New("start letter comes after end letter")
	}
	return nil
}

// Match is one preimage found for Target.
type Match struct {
	Target uint32
	// Name is prefix, generated run and, when configured, suffix.
	Name string
	// Run is the generated part of Name.
	Run string
}

// Stats summarizes a finished search.
type Stats struct {
	Nodes   uint64
	Matches int
	Letters int
}

// Emitter receives matches as soon as they are found.
type Emitter interface {
	Match(m Match)
}

// ProgressEmitter is implemented by emitters that want to be told when the
// search moves to the next first symbol.
type ProgressEmitter interface {
	Emitter
	Letter(c byte)
}
