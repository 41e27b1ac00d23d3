package banlist

import "github.com/wwnames/fnvbrute/internal/alphabet"

// Position selects which adjacency matrix applies to a transition.
type Position int

const (
	// Start governs the transition from the first generated symbol to the second.
	Start Position = iota
	// Inner governs every later transition.
	Inner
)

func (p Position) String() string {
	if p == Start {
		return "start"
	}
	return "inner"
}

const tableSize = alphabet.MaxByte + 1

// Table holds the two adjacency matrices, indexed by raw byte value. A true
// entry means the pair may appear adjacently. Tables are filled during loading
// and must not be modified once a search has started.
type Table struct {
	allowed [2][tableSize][tableSize]bool
}

// Permissive returns a table that allows every pair.
func Permissive() *Table {
	t := &Table{}
	for pos := range t.allowed {
		for prev := range t.allowed[pos] {
			for c := range t.allowed[pos][prev] {
				t.allowed[pos][prev][c] = true
			}
		}
	}
	return t
}

// Allowed reports whether c may follow prev at the given position class.
// Bytes outside the table range are always allowed.
func (t *Table) Allowed(pos Position, prev, c byte) bool {
	if prev >= tableSize || c >= tableSize {
		return true
	}
	return t.allowed[pos][prev][c]
}

// Disallow bans the pair (prev, c). It returns false when the pair was already
// banned or lies outside the table.
func (t *Table) Disallow(pos Position, prev, c byte) bool {
	if prev >= tableSize || c >= tableSize {
		return false
	}
	if !t.allowed[pos][prev][c] {
		return false
	}
	t.allowed[pos][prev][c] = false
	return true
}

// Banned counts disallowed alphabet pairs for a position class.
func (t *Table) Banned(pos Position) int {
	n := 0
	for i := 0; i < alphabet.Size; i++ {
		for j := 0; j < alphabet.Size; j++ {
			if !t.allowed[pos][alphabet.Symbols[i]][alphabet.Symbols[j]] {
				n++
			}
		}
	}
	return n
}
