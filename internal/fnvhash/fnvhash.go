// Package fnvhash implements the byte-at-a-time 32-bit FNV-1a steps used by the
// search engine and the forward (name to id) hash.
package fnvhash

import "strings"

const (
	OffsetBasis uint32 = 2166136261
	Prime       uint32 = 16777619
)

// Extend applies one step: multiply by Prime, then xor b. Audio engines call
// this FNV-1a; hash/fnv names the same order FNV-1 (fnv.New32).
func Extend(h uint32, b byte) uint32 {
	return (h * Prime) ^ uint32(b)
}

// ExtendString applies Extend for every byte of s in order.
func ExtendString(h uint32, s string) uint32 {
	for i := 0; i < len(s); i++ {
		h = (h * Prime) ^ uint32(s[i])
	}
	return h
}

// WithSuffix reports whether h extended by suffix equals target.
func WithSuffix(h uint32, suffix string, target uint32) bool {
	return ExtendString(h, suffix) == target
}

// Sum returns the id of a name. Names are case-insensitive, so the input is
// lowercased first.
func Sum(name string) uint32 {
	return ExtendString(OffsetBasis, strings.ToLower(name))
}
