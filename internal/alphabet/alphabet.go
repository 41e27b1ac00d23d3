package alphabet

// Symbols is the fixed search alphabet. Its order is the traversal order of the
// search at every depth.
const Symbols = "abcdefghijklmnopqrstuvwxyz_0123456789"

// Size is the number of symbols in the alphabet.
const Size = len(Symbols)

// MaxByte is the largest byte value present in the alphabet ('z').
const MaxByte = 'z'

var indexes = buildIndexes()

func buildIndexes() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		idx[Symbols[i]] = int8(i)
	}
	return idx
}

// Index returns the position of c in the alphabet.
func Index(c byte) (int, bool) {
	i := indexes[c]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

func Contains(c byte) bool {
	return indexes[c] >= 0
}

// Bounds resolves an inclusive letter range to alphabet indexes. A zero byte
// stands for the first (start) or last (end) symbol.
func Bounds(start, end byte) (int, int, bool) {
	lo, hi := 0, Size-1
	if start != 0 {
		i, ok := Index(start)
		if !ok {
			return 0, 0, false
		}
		lo = i
	}
	if end != 0 {
		i, ok := Index(end)
		if !ok {
			return 0, 0, false
		}
		hi = i
	}
	return lo, hi, true
}
