// Package sstr extracts length-prefixed ASCII strings from binary files.
//
// Some engines store names as (u32 size)(string) or (u32 size)(u32 id)(string),
// both little endian. A generic strings tool glues the size bytes onto the text;
// this scanner reads the size and checks the bytes it covers instead.
package sstr

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	// Sizes must satisfy MinSize < size < MaxSize.
	MinSize = 3
	MaxSize = 255

	// window is the largest record: size, id and string.
	window = 4 + 4 + MaxSize

	DefaultChunkSize = 1 << 20
)

type Scanner struct {
	// Limited accepts only the characters seen in hashed engine names
	// (space, '-' to ':', 'A'-'Z', '_', 'a'-'z').
	Limited bool
	// ChunkSize is how much of the input is held in memory at once.
	ChunkSize int
}

// Scan reports every string found in r, in input order. A string is reported
// without its trailing NUL, if any.
func (s *Scanner) Scan(r io.Reader, emit func(string)) error {
	if emit == nil {
		return errors.New("emit is required")
	}
	chunk := s.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	if chunk < window {
		chunk = window
	}

	// carry (<= window) + chunk + zeroed tail for records read past the data.
	buf := make([]byte, window+chunk+window)
	carry := 0
	for {
		n, err := io.ReadFull(r, buf[carry:carry+chunk])
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return err
		}

		end := carry + n
		clear(buf[end : end+window])

		// Records starting in the last window may continue in the next chunk,
		// so they wait for it unless this is the end of the input.
		limit := end - window
		if eof {
			limit = end
		}
		pos := s.scan(buf, limit, emit)
		if eof {
			return nil
		}
		carry = copy(buf, buf[pos:end])
	}
}

func (s *Scanner) scan(buf []byte, limit int, emit func(string)) int {
	pos := 0
	for pos < limit {
		size := binary.LittleEndian.Uint32(buf[pos:])
		if size <= MinSize || size >= MaxSize {
			pos++
			continue
		}

		n := int(size)
		plain := buf[pos+4 : pos+4+n]
		withID := buf[pos+8 : pos+8+n]

		okPlain := s.printable(plain)
		if okPlain {
			emit(trimNUL(plain))
		}
		okID := s.printable(withID)
		if okID {
			emit(trimNUL(withID))
		}

		switch {
		case okID:
			pos += 8 + n
		case okPlain:
			pos += 4 + n
		default:
			pos++
		}
	}
	return pos
}

func (s *Scanner) printable(b []byte) bool {
	last := len(b) - 1
	for _, c := range b[:last] {
		if s.Limited {
			if (c < 0x2d && c != 0x20) || c > 0x7a || (c >= 0x3b && c <= 0x40) || (c >= 0x5b && c <= 0x5e) {
				return false
			}
		} else if c < 0x20 || c >= 0x7f {
			return false
		}
	}

	c := b[last]
	if (c != 0 && c < 0x20) || c >= 0x7f {
		return false
	}
	return true
}

func trimNUL(b []byte) string {
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}
	return string(b)
}
