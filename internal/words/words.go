// Package words scores candidate names by the dictionary words they contain.
// Brute-force searches past six or seven symbols produce many collisions, and
// names built from real words are the ones worth a second look.
package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// MinLength is the shortest word kept from a word list.
const MinLength = 3

type Dictionary struct {
	words   []string
	matcher *matcher
}

// Hits describes the words found in a name.
type Hits struct {
	Words []string
	// Covered is the number of bytes of the name inside at least one word.
	Covered int
}

func New(list []string) (*Dictionary, error) {
	seen := map[string]struct{}{}
	kept := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToLower(strings.TrimSpace(w))
		if len(w) < MinLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		kept = append(kept, w)
	}

	m, err := newMatcher(kept)
	if err != nil {
		return nil, err
	}
	return &Dictionary{words: kept, matcher: m}, nil
}

// Read parses a word list. Lines starting with # are comments; other lines are
// split on blanks and underscores, so a list of known names works as well.
func Read(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == '_' || r == ' ' || r == '\t'
		})
		out = append(out, fields...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func Load(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	list, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("read words %s: %w", path, err)
	}
	dict, err := New(list)
	if err != nil {
		return nil, fmt.Errorf("words %s: %w", path, err)
	}
	return dict, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Find returns the distinct words contained in name, ordered by where they end.
func (d *Dictionary) Find(name string) Hits {
	name = strings.ToLower(name)
	covered := make([]bool, len(name))
	seen := map[int]struct{}{}
	var hits Hits

	d.matcher.scan(name, func(id, end int) {
		word := d.words[id]
		for i := end - len(word); i < end; i++ {
			covered[i] = true
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		hits.Words = append(hits.Words, word)
	})

	for _, c := range covered {
		if c {
			hits.Covered++
		}
	}
	return hits
}
