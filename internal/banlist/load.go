package banlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/wwnames/fnvbrute/internal/alphabet"
)

// DefaultPath is the rule file looked up when none is configured.
const DefaultPath = "fnv.lst"

// Stats describes what a rule file contributed to a table.
type Stats struct {
	Lines int
	Rules int
	Pairs int
}

// Parse reads rules, one per line:
//
//	# comment
//	ab        ban "b" after "a" past the first transition
//	^ab       ban "b" after "a" in the first transition
//	a[bcd]    ban "b", "c" and "d" after "a"
//
// Lines whose first byte is not in the alphabet are ignored, indented lines
// included. A bracket list ends at the first byte outside the alphabet.
func Parse(r io.Reader) (*Table, Stats, error) {
	table := Permissive()
	var stats Stats

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pos := Inner
		if line[0] == '^' {
			pos = Start
			line = line[1:]
		}
		if len(line) < 2 || !alphabet.Contains(line[0]) {
			continue
		}

		first := line[0]
		banned := 0
		if line[1] == '[' {
			for i := 2; i < len(line) && alphabet.Contains(line[i]); i++ {
				if table.Disallow(pos, first, line[i]) {
					banned++
				}
			}
		} else if alphabet.Contains(line[1]) {
			if table.Disallow(pos, first, line[1]) {
				banned++
			}
		}

		if banned > 0 {
			stats.Rules++
			stats.Pairs += banned
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, err
	}
	return table, stats, nil
}

func Load(path string) (*Table, Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, err
	}
	defer func() { _ = file.Close() }()

	table, stats, err := Parse(file)
	if err != nil {
		return nil, stats, fmt.Errorf("read ban list %s: %w", path, err)
	}
	return table, stats, nil
}

// LoadOrPermissive loads path, falling back to a permissive table when the
// file does not exist. Other read errors are returned.
func LoadOrPermissive(path string, logger *slog.Logger) (*Table, bool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	table, stats, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ban list not found, search is unpruned", slog.String("path", path))
		return Permissive(), false, nil
	}
	if err != nil {
		return nil, false, err
	}

	logger.Debug("ban list loaded",
		slog.String("path", path),
		slog.Int("rules", stats.Rules),
		slog.Int("pairs", stats.Pairs),
	)
	return table, true, nil
}
