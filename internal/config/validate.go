package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sort"
	"strconv"
	"strings"

	"github.com/wwnames/fnvbrute/internal/alphabet"
	"github.com/wwnames/fnvbrute/internal/search"
)

type ValidationError struct {
	Problems []string
}

func (v *ValidationError) Add(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%d validation error(s)", len(v.Problems))
}

func (c *Config) Validate() error {
	v := &ValidationError{}

	if len(c.Targets) == 0 {
		v.Add("target ids not specified")
	}
	if !c.ReverseNames {
		for i, raw := range c.Targets {
			if _, err := ParseTarget(raw); err != nil {
				v.Add("targets[%d] %q invalid: %v", i, raw, err)
			}
		}
	}

	s := c.Search
	if s.MaxDepth < 1 || s.MaxDepth >= search.MaxDepth {
		v.Add("search.maxDepth must be between 1 and %d", search.MaxDepth-1)
	}

	startOK := validateLetter(v, "search.startLetter", s.StartLetter)
	endOK := validateLetter(v, "search.endLetter", s.EndLetter)
	if startOK && endOK {
		lo, hi, _ := alphabet.Bounds(letter(s.StartLetter), letter(s.EndLetter))
		if lo > hi {
			v.Add("search.startLetter %q comes after search.endLetter %q", s.StartLetter, s.EndLetter)
		}
	}

	if c.Workers < 1 {
		v.Add("workers must be >= 1")
	}

	if c.Logging.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
			v.Add("logging.level must be debug|info|warn|error")
		}
	}
	switch c.Logging.Format {
	case "", FormatText, FormatJSON:
	default:
		v.Add("logging.format must be text|json")
	}

	if c.Metrics.Enabled {
		if err := validateListen(c.Metrics.Listen); err != nil {
			v.Add("metrics.listen invalid: %v", err)
		}
	}

	if len(v.Problems) > 0 {
		sort.Strings(v.Problems)
		return v
	}
	return nil
}

// ParseTarget parses a decimal FNV id. Zero is rejected: it is never a
// meaningful id and usually means a typo.
func ParseTarget(raw string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, errors.New("must be a decimal 32-bit id")
	}
	if n == 0 {
		return 0, errors.New("must not be zero")
	}
	return uint32(n), nil
}

func validateLetter(v *ValidationError, field, value string) bool {
	if value == "" {
		return true
	}
	if len(value) != 1 {
		v.Add("%s must be 1 character", field)
		return false
	}
	if !alphabet.Contains(value[0]) {
		v.Add("%s %q is not one of %s", field, value, alphabet.Symbols)
		return false
	}
	return true
}

func validateListen(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.New("address is required")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}
