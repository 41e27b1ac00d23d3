package config

import (
	"github.com/wwnames/fnvbrute/internal/banlist"
	"github.com/wwnames/fnvbrute/internal/search"
)

// Config is the YAML file layout; command-line flags are applied on top.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	BanList string        `yaml:"banList"`
	Words   string        `yaml:"words"`
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`

	// Targets are decimal ids, or names when ReverseNames is set.
	Targets      []string `yaml:"targets"`
	ReverseNames bool     `yaml:"reverseNames"`

	baseDir string `yaml:"-"`
}

type SearchConfig struct {
	Prefix          string `yaml:"prefix"`
	Suffix          string `yaml:"suffix"`
	StartLetter     string `yaml:"startLetter"`
	EndLetter       string `yaml:"endLetter"`
	MaxDepth        int    `yaml:"maxDepth"`
	IgnoreBanList   bool   `yaml:"ignoreBanList"`
	RestrictLetters bool   `yaml:"restrictLetters"`
	Progress        bool   `yaml:"progress"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	MatchLog string `yaml:"matchLog"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Listen  string `yaml:"listen"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{
		Search:  SearchConfig{MaxDepth: search.DefaultDepth},
		BanList: banlist.DefaultPath,
		Workers: 1,
		Logging: LoggingConfig{Level: "info", Format: FormatText},
		Metrics: MetricsConfig{Listen: "127.0.0.1:9464"},
	}
}

func (c *Config) ResolvePath(path string) string {
	return c.resolvePath(path)
}

// SearchConfig builds the engine parameters for one target. It assumes
// Validate has passed.
func (c *Config) SearchConfig(target uint32) search.Config {
	return search.Config{
		Target:          target,
		Prefix:          c.Search.Prefix,
		Suffix:          c.Search.Suffix,
		StartLetter:     letter(c.Search.StartLetter),
		EndLetter:       letter(c.Search.EndLetter),
		RestrictLetters: c.Search.RestrictLetters,
		MaxDepth:        c.Search.MaxDepth,
		IgnoreBanList:   c.Search.IgnoreBanList,
	}
}

func letter(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
