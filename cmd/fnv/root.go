package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wwnames/fnvbrute/internal/alphabet"
	"github.com/wwnames/fnvbrute/internal/banlist"
	"github.com/wwnames/fnvbrute/internal/config"
	"github.com/wwnames/fnvbrute/internal/search"
)

type searchOptions struct {
	configPath string

	prefix        string
	suffix        string
	startLetter   string
	endLetter     string
	maxDepth      int
	ignoreBanList bool
	restrict      bool
	progress      bool
	names         bool

	banList       string
	words         string
	workers       int
	matchLog      string
	metricsListen string
	logLevel      string
}

func newRootCmd() *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "fnv [flags] <id>...",
		Short: "Find original names for FNV-1a ids",
		Long: fmt.Sprintf(`Finds original names for audio engine event/variable ids (32-bit FNV-1a).

Every name up to --max characters over the dictionary
    %s
is tried, optionally between a fixed prefix and suffix. Beyond 8 characters the
search is slow and gives many false positives; a ban list (%s) of unlikely
character pairs speeds it up but may skip valid names.`, alphabet.Symbols, banlist.DefaultPath),
		Example: `  fnv -p play_ 3541519616
  fnv -s _bgm -m 6 -l m -L p 1185493478
  fnv -n Play_Music`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.build(cmd, args)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func (o *searchOptions) bind(f *pflag.FlagSet) {
	f.StringVarP(&o.configPath, "config", "c", "", "Path to YAML config file")
	f.StringVarP(&o.prefix, "prefix", "p", "", "Start text of the original name (e.g. play_)")
	f.StringVarP(&o.suffix, "suffix", "s", "", "End text of the original name (e.g. _bgm)")
	f.StringVarP(&o.startLetter, "start-letter", "l", "", "First letter to try (use to resume searches)")
	f.StringVarP(&o.endLetter, "end-letter", "L", "", "Last letter to try")
	f.IntVarP(&o.maxDepth, "max", "m", search.DefaultDepth, "Max generated characters (1-15)")
	f.BoolVarP(&o.ignoreBanList, "ignore-banlist", "i", false, "Ignore the ban list (slower, may find names the list skips)")
	f.BoolVarP(&o.restrict, "restrict", "r", false, "Apply the letter range at every position, not just the first")
	f.BoolVarP(&o.progress, "text", "t", false, "Print each first letter as it is searched")
	f.BoolVarP(&o.names, "names", "n", false, "Treat arguments as names and print their ids")
	f.StringVarP(&o.banList, "banlist", "b", banlist.DefaultPath, "Ban list path")
	f.StringVarP(&o.words, "words", "w", "", "Word list used to annotate logged matches")
	f.IntVarP(&o.workers, "workers", "j", 1, "Search first letters in parallel")
	f.StringVar(&o.matchLog, "match-log", "", "Append matches as JSONL to this file")
	f.StringVar(&o.metricsListen, "metrics-listen", "", "Serve prometheus metrics on this address")
	f.StringVar(&o.logLevel, "log-level", "", "Diagnostics level: debug|info|warn|error")
}

// build loads the config file, if any, and applies the flags that were set on
// the command line on top of it.
func (o *searchOptions) build(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		cfg.BanList = cfg.ResolvePath(cfg.BanList)
		cfg.Words = cfg.ResolvePath(cfg.Words)
		cfg.Logging.MatchLog = cfg.ResolvePath(cfg.Logging.MatchLog)
	}

	changed := cmd.Flags().Changed
	if changed("prefix") {
		cfg.Search.Prefix = o.prefix
	}
	if changed("suffix") {
		cfg.Search.Suffix = o.suffix
	}
	if changed("start-letter") {
		cfg.Search.StartLetter = o.startLetter
	}
	if changed("end-letter") {
		cfg.Search.EndLetter = o.endLetter
	}
	if changed("max") {
		cfg.Search.MaxDepth = o.maxDepth
	}
	if changed("ignore-banlist") {
		cfg.Search.IgnoreBanList = o.ignoreBanList
	}
	if changed("restrict") {
		cfg.Search.RestrictLetters = o.restrict
	}
	if changed("text") {
		cfg.Search.Progress = o.progress
	}
	if changed("names") {
		cfg.ReverseNames = o.names
	}
	if changed("workers") {
		cfg.Workers = o.workers
	}
	if changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if changed("metrics-listen") {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Listen = o.metricsListen
	}

	var err error
	if changed("banlist") {
		if cfg.BanList, err = filepath.Abs(o.banList); err != nil {
			return nil, err
		}
	}
	if changed("words") {
		if cfg.Words, err = filepath.Abs(o.words); err != nil {
			return nil, err
		}
	}
	if changed("match-log") {
		if cfg.Logging.MatchLog, err = filepath.Abs(o.matchLog); err != nil {
			return nil, err
		}
	}

	if len(args) > 0 {
		cfg.Targets = args
	}
	cfg.Normalize()
	return cfg, nil
}
