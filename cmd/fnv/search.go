package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wwnames/fnvbrute/internal/banlist"
	"github.com/wwnames/fnvbrute/internal/config"
	"github.com/wwnames/fnvbrute/internal/fnvhash"
	"github.com/wwnames/fnvbrute/internal/logging"
	"github.com/wwnames/fnvbrute/internal/observability"
	"github.com/wwnames/fnvbrute/internal/search"
	"github.com/wwnames/fnvbrute/internal/words"
)

func runSearch(ctx context.Context, stdout, stderr io.Writer, cfg *config.Config) error {
	if cfg.ReverseNames {
		printIDs(stdout, cfg.Targets)
		return nil
	}

	logger, err := logging.NewLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	// Validate has already parsed every target.
	targets := make([]uint32, 0, len(cfg.Targets))
	for _, raw := range cfg.Targets {
		id, err := config.ParseTarget(raw)
		if err != nil {
			return fmt.Errorf("target %q: %w", raw, err)
		}
		targets = append(targets, id)
	}

	var table *banlist.Table
	if !cfg.Search.IgnoreBanList {
		var found bool
		table, found, err = banlist.LoadOrPermissive(cfg.BanList, logger)
		if err != nil {
			return fmt.Errorf("ban list: %w", err)
		}
		if found {
			fmt.Fprintln(stdout, "loaded ignore list")
		} else {
			fmt.Fprintf(stdout, "ignore list not found (%s)\n", cfg.BanList)
		}
	}

	p := &printer{
		out:      stdout,
		logger:   logger,
		runID:    uuid.NewString(),
		progress: cfg.Search.Progress,
	}

	if cfg.Words != "" {
		dict, err := words.Load(cfg.Words)
		if err != nil {
			return fmt.Errorf("word list: %w", err)
		}
		logger.Debug("word list loaded", slog.String("path", cfg.Words), slog.Int("words", dict.Len()))
		p.dict = dict
	}

	if cfg.Logging.MatchLog != "" {
		matchLog, closer, err := logging.OpenMatchLog(cfg.Logging.MatchLog)
		if err != nil {
			return err
		}
		defer func() { _ = closer() }()
		p.matchLog = matchLog
	}

	metricsSrv, metrics := startMetricsServer(cfg, logger)
	defer func() {
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(context.Background())
		}
	}()
	p.metrics = metrics

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "starting, max %d letters\n\n", cfg.Search.MaxDepth)

	for _, target := range targets {
		scfg := cfg.SearchConfig(target)
		engine, err := search.New(scfg, table)
		if err != nil {
			return err
		}
		p.cfg = engine.Config()

		fmt.Fprintf(stdout, "finding %d\n", target)
		printTime(stdout, "start")

		began := time.Now()
		stats, err := engine.RunParallel(signalCtx, cfg.Workers, p)
		metrics.ObserveSearch(scfg, stats, time.Since(began), err)
		logger.Debug("search finished",
			slog.Uint64("target", uint64(target)),
			slog.Int("matches", stats.Matches),
			slog.Uint64("nodes", stats.Nodes),
			slog.Duration("elapsed", time.Since(began)),
		)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Warn("search interrupted", slog.Uint64("target", uint64(target)), slog.Int("letters", stats.Letters))
			}
			return err
		}

		printTime(stdout, "end")
		fmt.Fprintln(stdout)
	}
	return nil
}

func printIDs(w io.Writer, names []string) {
	for _, name := range names {
		id := fnvhash.Sum(name)
		fmt.Fprintf(w, "%s: %d / 0x%x\n", name, id, id)
	}
}

func printTime(w io.Writer, label string) {
	fmt.Fprintf(w, "%s: %s\n", label, time.Now().Format(time.ANSIC))
}

// printer reports matches as the engine finds them. The engine only calls it
// from one goroutine, also in parallel mode.
type printer struct {
	out      io.Writer
	logger   *slog.Logger
	runID    string
	progress bool
	cfg      search.Config

	dict     *words.Dictionary
	matchLog *logging.MatchLogger
	metrics  *observability.Metrics
}

func (p *printer) Match(m search.Match) {
	fmt.Fprintf(p.out, "* match: %s\n", m.Name)
	p.metrics.ObserveMatch(m)

	if p.matchLog == nil {
		return
	}
	rec := logging.MatchRecord{
		Timestamp: time.Now().UTC(),
		RunID:     p.runID,
		Target:    m.Target,
		Name:      m.Name,
		Prefix:    p.cfg.Prefix,
		Suffix:    p.cfg.Suffix,
		MaxDepth:  p.cfg.MaxDepth,
		Pruned:    !p.cfg.IgnoreBanList,
	}
	if p.dict != nil {
		hits := p.dict.Find(m.Name)
		rec.Words = hits.Words
		rec.Covered = hits.Covered
	}
	if err := p.matchLog.Write(rec); err != nil {
		p.logger.Error("match log write failed", slog.String("error", err.Error()))
	}
}

func (p *printer) Letter(c byte) {
	if p.progress {
		fmt.Fprintf(p.out, "- letter: %c\n", c)
	}
}

func startMetricsServer(cfg *config.Config, logger *slog.Logger) (*http.Server, *observability.Metrics) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))

	srv := &http.Server{Addr: cfg.Metrics.Listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", slog.String("listen", cfg.Metrics.Listen), slog.String("error", err.Error()))
		}
	}()
	logger.Info("serving metrics", slog.String("listen", cfg.Metrics.Listen))
	return srv, metrics
}
