package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wwnames/fnvbrute/internal/search"
)

type Metrics struct {
	searchesTotal  *prometheus.CounterVec
	matchesTotal   *prometheus.CounterVec
	nodesTotal     *prometheus.CounterVec
	lettersTotal   prometheus.Counter
	searchDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "fnv_searches_total", Help: "Total finished searches"},
			[]string{"pruned", "result"},
		),
		matchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "fnv_matches_total", Help: "Total matches reported"},
			[]string{"depth"},
		),
		nodesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "fnv_nodes_total", Help: "Total candidates hashed"},
			[]string{"pruned"},
		),
		lettersTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "fnv_letters_total", Help: "Total first symbols fully explored"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fnv_search_duration_seconds",
				Help:    "Search duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
			},
			[]string{"max_depth"},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.searchesTotal,
		m.matchesTotal,
		m.nodesTotal,
		m.lettersTotal,
		m.searchDuration,
	)

	return m
}

func (m *Metrics) Handler(reg *prometheus.Registry) http.Handler {
	if reg == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveMatch counts one match by the length of its generated run.
func (m *Metrics) ObserveMatch(match search.Match) {
	if m == nil {
		return
	}
	m.matchesTotal.WithLabelValues(strconv.Itoa(len(match.Run))).Inc()
}

// ObserveSearch records a finished (or interrupted, when err is set) search.
func (m *Metrics) ObserveSearch(cfg search.Config, stats search.Stats, elapsed time.Duration, err error) {
	if m == nil {
		return
	}

	pruned := strconv.FormatBool(!cfg.IgnoreBanList)
	result := "found"
	switch {
	case err != nil:
		result = "interrupted"
	case stats.Matches == 0:
		result = "none"
	}

	m.searchesTotal.WithLabelValues(pruned, result).Inc()
	m.nodesTotal.WithLabelValues(pruned).Add(float64(stats.Nodes))
	m.lettersTotal.Add(float64(stats.Letters))
	m.searchDuration.WithLabelValues(strconv.Itoa(cfg.MaxDepth)).Observe(elapsed.Seconds())
}
