package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/wwnames/fnvbrute/internal/search"
)

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	cfg := search.Config{Target: 1, MaxDepth: 5}
	metrics.ObserveMatch(search.Match{Target: 1, Name: "play_music", Run: "music"})
	metrics.ObserveSearch(cfg, search.Stats{Nodes: 1406, Matches: 1, Letters: 37}, 120*time.Millisecond, nil)
	metrics.ObserveSearch(cfg, search.Stats{Nodes: 10, Letters: 1}, time.Millisecond, errors.New("interrupted"))

	if got := testutil.ToFloat64(metrics.nodesTotal.WithLabelValues("true")); got != 1416 {
		t.Fatalf("expected 1416 nodes, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.searchesTotal.WithLabelValues("true", "interrupted")); got != 1 {
		t.Fatalf("expected 1 interrupted search, got %v", got)
	}
	if got := testutil.ToFloat64(metrics.matchesTotal.WithLabelValues("5")); got != 1 {
		t.Fatalf("expected 1 match of depth 5, got %v", got)
	}
	if _, err := reg.Gather(); err != nil {
		t.Fatalf("expected metrics gather to succeed: %v", err)
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	metrics.ObserveSearch(search.Config{MaxDepth: 3, IgnoreBanList: true}, search.Stats{}, time.Second, nil)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `fnv_searches_total{pruned="false",result="none"} 1`) {
		t.Fatalf("expected search counter in output:\n%s", rec.Body.String())
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var metrics *Metrics
	metrics.ObserveMatch(search.Match{})
	metrics.ObserveSearch(search.Config{}, search.Stats{}, 0, nil)
}
