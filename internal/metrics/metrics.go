package metrics

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Fetch outcomes used as the "outcome" label
const (
	OutcomeLoaded = "loaded"
	OutcomeFailed = "failed"
)

// Collector owns the posts view metrics. Each collector has its own registry
// so tests and the program do not share global state.
type Collector struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	filterRuns    prometheus.Counter
}

// New creates a collector with all metrics registered
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "postview_fetches_total",
				Help: "Total number of posts fetches by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "postview_fetch_duration_seconds",
				Help:    "Posts fetch duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		filterRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "postview_filter_evaluations_total",
				Help: "Total number of visible list recomputations",
			},
		),
	}

	c.registry.MustRegister(c.fetches, c.fetchDuration, c.filterRuns)
	return c
}

// ObserveFetch records the outcome and duration of one fetch
func (c *Collector) ObserveFetch(outcome string, took time.Duration) {
	c.fetches.WithLabelValues(outcome).Inc()
	c.fetchDuration.Observe(took.Seconds())
}

// ObserveFilter records one recomputation of the visible posts
func (c *Collector) ObserveFilter() {
	c.filterRuns.Inc()
}

// Fetches returns the counter for an outcome, for inspection in tests
func (c *Collector) Fetches(outcome string) prometheus.Counter {
	return c.fetches.WithLabelValues(outcome)
}

// FilterRuns returns the filter evaluations counter
func (c *Collector) FilterRuns() prometheus.Counter {
	return c.filterRuns
}

// Router returns the routes served by the metrics listener
func (c *Collector) Router() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet).Name("metrics")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet).Name("healthz")
	return r
}

// Serve runs the metrics listener on addr until ctx is cancelled
func (c *Collector) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Router(),
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Metrics listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
