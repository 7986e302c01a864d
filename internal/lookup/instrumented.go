package lookup

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeFound    = "found"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type instrumented struct {
	backend  string
	next     Lookup
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// Instrumented wraps next with lookup counters and a latency histogram
// registered on reg.
func Instrumented(backend string, next Lookup, reg prometheus.Registerer) Lookup {
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "usercheck_lookups_total",
		Help: "User lookups by backend and outcome.",
	}, []string{"backend", "outcome"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "usercheck_lookup_duration_seconds",
		Help:    "User lookup latency by backend.",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})
	reg.MustRegister(total, duration)
	return &instrumented{backend: backend, next: next, total: total, duration: duration}
}

func (i *instrumented) Lookup(ctx context.Context, username string) (Result, error) {
	start := time.Now()
	res, err := i.next.Lookup(ctx, username)
	i.duration.WithLabelValues(i.backend).Observe(time.Since(start).Seconds())

	outcome := outcomeNotFound
	switch {
	case err != nil:
		outcome = outcomeError
	case res.Has():
		outcome = outcomeFound
	}
	i.total.WithLabelValues(i.backend, outcome).Inc()
	return res, err
}
