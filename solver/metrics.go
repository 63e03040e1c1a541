package solver

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wordgrid/board"
)

// Result labels for wordgrid_solve_total.
const (
	resultOK       = "ok"
	resultCanceled = "canceled"
	resultInvalid  = "invalid"
)

var (
	// solvesTotal counts solve calls by mode and outcome.
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgrid_solve_total",
		Help: "Total board solves by mode and result",
	}, []string{"mode", "result"})

	// solveDuration tracks search latency.
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordgrid_solve_duration_seconds",
		Help:    "Board solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 16), // 0.1ms to ~3s
	}, []string{"mode"})

	// solveWords tracks how many distinct words a completed solve found.
	solveWords = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordgrid_solve_words",
		Help:    "Distinct words found per completed solve",
		Buckets: []float64{0, 1, 10, 50, 100, 250, 500, 1000, 5000},
	})

	// solveNodes counts search steps taken.
	solveNodes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordgrid_solve_nodes_total",
		Help: "Total search steps taken by mode",
	}, []string{"mode"})
)

// observe records one finished search.
func observe(mode board.Mode, err error, words, nodes int, dur time.Duration) {
	m := mode.String()
	solveDuration.WithLabelValues(m).Observe(dur.Seconds())
	solveNodes.WithLabelValues(m).Add(float64(nodes))

	switch {
	case err == nil:
		solvesTotal.WithLabelValues(m, resultOK).Inc()
		solveWords.Observe(float64(words))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		solvesTotal.WithLabelValues(m, resultCanceled).Inc()
	default:
		solvesTotal.WithLabelValues(m, resultInvalid).Inc()
	}
}
