// Package metrics exposes Prometheus instrumentation for world generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// GenerationMetrics counts generated worlds and describes their shape. A nil
// *GenerationMetrics is valid and records nothing.
type GenerationMetrics struct {
	worlds   prometheus.Counter
	failures prometheus.Counter
	rooms    prometheus.Histogram
	hallways prometheus.Histogram
	duration prometheus.Histogram
}

// NewGenerationMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the global handler.
func NewGenerationMetrics(reg prometheus.Registerer) (*GenerationMetrics, error) {
	m := &GenerationMetrics{
		worlds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "worlds_generated_total",
			Help:      "Number of worlds generated successfully.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "dungeon",
			Name:      "generation_failures_total",
			Help:      "Number of generation requests rejected before carving.",
		}),
		rooms: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dungeon",
			Name:      "rooms_per_world",
			Help:      "Rooms carved per generated world.",
			Buckets:   prometheus.LinearBuckets(1, 2, 12),
		}),
		hallways: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dungeon",
			Name:      "hallways_per_world",
			Help:      "Hallways carved per generated world.",
			Buckets:   prometheus.LinearBuckets(0, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dungeon",
			Name:      "generation_duration_seconds",
			Help:      "Wall time spent generating one world.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.worlds, m.failures, m.rooms, m.hallways, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveWorld records one successfully generated world
func (m *GenerationMetrics) ObserveWorld(rooms, hallways int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.worlds.Inc()
	m.rooms.Observe(float64(rooms))
	m.hallways.Observe(float64(hallways))
	m.duration.Observe(elapsed.Seconds())
}

// ObserveFailure records a rejected generation request
func (m *GenerationMetrics) ObserveFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}
