// Package metrics exposes Prometheus instrumentation for the results pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors registered for one server instance. All
// methods are safe on a nil receiver so components can run uninstrumented.
type Metrics struct {
	eventsPublished *prometheus.CounterVec
	eventsDropped   *prometheus.CounterVec
	transitions     *prometheus.CounterVec
	refreshes       *prometheus.CounterVec
	subscribers     prometheus.Gauge
}

// New registers all collectors with reg. Use a fresh registry per server so
// tests can build several instances.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "festival_events_published_total",
				Help: "Realtime change events published, by channel and kind.",
			},
			[]string{"channel", "kind"},
		),
		eventsDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "festival_events_dropped_total",
				Help: "Events not delivered to a subscriber whose buffer was full.",
			},
			[]string{"channel"},
		),
		transitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "festival_lifecycle_transitions_total",
				Help: "Result and replacement request state transitions.",
			},
			[]string{"entity", "to"},
		),
		refreshes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "festival_refreshes_total",
				Help: "Refresh triggers, split into executed runs and coalesced triggers.",
			},
			[]string{"coordinator", "outcome"},
		),
		subscribers: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "festival_realtime_subscribers",
				Help: "Currently connected realtime subscribers.",
			},
		),
	}
}

func (m *Metrics) EventPublished(channel, kind string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(channel, kind).Inc()
}

func (m *Metrics) EventDropped(channel string) {
	if m == nil {
		return
	}
	m.eventsDropped.WithLabelValues(channel).Inc()
}

func (m *Metrics) Transition(entity, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(entity, to).Inc()
}

func (m *Metrics) RefreshRun(coordinator string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(coordinator, "run").Inc()
}

func (m *Metrics) RefreshCoalesced(coordinator string) {
	if m == nil {
		return
	}
	m.refreshes.WithLabelValues(coordinator, "coalesced").Inc()
}

func (m *Metrics) SubscriberAdded() {
	if m == nil {
		return
	}
	m.subscribers.Inc()
}

func (m *Metrics) SubscriberRemoved() {
	if m == nil {
		return
	}
	m.subscribers.Dec()
}
