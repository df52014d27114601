package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CallbacksTotal counts processed worker callbacks by reported stage.
	CallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "worker_callbacks_total",
		Help: "Worker status callbacks processed, labeled by stage",
	}, []string{"stage"})

	// StaleCallbacksTotal counts terminal callbacks discarded because the
	// target had already completed.
	StaleCallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_callbacks_stale_total",
		Help: "Terminal callbacks discarded by the completed-target guard",
	})

	// EventsPublishedTotal counts events fanned out to subscribers by type.
	EventsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "progress_events_published_total",
		Help: "Progress events published to live subscribers, labeled by event type",
	}, []string{"event_type"})

	// DroppedSubscribersTotal counts subscribers disconnected because their
	// queue filled up.
	DroppedSubscribersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "progress_subscribers_dropped_total",
		Help: "Subscribers dropped after their event queue filled",
	})

	// LiveSubscribers tracks currently connected event stream subscribers.
	LiveSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "progress_subscribers_live",
		Help: "Currently connected progress event subscribers",
	})
)
