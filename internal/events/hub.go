package events

import (
	"sync"
	"time"

	"github.com/dubwise/dubwise-backend/internal/metrics"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

const defaultSubscriberBuffer = 100

// Hub is the in-process fan-out registry: bounded subscriber channels keyed
// by project id, plus an unscoped global set. Constructor-injected so
// publishers and subscribers share one explicitly owned instance.
type Hub struct {
	logger logger.Logger
	buffer int

	mu       sync.Mutex
	global   map[chan models.ProgressEvent]struct{}
	projects map[string]map[chan models.ProgressEvent]struct{}

	published uint64
}

func NewHub(buffer int, logger logger.Logger) *Hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{
		logger:   logger,
		buffer:   buffer,
		global:   make(map[chan models.ProgressEvent]struct{}),
		projects: make(map[string]map[chan models.ProgressEvent]struct{}),
	}
}

// Subscribe registers a new bounded queue. An empty project id subscribes to
// every project.
func (h *Hub) Subscribe(projectID string) chan models.ProgressEvent {
	ch := make(chan models.ProgressEvent, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if projectID == "" {
		h.global[ch] = struct{}{}
	} else {
		subs, ok := h.projects[projectID]
		if !ok {
			subs = make(map[chan models.ProgressEvent]struct{})
			h.projects[projectID] = subs
		}
		subs[ch] = struct{}{}
	}
	metrics.LiveSubscribers.Inc()
	return ch
}

// Unsubscribe removes a queue and deletes the project entry once its
// subscriber set is empty, so the registry cannot grow without bound under
// connection churn.
func (h *Hub) Unsubscribe(projectID string, ch chan models.ProgressEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(projectID, ch)
}

func (h *Hub) remove(projectID string, ch chan models.ProgressEvent) {
	if projectID == "" {
		if _, ok := h.global[ch]; !ok {
			return
		}
		delete(h.global, ch)
	} else {
		subs, ok := h.projects[projectID]
		if !ok {
			return
		}
		if _, ok = subs[ch]; !ok {
			return
		}
		delete(subs, ch)
		if len(subs) == 0 {
			delete(h.projects, projectID)
		}
	}
	close(ch)
	metrics.LiveSubscribers.Dec()
}

// Publish delivers the event to every queue in its scope without blocking.
// A full queue marks a dead subscriber: it is dropped from the registry and
// its channel closed, so backpressure resolves by disconnection.
func (h *Hub) Publish(event models.ProgressEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.published++
	metrics.EventsPublishedTotal.WithLabelValues(string(event.EventType)).Inc()

	for ch := range h.projects[event.ProjectID] {
		select {
		case ch <- event:
		default:
			h.logger.Warnf("subscriber queue full for project %s, dropping subscriber", event.ProjectID)
			metrics.DroppedSubscribersTotal.Inc()
			h.remove(event.ProjectID, ch)
		}
	}

	for ch := range h.global {
		select {
		case ch <- event:
		default:
			h.logger.Warn("global subscriber queue full, dropping subscriber")
			metrics.DroppedSubscribersTotal.Inc()
			h.remove("", ch)
		}
	}
}

// Stats is a point-in-time snapshot for the stats endpoint.
type Stats struct {
	GlobalListeners   int      `json:"global_listeners"`
	ProjectListeners  int      `json:"project_listeners"`
	MonitoredProjects []string `json:"monitored_projects"`
	TotalEventsSent   uint64   `json:"total_events_sent"`
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()

	stats := Stats{
		GlobalListeners: len(h.global),
		TotalEventsSent: h.published,
	}
	for projectID, subs := range h.projects {
		stats.ProjectListeners += len(subs)
		stats.MonitoredProjects = append(stats.MonitoredProjects, projectID)
	}
	return stats
}

// Close shuts every subscriber channel down; used on server teardown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.global {
		delete(h.global, ch)
		close(ch)
	}
	for projectID, subs := range h.projects {
		for ch := range subs {
			close(ch)
		}
		delete(h.projects, projectID)
	}
}
