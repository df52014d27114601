package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/config"
	"github.com/dubwise/dubwise-backend/internal/events"
	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/progress"
	"github.com/dubwise/dubwise-backend/pkg/logger"
)

const defaultHeartbeatInterval = 15 * time.Second

type progressHandler struct {
	cfg        *config.Config
	progressUC progress.UseCase
	hub        *events.Hub
	logger     logger.Logger
}

func NewProgressHandler(cfg *config.Config, progressUC progress.UseCase, hub *events.Hub, log logger.Logger) progress.Handler {
	return &progressHandler{
		cfg:        cfg,
		progressUC: progressUC,
		hub:        hub,
		logger:     log,
	}
}

func (h *progressHandler) GetSummary() echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		}
		summary, err := h.progressUC.GetSummary(c.Request().Context(), projectID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, summary)
	}
}

// StreamEvents serves live progress over SSE. An empty project_id query param
// subscribes to every project; heartbeats keep idle connections open through
// proxies.
func (h *progressHandler) StreamEvents() echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID := c.QueryParam("project_id")
		if projectID != "" {
			if _, err := uuid.Parse(projectID); err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
			}
		}

		res := c.Response()
		res.Header().Set(echo.HeaderContentType, "text/event-stream")
		res.Header().Set("Cache-Control", "no-cache")
		res.Header().Set("Connection", "keep-alive")
		res.WriteHeader(http.StatusOK)
		res.Flush()

		ch := h.hub.Subscribe(projectID)
		defer h.hub.Unsubscribe(projectID, ch)

		if err := writeEvent(c, models.ProgressEvent{
			EventType: models.EventConnected,
			ProjectID: projectID,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			return nil
		}

		heartbeat := time.Duration(h.cfg.Events.HeartbeatInterval) * time.Second
		if heartbeat <= 0 {
			heartbeat = defaultHeartbeatInterval
		}
		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		ctx := c.Request().Context()
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-ch:
				if !ok {
					return nil
				}
				if err := writeEvent(c, event); err != nil {
					return nil
				}
			case <-ticker.C:
				if err := writeEvent(c, models.ProgressEvent{
					EventType: models.EventHeartbeat,
					ProjectID: projectID,
					Timestamp: time.Now().UTC(),
				}); err != nil {
					return nil
				}
			}
		}
	}
}

func writeEvent(c echo.Context, event models.ProgressEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event.EventType, data); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}

func (h *progressHandler) GetStats() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, h.hub.Stats())
	}
}
