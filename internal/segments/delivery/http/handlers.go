package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/models"
	"github.com/dubwise/dubwise-backend/internal/segments"
)

type segmentsHandler struct {
	segmentsUC segments.UseCase
}

func NewSegmentsHandler(segmentsUC segments.UseCase) segments.Handler {
	return &segmentsHandler{
		segmentsUC: segmentsUC,
	}
}

func (h *segmentsHandler) GetSegments() echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		}
		lang := c.QueryParam("lang")
		if lang == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param lang is required"})
		}
		result, err := h.segmentsUC.GetSegments(c.Request().Context(), projectID, lang)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *segmentsHandler) BulkUpdateSegments() echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		}
		lang := c.QueryParam("lang")
		if lang == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param lang is required"})
		}
		input := &models.SegmentsBulkUpdateInput{}
		if err = c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		result, err := h.segmentsUC.BulkUpdateSegments(c.Request().Context(), projectID, lang, input)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}
}
