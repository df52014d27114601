package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/models"
)

type issuesHandler struct {
	issuesUC issues.UseCase
}

func NewIssuesHandler(issuesUC issues.UseCase) issues.Handler {
	return &issuesHandler{
		issuesUC: issuesUC,
	}
}

func (h *issuesHandler) GetIssues() echo.HandlerFunc {
	return func(c echo.Context) error {
		projectID, err := uuid.Parse(c.Param("project_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid project id"})
		}
		result, err := h.issuesUC.GetIssues(c.Request().Context(), projectID, c.QueryParam("lang"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}
}

func (h *issuesHandler) ResolveIssue() echo.HandlerFunc {
	return func(c echo.Context) error {
		issueID, err := uuid.Parse(c.Param("issue_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid issue id"})
		}
		input := &models.IssueResolveInput{}
		if err = c.Bind(input); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
		}
		if err = h.issuesUC.ResolveIssue(c.Request().Context(), issueID, input.Resolved); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "Issue updated successfully"})
	}
}

func (h *issuesHandler) SuggestCorrection() echo.HandlerFunc {
	return func(c echo.Context) error {
		segmentID := c.Param("segment_id")
		if segmentID == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Segment id is required"})
		}
		lang := c.QueryParam("lang")
		if lang == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Query param lang is required"})
		}
		result, err := h.issuesUC.SuggestCorrection(c.Request().Context(), segmentID, lang)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	}
}
