package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/services"
)

// InsightHandler serves the manager dashboard and generated coaching material
type InsightHandler struct {
	insightService *services.InsightService
}

func NewInsightHandler(insightService *services.InsightService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
	}
}

// GetDashboard returns the summary figures
func (h *InsightHandler) GetDashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.insightService.Dashboard(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetDashboardInsights returns generated observations on team performance
func (h *InsightHandler) GetDashboardInsights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	// generation runs to completion even if the client goes away
	text, err := h.insightService.DashboardInsights(context.WithoutCancel(c.Request.Context()), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"insights":  text,
		"generated": h.insightService.GeneratorEnabled(),
	})
}

// GetSuggestions proposes standard tasks for an employee
func (h *InsightHandler) GetSuggestions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	titles, err := h.insightService.SuggestTasks(context.WithoutCancel(c.Request.Context()), userID, c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": titles})
}

// GenerateFeedback drafts a review script; notes in the body override the stored ones
func (h *InsightHandler) GenerateFeedback(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Notes []string `json:"notes"`
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BindingError(c, err)
			return
		}
	}

	script, err := h.insightService.FeedbackScript(context.WithoutCancel(c.Request.Context()), userID, c.Param("userId"), req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"script": script})
}
