package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/services"
)

// StandardTaskHandler serves the standard task vocabulary
type StandardTaskHandler struct {
	standardService *services.StandardTaskService
}

func NewStandardTaskHandler(standardService *services.StandardTaskService) *StandardTaskHandler {
	return &StandardTaskHandler{
		standardService: standardService,
	}
}

// ListStandardTasks returns the titles in insertion order
func (h *StandardTaskHandler) ListStandardTasks(c *gin.Context) {
	titles, err := h.standardService.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"titles": titles})
}

// AddStandardTask adds a title; 201 when added, 200 when it was already present
func (h *StandardTaskHandler) AddStandardTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title" binding:"required,max=255"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	titles, added, err := h.standardService.Add(userID, req.Title)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"titles": titles, "added": added})
}
