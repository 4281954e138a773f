package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmaster-api/internal/dto"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/services"
	"github.com/yukikurage/taskmaster-api/internal/taskflow"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks visible to the current user.
// Managers may filter by assignee, status and date; employees get their focus list.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filter, ok := bindManagerFilter(c)
	if !ok {
		return
	}

	tasks, err := h.taskService.List(userID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks))
}

// GetBoard returns the visible tasks bucketed by status
func (h *TaskHandler) GetBoard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filter, ok := bindManagerFilter(c)
	if !ok {
		return
	}

	columns, err := h.taskService.Board(userID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"columns": dto.ToBoardDTO(columns)})
}

// CreateTask creates a new task
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title        string `json:"title" binding:"required,max=255"`
		Description  string `json:"description"`
		AssignedToID string `json:"assigned_to_id" binding:"required"`
		DueDate      string `json:"due_date"`
		ImageURL     string `json:"image_url" binding:"omitempty,url"`
		Instructions string `json:"instructions"`
		XPReward     *int   `json:"xp_reward" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	task, err := h.taskService.Create(userID, services.CreateTaskInput{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		DueDate:      req.DueDate,
		ImageURL:     req.ImageURL,
		Instructions: req.Instructions,
		XPReward:     req.XPReward,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// AssignDaily creates one task per standard title for an employee
func (h *TaskHandler) AssignDaily(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		AssignedToID string   `json:"assigned_to_id" binding:"required"`
		Titles       []string `json:"titles" binding:"required,min=1"`
		DueDate      string   `json:"due_date"`
		XPReward     *int     `json:"xp_reward" binding:"omitempty,min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	tasks, err := h.taskService.AssignDaily(userID, services.DailyAssignInput{
		AssignedToID: req.AssignedToID,
		Titles:       req.Titles,
		DueDate:      req.DueDate,
		XPReward:     req.XPReward,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskListResponse(tasks))
}

// GetTask returns a specific task by ID
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial edit. Status is rejected here; it moves through start and complete.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title        *string `json:"title" binding:"omitempty,max=255"`
		Description  *string `json:"description"`
		AssignedToID *string `json:"assigned_to_id"`
		DueDate      *string `json:"due_date"`
		XPReward     *int    `json:"xp_reward" binding:"omitempty,min=0"`
		ImageURL     *string `json:"image_url"`
		Instructions *string `json:"instructions"`
		Status       *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	if req.Status != nil {
		apierrors.BadRequestWithDetails(c, "Status cannot be edited directly", []apierrors.FieldError{
			{Field: "status", Reason: "use the start and complete actions"},
		})
		return
	}

	task, err := h.taskService.Edit(userID, c.Param("id"), taskflow.TaskEdit{
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		DueDate:      req.DueDate,
		XPReward:     req.XPReward,
		ImageURL:     req.ImageURL,
		Instructions: req.Instructions,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// StartTask moves a TODO task into progress
func (h *TaskHandler) StartTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	task, err := h.taskService.Start(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CompleteTask completes a task and reports the XP earned
func (h *TaskHandler) CompleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.taskService.Complete(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := dto.CompleteTaskResponse{
		Task:      dto.ToTaskDTO(result.Task),
		XPAwarded: result.XPAwarded,
		LeveledUp: result.LeveledUp,
	}
	if result.Assignee != nil {
		assignee := dto.ToUserDTO(*result.Assignee)
		resp.Assignee = &assignee
	}

	c.JSON(http.StatusOK, resp)
}

// SetVerification records or revokes manager verification
func (h *TaskHandler) SetVerification(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	task, err := h.taskService.SetVerification(userID, c.Param("id"), *req.Verified)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask deletes a task
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(userID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func bindManagerFilter(c *gin.Context) (views.ManagerFilter, bool) {
	filter := views.ManagerFilter{
		AssigneeID: c.Query("assignee"),
		Status:     c.Query("status"),
		DueDate:    c.Query("date"),
	}

	if filter.Status != "" && filter.Status != views.FilterAll && !models.TaskStatus(filter.Status).Valid() {
		apierrors.BadRequest(c, "Invalid status filter")
		return filter, false
	}
	if filter.DueDate != "" && !utils.IsDate(filter.DueDate) {
		apierrors.BadRequest(c, "Invalid date filter, expected YYYY-MM-DD")
		return filter, false
	}

	return filter, true
}
