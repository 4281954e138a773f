package dto

import (
	"time"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	AssignedToID    string            `json:"assigned_to_id"`
	Status          models.TaskStatus `json:"status"`
	ImageURL        string            `json:"image_url,omitempty"`
	Instructions    string            `json:"instructions,omitempty"`
	DueDate         string            `json:"due_date"`
	XPReward        int               `json:"xp_reward"`
	ManagerVerified bool              `json:"manager_verified"`
	AssignedBy      string            `json:"assigned_by,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// TaskListResponse represents a filtered task list
type TaskListResponse struct {
	Tasks      []TaskDTO `json:"tasks"`
	TotalCount int       `json:"total_count"`
}

// BoardColumnDTO is one status column of the board
type BoardColumnDTO struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
	Tasks  []TaskDTO         `json:"tasks"`
}

// CompleteTaskResponse reports the completed task and the XP it earned
type CompleteTaskResponse struct {
	Task      TaskDTO  `json:"task"`
	XPAwarded int      `json:"xp_awarded"`
	Assignee  *UserDTO `json:"assignee,omitempty"`
	LeveledUp bool     `json:"leveled_up"`
}

// ShiftDTO represents an uploaded schedule
type ShiftDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	FileName   string    `json:"file_name"`
	FileURL    string    `json:"file_url"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShiftListResponse represents a page of schedules
type ShiftListResponse struct {
	Shifts     []ShiftDTO               `json:"shifts"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		AssignedToID:    task.AssignedToID,
		Status:          task.Status,
		ImageURL:        task.ImageURL,
		Instructions:    task.Instructions,
		DueDate:         task.DueDate,
		XPReward:        task.XPReward,
		ManagerVerified: task.ManagerVerified,
		AssignedBy:      task.AssignedBy,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks, never returning nil
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}

// ToTaskListResponse converts a slice of tasks to TaskListResponse
func ToTaskListResponse(tasks []models.Task) TaskListResponse {
	return TaskListResponse{
		Tasks:      ToTaskDTOs(tasks),
		TotalCount: len(tasks),
	}
}

// ToBoardDTO converts board columns
func ToBoardDTO(columns []views.BoardColumn) []BoardColumnDTO {
	out := make([]BoardColumnDTO, len(columns))
	for i, column := range columns {
		out[i] = BoardColumnDTO{
			Status: column.Status,
			Count:  column.Count,
			Tasks:  ToTaskDTOs(column.Tasks),
		}
	}
	return out
}

// ToShiftDTO converts a Shift model to ShiftDTO
func ToShiftDTO(shift models.Shift) ShiftDTO {
	return ShiftDTO{
		ID:         shift.ID,
		Title:      shift.Title,
		Date:       shift.Date,
		FileName:   shift.FileName,
		FileURL:    shift.FileURL,
		UploadedBy: shift.UploadedBy,
		CreatedAt:  shift.CreatedAt,
	}
}

// ToShiftListResponse converts a page of shifts
func ToShiftListResponse(shifts []models.Shift, pagination utils.PaginationResponse) ShiftListResponse {
	items := make([]ShiftDTO, len(shifts))
	for i, shift := range shifts {
		items[i] = ToShiftDTO(shift)
	}
	return ShiftListResponse{
		Shifts:     items,
		Pagination: pagination,
	}
}
