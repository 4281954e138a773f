// Package taskflow owns the task lifecycle: TODO -> IN_PROGRESS -> COMPLETED,
// plus the manager verification flag on completed tasks.
//
// Every function takes a task by value and returns the updated copy, so callers
// decide when (and whether) to persist the result. Status is only ever changed
// here; generic edits go through ApplyEdit, which has no status field.
package taskflow

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/models"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotCompleted      = errors.New("task must be completed before it can be verified")
	ErrTitleRequired     = errors.New("title is required")
	ErrAssigneeRequired  = errors.New("assignee is required")
	ErrNegativeReward    = errors.New("xp reward cannot be negative")
	ErrInvalidDueDate    = errors.New("due date must be formatted as YYYY-MM-DD")
)

// NewTask holds the fields a manager supplies when creating a task.
type NewTask struct {
	Title        string
	Description  string
	AssignedToID string
	DueDate      string
	ImageURL     string
	Instructions string
	XPReward     *int
	AssignedBy   string
}

// New builds a TODO task, filling the defaults used by the mission board.
func New(input NewTask, today string) (models.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}
	if strings.TrimSpace(input.AssignedToID) == "" {
		return models.Task{}, ErrAssigneeRequired
	}

	dueDate := strings.TrimSpace(input.DueDate)
	if dueDate == "" {
		dueDate = today
	}
	if err := validateDate(dueDate); err != nil {
		return models.Task{}, err
	}

	reward := constants.DefaultXPReward
	if input.XPReward != nil {
		reward = *input.XPReward
	}
	if reward < 0 {
		return models.Task{}, ErrNegativeReward
	}

	instructions := input.Instructions
	if strings.TrimSpace(instructions) == "" {
		instructions = constants.DefaultInstructions
	}

	return models.Task{
		Title:        title,
		Description:  input.Description,
		AssignedToID: input.AssignedToID,
		Status:       models.TaskStatusTodo,
		ImageURL:     input.ImageURL,
		Instructions: instructions,
		DueDate:      dueDate,
		XPReward:     reward,
		AssignedBy:   input.AssignedBy,
	}, nil
}

// Start moves a TODO task into progress.
func Start(task models.Task) (models.Task, error) {
	if task.Status != models.TaskStatusTodo {
		return task, fmt.Errorf("%w: cannot start a task in status %s", ErrInvalidTransition, task.Status)
	}
	task.Status = models.TaskStatusInProgress
	return task, nil
}

// Complete marks the task completed and reports how much XP the transition earns.
// Completing an already completed task is a no-op worth zero XP.
func Complete(task models.Task) (models.Task, int) {
	if task.IsCompleted() {
		return task, 0
	}
	task.Status = models.TaskStatusCompleted
	return task, task.XPReward
}

// SetVerified records or revokes manager verification. It never touches status or reward.
func SetVerified(task models.Task, verified bool) (models.Task, error) {
	if !task.IsCompleted() {
		return task, ErrNotCompleted
	}
	task.ManagerVerified = verified
	return task, nil
}

// TaskEdit is a partial update; nil fields are left as they are.
type TaskEdit struct {
	Title        *string
	Description  *string
	AssignedToID *string
	DueDate      *string
	XPReward     *int
	ImageURL     *string
	Instructions *string
}

// ApplyEdit merges the edit into the task.
func ApplyEdit(task models.Task, edit TaskEdit) (models.Task, error) {
	if edit.Title != nil {
		title := strings.TrimSpace(*edit.Title)
		if title == "" {
			return task, ErrTitleRequired
		}
		task.Title = title
	}
	if edit.Description != nil {
		task.Description = *edit.Description
	}
	if edit.AssignedToID != nil {
		if strings.TrimSpace(*edit.AssignedToID) == "" {
			return task, ErrAssigneeRequired
		}
		task.AssignedToID = *edit.AssignedToID
	}
	if edit.DueDate != nil {
		if err := validateDate(*edit.DueDate); err != nil {
			return task, err
		}
		task.DueDate = *edit.DueDate
	}
	if edit.XPReward != nil {
		if *edit.XPReward < 0 {
			return task, ErrNegativeReward
		}
		task.XPReward = *edit.XPReward
	}
	if edit.ImageURL != nil {
		task.ImageURL = *edit.ImageURL
	}
	if edit.Instructions != nil {
		task.Instructions = *edit.Instructions
	}
	return task, nil
}

func validateDate(value string) error {
	if _, err := time.Parse(constants.DateLayout, value); err != nil {
		return ErrInvalidDueDate
	}
	return nil
}
