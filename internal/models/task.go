package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// TaskStatuses lists the statuses in board column order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID              string     `gorm:"primaryKey;size:36" json:"id"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	AssignedToID    string     `gorm:"size:36;index;not null" json:"assigned_to_id"`
	Status          TaskStatus `gorm:"type:varchar(20);not null;default:'TODO'" json:"status"`
	ImageURL        string     `gorm:"type:varchar(512)" json:"image_url,omitempty"`
	Instructions    string     `gorm:"type:text" json:"instructions,omitempty"`
	DueDate         string     `gorm:"type:varchar(10);index;not null" json:"due_date"`
	XPReward        int        `gorm:"not null;default:0" json:"xp_reward"`
	ManagerVerified bool       `gorm:"not null;default:false" json:"manager_verified"`
	AssignedBy      string     `gorm:"type:varchar(255)" json:"assigned_by,omitempty"`
	Position        int64      `gorm:"not null;index" json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsCompleted reports whether the task reached the terminal status.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
