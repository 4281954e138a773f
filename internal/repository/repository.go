package repository

import (
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/utils"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create stores a new task at the end of the list
	Create(task *models.Task) error

	// CreateBatch stores several tasks in one transaction, keeping their order
	CreateBatch(tasks []models.Task) error

	// FindByID finds a task by ID
	FindByID(id string) (*models.Task, error)

	// List retrieves tasks in insertion order
	List(filter TaskFilter) ([]models.Task, error)

	// Update replaces a task record
	Update(task *models.Task) error

	// CompleteWithReward marks the task completed unless it already is, and in the
	// same transaction adds reward XP to its assignee
	CompleteWithReward(task *models.Task, reward int) (*Completion, error)

	// Delete removes a task
	Delete(id string) error
}

// Completion reports what CompleteWithReward changed.
// Completed is false when another request completed the task first.
type Completion struct {
	Completed     bool
	Awarded       int
	Assignee      *models.User
	PreviousLevel int
}

// TaskFilter holds the storage-level filters for listing tasks
type TaskFilter struct {
	AssignedToID *string
	Status       *models.TaskStatus
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string, preload ...string) (*models.User, error)

	// FindByUsername finds a user by username, ignoring case
	FindByUsername(username string) (*models.User, error)

	// List returns every user in roster order
	List(preload ...string) ([]models.User, error)

	// Update replaces a user record
	Update(user *models.User) error
}

// NoteRepository defines the interface for coaching note data access
type NoteRepository interface {
	// Append adds a note at the end of the user's list
	Append(note *models.Note) error

	// FindByID finds a note belonging to a user
	FindByID(userID, noteID string) (*models.Note, error)

	// ListByUser returns a user's notes in insertion order
	ListByUser(userID string) ([]models.Note, error)

	// Update replaces a note record
	Update(note *models.Note) error
}

// ShiftRepository defines the interface for shift schedule data access
type ShiftRepository interface {
	// Create records an uploaded schedule
	Create(shift *models.Shift) error

	// List returns schedules newest first
	List(params utils.PaginationParams) ([]models.Shift, int64, error)
}

// StandardTaskRepository defines the interface for the standard task list
type StandardTaskRepository interface {
	// Create appends a title
	Create(task *models.StandardTask) error

	// List returns the titles in insertion order
	List() ([]models.StandardTask, error)
}
