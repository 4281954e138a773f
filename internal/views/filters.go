// Package views projects the task collection into what a role is allowed to see.
// Nothing here mutates its input; results keep the insertion order of the source slice.
package views

import (
	"github.com/yukikurage/taskmaster-api/internal/models"
)

// FilterAll is the sentinel a client sends to disable a filter.
const FilterAll = "ALL"

// ManagerFilter narrows the full task list. Empty or ALL values are ignored.
type ManagerFilter struct {
	AssigneeID string
	Status     string
	DueDate    string
}

func (f ManagerFilter) matches(task models.Task) bool {
	if active(f.AssigneeID) && task.AssignedToID != f.AssigneeID {
		return false
	}
	if active(f.Status) && string(task.Status) != f.Status {
		return false
	}
	if f.DueDate != "" && task.DueDate != f.DueDate {
		return false
	}
	return true
}

// Apply returns the tasks matching every active predicate.
func (f ManagerFilter) Apply(tasks []models.Task) []models.Task {
	result := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// EmployeeFocus returns the employee's own tasks, hiding completed ones
// unless they are due today. Pending tasks stay visible whatever their due date.
func EmployeeFocus(tasks []models.Task, userID, today string) []models.Task {
	result := make([]models.Task, 0)
	for _, task := range tasks {
		if task.AssignedToID != userID {
			continue
		}
		if task.IsCompleted() && task.DueDate != today {
			continue
		}
		result = append(result, task)
	}
	return result
}

// Visible picks the projection for the viewer's role.
func Visible(tasks []models.Task, viewer models.User, filter ManagerFilter, today string) []models.Task {
	if viewer.Role == models.RoleManager {
		return filter.Apply(tasks)
	}
	return EmployeeFocus(tasks, viewer.ID, today)
}

func active(value string) bool {
	return value != "" && value != FilterAll
}
