package views

import (
	"math"

	"github.com/yukikurage/taskmaster-api/internal/gamification"
	"github.com/yukikurage/taskmaster-api/internal/models"
)

type StatusCount struct {
	Status models.TaskStatus `json:"status"`
	Count  int               `json:"count"`
}

type EmployeePerformance struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Pending   int    `json:"pending"`
}

type DashboardStats struct {
	TotalTasks     int                   `json:"total_tasks"`
	PendingTasks   int                   `json:"pending_tasks"`
	CompletionRate int                   `json:"completion_rate"`
	StatusCounts   []StatusCount         `json:"status_counts"`
	Performance    []EmployeePerformance `json:"performance"`
}

// Dashboard summarizes the whole task list for the manager command center.
func Dashboard(tasks []models.Task, users []models.User) DashboardStats {
	counts := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for _, task := range tasks {
		counts[task.Status]++
	}

	stats := DashboardStats{
		TotalTasks:   len(tasks),
		PendingTasks: len(tasks) - counts[models.TaskStatusCompleted],
		StatusCounts: make([]StatusCount, 0, len(models.TaskStatuses)),
		Performance:  make([]EmployeePerformance, 0, len(users)),
	}
	if len(tasks) > 0 {
		rate := float64(counts[models.TaskStatusCompleted]) / float64(len(tasks)) * 100
		stats.CompletionRate = int(math.Round(rate))
	}
	for _, status := range models.TaskStatuses {
		stats.StatusCounts = append(stats.StatusCounts, StatusCount{Status: status, Count: counts[status]})
	}

	for _, user := range users {
		if user.Role == models.RoleManager {
			continue
		}
		perf := EmployeePerformance{UserID: user.ID, Name: user.Name}
		for _, task := range tasks {
			if task.AssignedToID != user.ID {
				continue
			}
			if task.IsCompleted() {
				perf.Completed++
			} else {
				perf.Pending++
			}
		}
		stats.Performance = append(stats.Performance, perf)
	}

	return stats
}

// RosterEntry is a user card on the team roster.
type RosterEntry struct {
	User           models.User
	CompletedCount int
	Progress       int
	XPToNextLevel  int
}

// Roster decorates every user with completion and level progress figures.
func Roster(users []models.User, tasks []models.Task) []RosterEntry {
	completed := make(map[string]int, len(users))
	for _, task := range tasks {
		if task.IsCompleted() {
			completed[task.AssignedToID]++
		}
	}

	entries := make([]RosterEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, RosterEntry{
			User:           user,
			CompletedCount: completed[user.ID],
			Progress:       gamification.Progress(user.XP),
			XPToNextLevel:  gamification.XPToNextLevel(user.XP),
		})
	}
	return entries
}

// CompletedCount counts the user's completed tasks.
func CompletedCount(tasks []models.Task, userID string) int {
	n := 0
	for _, task := range tasks {
		if task.AssignedToID == userID && task.IsCompleted() {
			n++
		}
	}
	return n
}
