package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/taskmaster-api/internal/insights"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

// InsightService backs the manager dashboard and the generated coaching material
type InsightService struct {
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NoteRepository
	standardRepo repository.StandardTaskRepository
	generator    *insights.Generator
}

// NewInsightService creates a new InsightService
func NewInsightService(
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NoteRepository,
	standardRepo repository.StandardTaskRepository,
	generator *insights.Generator,
) *InsightService {
	return &InsightService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		standardRepo: standardRepo,
		generator:    generator,
	}
}

// GeneratorEnabled reports whether a text-generation backend is configured
func (s *InsightService) GeneratorEnabled() bool {
	return s.generator.Enabled()
}

// Dashboard computes the manager's summary figures
func (s *InsightService) Dashboard(actorID string) (*views.DashboardStats, error) {
	if err := s.requireManager(actorID); err != nil {
		return nil, err
	}

	tasks, users, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	stats := views.Dashboard(tasks, users)
	return &stats, nil
}

// DashboardInsights asks the generator for team performance observations
func (s *InsightService) DashboardInsights(ctx context.Context, actorID string) (string, error) {
	if err := s.requireManager(actorID); err != nil {
		return "", err
	}

	tasks, users, err := s.snapshot()
	if err != nil {
		return "", err
	}

	employees := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.IsEmployee() {
			employees = append(employees, user)
		}
	}

	return s.generator.DashboardInsights(ctx, tasks, employees), nil
}

// SuggestTasks proposes standard tasks for an employee
func (s *InsightService) SuggestTasks(ctx context.Context, actorID, userID string) ([]string, error) {
	if err := s.requireManager(actorID); err != nil {
		return nil, err
	}

	user, err := findUser(s.userRepo, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.taskRepo.List(repository.TaskFilter{AssignedToID: &user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	list, err := s.standardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load standard tasks: %w", err)
	}
	vocabulary := make([]string, len(list))
	for i, item := range list {
		vocabulary[i] = item.Title
	}

	return s.generator.SuggestTasks(ctx, user.Name, history, vocabulary), nil
}

// FeedbackScript drafts a review conversation for an employee.
// When notes is nil the employee's stored coaching notes are used.
func (s *InsightService) FeedbackScript(ctx context.Context, actorID, userID string, notes []string) (string, error) {
	if err := s.requireManager(actorID); err != nil {
		return "", err
	}

	user, err := findUser(s.userRepo, userID)
	if err != nil {
		return "", err
	}

	if notes == nil {
		stored, err := s.noteRepo.ListByUser(user.ID)
		if err != nil {
			return "", fmt.Errorf("failed to list notes: %w", err)
		}
		notes = make([]string, len(stored))
		for i, note := range stored {
			notes[i] = note.Text
		}
	}

	history, err := s.taskRepo.List(repository.TaskFilter{AssignedToID: &user.ID})
	if err != nil {
		return "", fmt.Errorf("failed to list tasks: %w", err)
	}

	return s.generator.FeedbackScript(ctx, user.Name, notes, views.CompletedCount(history, user.ID)), nil
}

func (s *InsightService) snapshot() ([]models.Task, []models.User, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	users, err := s.userRepo.List()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}
	return tasks, users, nil
}

func (s *InsightService) requireManager(actorID string) error {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return err
	}
	if actor.Role != models.RoleManager {
		return ErrManagerOnly
	}
	return nil
}
