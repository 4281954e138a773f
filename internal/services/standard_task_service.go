package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

var ErrStandardTitleRequired = errors.New("standard task title is required")

// StandardTaskService manages the standard task vocabulary
type StandardTaskService struct {
	standardRepo repository.StandardTaskRepository
	userRepo     repository.UserRepository
}

// NewStandardTaskService creates a new StandardTaskService
func NewStandardTaskService(standardRepo repository.StandardTaskRepository, userRepo repository.UserRepository) *StandardTaskService {
	return &StandardTaskService{
		standardRepo: standardRepo,
		userRepo:     userRepo,
	}
}

// List returns the titles in insertion order
func (s *StandardTaskService) List() ([]string, error) {
	list, err := s.standardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list standard tasks: %w", err)
	}

	titles := make([]string, len(list))
	for i, item := range list {
		titles[i] = item.Title
	}
	return titles, nil
}

// Add appends a normalized title unless it is already present.
// It returns the resulting list and whether anything was added.
func (s *StandardTaskService) Add(actorID, title string) ([]string, bool, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, false, err
	}
	if actor.Role != models.RoleManager {
		return nil, false, ErrManagerOnly
	}

	if views.NormalizeStandardTitle(title) == "" {
		return nil, false, ErrStandardTitleRequired
	}

	current, err := s.List()
	if err != nil {
		return nil, false, err
	}

	next, added := views.AddStandardTitle(current, title)
	if !added {
		return current, false, nil
	}

	item := &models.StandardTask{
		ID:    utils.NewID(),
		Title: next[len(next)-1],
	}
	if err := s.standardRepo.Create(item); err != nil {
		return nil, false, fmt.Errorf("failed to add standard task: %w", err)
	}

	return next, true, nil
}
