package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"github.com/yukikurage/taskmaster-api/internal/views"
	"gorm.io/gorm"
)

var (
	ErrNoteNotFound     = errors.New("note not found")
	ErrNoteTextRequired = errors.New("note text is required")
)

// TeamService serves the roster and the manager's private coaching notes
type TeamService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	taskRepo repository.TaskRepository
	clock    utils.Clock
	location *time.Location
}

// NewTeamService creates a new TeamService
func NewTeamService(userRepo repository.UserRepository, noteRepo repository.NoteRepository, taskRepo repository.TaskRepository, location *time.Location) *TeamService {
	return &TeamService{
		userRepo: userRepo,
		noteRepo: noteRepo,
		taskRepo: taskRepo,
		clock:    time.Now,
		location: location,
	}
}

// SetClock replaces the time source used to date notes.
func (s *TeamService) SetClock(clock utils.Clock) {
	s.clock = clock
}

// Roster returns every user with completion and level figures.
// Notes are loaded for managers only.
func (s *TeamService) Roster(actorID string) ([]views.RosterEntry, bool, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, false, err
	}
	isManager := actor.Role == models.RoleManager

	var preload []string
	if isManager {
		preload = append(preload, "PrivateNotes")
	}

	users, err := s.userRepo.List(preload...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list users: %w", err)
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list tasks: %w", err)
	}

	return views.Roster(users, tasks), isManager, nil
}

// Member returns a single roster entry
func (s *TeamService) Member(actorID, userID string) (*views.RosterEntry, bool, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, false, err
	}
	isManager := actor.Role == models.RoleManager

	var preload []string
	if isManager {
		preload = append(preload, "PrivateNotes")
	}

	user, err := findUser(s.userRepo, userID, preload...)
	if err != nil {
		return nil, false, err
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{AssignedToID: &user.ID})
	if err != nil {
		return nil, false, fmt.Errorf("failed to list tasks: %w", err)
	}

	entry := views.Roster([]models.User{*user}, tasks)[0]
	return &entry, isManager, nil
}

// AddNote appends a coaching note written by the acting manager
func (s *TeamService) AddNote(actorID, userID, text string) (*models.Note, error) {
	actor, err := s.requireManager(actorID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoteTextRequired
	}

	if _, err := findUser(s.userRepo, userID); err != nil {
		return nil, err
	}

	note := &models.Note{
		ID:     utils.NewID(),
		UserID: userID,
		Text:   text,
		Author: actor.Name,
		Date:   utils.Today(s.clock, s.location),
	}
	if err := s.noteRepo.Append(note); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}

	return note, nil
}

// EditNote replaces a note's text and records who edited it
func (s *TeamService) EditNote(actorID, userID, noteID, text string) (*models.Note, error) {
	actor, err := s.requireManager(actorID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoteTextRequired
	}

	note, err := s.noteRepo.FindByID(userID, noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	editor := actor.Name
	note.Text = text
	note.LastEditedBy = &editor
	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

func (s *TeamService) requireManager(actorID string) (*models.User, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleManager {
		return nil, ErrManagerOnly
	}
	return actor, nil
}
