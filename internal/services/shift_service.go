package services

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/utils"
)

var ErrFileNameRequired = errors.New("file name is required")

// ShiftService records uploaded shift schedules. Only metadata is kept.
type ShiftService struct {
	shiftRepo repository.ShiftRepository
	userRepo  repository.UserRepository
	clock     utils.Clock
	location  *time.Location
}

// NewShiftService creates a new ShiftService
func NewShiftService(shiftRepo repository.ShiftRepository, userRepo repository.UserRepository, location *time.Location) *ShiftService {
	return &ShiftService{
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		clock:     time.Now,
		location:  location,
	}
}

// SetClock replaces the time source used to date uploads.
func (s *ShiftService) SetClock(clock utils.Clock) {
	s.clock = clock
}

// List returns a page of schedules, newest first
func (s *ShiftService) List(params utils.PaginationParams) ([]models.Shift, int64, error) {
	shifts, total, err := s.shiftRepo.List(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}
	return shifts, total, nil
}

// Upload records a schedule file uploaded by the acting manager
func (s *ShiftService) Upload(actorID, fileName string) (*models.Shift, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleManager {
		return nil, ErrManagerOnly
	}

	fileName = baseName(fileName)
	if fileName == "" || fileName == "." || fileName == "/" {
		return nil, ErrFileNameRequired
	}

	date := utils.Today(s.clock, s.location)
	shift := &models.Shift{
		ID:         utils.NewID(),
		Title:      "Schedule " + date,
		Date:       date,
		FileName:   fileName,
		FileURL:    constants.PlaceholderFileURL,
		UploadedBy: actor.ID,
	}

	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to record shift: %w", err)
	}

	return shift, nil
}

// baseName strips any client directory, whether it was sent with / or \ separators.
func baseName(name string) string {
	return strings.TrimSpace(path.Base(strings.ReplaceAll(name, "\\", "/")))
}
