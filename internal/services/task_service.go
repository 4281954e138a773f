package services

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/metrics"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/repository"
	"github.com/yukikurage/taskmaster-api/internal/taskflow"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"github.com/yukikurage/taskmaster-api/internal/views"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrManagerOnly          = errors.New("only managers can perform this action")
	ErrTaskPermissionDenied = errors.New("user does not have permission to access this task")
	ErrAssigneeNotFound     = errors.New("assignee does not exist")
	ErrNoTitlesProvided     = errors.New("at least one title is required")
	ErrTooManyTitles        = errors.New("too many titles in one assignment")
	ErrUnknownStandardTitle = errors.New("title is not in the standard task list")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo     repository.TaskRepository
	userRepo     repository.UserRepository
	standardRepo repository.StandardTaskRepository
	clock        utils.Clock
	location     *time.Location
	imageSeed    func() int
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository, standardRepo repository.StandardTaskRepository, location *time.Location) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		userRepo:     userRepo,
		standardRepo: standardRepo,
		clock:        time.Now,
		location:     location,
		imageSeed:    func() int { return rand.IntN(1000) },
	}
}

// SetClock replaces the time source used for "today".
func (s *TaskService) SetClock(clock utils.Clock) {
	s.clock = clock
}

// Today returns the current date in the store's timezone
func (s *TaskService) Today() string {
	return utils.Today(s.clock, s.location)
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title        string
	Description  string
	AssignedToID string
	DueDate      string
	ImageURL     string
	Instructions string
	XPReward     *int
}

// DailyAssignInput assigns several standard tasks to one employee
type DailyAssignInput struct {
	AssignedToID string
	Titles       []string
	DueDate      string
	XPReward     *int
}

// CompleteResult describes the outcome of a completion
type CompleteResult struct {
	Task      models.Task
	XPAwarded int
	// Assignee is set when XP was credited
	Assignee  *models.User
	LeveledUp bool
}

// List returns the tasks visible to the actor.
// Managers get the filtered full list; employees get their focus list and the filter is ignored.
func (s *TaskService) List(actorID string, filter views.ManagerFilter) ([]models.Task, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(repository.TaskFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return views.Visible(tasks, *actor, filter, s.Today()), nil
}

// Board buckets the visible tasks by status
func (s *TaskService) Board(actorID string, filter views.ManagerFilter) ([]views.BoardColumn, error) {
	tasks, err := s.List(actorID, filter)
	if err != nil {
		return nil, err
	}
	return views.Board(tasks), nil
}

// Create creates a new task assigned by the acting manager
func (s *TaskService) Create(actorID string, input CreateTaskInput) (*models.Task, error) {
	actor, err := s.requireManager(actorID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAssignee(input.AssignedToID); err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = fmt.Sprintf(constants.DefaultImageURL, s.imageSeed())
	}

	task, err := taskflow.New(taskflow.NewTask{
		Title:        input.Title,
		Description:  input.Description,
		AssignedToID: input.AssignedToID,
		DueDate:      input.DueDate,
		ImageURL:     imageURL,
		Instructions: input.Instructions,
		XPReward:     input.XPReward,
		AssignedBy:   actor.Name,
	}, s.Today())
	if err != nil {
		return nil, err
	}
	task.ID = utils.NewID()

	if err := s.taskRepo.Create(&task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &task, nil
}

// AssignDaily creates one task per standard title for an employee
func (s *TaskService) AssignDaily(actorID string, input DailyAssignInput) ([]models.Task, error) {
	actor, err := s.requireManager(actorID)
	if err != nil {
		return nil, err
	}
	if len(input.Titles) == 0 {
		return nil, ErrNoTitlesProvided
	}
	if len(input.Titles) > constants.MaxDailyAssignTitles {
		return nil, ErrTooManyTitles
	}
	if err := s.ensureAssignee(input.AssignedToID); err != nil {
		return nil, err
	}

	standard, err := s.standardTitles()
	if err != nil {
		return nil, err
	}

	today := s.Today()
	tasks := make([]models.Task, 0, len(input.Titles))
	for _, title := range input.Titles {
		if !views.ContainsStandardTitle(standard, title) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStandardTitle, title)
		}

		task, err := taskflow.New(taskflow.NewTask{
			Title:        views.NormalizeStandardTitle(title),
			AssignedToID: input.AssignedToID,
			DueDate:      input.DueDate,
			ImageURL:     fmt.Sprintf(constants.DefaultImageURL, s.imageSeed()),
			XPReward:     input.XPReward,
			AssignedBy:   actor.Name,
		}, today)
		if err != nil {
			return nil, err
		}
		task.ID = utils.NewID()
		tasks = append(tasks, task)
	}

	if err := s.taskRepo.CreateBatch(tasks); err != nil {
		return nil, fmt.Errorf("failed to assign daily tasks: %w", err)
	}

	return tasks, nil
}

// Get retrieves a task; employees may only read their own
func (s *TaskService) Get(actorID, taskID string) (*models.Task, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleManager && task.AssignedToID != actor.ID {
		return nil, ErrTaskPermissionDenied
	}

	return task, nil
}

// Edit applies a partial update; status is not editable here
func (s *TaskService) Edit(actorID, taskID string, edit taskflow.TaskEdit) (*models.Task, error) {
	if _, err := s.requireManager(actorID); err != nil {
		return nil, err
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	if edit.AssignedToID != nil && *edit.AssignedToID != task.AssignedToID {
		if err := s.ensureAssignee(*edit.AssignedToID); err != nil {
			return nil, err
		}
	}

	updated, err := taskflow.ApplyEdit(*task, edit)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &updated, nil
}

// Start moves a TODO task into progress
func (s *TaskService) Start(actorID, taskID string) (*models.Task, error) {
	task, err := s.findWorkableTask(actorID, taskID)
	if err != nil {
		return nil, err
	}

	started, err := taskflow.Start(*task)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(&started); err != nil {
		return nil, fmt.Errorf("failed to start task: %w", err)
	}

	return &started, nil
}

// Complete marks a task completed and credits its employee assignee.
// Completing an already completed task changes nothing.
func (s *TaskService) Complete(actorID, taskID string) (*CompleteResult, error) {
	task, err := s.findWorkableTask(actorID, taskID)
	if err != nil {
		return nil, err
	}

	if task.IsCompleted() {
		return &CompleteResult{Task: *task}, nil
	}

	completed, delta := taskflow.Complete(*task)

	reward := 0
	assignee, err := s.userRepo.FindByID(completed.AssignedToID)
	switch {
	case err == nil && assignee.IsEmployee():
		reward = delta
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load assignee: %w", err)
	}

	outcome, err := s.taskRepo.CompleteWithReward(&completed, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	if !outcome.Completed {
		// a concurrent request got there first and took the reward
		return &CompleteResult{Task: completed}, nil
	}

	result := &CompleteResult{Task: completed}
	if outcome.Assignee != nil {
		result.XPAwarded = outcome.Awarded
		result.Assignee = outcome.Assignee
		result.LeveledUp = outcome.Assignee.Level > outcome.PreviousLevel
		metrics.XPAwarded.Add(float64(outcome.Awarded))
	}

	metrics.TasksCompleted.Inc()
	log.Info().
		Str("task_id", completed.ID).
		Str("assignee_id", completed.AssignedToID).
		Int("xp_awarded", result.XPAwarded).
		Msg("Task completed")

	return result, nil
}

// SetVerification records or revokes manager verification
func (s *TaskService) SetVerification(actorID, taskID string, verified bool) (*models.Task, error) {
	if _, err := s.requireManager(actorID); err != nil {
		return nil, err
	}

	task, err := s.findTask(taskID)
	if err != nil {
		return nil, err
	}

	updated, err := taskflow.SetVerified(*task, verified)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(&updated); err != nil {
		return nil, fmt.Errorf("failed to update verification: %w", err)
	}

	return &updated, nil
}

// Delete removes a task
func (s *TaskService) Delete(actorID, taskID string) error {
	if _, err := s.requireManager(actorID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) requireManager(actorID string) (*models.User, error) {
	actor, err := findUser(s.userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleManager {
		return nil, ErrManagerOnly
	}
	return actor, nil
}

func (s *TaskService) ensureAssignee(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return taskflow.ErrAssigneeRequired
	}
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeNotFound
		}
		return fmt.Errorf("failed to find assignee: %w", err)
	}
	return nil
}

func (s *TaskService) findTask(taskID string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// findWorkableTask loads a task the actor may move along: managers any, employees their own.
func (s *TaskService) findWorkableTask(actorID, taskID string) (*models.Task, error) {
	return s.Get(actorID, taskID)
}

func (s *TaskService) standardTitles() ([]string, error) {
	list, err := s.standardRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load standard tasks: %w", err)
	}
	titles := make([]string, len(list))
	for i, item := range list {
		titles[i] = item.Title
	}
	return titles, nil
}
