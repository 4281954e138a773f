package repository

import (
	"fmt"
	"time"

	"github.com/yukikurage/taskmaster-api/internal/gamification"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create stores a new task at the end of the list
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.Task{})
		if err != nil {
			return fmt.Errorf("failed to allocate task position: %w", err)
		}
		task.Position = position
		return tx.Create(task).Error
	})
}

// CreateBatch stores several tasks in one transaction, keeping their order
func (r *GormTaskRepository) CreateBatch(tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.Task{})
		if err != nil {
			return fmt.Errorf("failed to allocate task position: %w", err)
		}
		for i := range tasks {
			tasks[i].Position = position + int64(i)
		}
		return tx.Create(&tasks).Error
	})
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id string) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves tasks in insertion order
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if err := query.Order("position ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update replaces a task record
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// CompleteWithReward flips the task to COMPLETED with a status guard, so only one
// caller ever wins. XP is added in SQL; the level is recomputed from the stored total.
func (r *GormTaskRepository) CompleteWithReward(task *models.Task, reward int) (*Completion, error) {
	out := &Completion{}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Task{}).
			Where("id = ? AND status <> ?", task.ID, models.TaskStatusCompleted).
			Updates(map[string]any{
				"status":     models.TaskStatusCompleted,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to save task: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}
		out.Completed = true

		if reward <= 0 {
			return nil
		}

		credit := tx.Model(&models.User{}).
			Where("id = ?", task.AssignedToID).
			Update("xp", gorm.Expr("xp + ?", reward))
		if credit.Error != nil {
			return fmt.Errorf("failed to credit assignee: %w", credit.Error)
		}
		if credit.RowsAffected == 0 {
			return nil
		}

		var assignee models.User
		if err := tx.First(&assignee, "id = ?", task.AssignedToID).Error; err != nil {
			return fmt.Errorf("failed to reload assignee: %w", err)
		}
		out.PreviousLevel = assignee.Level
		if settled := gamification.SettleLevel(assignee); settled.Level != assignee.Level {
			if err := tx.Model(&assignee).Update("level", settled.Level).Error; err != nil {
				return fmt.Errorf("failed to update level: %w", err)
			}
			assignee.Level = settled.Level
		}

		out.Awarded = reward
		out.Assignee = &assignee
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.Completed {
		task.Status = models.TaskStatusCompleted
	}
	return out, nil
}

// Delete removes a task
func (r *GormTaskRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
