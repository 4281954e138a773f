package repository

import (
	"fmt"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"gorm.io/gorm"
)

// GormStandardTaskRepository is a GORM implementation of StandardTaskRepository
type GormStandardTaskRepository struct {
	db *gorm.DB
}

// NewStandardTaskRepository creates a new StandardTaskRepository
func NewStandardTaskRepository(db *gorm.DB) StandardTaskRepository {
	return &GormStandardTaskRepository{db: db}
}

// Create appends a title
func (r *GormStandardTaskRepository) Create(task *models.StandardTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.StandardTask{})
		if err != nil {
			return fmt.Errorf("failed to allocate standard task position: %w", err)
		}
		task.Position = position
		return tx.Create(task).Error
	})
}

// List returns the titles in insertion order
func (r *GormStandardTaskRepository) List() ([]models.StandardTask, error) {
	var list []models.StandardTask
	if err := r.db.Order("position ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
