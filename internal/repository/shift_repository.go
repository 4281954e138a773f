package repository

import (
	"fmt"

	"github.com/yukikurage/taskmaster-api/internal/database"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/utils"
	"gorm.io/gorm"
)

// GormShiftRepository is a GORM implementation of ShiftRepository
type GormShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new ShiftRepository
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &GormShiftRepository{db: db}
}

// Create records an uploaded schedule
func (r *GormShiftRepository) Create(shift *models.Shift) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.Shift{})
		if err != nil {
			return fmt.Errorf("failed to allocate shift position: %w", err)
		}
		shift.Position = position
		return tx.Create(shift).Error
	})
}

// List returns schedules newest first
func (r *GormShiftRepository) List(params utils.PaginationParams) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Scopes(database.Paginate(params)).Order("position DESC").Find(&shifts).Error; err != nil {
		return nil, 0, err
	}
	return shifts, total, nil
}
