package repository

import (
	"fmt"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Append adds a note at the end of the user's list
func (r *GormNoteRepository) Append(note *models.Note) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.Note{}, "user_id = ?", note.UserID)
		if err != nil {
			return fmt.Errorf("failed to allocate note position: %w", err)
		}
		note.Position = position
		return tx.Create(note).Error
	})
}

// FindByID finds a note belonging to a user
func (r *GormNoteRepository) FindByID(userID, noteID string) (*models.Note, error) {
	var note models.Note
	if err := r.db.Where("id = ? AND user_id = ?", noteID, userID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByUser returns a user's notes in insertion order
func (r *GormNoteRepository) ListByUser(userID string) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.Where("user_id = ?", userID).Order("position ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update replaces a note record
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}
