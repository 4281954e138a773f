package repository

import (
	"fmt"
	"strings"

	"github.com/yukikurage/taskmaster-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user at the end of the roster
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		position, err := nextPosition(tx, &models.User{})
		if err != nil {
			return fmt.Errorf("failed to allocate roster position: %w", err)
		}
		user.Position = position
		return tx.Create(user).Error
	})
}

// FindByID finds a user by ID with optional preloading
func (r *GormUserRepository) FindByID(id string, preload ...string) (*models.User, error) {
	var user models.User
	query := r.db
	for _, p := range preload {
		query = preloadOrdered(query, p)
	}

	if err := query.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username, ignoring case
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username_key = ?", strings.ToLower(username)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns every user in roster order
func (r *GormUserRepository) List(preload ...string) ([]models.User, error) {
	var users []models.User
	query := r.db
	for _, p := range preload {
		query = preloadOrdered(query, p)
	}

	if err := query.Order("position ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update replaces a user record
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Omit("PrivateNotes").Save(user).Error
}

// preloadOrdered keeps has-many relations in insertion order.
func preloadOrdered(query *gorm.DB, relation string) *gorm.DB {
	return query.Preload(relation, func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}
