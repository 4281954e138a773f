package database

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded account
const DefaultPassword = "grocery"

// DefaultStandardTasks is the initial standard task list
var DefaultStandardTasks = []string{
	"RESTOCK SHELVES",
	"FACE AISLES",
	"CLEAN PRODUCE",
	"CHECK EXPIRY DATES",
	"CLEAN CHECKOUT LANES",
	"RECEIVE DELIVERY",
}

// SeedUsers returns the initial roster; passwords are hashed by Seed
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:       "u1",
			Name:     "Sarah Conner",
			Username: "lamec" + constants.DefaultUsernameSuffix,
			Email:    "manager@test.com",
			Role:     models.RoleManager,
			Avatar:   "https://picsum.photos/200/200?random=1",
			Level:    10,
			XP:       5000,
			Position: 1,
		},
		{
			ID:       "u2",
			Name:     "John Doe",
			Username: "john" + constants.DefaultUsernameSuffix,
			Email:    "employee@test.com",
			Role:     models.RoleEmployee,
			Avatar:   "https://picsum.photos/200/200?random=2",
			Level:    3,
			XP:       1200,
			Position: 2,
			PrivateNotes: []models.Note{
				{
					ID:       "n1",
					UserID:   "u2",
					Text:     "Great attitude with customers. Needs to speed up restocking.",
					Author:   "Sarah Conner",
					Date:     "2023-10-28",
					Position: 1,
				},
			},
		},
		{
			ID:       "u3",
			Name:     "Jane Smith",
			Username: "jane" + constants.DefaultUsernameSuffix,
			Email:    "jane@test.com",
			Role:     models.RoleEmployee,
			Avatar:   "https://picsum.photos/200/200?random=3",
			Level:    5,
			XP:       2400,
			Position: 3,
		},
	}
}

// SeedTasks returns the initial tasks
func SeedTasks() []models.Task {
	return []models.Task{
		{
			ID:           "t1",
			Title:        "Restock Aisle 4",
			Description:  "The pasta section is running low. Please restock from inventory.",
			AssignedToID: "u2",
			Status:       models.TaskStatusTodo,
			ImageURL:     "https://picsum.photos/600/400?random=10",
			Instructions: "1. Check inventory level. 2. Bring boxes to aisle. 3. Stock using FIFO method.",
			DueDate:      "2023-11-01",
			XPReward:     50,
			Position:     1,
		},
		{
			ID:           "t2",
			Title:        "Checkout Counter Setup",
			Description:  "Ensure all POS systems are updated and receipt paper is full.",
			AssignedToID: "u2",
			Status:       models.TaskStatusInProgress,
			ImageURL:     "https://picsum.photos/600/400?random=11",
			Instructions: "Verify connection, clean screen, refill paper.",
			DueDate:      "2023-11-01",
			XPReward:     30,
			Position:     2,
		},
		{
			ID:           "t3",
			Title:        "Inventory Audit",
			Description:  "Count stock for the dairy section.",
			AssignedToID: "u3",
			Status:       models.TaskStatusCompleted,
			ImageURL:     "https://picsum.photos/600/400?random=12",
			Instructions: "Use the scanner to log all items in the dairy fridge.",
			DueDate:      "2023-10-29",
			XPReward:     100,
			Position:     3,
		},
	}
}

// SeedShifts returns the initial shift schedules
func SeedShifts() []models.Shift {
	return []models.Shift{
		{
			ID:         "s1",
			Title:      "November Week 1 Schedule",
			Date:       "2023-11-01",
			FileName:   "schedule_nov_w1.pdf",
			FileURL:    constants.PlaceholderFileURL,
			UploadedBy: "u1",
			Position:   1,
		},
	}
}

// Seed populates an empty database with the default roster and tasks.
// It does nothing when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		log.Debug().Msg("Database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := SeedUsers()
	for i := range users {
		users[i].PasswordHash = string(hash)
	}

	standard := make([]models.StandardTask, len(DefaultStandardTasks))
	for i, title := range DefaultStandardTasks {
		standard[i] = models.StandardTask{
			ID:       fmt.Sprintf("st%d", i+1),
			Title:    title,
			Position: int64(i + 1),
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		tasks := SeedTasks()
		if err := tx.Create(&tasks).Error; err != nil {
			return fmt.Errorf("failed to seed tasks: %w", err)
		}
		shifts := SeedShifts()
		if err := tx.Create(&shifts).Error; err != nil {
			return fmt.Errorf("failed to seed shifts: %w", err)
		}
		if err := tx.Create(&standard).Error; err != nil {
			return fmt.Errorf("failed to seed standard tasks: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("users", len(users)).Msg("Seeded default data")
	return nil
}
