// Package gamification turns completed work into XP and levels.
package gamification

import (
	"github.com/yukikurage/taskmaster-api/internal/constants"
	"github.com/yukikurage/taskmaster-api/internal/models"
)

// AwardXP returns a copy of the user credited with amount XP.
// The level follows the XP total but is never lowered below the stored value.
func AwardXP(user models.User, amount int) models.User {
	if amount <= 0 {
		return user
	}
	user.XP += amount
	return SettleLevel(user)
}

// SettleLevel raises the level to match the XP total. It never lowers it.
func SettleLevel(user models.User) models.User {
	if level := LevelFor(user.XP); level > user.Level {
		user.Level = level
	}
	return user
}

// LevelFor derives the level reached with the given XP total.
func LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/constants.XPPerLevel + constants.InitialLevel
}

// Progress is the 0-100 completion of the current level.
func Progress(xp int) int {
	return normalize(xp) * 100 / constants.XPPerLevel
}

// XPToNextLevel is the XP still missing before the next level.
func XPToNextLevel(xp int) int {
	return constants.XPPerLevel - normalize(xp)
}

func normalize(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % constants.XPPerLevel
}
