package dto

import (
	"github.com/yukikurage/taskmaster-api/internal/gamification"
	"github.com/yukikurage/taskmaster-api/internal/models"
	"github.com/yukikurage/taskmaster-api/internal/views"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Role     models.Role `json:"role"`
	Avatar   string      `json:"avatar,omitempty"`
	Level    int         `json:"level"`
	XP       int         `json:"xp"`
}

// NoteDTO represents a private coaching note
type NoteDTO struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Author       string  `json:"author"`
	Date         string  `json:"date"`
	LastEditedBy *string `json:"last_edited_by,omitempty"`
}

// ProfileDTO is the signed-in user with level progress
type ProfileDTO struct {
	UserDTO
	Progress      int `json:"progress"`
	XPToNextLevel int `json:"xp_to_next_level"`
}

// TeamMemberDTO is one roster card
type TeamMemberDTO struct {
	UserDTO
	CompletedCount int       `json:"completed_count"`
	Progress       int       `json:"progress"`
	XPToNextLevel  int       `json:"xp_to_next_level"`
	PrivateNotes   []NoteDTO `json:"private_notes,omitempty"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		Avatar:   user.Avatar,
		Level:    user.Level,
		XP:       user.XP,
	}
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:           note.ID,
		Text:         note.Text,
		Author:       note.Author,
		Date:         note.Date,
		LastEditedBy: note.LastEditedBy,
	}
}

// ToProfileDTO converts a User model to ProfileDTO
func ToProfileDTO(user models.User) ProfileDTO {
	return ProfileDTO{
		UserDTO:       ToUserDTO(user),
		Progress:      gamification.Progress(user.XP),
		XPToNextLevel: gamification.XPToNextLevel(user.XP),
	}
}

// ToTeamMemberDTO converts a roster entry; notes are only attached when includeNotes is set
func ToTeamMemberDTO(entry views.RosterEntry, includeNotes bool) TeamMemberDTO {
	member := TeamMemberDTO{
		UserDTO:        ToUserDTO(entry.User),
		CompletedCount: entry.CompletedCount,
		Progress:       entry.Progress,
		XPToNextLevel:  entry.XPToNextLevel,
	}

	if includeNotes {
		member.PrivateNotes = make([]NoteDTO, len(entry.User.PrivateNotes))
		for i, note := range entry.User.PrivateNotes {
			member.PrivateNotes[i] = ToNoteDTO(note)
		}
	}

	return member
}

// ToTeamDTO converts the whole roster
func ToTeamDTO(entries []views.RosterEntry, includeNotes bool) []TeamMemberDTO {
	members := make([]TeamMemberDTO, len(entries))
	for i, entry := range entries {
		members[i] = ToTeamMemberDTO(entry, includeNotes)
	}
	return members
}
