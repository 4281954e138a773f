package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmaster-api/internal/dto"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/services"
)

// TeamHandler serves the roster and coaching notes
type TeamHandler struct {
	teamService *services.TeamService
}

func NewTeamHandler(teamService *services.TeamService) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

type noteRequest struct {
	Text string `json:"text" binding:"required"`
}

// ListTeam returns the roster; private notes are included for managers only
func (h *TeamHandler) ListTeam(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entries, includeNotes, err := h.teamService.Roster(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": dto.ToTeamDTO(entries, includeNotes)})
}

// GetMember returns one roster card
func (h *TeamHandler) GetMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, includeNotes, err := h.teamService.Member(userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberDTO(*entry, includeNotes))
}

// AddNote appends a private coaching note
func (h *TeamHandler) AddNote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	note, err := h.teamService.AddNote(userID, c.Param("id"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteDTO(*note))
}

// EditNote replaces a coaching note's text
func (h *TeamHandler) EditNote(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BindingError(c, err)
		return
	}

	note, err := h.teamService.EditNote(userID, c.Param("id"), c.Param("noteId"), req.Text)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}
