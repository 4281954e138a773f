package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskmaster-api/internal/dto"
	apierrors "github.com/yukikurage/taskmaster-api/internal/errors"
	"github.com/yukikurage/taskmaster-api/internal/services"
	"github.com/yukikurage/taskmaster-api/internal/utils"
)

// ShiftHandler serves uploaded shift schedules
type ShiftHandler struct {
	shiftService *services.ShiftService
}

func NewShiftHandler(shiftService *services.ShiftService) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// ListShifts returns a page of schedules, newest first
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	shifts, total, err := h.shiftService.List(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftListResponse(shifts, utils.NewPaginationResponse(params, total)))
}

// UploadShift records a schedule upload. Only the file name is kept.
func (h *ShiftHandler) UploadShift(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apierrors.BadRequest(c, "A schedule file is required in the \"file\" field")
		return
	}

	shift, err := h.shiftService.Upload(userID, file.Filename)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftDTO(*shift))
}
