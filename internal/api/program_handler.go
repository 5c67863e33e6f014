package api

import (
	"net/http"
	"strconv"

	"splitlog/internal/domain"
	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// ProgramHandler exposes the 7-day program.
type ProgramHandler struct {
	program *store.ProgramStore
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(program *store.ProgramStore) *ProgramHandler {
	return &ProgramHandler{program: program}
}

// AssignSlotRequest binds (or with null unbinds) an exercise to a slot.
type AssignSlotRequest struct {
	ExerciseID *string `json:"exerciseId"`
}

// AddSlotRequest appends a new slot to a day.
type AddSlotRequest struct {
	MuscleGroup string `json:"muscleGroup" binding:"required"`
}

// SetLabelRequest renames a day.
type SetLabelRequest struct {
	Label string `json:"label" binding:"required"`
}

func dayNumberParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 || day > 7 {
		abortWithError(c, http.StatusBadRequest, "Day must be a number between 1 and 7.")
		return 0, false
	}
	return day, true
}

// GetProgram returns all 7 days.
func (h *ProgramHandler) GetProgram(c *gin.Context) {
	c.JSON(http.StatusOK, h.program.Days())
}

// AssignSlot updates a slot's exercise binding.
func (h *ProgramHandler) AssignSlot(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req AssignSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.program.AssignSlot(c.Request.Context(), day, c.Param("slotId"), req.ExerciseID); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update slot.")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddSlot appends a new unassigned slot to a day.
func (h *ProgramHandler) AddSlot(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	group := domain.MuscleGroup(req.MuscleGroup)
	if !group.Valid() {
		abortWithError(c, http.StatusBadRequest, "Unknown muscle group.")
		return
	}

	slot, err := h.program.AddSlot(c.Request.Context(), day, group)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to add slot.")
		return
	}
	if slot.ID == "" {
		abortWithError(c, http.StatusNotFound, "Program day not found.")
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// RemoveSlot deletes a slot from a day.
func (h *ProgramHandler) RemoveSlot(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	if err := h.program.RemoveSlot(c.Request.Context(), day, c.Param("slotId")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to remove slot.")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDayLabel renames a program day.
func (h *ProgramHandler) SetDayLabel(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req SetLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.program.SetDayLabel(c.Request.Context(), day, req.Label); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to rename day.")
		return
	}
	c.Status(http.StatusNoContent)
}
