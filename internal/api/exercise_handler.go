package api

import (
	"net/http"

	"splitlog/internal/domain"
	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler exposes the exercise library.
type ExerciseHandler struct {
	exercises *store.ExerciseStore
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exercises *store.ExerciseStore) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// CreateExerciseRequest defines the expected JSON for creating an exercise.
type CreateExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	MuscleGroup string `json:"muscleGroup" binding:"required"`
	WeightType  string `json:"weightType" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,url"`
}

// ListExercises returns the whole exercise library.
func (h *ExerciseHandler) ListExercises(c *gin.Context) {
	c.JSON(http.StatusOK, h.exercises.All())
}

// CreateExercise validates the input and adds a new exercise. Validation
// lives here; the store trusts its caller.
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	group := domain.MuscleGroup(req.MuscleGroup)
	weightType := domain.WeightType(req.WeightType)
	if !group.Valid() || !weightType.Valid() {
		abortWithError(c, http.StatusBadRequest, "Unknown muscle group or weight type.")
		return
	}

	ex, err := h.exercises.Create(c.Request.Context(), req.Name, group, weightType, req.ImageURL)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create exercise.")
		return
	}
	c.JSON(http.StatusCreated, ex)
}

// UpdateExercise replaces an existing exercise.
func (h *ExerciseHandler) UpdateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	group := domain.MuscleGroup(req.MuscleGroup)
	weightType := domain.WeightType(req.WeightType)
	if !group.Valid() || !weightType.Valid() {
		abortWithError(c, http.StatusBadRequest, "Unknown muscle group or weight type.")
		return
	}

	ex := domain.Exercise{
		ID:          c.Param("id"),
		Name:        req.Name,
		MuscleGroup: group,
		WeightType:  weightType,
		ImageURL:    req.ImageURL,
	}

	found, err := h.exercises.Update(c.Request.Context(), ex)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update exercise.")
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, "Exercise not found.")
		return
	}
	c.JSON(http.StatusOK, ex)
}

// DeleteExercise removes an exercise. No cascade: program slots and sessions
// that still reference it fall back to labels at render time.
func (h *ExerciseHandler) DeleteExercise(c *gin.Context) {
	if err := h.exercises.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete exercise.")
		return
	}
	c.Status(http.StatusNoContent)
}
