package api

import (
	"net/http"

	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// TimerHandler exposes the durable rest timer configuration. Countdown state
// lives in the client and is never persisted.
type TimerHandler struct {
	timer *store.TimerStore
}

// NewTimerHandler creates a new TimerHandler.
func NewTimerHandler(timer *store.TimerStore) *TimerHandler {
	return &TimerHandler{timer: timer}
}

// SetTimerRequest updates the default rest duration.
type SetTimerRequest struct {
	DefaultDuration int `json:"defaultDuration" binding:"required,gt=0"`
}

// GetTimer returns the timer configuration.
func (h *TimerHandler) GetTimer(c *gin.Context) {
	c.JSON(http.StatusOK, h.timer.Config())
}

// SetTimer updates the default rest duration.
func (h *TimerHandler) SetTimer(c *gin.Context) {
	var req SetTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.timer.SetDefaultDuration(c.Request.Context(), req.DefaultDuration); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update timer.")
		return
	}
	c.Status(http.StatusNoContent)
}
