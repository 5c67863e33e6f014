package api

import (
	"net/http"

	"splitlog/internal/domain"
	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the workout session lifecycle.
type SessionHandler struct {
	sessions *store.SessionStore
	program  *store.ProgramStore
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *store.SessionStore, program *store.ProgramStore) *SessionHandler {
	return &SessionHandler{sessions: sessions, program: program}
}

// OpenSessionRequest asks for today's session on a given program day.
type OpenSessionRequest struct {
	DayNumber int `json:"dayNumber" binding:"required,min=1,max=7"`
}

// AddSetRequest logs one set against a slot. Reps must be positive; the
// multiplier only matters together with a weight.
type AddSetRequest struct {
	SlotID     string   `json:"slotId" binding:"required"`
	ExerciseID string   `json:"exerciseId" binding:"required"`
	Reps       int      `json:"reps" binding:"required,gt=0"`
	Weight     *float64 `json:"weight" binding:"omitempty,gte=0"`
	Multiplier *int     `json:"multiplier" binding:"omitempty,gt=0"`
}

// DeleteSessionsRequest names the sessions to delete. Destructive; the UI
// confirms before calling.
type DeleteSessionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// SetCurrentDayRequest moves the day cursor.
type SetCurrentDayRequest struct {
	Day int `json:"day" binding:"required,min=1,max=7"`
}

// OpenSession is the idempotent get-or-create: the session for (today,
// dayNumber), created on first visit with the day label snapshotted from the
// current program.
func (h *SessionHandler) OpenSession(c *gin.Context) {
	var req OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	label := ""
	if day, ok := h.program.Day(req.DayNumber); ok {
		label = day.Label
	}

	session, err := h.sessions.GetOrCreateSession(c.Request.Context(), req.DayNumber, label)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to open session.")
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListSessions returns sessions, optionally filtered by ?date=YYYY-MM-DD.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		sessions := h.sessions.SessionsByDate(date)
		if sessions == nil {
			sessions = []domain.WorkoutSession{}
		}
		c.JSON(http.StatusOK, sessions)
		return
	}
	c.JSON(http.StatusOK, h.sessions.All())
}

// CompletedDates returns distinct dates with a completed session.
func (h *SessionHandler) CompletedDates(c *gin.Context) {
	dates := h.sessions.CompletedDates()
	if dates == nil {
		dates = []string{}
	}
	c.JSON(http.StatusOK, dates)
}

// AddSet appends a logged set to a session.
func (h *SessionHandler) AddSet(c *gin.Context) {
	var req AddSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	set := domain.WorkoutSet{
		Reps:       req.Reps,
		Weight:     req.Weight,
		Multiplier: req.Multiplier,
	}

	created, found, err := h.sessions.AddSet(c.Request.Context(), c.Param("id"), req.SlotID, req.ExerciseID, set)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to add set.")
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, "Session not found.")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// RemoveSet deletes one set. The store drops the whole slot entry when its
// last set goes.
func (h *SessionHandler) RemoveSet(c *gin.Context) {
	err := h.sessions.RemoveSet(c.Request.Context(), c.Param("id"), c.Param("slotId"), c.Param("setId"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to remove set.")
		return
	}
	c.Status(http.StatusNoContent)
}

// Complete marks a session done.
func (h *SessionHandler) Complete(c *gin.Context) {
	if err := h.sessions.CompleteSession(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to complete session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// Uncomplete reopens a session. Safe on an already-open session.
func (h *SessionHandler) Uncomplete(c *gin.Context) {
	if err := h.sessions.UncompleteSession(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to reopen session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteSessions bulk-deletes sessions by ID.
func (h *SessionHandler) DeleteSessions(c *gin.Context) {
	var req DeleteSessionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	deleted, err := h.sessions.DeleteSessions(c.Request.Context(), req.IDs)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete sessions.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ClearSessions wipes the whole session list. Destructive; the UI confirms
// before calling.
func (h *SessionHandler) ClearSessions(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear sessions.")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCurrentDay returns the day cursor.
func (h *SessionHandler) GetCurrentDay(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"day": h.sessions.CurrentDay()})
}

// SetCurrentDay moves the day cursor.
func (h *SessionHandler) SetCurrentDay(c *gin.Context) {
	var req SetCurrentDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.sessions.SetCurrentDay(c.Request.Context(), req.Day); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to set current day.")
		return
	}
	c.Status(http.StatusNoContent)
}
