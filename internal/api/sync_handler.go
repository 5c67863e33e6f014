package api

import (
	"net/http"
	"time"

	"splitlog/internal/domain"
	"splitlog/internal/store"
	"splitlog/internal/syncsheet"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the spreadsheet sync adapter. The OAuth popup itself
// happens in the UI; this side only caches the resulting bearer token.
type SyncHandler struct {
	adapter  *syncsheet.Adapter
	tokens   *syncsheet.TokenCache
	sessions *store.SessionStore
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(adapter *syncsheet.Adapter, tokens *syncsheet.TokenCache, sessions *store.SessionStore) *SyncHandler {
	return &SyncHandler{adapter: adapter, tokens: tokens, sessions: sessions}
}

func (h *SyncHandler) syncSession(c *gin.Context) (domain.WorkoutSession, bool) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		abortWithError(c, http.StatusNotFound, "Session not found.")
		return domain.WorkoutSession{}, false
	}
	return session, true
}

// ConnectRequest delivers the token acquired by the UI's OAuth flow.
type ConnectRequest struct {
	AccessToken string `json:"accessToken" binding:"required"`
	ExpiresIn   int    `json:"expiresIn" binding:"required,gt=0"` // seconds
}

// DeleteRemoteRequest names the remote session rows to delete.
type DeleteRemoteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// Connect caches the credential.
func (h *SyncHandler) Connect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	h.tokens.Set(req.AccessToken, time.Duration(req.ExpiresIn)*time.Second)
	c.JSON(http.StatusOK, gin.H{"connected": true})
}

// Disconnect drops the cached credential.
func (h *SyncHandler) Disconnect(c *gin.Context) {
	h.tokens.Clear()
	c.Status(http.StatusNoContent)
}

// Status reports whether sync is currently usable.
func (h *SyncHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"connected": h.adapter.Connected()})
}

// PushAll pushes the config cells and every local session.
func (h *SyncHandler) PushAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.adapter.PushAll(c.Request.Context()))
}

// PullAll pulls the config cells and the full remote session list.
func (h *SyncHandler) PullAll(c *gin.Context) {
	c.JSON(http.StatusOK, h.adapter.PullAll(c.Request.Context()))
}

// PushSession pushes one session by ID.
func (h *SyncHandler) PushSession(c *gin.Context) {
	session, ok := h.syncSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.adapter.PushSession(c.Request.Context(), session))
}

// DeleteRemoteSessions removes session rows from the sheet, best effort.
func (h *SyncHandler) DeleteRemoteSessions(c *gin.Context) {
	var req DeleteRemoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, h.adapter.DeleteSessions(c.Request.Context(), req.IDs))
}
