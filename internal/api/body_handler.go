package api

import (
	"net/http"
	"time"

	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// BodyHandler exposes body metrics.
type BodyHandler struct {
	metrics *store.MetricStore
}

// NewBodyHandler creates a new BodyHandler.
func NewBodyHandler(metrics *store.MetricStore) *BodyHandler {
	return &BodyHandler{metrics: metrics}
}

// AddMetricRequest records a measurement. At least one of weight/bellySize is
// required; the handler enforces it, the store does not.
type AddMetricRequest struct {
	RecordedAt *time.Time `json:"recordedAt"`
	Weight     *float64   `json:"weight" binding:"omitempty,gt=0"`
	BellySize  *float64   `json:"bellySize" binding:"omitempty,gt=0"`
}

// ListMetrics returns every metric, oldest first.
func (h *BodyHandler) ListMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.All())
}

// AddMetric records a new measurement.
func (h *BodyHandler) AddMetric(c *gin.Context) {
	var req AddMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if req.Weight == nil && req.BellySize == nil {
		abortWithError(c, http.StatusBadRequest, "At least one of weight or bellySize is required.")
		return
	}

	recordedAt := time.Now()
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}

	metric, err := h.metrics.Add(c.Request.Context(), recordedAt, req.Weight, req.BellySize)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to record metric.")
		return
	}
	c.JSON(http.StatusCreated, metric)
}

// DeleteMetric removes one measurement.
func (h *BodyHandler) DeleteMetric(c *gin.Context) {
	if err := h.metrics.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete metric.")
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearMetrics wipes every measurement. Destructive; the UI confirms before
// calling.
func (h *BodyHandler) ClearMetrics(c *gin.Context) {
	if err := h.metrics.Clear(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to clear metrics.")
		return
	}
	c.Status(http.StatusNoContent)
}
