package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"splitlog/internal/export"
	"splitlog/internal/storage"
	"splitlog/internal/store"

	"github.com/gin-gonic/gin"
)

// BackupHandler exposes the text export, the JSON backup surfaces, and the
// optional S3 archive for uploaded backups.
type BackupHandler struct {
	formatter *export.Formatter
	backups   *export.BackupService
	sessions  *store.SessionStore
	archive   storage.ArchiveStorage // nil when no bucket is configured
}

// NewBackupHandler creates a new BackupHandler. archive may be nil.
func NewBackupHandler(formatter *export.Formatter, backups *export.BackupService, sessions *store.SessionStore, archive storage.ArchiveStorage) *BackupHandler {
	return &BackupHandler{
		formatter: formatter,
		backups:   backups,
		sessions:  sessions,
		archive:   archive,
	}
}

// ExportText renders logged sessions as the compact text summary, oldest
// first. ?date=YYYY-MM-DD narrows it to a single day.
func (h *BackupHandler) ExportText(c *gin.Context) {
	sessions := h.sessions.All()
	if date := c.Query("date"); date != "" {
		sessions = h.sessions.SessionsByDate(date)
	}
	c.String(http.StatusOK, h.formatter.FormatSessions(sessions))
}

// ExportBackup streams the full JSON backup document.
func (h *BackupHandler) ExportBackup(c *gin.Context) {
	payload, err := h.backups.Export(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export backup.")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="splitlog-backup.json"`)
	c.Data(http.StatusOK, "application/json", payload)
}

// ImportBackup restores collections from an uploaded backup document. The
// write goes straight to durable storage; a restart is needed before the
// running stores see it.
func (h *BackupHandler) ImportBackup(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read request body.")
		return
	}

	restored, err := h.backups.Import(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, export.ErrInvalidFormat) || errors.Is(err, export.ErrNoKnownCollections) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to import backup.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restored":     restored,
		"reloadNeeded": true,
	})
}

// UploadArchive exports the current backup and stores it in the archive
// bucket under a timestamped key.
func (h *BackupHandler) UploadArchive(c *gin.Context) {
	if h.archive == nil {
		abortWithError(c, http.StatusNotImplemented, "Archive storage is not configured.")
		return
	}

	payload, err := h.backups.Export(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to export backup.")
		return
	}

	key := fmt.Sprintf("backups/splitlog-%s.json", time.Now().UTC().Format("20060102-150405"))
	if err := h.archive.PutArchive(c.Request.Context(), key, payload); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to upload archive.")
		return
	}

	url, err := h.archive.GeneratePresignedDownloadURL(c.Request.Context(), key, storage.DefaultPresignedURLExpiry)
	if err != nil {
		// Upload succeeded; the link is a convenience.
		c.JSON(http.StatusCreated, gin.H{"key": key})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key, "downloadUrl": url})
}

// RestoreArchive downloads an archived backup and imports it.
func (h *BackupHandler) RestoreArchive(c *gin.Context) {
	if h.archive == nil {
		abortWithError(c, http.StatusNotImplemented, "Archive storage is not configured.")
		return
	}

	key := c.Query("key")
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'key' is required.")
		return
	}

	payload, err := h.archive.GetArchive(c.Request.Context(), key)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to download archive.")
		return
	}

	restored, err := h.backups.Import(c.Request.Context(), payload)
	if err != nil {
		if errors.Is(err, export.ErrInvalidFormat) || errors.Is(err, export.ErrNoKnownCollections) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to import backup.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restored":     restored,
		"reloadNeeded": true,
	})
}
