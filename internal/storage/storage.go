package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned download URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ArchiveStorage is the object storage contract for backup archives: upload a
// JSON backup blob, fetch one back, hand out a temporary download link,
// delete old archives.
type ArchiveStorage interface {
	// PutArchive uploads a backup document under the given object key.
	PutArchive(ctx context.Context, objectKey string, payload []byte) error

	// GetArchive downloads the backup document stored under objectKey.
	GetArchive(ctx context.Context, objectKey string) ([]byte, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for the archive directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteArchive removes an archive from the storage provider.
	DeleteArchive(ctx context.Context, objectKey string) error
}
