package repository

import (
	"context"
	"encoding/json"
	"time"
)

// Names of the durable collections. Each collection is persisted as a single
// versioned JSON document; the session store, the backup formatter and the
// sheet sync adapter all address collections by these names.
const (
	CollectionWorkouts  = "workouts"
	CollectionExercises = "exercises"
	CollectionProgram   = "program"
	CollectionMetrics   = "metrics"
	CollectionTimer     = "timer"
)

// CollectionNames returns every known collection name in the fixed order used
// by the backup document and the remote config cells
// (workouts first, then exercises, program, metrics, timer).
func CollectionNames() []string {
	return []string{
		CollectionWorkouts,
		CollectionExercises,
		CollectionProgram,
		CollectionMetrics,
		CollectionTimer,
	}
}

// Error constants for the repository layer.
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// Document is one named collection blob as persisted.
type Document struct {
	Name      string          `json:"name"`
	Version   int             `json:"version"`
	State     json.RawMessage `json:"state"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// DocumentStore is the narrow durable key→document contract the stores are
// built on. State is kept as raw JSON so backup import/export and sheet sync
// can move collection blobs around without re-encoding them.
type DocumentStore interface {
	// Load returns the document stored under name, or ErrNotFound.
	Load(ctx context.Context, name string) (*Document, error)
	// Save upserts the document under name, replacing any previous state.
	Save(ctx context.Context, name string, state json.RawMessage) error
}
