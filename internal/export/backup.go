package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"splitlog/internal/repository"
)

// BackupVersion is the per-collection envelope version written to backups.
const BackupVersion = 0

var (
	// ErrInvalidFormat reports a backup payload that is not a JSON object.
	ErrInvalidFormat = errors.New("invalid backup format")
	// ErrNoKnownCollections reports a backup with no recognized keys.
	ErrNoKnownCollections = errors.New("no valid collection keys found")
)

// CollectionBackup is the envelope each collection is wrapped in inside a
// backup document.
type CollectionBackup struct {
	State   json.RawMessage `json:"state"`
	Version int             `json:"version"`
}

// BackupService reads and writes full JSON backups directly against durable
// collection storage, bypassing the in-memory stores. Import therefore needs
// an app reload to take effect; backups are all-or-nothing per key, not
// transactional across keys.
type BackupService struct {
	docs repository.DocumentStore
}

// NewBackupService creates a backup service over the durable document store.
func NewBackupService(docs repository.DocumentStore) *BackupService {
	return &BackupService{docs: docs}
}

// Export produces the backup document: one envelope per persisted collection,
// keyed by collection name. Collections never persisted yet are omitted.
func (s *BackupService) Export(ctx context.Context) ([]byte, error) {
	out := map[string]CollectionBackup{}

	for _, name := range repository.CollectionNames() {
		doc, err := s.docs.Load(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("export collection %q: %w", name, err)
		}
		out[name] = CollectionBackup{State: doc.State, Version: BackupVersion}
	}

	return json.Marshal(out)
}

// Import overwrites durable storage verbatim for every recognized collection
// key in the payload and returns how many were restored. Unrecognized keys
// are ignored; nothing is merged or validated beyond "is this a known key
// with a state". A payload with no known keys restores nothing.
func (s *BackupService) Import(ctx context.Context, payload []byte) (int, error) {
	var incoming map[string]CollectionBackup
	if err := json.Unmarshal(payload, &incoming); err != nil {
		return 0, ErrInvalidFormat
	}

	known := map[string]bool{}
	for _, name := range repository.CollectionNames() {
		known[name] = true
	}

	restored := 0
	for _, name := range repository.CollectionNames() {
		entry, ok := incoming[name]
		if !ok || len(entry.State) == 0 {
			continue
		}
		if !known[name] {
			continue
		}
		if err := s.docs.Save(ctx, name, entry.State); err != nil {
			return restored, fmt.Errorf("restore collection %q: %w", name, err)
		}
		restored++
	}

	if restored == 0 {
		return 0, ErrNoKnownCollections
	}
	return restored, nil
}
