package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a short unique string ID for entities (exercises, slots,
// sessions, sets, metrics). Only uniqueness matters; no ordering is implied.
func NewID() string {
	raw := uuid.NewString()
	// First two UUID segments are plenty for a single-user data set and keep
	// spreadsheet cells and URLs readable.
	parts := strings.SplitN(raw, "-", 3)
	return parts[0] + parts[1]
}
