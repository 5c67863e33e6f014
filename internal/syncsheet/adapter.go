package syncsheet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"splitlog/internal/domain"
	"splitlog/internal/repository"

	"github.com/sirupsen/logrus"
)

// Status classifies the outcome of a sync operation. Failures are reported,
// not thrown; a disconnected credential yields StatusSkipped so callers can
// show "not connected" without treating it as an error.
type Status string

const (
	StatusSuccess Status = "success"
	StatusSkipped Status = "skipped"
	StatusError   Status = "error"
)

// Result is the aggregate outcome of one sync operation.
type Result struct {
	Status            Status   `json:"status"`
	Message           string   `json:"message,omitempty"`
	Pushed            int      `json:"pushed,omitempty"`
	Deleted           int      `json:"deleted,omitempty"`
	PulledSessions    int      `json:"pulledSessions,omitempty"`
	PulledCollections int      `json:"pulledCollections,omitempty"`
	Failures          []string `json:"failures,omitempty"`
}

// SessionSource is the slice of the session store the adapter needs.
type SessionSource interface {
	All() []domain.WorkoutSession
	ReplaceAll(ctx context.Context, sessions []domain.WorkoutSession) error
}

// configCellOrder fixes the column order of the 4 config cells on the remote
// side: exercises, program, metrics, timer.
var configCellOrder = []string{
	repository.CollectionExercises,
	repository.CollectionProgram,
	repository.CollectionMetrics,
	repository.CollectionTimer,
}

// Adapter reconciles local state against the remote sheet. Layout contract:
// the sessions tab holds one row per session from row 2 down (A: session ID,
// B: JSON blob; row 1 is a header), the config tab holds the four collection
// blobs in cells A2:D2.
//
// While a sync is in flight local stores stay unlocked; each operation reads
// the latest local snapshot at call time. Two overlapping syncs race on the
// remote side with last-write-wins — a known, accepted hazard for a
// single-user tool, not a guarantee the adapter tries to defend against.
type Adapter struct {
	remote      Remote
	tokens      *TokenCache
	docs        repository.DocumentStore
	sessions    SessionSource
	sessionsTab string
	configTab   string
	log         *logrus.Entry
}

// NewAdapter wires the sync adapter. Tab names address the two fixed regions
// of the spreadsheet.
func NewAdapter(remote Remote, tokens *TokenCache, docs repository.DocumentStore, sessions SessionSource, sessionsTab, configTab string, log *logrus.Entry) *Adapter {
	return &Adapter{
		remote:      remote,
		tokens:      tokens,
		docs:        docs,
		sessions:    sessions,
		sessionsTab: sessionsTab,
		configTab:   configTab,
		log:         log,
	}
}

// Connected reports whether a usable credential is cached.
func (a *Adapter) Connected() bool {
	return a.tokens.Connected()
}

func (a *Adapter) notConnected() Result {
	return Result{Status: StatusSkipped, Message: "not connected"}
}

func (a *Adapter) sessionIDRange() string {
	return fmt.Sprintf("%s!A2:A", a.sessionsTab)
}

func (a *Adapter) sessionRowRange() string {
	return fmt.Sprintf("%s!A2:B", a.sessionsTab)
}

func (a *Adapter) configRange() string {
	return fmt.Sprintf("%s!A2:D2", a.configTab)
}

// PushSession upserts one session keyed by ID: overwrite the existing row
// when the ID is already on the sheet, append a new row otherwise. Row order
// carries no meaning for upserts.
func (a *Adapter) PushSession(ctx context.Context, session domain.WorkoutSession) Result {
	if !a.Connected() {
		return a.notConnected()
	}

	if err := a.pushSession(ctx, session); err != nil {
		syncFailures.WithLabelValues("push_session").Inc()
		a.log.WithError(err).WithField("session", session.ID).Warn("push session failed")
		return Result{Status: StatusError, Message: err.Error()}
	}
	sessionsPushed.Inc()
	return Result{Status: StatusSuccess, Pushed: 1}
}

func (a *Adapter) pushSession(ctx context.Context, session domain.WorkoutSession) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	row := []string{session.ID, string(blob)}

	ids, err := a.remote.ReadRange(ctx, a.sessionIDRange())
	if err != nil {
		return err
	}

	for i, cells := range ids {
		if len(cells) > 0 && cells[0] == session.ID {
			// Data row i sits at sheet row i+2 (1-based, after the header).
			rng := fmt.Sprintf("%s!A%d:B%d", a.sessionsTab, i+2, i+2)
			return a.remote.WriteRange(ctx, rng, [][]string{row})
		}
	}

	return a.remote.AppendRow(ctx, a.sessionRowRange(), row)
}

// DeleteSessions removes the given session rows from the sheet, best effort.
// Because deleting a row shifts all subsequent indices, the ID-to-row mapping
// is recomputed before every single delete and the highest remaining index is
// always taken first; indices are never cached across deletions.
func (a *Adapter) DeleteSessions(ctx context.Context, ids []string) Result {
	if !a.Connected() {
		return a.notConnected()
	}

	remaining := map[string]bool{}
	for _, id := range ids {
		if id != "" {
			remaining[id] = true
		}
	}

	result := Result{Status: StatusSuccess}
	for len(remaining) > 0 {
		rows, err := a.remote.ReadRange(ctx, a.sessionIDRange())
		if err != nil {
			syncFailures.WithLabelValues("delete_sessions").Inc()
			result.Status = StatusError
			result.Message = err.Error()
			return result
		}

		// Highest remaining row first: deletes below never shift rows above.
		targetID := ""
		targetIndex := -1
		for i, cells := range rows {
			if len(cells) > 0 && remaining[cells[0]] && i > targetIndex {
				targetIndex = i
				targetID = cells[0]
			}
		}
		if targetIndex < 0 {
			// Remaining IDs are not on the sheet; nothing left to delete.
			break
		}

		delete(remaining, targetID)
		// Data index -> absolute zero-based sheet row (header occupies row 0).
		if err := a.remote.DeleteRow(ctx, a.sessionsTab, targetIndex+1); err != nil {
			syncFailures.WithLabelValues("delete_sessions").Inc()
			a.log.WithError(err).WithField("session", targetID).Warn("remote row delete failed, continuing")
			result.Failures = append(result.Failures, targetID)
			continue
		}
		result.Deleted++
	}

	if len(result.Failures) > 0 && result.Deleted == 0 {
		result.Status = StatusError
		result.Message = "all row deletions failed"
	}
	return result
}

// PushConfig overwrites the four remote config cells with the current
// serialized state of the four collections. Unconditional, no diffing.
func (a *Adapter) PushConfig(ctx context.Context) Result {
	if !a.Connected() {
		return a.notConnected()
	}

	cells := make([]string, len(configCellOrder))
	for i, name := range configCellOrder {
		doc, err := a.docs.Load(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				cells[i] = ""
				continue
			}
			syncFailures.WithLabelValues("push_config").Inc()
			return Result{Status: StatusError, Message: fmt.Sprintf("load %s: %v", name, err)}
		}
		cells[i] = string(doc.State)
	}

	if err := a.remote.WriteRange(ctx, a.configRange(), [][]string{cells}); err != nil {
		syncFailures.WithLabelValues("push_config").Inc()
		return Result{Status: StatusError, Message: err.Error()}
	}
	return Result{Status: StatusSuccess}
}

// PushAll pushes the config cells plus every local session, continuing past
// individual session failures and reporting the aggregate outcome.
func (a *Adapter) PushAll(ctx context.Context) Result {
	if !a.Connected() {
		return a.notConnected()
	}

	result := Result{Status: StatusSuccess}

	if cfg := a.PushConfig(ctx); cfg.Status == StatusError {
		result.Failures = append(result.Failures, "config: "+cfg.Message)
	}

	for _, session := range a.sessions.All() {
		if err := a.pushSession(ctx, session); err != nil {
			syncFailures.WithLabelValues("push_all").Inc()
			a.log.WithError(err).WithField("session", session.ID).Warn("push failed, continuing")
			result.Failures = append(result.Failures, session.ID)
			continue
		}
		sessionsPushed.Inc()
		result.Pushed++
	}

	if len(result.Failures) > 0 {
		result.Message = fmt.Sprintf("%d push failures", len(result.Failures))
		if result.Pushed == 0 {
			result.Status = StatusError
		}
	}
	return result
}

// PullAll reads the four config cells and the full session row range.
// Non-empty config cells overwrite the matching local collection; empty cells
// leave the local collection untouched. The session list is replaced
// wholesale only after every remote row parsed cleanly, so a failed or
// garbled pull never corrupts local state. The current day cursor is local
// only and survives the pull.
func (a *Adapter) PullAll(ctx context.Context) Result {
	if !a.Connected() {
		return a.notConnected()
	}

	result := Result{Status: StatusSuccess}

	cells, err := a.remote.ReadRange(ctx, a.configRange())
	if err != nil {
		syncFailures.WithLabelValues("pull_all").Inc()
		return Result{Status: StatusError, Message: err.Error()}
	}
	var row []string
	if len(cells) > 0 {
		row = cells[0]
	}
	for i, name := range configCellOrder {
		if i >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[i])
		if cell == "" {
			continue
		}
		if !json.Valid([]byte(cell)) {
			a.log.WithField("collection", name).Warn("remote config cell is not valid JSON, skipping")
			result.Failures = append(result.Failures, name)
			continue
		}
		if err := a.docs.Save(ctx, name, json.RawMessage(cell)); err != nil {
			syncFailures.WithLabelValues("pull_all").Inc()
			return Result{Status: StatusError, Message: fmt.Sprintf("restore %s: %v", name, err)}
		}
		collectionsPulled.Inc()
		result.PulledCollections++
	}

	rows, err := a.remote.ReadRange(ctx, a.sessionRowRange())
	if err != nil {
		syncFailures.WithLabelValues("pull_all").Inc()
		result.Status = StatusError
		result.Message = err.Error()
		return result
	}

	sessions := make([]domain.WorkoutSession, 0, len(rows))
	for i, cells := range rows {
		if len(cells) < 2 || strings.TrimSpace(cells[0]) == "" {
			continue
		}
		var session domain.WorkoutSession
		if err := json.Unmarshal([]byte(cells[1]), &session); err != nil {
			syncFailures.WithLabelValues("pull_all").Inc()
			result.Status = StatusError
			result.Message = fmt.Sprintf("parse session row %d: %v", i+2, err)
			return result
		}
		sessions = append(sessions, session)
	}

	if err := a.sessions.ReplaceAll(ctx, sessions); err != nil {
		syncFailures.WithLabelValues("pull_all").Inc()
		result.Status = StatusError
		result.Message = err.Error()
		return result
	}
	sessionsPulled.Add(float64(len(sessions)))
	result.PulledSessions = len(sessions)
	return result
}
