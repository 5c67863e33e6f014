package syncsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"splitlog/internal/domain"
	"splitlog/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// fakeSheet simulates the two-tab spreadsheet the adapter talks to: a
// sessions tab with one [id, blob] row per session below the header, and a
// config tab with four cells. DeleteRow shifts rows exactly like the real
// sheet does.
type fakeSheet struct {
	sessionRows [][]string // data rows only; the header is implicit at index 0
	configRow   []string
	failDeletes map[string]bool // session IDs whose row refuses to delete
	deleted     []string        // session IDs in deletion order
}

func (f *fakeSheet) ReadRange(_ context.Context, rng string) ([][]string, error) {
	switch {
	case strings.HasSuffix(rng, "!A2:A"):
		out := make([][]string, len(f.sessionRows))
		for i, row := range f.sessionRows {
			out[i] = row[:1]
		}
		return out, nil
	case strings.HasSuffix(rng, "!A2:B"):
		return f.sessionRows, nil
	case strings.HasSuffix(rng, "!A2:D2"):
		if f.configRow == nil {
			return nil, nil
		}
		return [][]string{f.configRow}, nil
	}
	return nil, fmt.Errorf("unexpected range %q", rng)
}

func (f *fakeSheet) WriteRange(_ context.Context, rng string, values [][]string) error {
	if strings.HasSuffix(rng, "!A2:D2") {
		f.configRow = values[0]
		return nil
	}

	// Single session row write, e.g. "sessions!A5:B5".
	var start, end int
	tab := rng[:strings.Index(rng, "!")]
	if _, err := fmt.Sscanf(rng[len(tab):], "!A%d:B%d", &start, &end); err != nil {
		return fmt.Errorf("unexpected range %q", rng)
	}
	f.sessionRows[start-2] = values[0]
	return nil
}

func (f *fakeSheet) AppendRow(_ context.Context, _ string, row []string) error {
	f.sessionRows = append(f.sessionRows, row)
	return nil
}

func (f *fakeSheet) DeleteRow(_ context.Context, _ string, rowIndex int) error {
	i := rowIndex - 1 // header occupies sheet row 0
	if i < 0 || i >= len(f.sessionRows) {
		return fmt.Errorf("row index %d out of range", rowIndex)
	}
	id := f.sessionRows[i][0]
	if f.failDeletes[id] {
		return fmt.Errorf("delete of %s refused", id)
	}
	f.deleted = append(f.deleted, id)
	f.sessionRows = append(f.sessionRows[:i], f.sessionRows[i+1:]...)
	return nil
}

func (f *fakeSheet) sessionIDs() []string {
	out := make([]string, len(f.sessionRows))
	for i, row := range f.sessionRows {
		out[i] = row[0]
	}
	return out
}

type fakeSessions struct {
	sessions []domain.WorkoutSession
	replaced bool
}

func (f *fakeSessions) All() []domain.WorkoutSession {
	return f.sessions
}

func (f *fakeSessions) ReplaceAll(_ context.Context, sessions []domain.WorkoutSession) error {
	f.sessions = sessions
	f.replaced = true
	return nil
}

type memDocs struct {
	data map[string]json.RawMessage
}

func newMemDocs() *memDocs {
	return &memDocs{data: map[string]json.RawMessage{}}
}

func (m *memDocs) Load(_ context.Context, name string) (*repository.Document, error) {
	state, ok := m.data[name]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &repository.Document{Name: name, State: state}, nil
}

func (m *memDocs) Save(_ context.Context, name string, state json.RawMessage) error {
	m.data[name] = append(json.RawMessage(nil), state...)
	return nil
}

func connectedTokens() *TokenCache {
	tokens := NewTokenCache()
	tokens.Set("test-token", time.Hour)
	return tokens
}

func quietLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func newTestAdapter(sheet *fakeSheet, docs *memDocs, sessions *fakeSessions, tokens *TokenCache) *Adapter {
	return NewAdapter(sheet, tokens, docs, sessions, "sessions", "config", quietLog())
}

func sessionRow(t *testing.T, session domain.WorkoutSession) []string {
	t.Helper()
	blob, err := json.Marshal(session)
	require.NoError(t, err)
	return []string{session.ID, string(blob)}
}

func TestDisconnectedSyncIsSkipped(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(&fakeSheet{}, newMemDocs(), &fakeSessions{}, NewTokenCache())

	for _, result := range []Result{
		a.PushSession(ctx, domain.WorkoutSession{ID: "s1"}),
		a.DeleteSessions(ctx, []string{"s1"}),
		a.PushConfig(ctx),
		a.PushAll(ctx),
		a.PullAll(ctx),
	} {
		require.Equal(t, StatusSkipped, result.Status)
		require.Equal(t, "not connected", result.Message)
	}
}

func TestPushSessionAppendsThenOverwrites(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{}
	a := newTestAdapter(sheet, newMemDocs(), &fakeSessions{}, connectedTokens())

	session := domain.WorkoutSession{ID: "sess-1", Date: "2026-03-14", DayNumber: 1}
	result := a.PushSession(ctx, session)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 1, result.Pushed)
	require.Equal(t, []string{"sess-1"}, sheet.sessionIDs())

	// Same ID again overwrites the row in place instead of appending.
	session.Completed = true
	result = a.PushSession(ctx, session)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, []string{"sess-1"}, sheet.sessionIDs())

	var onSheet domain.WorkoutSession
	require.NoError(t, json.Unmarshal([]byte(sheet.sessionRows[0][1]), &onSheet))
	require.True(t, onSheet.Completed)
}

func TestDeleteSessionsSurvivesRowShifting(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{
		sessionRows: [][]string{
			{"sess-a", "{}"},
			{"sess-b", "{}"},
			{"sess-c", "{}"},
			{"sess-d", "{}"},
		},
	}
	a := newTestAdapter(sheet, newMemDocs(), &fakeSessions{}, connectedTokens())

	// Deleting two adjacent rows would hit the wrong row if the adapter
	// cached indices across deletions.
	result := a.DeleteSessions(ctx, []string{"sess-b", "sess-c"})
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 2, result.Deleted)
	require.Empty(t, result.Failures)
	require.Equal(t, []string{"sess-a", "sess-d"}, sheet.sessionIDs())

	// Highest remaining row went first.
	require.Equal(t, []string{"sess-c", "sess-b"}, sheet.deleted)
}

func TestDeleteSessionsIgnoresUnknownIDs(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{sessionRows: [][]string{{"sess-a", "{}"}}}
	a := newTestAdapter(sheet, newMemDocs(), &fakeSessions{}, connectedTokens())

	result := a.DeleteSessions(ctx, []string{"sess-a", "never-pushed"})
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 1, result.Deleted)
	require.Empty(t, sheet.sessionIDs())
}

func TestDeleteSessionsContinuesPastFailures(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{
		sessionRows: [][]string{
			{"sess-a", "{}"},
			{"sess-b", "{}"},
			{"sess-c", "{}"},
		},
		failDeletes: map[string]bool{"sess-b": true},
	}
	a := newTestAdapter(sheet, newMemDocs(), &fakeSessions{}, connectedTokens())

	result := a.DeleteSessions(ctx, []string{"sess-a", "sess-b", "sess-c"})
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 2, result.Deleted)
	require.Equal(t, []string{"sess-b"}, result.Failures)
	require.Equal(t, []string{"sess-b"}, sheet.sessionIDs())
}

func TestPushAllWritesConfigAndEverySession(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{}
	docs := newMemDocs()
	require.NoError(t, docs.Save(ctx, repository.CollectionExercises, json.RawMessage(`{"exercises":[]}`)))
	require.NoError(t, docs.Save(ctx, repository.CollectionTimer, json.RawMessage(`{"defaultDuration":90}`)))

	sessions := &fakeSessions{sessions: []domain.WorkoutSession{
		{ID: "sess-1", Date: "2026-03-14", DayNumber: 1},
		{ID: "sess-2", Date: "2026-03-15", DayNumber: 2},
	}}
	a := newTestAdapter(sheet, docs, sessions, connectedTokens())

	result := a.PushAll(ctx)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 2, result.Pushed)
	require.Empty(t, result.Failures)

	require.Equal(t, []string{"sess-1", "sess-2"}, sheet.sessionIDs())

	// Config cells follow the fixed order; never-persisted collections
	// leave their cell empty.
	require.Equal(t, `{"exercises":[]}`, sheet.configRow[0])
	require.Equal(t, "", sheet.configRow[1])
	require.Equal(t, "", sheet.configRow[2])
	require.Equal(t, `{"defaultDuration":90}`, sheet.configRow[3])
}

func TestPullAllRestoresCollectionsAndSessions(t *testing.T) {
	ctx := context.Background()

	remote := []domain.WorkoutSession{
		{ID: "sess-1", Date: "2026-03-14", DayNumber: 1, DayLabel: "PUSH"},
		{ID: "sess-2", Date: "2026-03-15", DayNumber: 2, DayLabel: "PULL", Completed: true},
	}
	sheet := &fakeSheet{
		sessionRows: [][]string{
			sessionRow(t, remote[0]),
			sessionRow(t, remote[1]),
		},
		// Only two of the four config cells are populated.
		configRow: []string{`{"exercises":[]}`, "", "", `{"defaultDuration":120}`},
	}
	docs := newMemDocs()
	sessions := &fakeSessions{}
	a := newTestAdapter(sheet, docs, sessions, connectedTokens())

	result := a.PullAll(ctx)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 2, result.PulledCollections)
	require.Equal(t, 2, result.PulledSessions)

	require.True(t, sessions.replaced)
	require.Equal(t, remote, sessions.sessions)

	require.JSONEq(t, `{"defaultDuration":120}`, string(docs.data[repository.CollectionTimer]))

	// Empty cells left the local collections alone.
	_, hasProgram := docs.data[repository.CollectionProgram]
	require.False(t, hasProgram)
	_, hasMetrics := docs.data[repository.CollectionMetrics]
	require.False(t, hasMetrics)
}

func TestPullAllRejectsGarbledSessionRows(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{
		sessionRows: [][]string{
			sessionRow(t, domain.WorkoutSession{ID: "sess-1"}),
			{"sess-2", "not json at all"},
		},
	}
	sessions := &fakeSessions{sessions: []domain.WorkoutSession{{ID: "local-only"}}}
	a := newTestAdapter(sheet, newMemDocs(), sessions, connectedTokens())

	result := a.PullAll(ctx)
	require.Equal(t, StatusError, result.Status)

	// The local session list was not touched.
	require.False(t, sessions.replaced)
	require.Equal(t, "local-only", sessions.sessions[0].ID)
}

func TestPullAllSkipsInvalidConfigCells(t *testing.T) {
	ctx := context.Background()
	sheet := &fakeSheet{
		configRow: []string{"{broken", "", "", `{"defaultDuration":60}`},
	}
	docs := newMemDocs()
	a := newTestAdapter(sheet, docs, &fakeSessions{}, connectedTokens())

	result := a.PullAll(ctx)
	require.Equal(t, StatusSuccess, result.Status)
	require.Equal(t, 1, result.PulledCollections)
	require.Equal(t, []string{repository.CollectionExercises}, result.Failures)

	_, hasExercises := docs.data[repository.CollectionExercises]
	require.False(t, hasExercises)
}
