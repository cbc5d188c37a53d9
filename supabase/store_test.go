package supabase

import (
	"clementus360/growth-tracker/types"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "5b8e7c2a-1d3f-4e6a-9b0c-2f4d6e8a1c3e"

// newTestStore points a Store at a fake PostgREST endpoint.
func newTestStore(t *testing.T, handler http.HandlerFunc) *Store {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("SUPABASE_URL", server.URL)
	t.Setenv("SUPABASE_KEY", "anon-key")
	client, err := NewClient("Bearer user-token")
	require.NoError(t, err)
	return NewStore(client, testUserID)
}

func TestNewClient_RequiresEnv(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "")
	_, err := NewClient("token")
	assert.ErrorContains(t, err, "SUPABASE_URL or SUPABASE_KEY is missing")
}

func TestInsertMoodEntry(t *testing.T) {
	var sent []map[string]any
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/mood_tracking"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &sent))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		sent[0]["id"] = "mood-1"
		_ = json.NewEncoder(w).Encode(sent)
	})

	trackedAt := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	created, err := store.InsertMoodEntry(types.MoodEntry{MoodScore: 8, TrackedAt: trackedAt})
	require.NoError(t, err)
	assert.Equal(t, "mood-1", created.ID)
	assert.Equal(t, testUserID, created.UserID)
	assert.Equal(t, 8, created.MoodScore)

	require.Len(t, sent, 1)
	assert.Equal(t, testUserID, sent[0]["user_id"])
	assert.NotContains(t, sent[0], "energy_level")
}

func TestListMoodEntries_Chronological(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.RawQuery
		assert.Contains(t, query, "user_id=eq."+testUserID)
		assert.Contains(t, query, "tracked_at.desc")
		assert.Contains(t, query, "limit=2")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"id":"m3","user_id":"`+testUserID+`","mood_score":3,"tracked_at":"2025-04-03T08:00:00Z"},
			{"id":"m2","user_id":"`+testUserID+`","mood_score":2,"tracked_at":"2025-04-02T08:00:00Z"}
		]`)
	})

	entries, err := store.ListMoodEntries(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "m2", entries[0].ID)
	assert.Equal(t, "m3", entries[1].ID)
}

func TestList_DecodeFailureIsReadError(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"not":"an array"}`)
	})

	_, err := store.ListWheelAssessments()
	var readErr *types.StoreReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "wheel_of_life", readErr.Collection)
}

func TestInsertSession_RejectsNonUUID(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `[{"id":"not-a-uuid","user_id":"`+testUserID+`","persona_type":"coach","status":"in_progress","started_at":"2025-04-02T08:00:00Z"}]`)
	})

	_, err := store.InsertSession(types.Session{PersonaType: "coach", Status: "in_progress", StartedAt: time.Now()})
	var writeErr *types.StoreWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "insert", writeErr.Op)
}

func TestCompleteSession_ValidatesID(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	err := store.CompleteSession("abc", types.SessionCompletion{Status: "completed"})
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestCompleteSession_NoRowIsNotFound(t *testing.T) {
	store := newTestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[]`)
	})

	err := store.CompleteSession("0b4f8c9e-2a1d-4c3b-8e7f-6a5d4c3b2a19", types.SessionCompletion{Status: "completed", DurationSeconds: 60})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestOwnerColumn(t *testing.T) {
	assert.Equal(t, "id", ownerColumn("profiles"))
	assert.Equal(t, "user_id", ownerColumn("ai_sessions"))
}
