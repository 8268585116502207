package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aognev/go-notes-api/internal/config"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/models"
)

func newNoteStoreForTest(t *testing.T, handler http.Handler) NoteStore {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, err := NewNoteStore(config.Supabase{
		URL:            srv.URL,
		Key:            "anon-key",
		ServiceKey:     "service-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return store
}

func TestNoteStore_SelectNotes(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rest/v1/notes", r.URL.Path)

		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Equal(t, "eq.user-1", q.Get("user_id"))
		assert.Equal(t, "created_at.desc", q.Get("order"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))

		_, _ = w.Write([]byte(`[
			{"id": 2, "title": "Second", "user_id": "user-1"},
			{"id": 1, "title": "First",  "user_id": "user-1"}
		]`))
	}))

	rows, err := store.SelectNotes(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Second", rows[0]["title"])
	assert.Equal(t, "First", rows[1]["title"])
}

func TestNoteStore_SelectNotes_Empty(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))

	rows, err := store.SelectNotes(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestNoteStore_SelectNote_FiltersByIDAndOwner(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.7", q.Get("id"))
		assert.Equal(t, "eq.user-1", q.Get("user_id"))

		_, _ = w.Write([]byte(`[{"id": 7, "title": "Mine", "user_id": "user-1"}]`))
	}))

	rows, err := store.SelectNote(context.Background(), 7, "user-1")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mine", rows[0]["title"])
}

func TestNoteStore_InsertNote(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		var row models.NoteRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "Groceries", row["title"])
		assert.Equal(t, "user-1", row["user_id"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id": 7, "title": "Groceries", "user_id": "user-1"}]`))
	}))

	rows, err := store.InsertNote(context.Background(), models.NoteRow{
		"title":   "Groceries",
		"content": "milk, eggs",
		"user_id": "user-1",
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(7), rows[0]["id"])
}

func TestNoteStore_UpdateNote(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		q := r.URL.Query()
		assert.Equal(t, "eq.7", q.Get("id"))
		assert.Equal(t, "eq.user-1", q.Get("user_id"))

		var changes models.NoteRow
		require.NoError(t, json.NewDecoder(r.Body).Decode(&changes))
		assert.Equal(t, "A summary.", changes["summary"])

		_, _ = w.Write([]byte(`[{"id": 7, "summary": "A summary.", "user_id": "user-1"}]`))
	}))

	rows, err := store.UpdateNote(context.Background(), 7, "user-1", models.NoteRow{
		"summary": "A summary.",
	})

	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestNoteStore_DeleteNote(t *testing.T) {
	deleted := false
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)

		q := r.URL.Query()
		assert.Equal(t, "eq.7", q.Get("id"))
		assert.Equal(t, "eq.user-1", q.Get("user_id"))

		deleted = true
		w.WriteHeader(http.StatusNoContent)
	}))

	err := store.DeleteNote(context.Background(), 7, "user-1")

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestNoteStore_ProviderFailure(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"connection to database failed"}`))
	}))

	_, err := store.SelectNotes(context.Background(), "user-1")

	var providerErr *ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusServiceUnavailable, providerErr.StatusCode)
	assert.Equal(t, "connection to database failed", providerErr.Message)
}

func TestNoteStore_MalformedBody(t *testing.T) {
	store := newNoteStoreForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))

	_, err := store.SelectNotes(context.Background(), "user-1")
	assert.Error(t, err)
}
