package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi/internal/db"
	"saarthi/internal/models"
)

func createJournalEntry(t *testing.T, r *gin.Engine, token, title string) string {
	w := doJSON(t, r, http.MethodPost, "/api/journal", token, gin.H{
		"title":   title,
		"content": "wrote about " + title,
		"mood":    "calm",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var entry models.JournalEntry
	decodeBody(t, w, &entry)
	require.NotEmpty(t, entry.ID)
	return entry.ID
}

func TestJournalRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/journal", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJournalListOwnOnly(t *testing.T) {
	r := setupServer(t)
	arjuna := registerUser(t, r, "arjuna")
	mira := registerUser(t, r, "mira")

	createJournalEntry(t, r, arjuna, "morning practice")
	createJournalEntry(t, r, mira, "evening reading")

	w := doJSON(t, r, http.MethodGet, "/api/journal", arjuna, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var entries []models.JournalEntry
	decodeBody(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, "morning practice", entries[0].Title)
}

func TestJournalCreateValidation(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "arjuna")

	w := doJSON(t, r, http.MethodPost, "/api/journal", token, gin.H{
		"title": "no content",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestJournalUpdateMergesFields(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "arjuna")
	id := createJournalEntry(t, r, token, "draft")

	w := doJSON(t, r, http.MethodPut, "/api/journal/"+id, token, gin.H{
		"mood": "grateful",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var entry models.JournalEntry
	require.NoError(t, db.DB.First(&entry, "id = ?", id).Error)
	assert.Equal(t, "grateful", entry.Mood)
	assert.Equal(t, "draft", entry.Title)
	assert.Equal(t, "wrote about draft", entry.Content)
}

func TestJournalUpdateForbiddenForOtherUser(t *testing.T) {
	r := setupServer(t)
	arjuna := registerUser(t, r, "arjuna")
	mira := registerUser(t, r, "mira")
	id := createJournalEntry(t, r, arjuna, "private")

	w := doJSON(t, r, http.MethodPut, "/api/journal/"+id, mira, gin.H{
		"title": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/journal/"+id, mira, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	db.DB.Model(&models.JournalEntry{}).Where("id = ?", id).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestJournalAdminCanModerate(t *testing.T) {
	r := setupServer(t)
	arjuna := registerUser(t, r, "arjuna")
	boss := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")
	id := createJournalEntry(t, r, arjuna, "flagged")

	w := doJSON(t, r, http.MethodDelete, "/api/journal/"+id, boss, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.DB.Model(&models.JournalEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestJournalDeleteOwn(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "arjuna")
	id := createJournalEntry(t, r, token, "ephemeral")

	w := doJSON(t, r, http.MethodDelete, "/api/journal/"+id, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/journal/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
