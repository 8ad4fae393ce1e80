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

func seedEmotion(t *testing.T, name string) *models.Emotion {
	emotion := &models.Emotion{Name: name, DisplayName: name, Color: "#FFD700", IsActive: true}
	require.NoError(t, db.DB.Create(emotion).Error)
	return emotion
}

func seedVerse(t *testing.T, emotionID string, active bool) *models.Verse {
	verse := &models.Verse{
		EmotionID:   emotionID,
		Sanskrit:    "स",
		Hindi:       "ह",
		English:     "e",
		Explanation: "x",
	}
	require.NoError(t, db.DB.Create(verse).Error)
	if !active {
		// false is the column zero value; gorm skips it on create
		require.NoError(t, db.DB.Model(verse).Update("is_active", false).Error)
		verse.IsActive = false
	}
	return verse
}

func TestRandomVerseNoVerses(t *testing.T) {
	r := setupServer(t)
	emotion := seedEmotion(t, "lonely")

	w := doJSON(t, r, http.MethodGet, "/api/krishna-path/verses/"+emotion.ID+"/random", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRandomVerseOnlyActiveAndMatching(t *testing.T) {
	r := setupServer(t)
	peace := seedEmotion(t, "peace")
	anger := seedEmotion(t, "angry")

	active := seedVerse(t, peace.ID, true)
	seedVerse(t, peace.ID, false)  // inactive, never returned
	seedVerse(t, anger.ID, true)   // other emotion, never returned

	for i := 0; i < 10; i++ {
		w := doJSON(t, r, http.MethodGet, "/api/krishna-path/verses/"+peace.ID+"/random", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var verse struct {
			ID        string `json:"id"`
			EmotionID string `json:"emotion_id"`
			IsActive  bool   `json:"is_active"`
		}
		decodeBody(t, w, &verse)
		assert.Equal(t, active.ID, verse.ID)
		assert.Equal(t, peace.ID, verse.EmotionID)
		assert.True(t, verse.IsActive)
	}
}

func TestVerseCount(t *testing.T) {
	r := setupServer(t)
	peace := seedEmotion(t, "peace")
	seedVerse(t, peace.ID, true)
	seedVerse(t, peace.ID, true)
	seedVerse(t, peace.ID, false)

	w := doJSON(t, r, http.MethodGet, "/api/krishna-path/verses/count/"+peace.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int64 `json:"count"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, int64(2), resp.Count)
}

func TestCreateInteractionAnonymous(t *testing.T) {
	r := setupServer(t)
	peace := seedEmotion(t, "peace")
	verse := seedVerse(t, peace.ID, true)

	w := doJSON(t, r, http.MethodPost, "/api/krishna-path/interactions", "", gin.H{
		"emotion_id": peace.ID,
		"verse_id":   verse.ID,
		"session_id": "anon-session",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var interaction models.Interaction
	require.NoError(t, db.DB.First(&interaction).Error)
	assert.Nil(t, interaction.UserID)
	assert.Equal(t, "anon-session", interaction.SessionID)
}

func TestCreateInteractionAttributed(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "arjuna")
	peace := seedEmotion(t, "peace")
	verse := seedVerse(t, peace.ID, true)

	w := doJSON(t, r, http.MethodPost, "/api/krishna-path/interactions", token, gin.H{
		"emotion_id": peace.ID,
		"verse_id":   verse.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var interaction models.Interaction
	require.NoError(t, db.DB.First(&interaction).Error)
	require.NotNil(t, interaction.UserID)
}

func TestDeleteEmotionWithVersesConflicts(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")

	peace := seedEmotion(t, "peace")
	seedVerse(t, peace.ID, true)

	w := doJSON(t, r, http.MethodDelete, "/api/krishna-path/admin/emotions/"+peace.ID, token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Nothing was deleted
	var emotionCount, verseCount int64
	db.DB.Model(&models.Emotion{}).Count(&emotionCount)
	db.DB.Model(&models.Verse{}).Count(&verseCount)
	assert.Equal(t, int64(1), emotionCount)
	assert.Equal(t, int64(1), verseCount)
}

func TestDeleteEmotionForce(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")

	peace := seedEmotion(t, "peace")
	seedVerse(t, peace.ID, true)
	seedVerse(t, peace.ID, false)

	w := doJSON(t, r, http.MethodDelete, "/api/krishna-path/admin/emotions/"+peace.ID+"?force=true", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var emotionCount, verseCount int64
	db.DB.Model(&models.Emotion{}).Count(&emotionCount)
	db.DB.Model(&models.Verse{}).Where("emotion_id = ?", peace.ID).Count(&verseCount)
	assert.Equal(t, int64(0), emotionCount)
	assert.Equal(t, int64(0), verseCount)
}

func TestCreateVerseUnknownEmotion(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")

	w := doJSON(t, r, http.MethodPost, "/api/krishna-path/admin/verses", token, gin.H{
		"emotion_id":  "no-such-emotion",
		"sanskrit":    "s",
		"hindi":       "h",
		"english":     "e",
		"explanation": "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateVerseMovesEmotion(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")

	peace := seedEmotion(t, "peace")
	joy := seedEmotion(t, "joy")
	verse := seedVerse(t, peace.ID, true)

	w := doJSON(t, r, http.MethodPut, "/api/krishna-path/admin/verses/"+verse.ID, token, gin.H{
		"emotion_id": joy.ID,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Verse
	require.NoError(t, db.DB.First(&updated, "id = ?", verse.ID).Error)
	assert.Equal(t, joy.ID, updated.EmotionID)
	// Untouched fields survive the partial update
	assert.Equal(t, "e", updated.English)
}

func TestCreateEmotionDuplicateName(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "boss")
	promoteAdmin(t, "boss")

	seedEmotion(t, "peace")

	w := doJSON(t, r, http.MethodPost, "/api/krishna-path/admin/emotions", token, gin.H{
		"name":         "peace",
		"display_name": "Peace Again",
		"color":        "#000000",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
