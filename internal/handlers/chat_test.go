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

func TestCreateChatMessagePersistsPair(t *testing.T) {
	r := setupServer(t)
	token := registerUser(t, r, "arjuna")

	w := doJSON(t, r, http.MethodPost, "/api/chat/messages", token, gin.H{"content": "Om"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		UserMessage models.ChatMessage `json:"user_message"`
		AIMessage   models.ChatMessage `json:"ai_message"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "Om", resp.UserMessage.Content)
	assert.False(t, resp.UserMessage.IsAIResponse)
	assert.True(t, resp.AIMessage.IsAIResponse)
	assert.NotEmpty(t, resp.AIMessage.Content)

	// Exactly two rows persisted, even though the collaborator is unreachable
	var messages []models.ChatMessage
	require.NoError(t, db.DB.Order("created_at ASC").Find(&messages).Error)
	require.Len(t, messages, 2)
	assert.Equal(t, "Om", messages[0].Content)
	assert.False(t, messages[0].IsAIResponse)
	assert.True(t, messages[1].IsAIResponse)
}

func TestListChatMessagesOwnOnly(t *testing.T) {
	r := setupServer(t)
	arjuna := registerUser(t, r, "arjuna")
	mira := registerUser(t, r, "mira")

	w := doJSON(t, r, http.MethodPost, "/api/chat/messages", arjuna, gin.H{"content": "What is dharma?"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/chat/messages", mira, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var messages []models.ChatMessage
	decodeBody(t, w, &messages)
	assert.Empty(t, messages)

	w = doJSON(t, r, http.MethodGet, "/api/chat/messages", arjuna, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &messages)
	assert.Len(t, messages, 2)
}

func TestChatRequiresAuth(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/chat/messages", "", gin.H{"content": "Om"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
