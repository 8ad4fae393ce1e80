package handlers

import (
	"net/http"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/services"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	gemini *services.GeminiService
}

func NewChatHandler() *ChatHandler {
	return &ChatHandler{
		gemini: services.GetGeminiService(),
	}
}

// List returns the caller's whole conversation, oldest first.
func (h *ChatHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var messages []models.ChatMessage
	if err := db.DB.Preload("User").
		Where("user_id = ?", user.ID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

type createChatMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type chatPairResponse struct {
	UserMessage models.ChatMessage `json:"user_message"`
	AIMessage   models.ChatMessage `json:"ai_message"`
}

// Create saves the user's message first, then asks the collaborator and
// saves its answer. The user's message survives even when the remote call
// fails; the answer degrades to a fallback string in that case.
func (h *ChatHandler) Create(c *gin.Context) {
	var req createChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Message cannot be empty")
		return
	}

	user := middleware.CurrentUser(c)
	userMessage := models.ChatMessage{
		Content:      req.Content,
		UserID:       user.ID,
		IsAIResponse: false,
	}
	if err := db.DB.Create(&userMessage).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to save message")
		return
	}

	answer := h.gemini.AskScripture(req.Content)

	aiMessage := models.ChatMessage{
		Content:      answer,
		UserID:       user.ID,
		IsAIResponse: true,
	}
	if err := db.DB.Create(&aiMessage).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to save AI response")
		return
	}

	c.JSON(http.StatusOK, chatPairResponse{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
	})
}
