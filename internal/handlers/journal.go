package handlers

import (
	"net/http"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct{}

func NewJournalHandler() *JournalHandler {
	return &JournalHandler{}
}

func (h *JournalHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var entries []models.JournalEntry
	if err := db.DB.Where("author_id = ?", user.ID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load journal")
		return
	}
	c.JSON(http.StatusOK, entries)
}

type createJournalRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required,max=2000"`
	Mood    string `json:"mood"`
}

func (h *JournalHandler) Create(c *gin.Context) {
	var req createJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Title and content are required")
		return
	}

	user := middleware.CurrentUser(c)
	entry := models.JournalEntry{
		Title:    req.Title,
		Content:  req.Content,
		Mood:     req.Mood,
		AuthorID: user.ID,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

type updateJournalRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Mood    *string `json:"mood"`
}

// Update merges the set fields into the entry. Owner or admin only.
func (h *JournalHandler) Update(c *gin.Context) {
	var req updateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var entry models.JournalEntry
	if err := db.DB.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Journal entry not found")
		return
	}

	user := middleware.CurrentUser(c)
	if entry.AuthorID != user.ID && !user.IsAdmin {
		JSONError(c, http.StatusForbidden, "Not allowed to modify this entry")
		return
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Content != nil {
		entry.Content = *req.Content
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}
	if err := db.DB.Save(&entry).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *JournalHandler) Delete(c *gin.Context) {
	var entry models.JournalEntry
	if err := db.DB.First(&entry, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Journal entry not found")
		return
	}

	user := middleware.CurrentUser(c)
	if entry.AuthorID != user.ID && !user.IsAdmin {
		JSONError(c, http.StatusForbidden, "Not allowed to delete this entry")
		return
	}

	if err := db.DB.Delete(&entry).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}
