package handlers

import (
	"net/http"
	"time"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/services"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ThoughtHandler struct {
	rotation *services.ThoughtService
}

func NewThoughtHandler() *ThoughtHandler {
	return &ThoughtHandler{
		rotation: services.NewThoughtService(db.DB),
	}
}

// Current returns today's featured thought, rotating lazily when stale.
func (h *ThoughtHandler) Current(c *gin.Context) {
	thought, err := h.rotation.Current(time.Now())
	if err == gorm.ErrRecordNotFound {
		JSONError(c, http.StatusNotFound, "No active thoughts available")
		return
	}
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load thought of the day")
		return
	}

	out := *thought
	c.JSON(http.StatusOK, gin.H{
		"id":           out.ID,
		"content":      out.Content,
		"content_html": utils.RenderMarkdown(out.Content),
		"author":       out.Author,
		"language":     out.Language,
		"category":     out.Category,
	})
}

// ---- Admin ----

func (h *ThoughtHandler) AdminList(c *gin.Context) {
	offset, limit := Pagination(c)

	var thoughts []models.ThoughtOfTheDay
	if err := db.DB.Order("created_at DESC").Offset(offset).Limit(limit).Find(&thoughts).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load thoughts")
		return
	}
	c.JSON(http.StatusOK, thoughts)
}

type createThoughtRequest struct {
	Content    string     `json:"content" binding:"required"`
	Author     string     `json:"author"`
	Language   string     `json:"language"`
	Category   string     `json:"category"`
	TargetDate *time.Time `json:"target_date"`
}

func (h *ThoughtHandler) Create(c *gin.Context) {
	var req createThoughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Content is required")
		return
	}

	thought := models.ThoughtOfTheDay{
		Content:    req.Content,
		Author:     req.Author,
		Language:   req.Language,
		Category:   req.Category,
		TargetDate: req.TargetDate,
		IsActive:   true,
	}
	if thought.Language == "" {
		thought.Language = "english"
	}
	if user := middleware.CurrentUser(c); user != nil {
		thought.CreatedBy = &user.ID
	}

	if err := db.DB.Create(&thought).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create thought")
		return
	}
	c.JSON(http.StatusOK, thought)
}

type updateThoughtRequest struct {
	Content    *string    `json:"content"`
	Author     *string    `json:"author"`
	Language   *string    `json:"language"`
	Category   *string    `json:"category"`
	TargetDate *time.Time `json:"target_date"`
	IsActive   *bool      `json:"is_active"`
}

func (h *ThoughtHandler) Update(c *gin.Context) {
	var req updateThoughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var thought models.ThoughtOfTheDay
	if err := db.DB.First(&thought, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Thought not found")
		return
	}

	if req.Content != nil {
		thought.Content = *req.Content
	}
	if req.Author != nil {
		thought.Author = *req.Author
	}
	if req.Language != nil {
		thought.Language = *req.Language
	}
	if req.Category != nil {
		thought.Category = *req.Category
	}
	if req.TargetDate != nil {
		thought.TargetDate = req.TargetDate
	}
	if req.IsActive != nil {
		thought.IsActive = *req.IsActive
	}

	if err := db.DB.Save(&thought).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update thought")
		return
	}
	c.JSON(http.StatusOK, thought)
}

func (h *ThoughtHandler) Delete(c *gin.Context) {
	var thought models.ThoughtOfTheDay
	if err := db.DB.First(&thought, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Thought not found")
		return
	}

	if err := db.DB.Delete(&thought).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete thought")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thought deleted"})
}

// Feature manually flags one thought as today's, clearing all others.
func (h *ThoughtHandler) Feature(c *gin.Context) {
	thought, err := h.rotation.Feature(c.Param("id"))
	if err == gorm.ErrRecordNotFound {
		JSONError(c, http.StatusNotFound, "Thought not found")
		return
	}
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to feature thought")
		return
	}
	c.JSON(http.StatusOK, thought)
}
