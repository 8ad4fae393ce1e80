package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const emotionsCacheKey = "krishna:emotions:active"

// KrishnaHandler serves the emotion/verse journey: public selection plus
// admin curation.
type KrishnaHandler struct{}

func NewKrishnaHandler() *KrishnaHandler {
	return &KrishnaHandler{}
}

// ListEmotions returns the active emotion catalogue. Cached briefly since
// the catalogue changes only through admin writes.
func (h *KrishnaHandler) ListEmotions(c *gin.Context) {
	if cached := utils.GetCache().Get(emotionsCacheKey); cached != nil {
		if emotions, ok := cached.([]models.Emotion); ok {
			c.JSON(http.StatusOK, emotions)
			return
		}
	}

	var emotions []models.Emotion
	if err := db.DB.Where("is_active = ?", true).Order("name ASC").Find(&emotions).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load emotions")
		return
	}

	utils.GetCache().Set(emotionsCacheKey, emotions, 1*time.Minute)
	c.JSON(http.StatusOK, emotions)
}

// RandomVerse picks uniformly among the active verses of an emotion.
// Immediate repeats are possible; there is no history.
func (h *KrishnaHandler) RandomVerse(c *gin.Context) {
	emotionID := c.Param("emotionID")

	var verses []models.Verse
	if err := db.DB.Preload("Emotion").
		Where("emotion_id = ? AND is_active = ?", emotionID, true).
		Find(&verses).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load verses")
		return
	}
	if len(verses) == 0 {
		JSONError(c, http.StatusNotFound, "No verses found for this emotion")
		return
	}

	c.JSON(http.StatusOK, verses[rand.Intn(len(verses))])
}

func (h *KrishnaHandler) VerseCount(c *gin.Context) {
	emotionID := c.Param("emotionID")

	var count int64
	if err := db.DB.Model(&models.Verse{}).
		Where("emotion_id = ? AND is_active = ?", emotionID, true).
		Count(&count).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to count verses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"emotion_id": emotionID, "count": count})
}

type createInteractionRequest struct {
	EmotionID string `json:"emotion_id" binding:"required"`
	VerseID   string `json:"verse_id" binding:"required"`
	SessionID string `json:"session_id"`
}

// CreateInteraction records a verse view. Anonymous callers are allowed;
// a logged-in caller gets attributed.
func (h *KrishnaHandler) CreateInteraction(c *gin.Context) {
	var req createInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "emotion_id and verse_id are required")
		return
	}

	interaction := models.Interaction{
		EmotionID: req.EmotionID,
		VerseID:   req.VerseID,
		SessionID: req.SessionID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if user := middleware.CurrentUser(c); user != nil {
		interaction.UserID = &user.ID
	}

	if err := db.DB.Create(&interaction).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to record interaction")
		return
	}
	c.JSON(http.StatusOK, interaction)
}

// ---- Admin: emotions ----

func (h *KrishnaHandler) AdminListEmotions(c *gin.Context) {
	var emotions []models.Emotion
	if err := db.DB.Order("name ASC").Find(&emotions).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load emotions")
		return
	}
	c.JSON(http.StatusOK, emotions)
}

type createEmotionRequest struct {
	Name        string `json:"name" binding:"required"`
	DisplayName string `json:"display_name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"required"`
}

func (h *KrishnaHandler) CreateEmotion(c *gin.Context) {
	var req createEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "name, display_name and color are required")
		return
	}

	var existing models.Emotion
	if err := db.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		JSONError(c, http.StatusConflict, "Emotion name already exists")
		return
	}

	emotion := models.Emotion{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		Color:       req.Color,
		IsActive:    true,
	}
	if err := db.DB.Create(&emotion).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create emotion")
		return
	}

	utils.GetCache().Delete(emotionsCacheKey)
	c.JSON(http.StatusOK, emotion)
}

type updateEmotionRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"is_active"`
}

func (h *KrishnaHandler) UpdateEmotion(c *gin.Context) {
	var req updateEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var emotion models.Emotion
	if err := db.DB.First(&emotion, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Emotion not found")
		return
	}

	if req.Name != nil && *req.Name != emotion.Name {
		var existing models.Emotion
		if err := db.DB.Where("name = ? AND id <> ?", *req.Name, emotion.ID).First(&existing).Error; err == nil {
			JSONError(c, http.StatusConflict, "Emotion name already exists")
			return
		}
		emotion.Name = *req.Name
	}
	if req.DisplayName != nil {
		emotion.DisplayName = *req.DisplayName
	}
	if req.Description != nil {
		emotion.Description = *req.Description
	}
	if req.Color != nil {
		emotion.Color = *req.Color
	}
	if req.IsActive != nil {
		emotion.IsActive = *req.IsActive
	}

	if err := db.DB.Save(&emotion).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update emotion")
		return
	}

	utils.GetCache().Delete(emotionsCacheKey)
	c.JSON(http.StatusOK, emotion)
}

// DeleteEmotion refuses to orphan verses: with referencing verses it fails
// unless force=true, in which case verses and emotion go together in one
// transaction.
func (h *KrishnaHandler) DeleteEmotion(c *gin.Context) {
	var emotion models.Emotion
	if err := db.DB.First(&emotion, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Emotion not found")
		return
	}

	var verseCount int64
	if err := db.DB.Model(&models.Verse{}).Where("emotion_id = ?", emotion.ID).Count(&verseCount).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to check verses")
		return
	}

	force := c.Query("force") == "true"
	if verseCount > 0 && !force {
		JSONError(c, http.StatusConflict, "Emotion has verses; pass force=true to delete them too")
		return
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if verseCount > 0 {
			if err := tx.Where("emotion_id = ?", emotion.ID).Delete(&models.Verse{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&emotion).Error
	})
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete emotion")
		return
	}

	utils.GetCache().Delete(emotionsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Emotion deleted"})
}

// ---- Admin: verses ----

func (h *KrishnaHandler) AdminListVerses(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Preload("Emotion").Order("created_at DESC")
	if emotionID := c.Query("emotion_id"); emotionID != "" {
		query = query.Where("emotion_id = ?", emotionID)
	}

	var verses []models.Verse
	if err := query.Offset(offset).Limit(limit).Find(&verses).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load verses")
		return
	}
	c.JSON(http.StatusOK, verses)
}

type createVerseRequest struct {
	EmotionID   string `json:"emotion_id" binding:"required"`
	Sanskrit    string `json:"sanskrit" binding:"required"`
	Hindi       string `json:"hindi" binding:"required"`
	English     string `json:"english" binding:"required"`
	Explanation string `json:"explanation" binding:"required"`
	Chapter     string `json:"chapter"`
	VerseNumber string `json:"verse_number"`
}

func (h *KrishnaHandler) CreateVerse(c *gin.Context) {
	var req createVerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Missing required verse fields")
		return
	}

	var emotion models.Emotion
	if err := db.DB.First(&emotion, "id = ?", req.EmotionID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Emotion not found")
		return
	}

	verse := models.Verse{
		EmotionID:   req.EmotionID,
		Sanskrit:    req.Sanskrit,
		Hindi:       req.Hindi,
		English:     req.English,
		Explanation: req.Explanation,
		Chapter:     req.Chapter,
		VerseNumber: req.VerseNumber,
		IsActive:    true,
	}
	if err := db.DB.Create(&verse).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create verse")
		return
	}

	verse.Emotion = emotion
	c.JSON(http.StatusOK, verse)
}

type updateVerseRequest struct {
	EmotionID   *string `json:"emotion_id"`
	Sanskrit    *string `json:"sanskrit"`
	Hindi       *string `json:"hindi"`
	English     *string `json:"english"`
	Explanation *string `json:"explanation"`
	Chapter     *string `json:"chapter"`
	VerseNumber *string `json:"verse_number"`
	IsActive    *bool   `json:"is_active"`
}

func (h *KrishnaHandler) UpdateVerse(c *gin.Context) {
	var req updateVerseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var verse models.Verse
	if err := db.DB.First(&verse, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Verse not found")
		return
	}

	if req.EmotionID != nil {
		var emotion models.Emotion
		if err := db.DB.First(&emotion, "id = ?", *req.EmotionID).Error; err != nil {
			JSONError(c, http.StatusNotFound, "Emotion not found")
			return
		}
		verse.EmotionID = *req.EmotionID
	}
	if req.Sanskrit != nil {
		verse.Sanskrit = *req.Sanskrit
	}
	if req.Hindi != nil {
		verse.Hindi = *req.Hindi
	}
	if req.English != nil {
		verse.English = *req.English
	}
	if req.Explanation != nil {
		verse.Explanation = *req.Explanation
	}
	if req.Chapter != nil {
		verse.Chapter = *req.Chapter
	}
	if req.VerseNumber != nil {
		verse.VerseNumber = *req.VerseNumber
	}
	if req.IsActive != nil {
		verse.IsActive = *req.IsActive
	}

	if err := db.DB.Save(&verse).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update verse")
		return
	}
	c.JSON(http.StatusOK, verse)
}

func (h *KrishnaHandler) DeleteVerse(c *gin.Context) {
	var verse models.Verse
	if err := db.DB.First(&verse, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Verse not found")
		return
	}

	if err := db.DB.Delete(&verse).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete verse")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verse deleted"})
}
