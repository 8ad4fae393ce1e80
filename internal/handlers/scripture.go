package handlers

import (
	"net/http"
	"time"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
)

const scripturesCacheKey = "scriptures:active"

type ScriptureHandler struct{}

func NewScriptureHandler() *ScriptureHandler {
	return &ScriptureHandler{}
}

// scriptureResponse surfaces the serialized teaching/verse lists as arrays.
type scriptureResponse struct {
	models.Scripture
	KeyTeachings []string `json:"key_teachings"`
	FamousVerses []string `json:"famous_verses"`
}

func toScriptureResponse(s models.Scripture) scriptureResponse {
	return scriptureResponse{
		Scripture:    s,
		KeyTeachings: s.Teachings(),
		FamousVerses: s.Verses(),
	}
}

func (h *ScriptureHandler) List(c *gin.Context) {
	if cached := utils.GetCache().Get(scripturesCacheKey); cached != nil {
		if out, ok := cached.([]scriptureResponse); ok {
			c.JSON(http.StatusOK, out)
			return
		}
	}

	var scriptures []models.Scripture
	if err := db.DB.Where("is_active = ?", true).
		Order("order_index ASC, title ASC").
		Find(&scriptures).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load scriptures")
		return
	}

	out := make([]scriptureResponse, 0, len(scriptures))
	for _, s := range scriptures {
		out = append(out, toScriptureResponse(s))
	}

	utils.GetCache().Set(scripturesCacheKey, out, 1*time.Minute)
	c.JSON(http.StatusOK, out)
}

func (h *ScriptureHandler) GetBySlug(c *gin.Context) {
	var scripture models.Scripture
	if err := db.DB.Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&scripture).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Scripture not found")
		return
	}
	c.JSON(http.StatusOK, toScriptureResponse(scripture))
}

// ---- Admin ----

type createScriptureRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Slug         string   `json:"slug" binding:"required"`
	Icon         string   `json:"icon" binding:"required"`
	Color        string   `json:"color" binding:"required"`
	Introduction string   `json:"introduction" binding:"required"`
	KeyTeachings []string `json:"key_teachings"`
	FamousVerses []string `json:"famous_verses"`
	OrderIndex   int      `json:"order_index"`
}

func (h *ScriptureHandler) Create(c *gin.Context) {
	var req createScriptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Missing required scripture fields")
		return
	}

	var existing models.Scripture
	if err := db.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		JSONError(c, http.StatusConflict, "Slug already in use")
		return
	}

	scripture := models.Scripture{
		Title:        req.Title,
		Description:  req.Description,
		Slug:         req.Slug,
		Icon:         req.Icon,
		Color:        req.Color,
		Introduction: req.Introduction,
		OrderIndex:   req.OrderIndex,
		IsActive:     true,
	}
	scripture.SetTeachings(req.KeyTeachings)
	scripture.SetVerses(req.FamousVerses)
	if user := middleware.CurrentUser(c); user != nil {
		scripture.CreatedBy = &user.ID
	}

	if err := db.DB.Create(&scripture).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create scripture")
		return
	}

	utils.GetCache().Delete(scripturesCacheKey)
	c.JSON(http.StatusOK, toScriptureResponse(scripture))
}

type updateScriptureRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Slug         *string   `json:"slug"`
	Icon         *string   `json:"icon"`
	Color        *string   `json:"color"`
	Introduction *string   `json:"introduction"`
	KeyTeachings *[]string `json:"key_teachings"`
	FamousVerses *[]string `json:"famous_verses"`
	OrderIndex   *int      `json:"order_index"`
	IsActive     *bool     `json:"is_active"`
}

func (h *ScriptureHandler) Update(c *gin.Context) {
	var req updateScriptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var scripture models.Scripture
	if err := db.DB.First(&scripture, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Scripture not found")
		return
	}

	if req.Slug != nil && *req.Slug != scripture.Slug {
		var existing models.Scripture
		if err := db.DB.Where("slug = ? AND id <> ?", *req.Slug, scripture.ID).First(&existing).Error; err == nil {
			JSONError(c, http.StatusConflict, "Slug already in use")
			return
		}
		scripture.Slug = *req.Slug
	}
	if req.Title != nil {
		scripture.Title = *req.Title
	}
	if req.Description != nil {
		scripture.Description = *req.Description
	}
	if req.Icon != nil {
		scripture.Icon = *req.Icon
	}
	if req.Color != nil {
		scripture.Color = *req.Color
	}
	if req.Introduction != nil {
		scripture.Introduction = *req.Introduction
	}
	if req.KeyTeachings != nil {
		scripture.SetTeachings(*req.KeyTeachings)
	}
	if req.FamousVerses != nil {
		scripture.SetVerses(*req.FamousVerses)
	}
	if req.OrderIndex != nil {
		scripture.OrderIndex = *req.OrderIndex
	}
	if req.IsActive != nil {
		scripture.IsActive = *req.IsActive
	}

	if err := db.DB.Save(&scripture).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update scripture")
		return
	}

	utils.GetCache().Delete(scripturesCacheKey)
	c.JSON(http.StatusOK, toScriptureResponse(scripture))
}

func (h *ScriptureHandler) Delete(c *gin.Context) {
	var scripture models.Scripture
	if err := db.DB.First(&scripture, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Scripture not found")
		return
	}

	if err := db.DB.Delete(&scripture).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete scripture")
		return
	}

	utils.GetCache().Delete(scripturesCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "Scripture deleted"})
}
