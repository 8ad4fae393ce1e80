package handlers

import (
	"net/http"
	"time"

	"saarthi/internal/db"
	"saarthi/internal/models"
	"saarthi/internal/services"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	analytics *services.AnalyticsService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		analytics: services.NewAnalyticsService(db.DB),
	}
}

// Login is the legacy admin-table login. It issues a token with type=admin,
// a different principal than a User with the admin flag.
func (h *AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid login payload")
		return
	}

	var admin models.Admin
	if err := db.DB.Where("username = ? AND is_active = ?", req.Username, true).First(&admin).Error; err != nil {
		JSONError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if !utils.CheckPasswordHash(req.Password, admin.Password) {
		JSONError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	now := time.Now()
	db.DB.Model(&admin).Update("last_login", &now)

	token, err := utils.SignToken(admin.Username, utils.TypeAdmin, utils.TokenTTL)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.analytics.Dashboard(time.Now())
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to compute dashboard")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ---- Users ----

func (h *AdminHandler) ListUsers(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Model(&models.User{}).Order("created_at DESC")
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if v := c.Query("is_admin"); v != "" {
		query = query.Where("is_admin = ?", v == "true")
	}
	if v := c.Query("is_active"); v != "" {
		query = query.Where("is_active = ?", v == "true")
	}

	var users []models.User
	if err := query.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load users")
		return
	}
	c.JSON(http.StatusOK, users)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	IsAdmin  *bool   `json:"is_admin"`
	IsActive *bool   `json:"is_active"`
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid update payload")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := db.DB.Save(&user).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes the user row only. Their posts, comments, chat messages
// and journal entries stay behind with dangling author ids.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *AdminHandler) UserActivity(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "User not found")
		return
	}

	activity, err := h.analytics.UserActivity(user.ID)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to compute user activity")
		return
	}
	c.JSON(http.StatusOK, activity)
}

// ---- Content moderation ----

func (h *AdminHandler) ListPosts(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Preload("Author").Order("created_at DESC")
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var posts []models.Post
	if err := query.Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}
	fillCommentCounts(posts)
	c.JSON(http.StatusOK, posts)
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	var post models.Post
	if err := db.DB.First(&post, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func (h *AdminHandler) ListComments(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Preload("Author").Order("created_at DESC")
	if search := c.Query("search"); search != "" {
		query = query.Where("content LIKE ?", "%"+search+"%")
	}
	if postID := c.Query("post_id"); postID != "" {
		query = query.Where("post_id = ?", postID)
	}

	var comments []models.Comment
	if err := query.Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *AdminHandler) DeleteComment(c *gin.Context) {
	var comment models.Comment
	if err := db.DB.First(&comment, "id = ?", c.Param("id")).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Comment not found")
		return
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted"})
}

func (h *AdminHandler) ListChatMessages(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Preload("User").Order("created_at DESC")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if v := c.Query("is_ai_response"); v != "" {
		query = query.Where("is_ai_response = ?", v == "true")
	}

	var messages []models.ChatMessage
	if err := query.Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load chat messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

func (h *AdminHandler) ListJournalEntries(c *gin.Context) {
	offset, limit := Pagination(c)

	query := db.DB.Order("created_at DESC")
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("author_id = ?", userID)
	}

	var entries []models.JournalEntry
	if err := query.Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load journal entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}
