package handlers

import (
	"net/http"
	"time"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid registration payload")
		return
	}

	var existing models.User
	if err := db.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		JSONError(c, http.StatusBadRequest, "Username already registered")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	user := models.User{
		Username: req.Username,
		Name:     req.Name,
		Password: hash,
		IsActive: true,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := utils.SignToken(user.Username, "", utils.TokenTTL)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Invalid login payload")
		return
	}

	var user models.User
	err := db.DB.Where("username = ?", req.Username).First(&user).Error
	if err == gorm.ErrRecordNotFound || (err == nil && !utils.CheckPasswordHash(req.Password, user.Password)) {
		JSONError(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		JSONError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	now := time.Now()
	db.DB.Model(&user).Update("last_login", &now)

	token, err := utils.SignToken(user.Username, "", utils.TokenTTL)
	if err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}
