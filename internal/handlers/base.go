package handlers

import (
	"github.com/gin-gonic/gin"

	"saarthi/internal/utils"
)

// JSONError writes the API error shape used across every endpoint.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}

// Pagination reads offset/limit query params with sane bounds.
func Pagination(c *gin.Context) (offset, limit int) {
	offset = utils.StringToInt(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	limit = utils.StringToInt(c.Query("limit"))
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	return offset, limit
}
