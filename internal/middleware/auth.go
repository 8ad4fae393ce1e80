package middleware

import (
	"net/http"
	"strings"

	"saarthi/internal/db"
	"saarthi/internal/models"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"
const CheckAdminKey = "legacy_admin"

// LoadUser resolves the bearer token, if any, to a principal and sets it on
// the context. Tokens with type=admin resolve against the legacy Admin table;
// everything else resolves against the User table. Invalid or unresolvable
// tokens are treated as anonymous here; the route-level guards decide whether
// that is an error.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.Next()
			return
		}

		if claims.Type == utils.TypeAdmin {
			var admin models.Admin
			if err := db.DB.Where("username = ? AND is_active = ?", claims.Subject, true).First(&admin).Error; err == nil {
				c.Set(CheckAdminKey, &admin)
			}
			c.Next()
			return
		}

		var user models.User
		if err := db.DB.Where("username = ?", claims.Subject).First(&user).Error; err == nil {
			c.Set(CheckUserKey, &user)
		}
		c.Next()
	}
}

// AuthRequired ensures a user-track principal is present.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		c.Next()
	}
}

// AdminRequired passes admin users and live legacy admins. An unresolved
// token is 401; a resolved non-admin principal is 403.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckAdminKey); exists {
			c.Next()
			return
		}
		u, exists := c.Get(CheckUserKey)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}
		if !u.(*models.User).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user-track principal set by LoadUser, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if u, exists := c.Get(CheckUserKey); exists {
		return u.(*models.User)
	}
	return nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
