package router

import (
	"net/http"

	"saarthi/internal/handlers"
	"saarthi/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	postHandler := handlers.NewPostHandler()
	chatHandler := handlers.NewChatHandler()
	journalHandler := handlers.NewJournalHandler()
	krishnaHandler := handlers.NewKrishnaHandler()
	thoughtHandler := handlers.NewThoughtHandler()
	scriptureHandler := handlers.NewScriptureHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api")
	api.Use(middleware.LoadUser())

	// Public routes
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Saarthi API"})
	})
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/posts", postHandler.List)
	api.GET("/posts/:id/comments", postHandler.ListComments)
	api.GET("/krishna-path/emotions", krishnaHandler.ListEmotions)
	api.GET("/krishna-path/verses/:emotionID/random", krishnaHandler.RandomVerse)
	api.GET("/krishna-path/verses/count/:emotionID", krishnaHandler.VerseCount)
	api.POST("/krishna-path/interactions", krishnaHandler.CreateInteraction)
	api.GET("/thought-of-the-day/current", thoughtHandler.Current)
	api.GET("/scriptures", scriptureHandler.List)
	api.GET("/scriptures/:slug", scriptureHandler.GetBySlug)
	api.POST("/admin/login", adminHandler.Login)

	// Authenticated routes (user track)
	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/auth/me", authHandler.Me)
		authorized.POST("/posts", postHandler.Create)
		authorized.POST("/posts/:id/like", postHandler.Like)
		authorized.POST("/posts/:id/comments", postHandler.CreateComment)
		authorized.GET("/chat/messages", chatHandler.List)
		authorized.POST("/chat/messages", chatHandler.Create)
		authorized.GET("/journal", journalHandler.List)
		authorized.POST("/journal", journalHandler.Create)
		authorized.PUT("/journal/:id", journalHandler.Update)
		authorized.DELETE("/journal/:id", journalHandler.Delete)
	}

	// Admin routes (user track with is_admin, or legacy admin token)
	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id", adminHandler.UpdateUser)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
		admin.GET("/users/:id/activity", adminHandler.UserActivity)
		admin.GET("/posts", adminHandler.ListPosts)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
		admin.GET("/comments", adminHandler.ListComments)
		admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		admin.GET("/chat-messages", adminHandler.ListChatMessages)
		admin.GET("/journal-entries", adminHandler.ListJournalEntries)

		admin.GET("/thought-of-the-day", thoughtHandler.AdminList)
		admin.POST("/thought-of-the-day", thoughtHandler.Create)
		admin.PUT("/thought-of-the-day/:id", thoughtHandler.Update)
		admin.DELETE("/thought-of-the-day/:id", thoughtHandler.Delete)
		admin.POST("/thought-of-the-day/:id/feature", thoughtHandler.Feature)

		admin.POST("/scriptures", scriptureHandler.Create)
		admin.PUT("/scriptures/:id", scriptureHandler.Update)
		admin.DELETE("/scriptures/:id", scriptureHandler.Delete)
	}

	krishnaAdmin := api.Group("/krishna-path/admin")
	krishnaAdmin.Use(middleware.AdminRequired())
	{
		krishnaAdmin.GET("/emotions", krishnaHandler.AdminListEmotions)
		krishnaAdmin.POST("/emotions", krishnaHandler.CreateEmotion)
		krishnaAdmin.PUT("/emotions/:id", krishnaHandler.UpdateEmotion)
		krishnaAdmin.DELETE("/emotions/:id", krishnaHandler.DeleteEmotion)
		krishnaAdmin.GET("/verses", krishnaHandler.AdminListVerses)
		krishnaAdmin.POST("/verses", krishnaHandler.CreateVerse)
		krishnaAdmin.PUT("/verses/:id", krishnaHandler.UpdateVerse)
		krishnaAdmin.DELETE("/verses/:id", krishnaHandler.DeleteVerse)
	}
}
