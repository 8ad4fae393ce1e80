package handlers

import (
	"net/http"

	"saarthi/internal/db"
	"saarthi/internal/middleware"
	"saarthi/internal/models"
	"saarthi/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostHandler struct{}

func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// fillCommentCounts batch-loads comment counts for a page of posts
func fillCommentCounts(posts []models.Post) {
	if len(posts) == 0 {
		return
	}

	postIDs := make([]string, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}

	type countResult struct {
		PostID string
		Count  int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("post_id, COUNT(*) as count").
		Where("post_id IN ?", postIDs).
		Group("post_id").
		Scan(&results)

	countMap := make(map[string]int)
	for _, r := range results {
		countMap[r.PostID] = r.Count
	}

	for i := range posts {
		posts[i].CommentCount = countMap[posts[i].ID]
		posts[i].ContentHTML = utils.RenderMarkdown(posts[i].Content)
	}
}

func (h *PostHandler) List(c *gin.Context) {
	offset, limit := Pagination(c)

	var posts []models.Post
	if err := db.DB.Preload("Author").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	fillCommentCounts(posts)
	c.JSON(http.StatusOK, posts)
}

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
	VideoURL string `json:"video_url"`
}

func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Title and content are required")
		return
	}

	user := middleware.CurrentUser(c)
	post := models.Post{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: user.ID,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create post")
		return
	}

	post.Author = *user
	post.ContentHTML = utils.RenderMarkdown(post.Content)
	c.JSON(http.StatusOK, post)
}

// Like bumps the counter. Deliberately no dedup: every call adds one,
// whoever the caller is.
func (h *PostHandler) Like(c *gin.Context) {
	id := c.Param("id")

	var post models.Post
	if err := db.DB.First(&post, "id = ?", id).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := db.DB.Model(&post).Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to like post")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post liked successfully"})
}

// ListComments returns a post's comments oldest-first.
func (h *PostHandler) ListComments(c *gin.Context) {
	postID := c.Param("id")

	var comments []models.Comment
	if err := db.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}
	c.JSON(http.StatusOK, comments)
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *PostHandler) CreateComment(c *gin.Context) {
	postID := c.Param("id")

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		JSONError(c, http.StatusUnprocessableEntity, "Comment cannot be empty")
		return
	}

	var post models.Post
	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		JSONError(c, http.StatusNotFound, "Post not found")
		return
	}

	user := middleware.CurrentUser(c)
	comment := models.Comment{
		Content:  req.Content,
		PostID:   postID,
		AuthorID: user.ID,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		JSONError(c, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	comment.Author = *user
	c.JSON(http.StatusOK, comment)
}
