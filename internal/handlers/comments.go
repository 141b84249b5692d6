package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/repository"
)

type CommentHandler struct {
	comments *repository.Comments
}

func NewCommentHandler(comments *repository.Comments) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GetComments returns a question's comments, oldest first.
func (h *CommentHandler) GetComments(c *gin.Context) {
	comments := h.comments.ListForQuestion(c.Param("id"))
	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	comment, err := h.comments.Add(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}
