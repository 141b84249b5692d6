package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackit-app/backend/internal/errorz"
	"github.com/stackit-app/backend/internal/query"
	"github.com/stackit-app/backend/internal/repository"
)

// Handler combines all handler types
type Handler struct {
	Question *QuestionHandler
	Answer   *AnswerHandler
	Comment  *CommentHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(
	questions *repository.Questions,
	answers *repository.Answers,
	comments *repository.Comments,
	engine *query.Engine,
) *Handler {
	return &Handler{
		Question: NewQuestionHandler(questions, answers, engine),
		Answer:   NewAnswerHandler(answers),
		Comment:  NewCommentHandler(comments),
	}
}

// respondError maps the typed error kinds to HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errorz.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, errorz.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
