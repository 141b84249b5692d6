package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/repository"
)

type AnswerHandler struct {
	answers *repository.Answers
}

func NewAnswerHandler(answers *repository.Answers) *AnswerHandler {
	return &AnswerHandler{answers: answers}
}

// GetAnswers returns a question's answers, highest voted first.
func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers := h.answers.ListForQuestion(c.Param("id"))
	if answers == nil {
		answers = []models.Answer{}
	}
	c.JSON(http.StatusOK, answers)
}

func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	var req models.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content is required"})
		return
	}

	a, err := h.answers.Add(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, a)
}

func (h *AnswerHandler) VoteAnswer(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delta must be an integer"})
		return
	}

	a, err := h.answers.UpdateVotes(c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

// AcceptAnswer marks or unmarks an answer as the accepted one.
func (h *AnswerHandler) AcceptAnswer(c *gin.Context) {
	var req models.AcceptAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Accepted must be a boolean"})
		return
	}

	a, err := h.answers.SetAccepted(c.Param("id"), req.Accepted)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}
