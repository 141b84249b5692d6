package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/query"
	"github.com/stackit-app/backend/internal/repository"
)

type QuestionHandler struct {
	questions *repository.Questions
	answers   *repository.Answers
	engine    *query.Engine
}

func NewQuestionHandler(questions *repository.Questions, answers *repository.Answers, engine *query.Engine) *QuestionHandler {
	return &QuestionHandler{questions: questions, answers: answers, engine: engine}
}

// GetQuestions handles plain listing, search, tag filtering and the
// time/sort/unanswered options in one endpoint, mirroring the board's
// filter bar.
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	if tag := c.Query("tag"); tag != "" {
		respondQuestions(c, h.engine.ByTag(tag))
		return
	}

	opts := query.Options{
		TimeFilter:     query.TimeFilter(c.DefaultQuery("time_filter", string(query.TimeAll))),
		SortBy:         query.SortBy(c.DefaultQuery("sort_by", string(query.SortNewest))),
		UnansweredOnly: c.Query("unanswered") == "true",
	}
	respondQuestions(c, h.engine.SearchAndFilter(c.Query("q"), opts))
}

// GetQuestion returns a single question with its answers embedded.
func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	q, err := h.questions.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	answers := h.answers.ListForQuestion(q.ID)
	if answers == nil {
		answers = []models.Answer{}
	}

	c.JSON(http.StatusOK, models.QuestionWithAnswers{Question: q, Answers: answers})
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}

	q, err := h.questions.Add(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, q)
}

// VoteQuestion applies an integer delta to the question's votes. Votes are
// unauthenticated and undeduplicated on purpose.
func (h *QuestionHandler) VoteQuestion(c *gin.Context) {
	var req models.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delta must be an integer"})
		return
	}

	q, err := h.questions.UpdateVotes(c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, q)
}

// If no questions, return empty array not null
func respondQuestions(c *gin.Context, questions []models.Question) {
	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}
