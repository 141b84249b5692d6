package models

import "time"

type Question struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"` // rich HTML produced by the editor
	Tags       []string  `json:"tags"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName"`
	Votes      int       `json:"votes"`
	Answers    []string  `json:"answers"` // ids of answers on this question
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateQuestionRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Tags       []string `json:"tags"`
	Author     string   `json:"author"`
	AuthorName string   `json:"authorName"`
}

// QuestionWithAnswers is the detail view: the question with its answer
// records embedded instead of just their ids.
type QuestionWithAnswers struct {
	Question
	Answers []Answer `json:"answers"`
}

type VoteRequest struct {
	Delta int `json:"delta"`
}
