package models

import "time"

type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName"`
	Votes      int       `json:"votes"`
	IsAccepted bool      `json:"isAccepted"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type CreateAnswerRequest struct {
	Content    string `json:"content" binding:"required"`
	Author     string `json:"author"`
	AuthorName string `json:"authorName"`
}

type AcceptAnswerRequest struct {
	Accepted bool `json:"accepted"`
}
