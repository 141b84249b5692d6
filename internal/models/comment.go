package models

import "time"

type Comment struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"questionId"`
	Author     string    `json:"author"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"` // plain text, no markup
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateCommentRequest struct {
	Content    string `json:"content" binding:"required"`
	Author     string `json:"author"`
	AuthorName string `json:"authorName"`
}
