package repository

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/errorz"
	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/store"
)

type Comments struct {
	store store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewComments(s store.Store, log *zap.Logger) *Comments {
	return &Comments{store: s, log: log, now: utcNow}
}

// ListForQuestion returns the question's comments oldest first.
func (r *Comments) ListForQuestion(questionID string) []models.Comment {
	data, err := r.store.Read(store.CommentsCollection)
	if err != nil {
		r.log.Error("list comments", zap.String("questionId", questionID), zap.Error(err))
		return nil
	}

	var out []models.Comment
	for _, c := range decode[models.Comment](r.log, store.CommentsCollection, data) {
		if c.QuestionID == questionID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Add appends a comment. The parent question must exist; both collections
// are read under their locks so the check and the insert see one snapshot.
func (r *Comments) Add(questionID string, req models.CreateCommentRequest) (models.Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return models.Comment{}, fmt.Errorf("content must not be empty: %w", errorz.ErrValidation)
	}

	c := models.Comment{
		ID:         newID(),
		QuestionID: questionID,
		Author:     req.Author,
		AuthorName: req.AuthorName,
		Content:    req.Content,
		CreatedAt:  r.now(),
	}

	names := []string{store.CommentsCollection, store.QuestionsCollection}
	err := r.store.UpdateMany(names, func(data map[string][]byte) (map[string][]byte, error) {
		exists := false
		for _, q := range decode[models.Question](r.log, store.QuestionsCollection, data[store.QuestionsCollection]) {
			if q.ID == questionID {
				exists = true
				break
			}
		}
		if !exists {
			return nil, fmt.Errorf("question %s: %w", questionID, errorz.ErrNotFound)
		}

		comments := decode[models.Comment](r.log, store.CommentsCollection, data[store.CommentsCollection])
		comments = append(comments, c)
		blob, err := encode(store.CommentsCollection, comments)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{store.CommentsCollection: blob}, nil
	})
	if err != nil {
		return models.Comment{}, err
	}

	return c, nil
}
