package repository

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/errorz"
	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/store"
)

type Questions struct {
	store store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewQuestions(s store.Store, log *zap.Logger) *Questions {
	return &Questions{store: s, log: log, now: utcNow}
}

// List returns every question, unfiltered and unsorted. Callers decide
// ordering; read failures degrade to an empty list.
func (r *Questions) List() []models.Question {
	data, err := r.store.Read(store.QuestionsCollection)
	if err != nil {
		r.log.Error("list questions", zap.Error(err))
		return nil
	}
	return decode[models.Question](r.log, store.QuestionsCollection, data)
}

func (r *Questions) Get(id string) (models.Question, error) {
	data, err := r.store.Read(store.QuestionsCollection)
	if err != nil {
		return models.Question{}, err
	}
	for _, q := range decode[models.Question](r.log, store.QuestionsCollection, data) {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Question{}, fmt.Errorf("question %s: %w", id, errorz.ErrNotFound)
}

func (r *Questions) Add(req models.CreateQuestionRequest) (models.Question, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Question{}, fmt.Errorf("title must not be empty: %w", errorz.ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.Question{}, fmt.Errorf("content must not be empty: %w", errorz.ErrValidation)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	now := r.now()
	q := models.Question{
		ID:         newID(),
		Title:      req.Title,
		Content:    req.Content,
		Tags:       tags,
		Author:     req.Author,
		AuthorName: req.AuthorName,
		Votes:      0,
		Answers:    []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := r.store.Update(store.QuestionsCollection, func(data []byte) ([]byte, error) {
		questions := decode[models.Question](r.log, store.QuestionsCollection, data)
		questions = append(questions, q)
		return encode(store.QuestionsCollection, questions)
	})
	if err != nil {
		return models.Question{}, err
	}

	r.log.Info("question added", zap.String("id", q.ID))
	return q, nil
}

// UpdateVotes adds delta to the question's vote count. Deltas are not
// clamped; votes may go negative.
func (r *Questions) UpdateVotes(id string, delta int) (models.Question, error) {
	var updated models.Question
	err := r.store.Update(store.QuestionsCollection, func(data []byte) ([]byte, error) {
		questions := decode[models.Question](r.log, store.QuestionsCollection, data)
		for i := range questions {
			if questions[i].ID == id {
				questions[i].Votes += delta
				questions[i].UpdatedAt = r.now()
				updated = questions[i]
				return encode(store.QuestionsCollection, questions)
			}
		}
		return nil, fmt.Errorf("question %s: %w", id, errorz.ErrNotFound)
	})
	if err != nil {
		return models.Question{}, err
	}
	return updated, nil
}
