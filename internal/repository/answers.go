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

type Answers struct {
	store store.Store
	log   *zap.Logger
	now   func() time.Time
}

func NewAnswers(s store.Store, log *zap.Logger) *Answers {
	return &Answers{store: s, log: log, now: utcNow}
}

// ListForQuestion returns the question's answers sorted by votes descending.
// The sort is stable: equally voted answers keep insertion order.
func (r *Answers) ListForQuestion(questionID string) []models.Answer {
	data, err := r.store.Read(store.AnswersCollection)
	if err != nil {
		r.log.Error("list answers", zap.String("questionId", questionID), zap.Error(err))
		return nil
	}

	var out []models.Answer
	for _, a := range decode[models.Answer](r.log, store.AnswersCollection, data) {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Votes > out[j].Votes
	})
	return out
}

func (r *Answers) Get(id string) (models.Answer, error) {
	data, err := r.store.Read(store.AnswersCollection)
	if err != nil {
		return models.Answer{}, err
	}
	for _, a := range decode[models.Answer](r.log, store.AnswersCollection, data) {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Answer{}, fmt.Errorf("answer %s: %w", id, errorz.ErrNotFound)
}

// Add inserts the answer and appends its id to the parent question's answers
// list. Both collections are updated under their locks and committed in one
// transaction, so the back-reference can never go missing.
func (r *Answers) Add(questionID string, req models.CreateAnswerRequest) (models.Answer, error) {
	if strings.TrimSpace(req.Content) == "" {
		return models.Answer{}, fmt.Errorf("content must not be empty: %w", errorz.ErrValidation)
	}

	now := r.now()
	a := models.Answer{
		ID:         newID(),
		QuestionID: questionID,
		Content:    req.Content,
		Author:     req.Author,
		AuthorName: req.AuthorName,
		Votes:      0,
		IsAccepted: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	names := []string{store.AnswersCollection, store.QuestionsCollection}
	err := r.store.UpdateMany(names, func(data map[string][]byte) (map[string][]byte, error) {
		questions := decode[models.Question](r.log, store.QuestionsCollection, data[store.QuestionsCollection])
		idx := -1
		for i := range questions {
			if questions[i].ID == questionID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("question %s: %w", questionID, errorz.ErrNotFound)
		}

		answers := decode[models.Answer](r.log, store.AnswersCollection, data[store.AnswersCollection])
		answers = append(answers, a)
		questions[idx].Answers = append(questions[idx].Answers, a.ID)
		questions[idx].UpdatedAt = now

		answersBlob, err := encode(store.AnswersCollection, answers)
		if err != nil {
			return nil, err
		}
		questionsBlob, err := encode(store.QuestionsCollection, questions)
		if err != nil {
			return nil, err
		}
		return map[string][]byte{
			store.AnswersCollection:   answersBlob,
			store.QuestionsCollection: questionsBlob,
		}, nil
	})
	if err != nil {
		return models.Answer{}, err
	}

	r.log.Info("answer added", zap.String("id", a.ID), zap.String("questionId", questionID))
	return a, nil
}

func (r *Answers) UpdateVotes(id string, delta int) (models.Answer, error) {
	var updated models.Answer
	err := r.store.Update(store.AnswersCollection, func(data []byte) ([]byte, error) {
		answers := decode[models.Answer](r.log, store.AnswersCollection, data)
		for i := range answers {
			if answers[i].ID == id {
				answers[i].Votes += delta
				answers[i].UpdatedAt = r.now()
				updated = answers[i]
				return encode(store.AnswersCollection, answers)
			}
		}
		return nil, fmt.Errorf("answer %s: %w", id, errorz.ErrNotFound)
	})
	if err != nil {
		return models.Answer{}, err
	}
	return updated, nil
}

// SetAccepted toggles the accepted flag on an answer.
func (r *Answers) SetAccepted(id string, accepted bool) (models.Answer, error) {
	var updated models.Answer
	err := r.store.Update(store.AnswersCollection, func(data []byte) ([]byte, error) {
		answers := decode[models.Answer](r.log, store.AnswersCollection, data)
		for i := range answers {
			if answers[i].ID == id {
				answers[i].IsAccepted = accepted
				answers[i].UpdatedAt = r.now()
				updated = answers[i]
				return encode(store.AnswersCollection, answers)
			}
		}
		return nil, fmt.Errorf("answer %s: %w", id, errorz.ErrNotFound)
	})
	if err != nil {
		return models.Answer{}, err
	}
	return updated, nil
}
