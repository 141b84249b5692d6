package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/errorz"
	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/store"
)

func newBoard(t *testing.T) (*Questions, *Answers, *Comments) {
	t.Helper()
	s := newTestStore(t)
	log := zap.NewNop()
	return NewQuestions(s, log), NewAnswers(s, log), NewComments(s, log)
}

func TestAddAnswerLinksQuestion(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	a, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "<p>because</p>", AuthorName: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, q.ID, a.QuestionID)
	assert.Equal(t, 0, a.Votes)
	assert.False(t, a.IsAccepted)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)

	// The parent's back-reference is updated in the same write.
	parent, err := questions.Get(q.ID)
	require.NoError(t, err)
	assert.Contains(t, parent.Answers, a.ID)
	assert.False(t, parent.UpdatedAt.Before(parent.CreatedAt))
}

func TestAddAnswerUnknownQuestionLeavesNoOrphan(t *testing.T) {
	_, answers, _ := newBoard(t)

	_, err := answers.Add("missing", models.CreateAnswerRequest{Content: "c"})
	assert.ErrorIs(t, err, errorz.ErrNotFound)

	assert.Empty(t, answers.ListForQuestion("missing"))
}

func TestAddAnswerValidation(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = answers.Add(q.ID, models.CreateAnswerRequest{Content: "   "})
	assert.ErrorIs(t, err, errorz.ErrValidation)
}

func TestListForQuestionSortedByVotes(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	other, err := questions.Add(models.CreateQuestionRequest{Title: "other", Content: "c"})
	require.NoError(t, err)

	a1, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "first"})
	require.NoError(t, err)
	a2, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "second"})
	require.NoError(t, err)
	a3, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "third"})
	require.NoError(t, err)
	_, err = answers.Add(other.ID, models.CreateAnswerRequest{Content: "elsewhere"})
	require.NoError(t, err)

	_, err = answers.UpdateVotes(a2.ID, 5)
	require.NoError(t, err)
	_, err = answers.UpdateVotes(a3.ID, 2)
	require.NoError(t, err)

	listed := answers.ListForQuestion(q.ID)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{a2.ID, a3.ID, a1.ID}, []string{listed[0].ID, listed[1].ID, listed[2].ID})
}

// No secondary sort key: equally voted answers keep insertion order.
func TestListForQuestionStableOnTies(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)

	a1, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "first"})
	require.NoError(t, err)
	a2, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "second"})
	require.NoError(t, err)

	listed := answers.ListForQuestion(q.ID)
	require.Len(t, listed, 2)
	assert.Equal(t, a1.ID, listed[0].ID)
	assert.Equal(t, a2.ID, listed[1].ID)
}

func TestUpdateAnswerVotesTwice(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	a, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "c"})
	require.NoError(t, err)

	_, err = answers.UpdateVotes(a.ID, 1)
	require.NoError(t, err)
	got, err := answers.UpdateVotes(a.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Votes)
}

func TestSetAccepted(t *testing.T) {
	questions, answers, _ := newBoard(t)
	q, err := questions.Add(models.CreateQuestionRequest{Title: "t", Content: "c"})
	require.NoError(t, err)
	a, err := answers.Add(q.ID, models.CreateAnswerRequest{Content: "c"})
	require.NoError(t, err)

	got, err := answers.SetAccepted(a.ID, true)
	require.NoError(t, err)
	assert.True(t, got.IsAccepted)

	got, err = answers.SetAccepted(a.ID, false)
	require.NoError(t, err)
	assert.False(t, got.IsAccepted)

	_, err = answers.SetAccepted("missing", true)
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}

// Referential integrity over the seeded dataset: every answer and comment
// points at an existing question, and every cached answer id resolves.
func TestSeedDataReferentialIntegrity(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, store.Initialize(s))

	log := zap.NewNop()
	questions := NewQuestions(s, log)
	answers := NewAnswers(s, log)

	byID := make(map[string]models.Question)
	for _, q := range questions.List() {
		byID[q.ID] = q
	}
	require.NotEmpty(t, byID)

	for _, q := range questions.List() {
		for _, answerID := range q.Answers {
			a, err := answers.Get(answerID)
			require.NoError(t, err, "question %s references answer %s", q.ID, answerID)
			assert.Equal(t, q.ID, a.QuestionID)
		}
	}
}
