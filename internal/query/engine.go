// Package query produces the filtered and sorted question lists shown on the
// board. All operations run one fixed pipeline over the full question list:
// text search, time window, unanswered filter, sort. Every stage is stable,
// so ties keep their prior relative order.
package query

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stackit-app/backend/internal/models"
	"github.com/stackit-app/backend/internal/repository"
)

type TimeFilter string

const (
	TimeAll   TimeFilter = "all"
	Time24h   TimeFilter = "24h"
	TimeWeek  TimeFilter = "week"
	TimeMonth TimeFilter = "month"
	TimeYear  TimeFilter = "year"
)

type SortBy string

const (
	SortNewest     SortBy = "newest"
	SortOldest     SortBy = "oldest"
	SortMostVoted  SortBy = "most_voted"
	SortLeastVoted SortBy = "least_voted"
)

type Options struct {
	TimeFilter     TimeFilter
	SortBy         SortBy
	UnansweredOnly bool
}

type Engine struct {
	questions *repository.Questions
	log       *zap.Logger
	now       func() time.Time
}

func NewEngine(questions *repository.Questions, log *zap.Logger) *Engine {
	return &Engine{questions: questions, log: log, now: time.Now}
}

// List returns all questions newest first, the board's canonical ordering.
func (e *Engine) List() []models.Question {
	return e.SearchAndFilter("", Options{})
}

// SearchAndFilter runs the full pipeline. A blank query skips the search
// stage; zero-valued options mean "all" / "newest" / no filtering.
func (e *Engine) SearchAndFilter(query string, opts Options) []models.Question {
	questions := e.questions.List()

	if q := strings.TrimSpace(query); q != "" {
		questions = search(questions, q)
	}

	if cutoff, ok := e.cutoff(opts.TimeFilter); ok {
		kept := questions[:0:0]
		for _, q := range questions {
			// Inclusive boundary: createdAt == cutoff is kept.
			if !q.CreatedAt.Before(cutoff) {
				kept = append(kept, q)
			}
		}
		questions = kept
	}

	if opts.UnansweredOnly {
		kept := questions[:0:0]
		for _, q := range questions {
			if len(q.Answers) == 0 {
				kept = append(kept, q)
			}
		}
		questions = kept
	}

	sortQuestions(questions, opts.SortBy)
	return questions
}

// ByTag returns questions carrying the tag (exact, case-insensitive match),
// newest first.
func (e *Engine) ByTag(tag string) []models.Question {
	var out []models.Question
	for _, q := range e.questions.List() {
		for _, t := range q.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, q)
				break
			}
		}
	}
	sortQuestions(out, SortNewest)
	return out
}

// search keeps questions whose title, content or any tag contains the query,
// case-insensitive. Matches stay in their prior relative order; there is no
// ranking.
func search(questions []models.Question, query string) []models.Question {
	q := strings.ToLower(query)
	kept := questions[:0:0]
	for _, question := range questions {
		if strings.Contains(strings.ToLower(question.Title), q) ||
			strings.Contains(strings.ToLower(question.Content), q) ||
			tagMatch(question.Tags, q) {
			kept = append(kept, question)
		}
	}
	return kept
}

func tagMatch(tags []string, query string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func (e *Engine) cutoff(filter TimeFilter) (time.Time, bool) {
	var window time.Duration
	switch filter {
	case Time24h:
		window = 24 * time.Hour
	case TimeWeek:
		window = 7 * 24 * time.Hour
	case TimeMonth:
		window = 30 * 24 * time.Hour
	case TimeYear:
		window = 365 * 24 * time.Hour
	default:
		return time.Time{}, false
	}
	return e.now().Add(-window), true
}

func sortQuestions(questions []models.Question, by SortBy) {
	switch by {
	case SortOldest:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].CreatedAt.Before(questions[j].CreatedAt)
		})
	case SortMostVoted:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].Votes > questions[j].Votes
		})
	case SortLeastVoted:
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].Votes < questions[j].Votes
		})
	default: // newest
		sort.SliceStable(questions, func(i, j int) bool {
			return questions[i].CreatedAt.After(questions[j].CreatedAt)
		})
	}
}
