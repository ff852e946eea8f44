package authoring

import "github.com/sqdnosita/telegramQuizBot/internal/quiz"

// Each dialogue step is its own type carrying only the data that exists by
// that step, so a half-built draft cannot be read ahead of its phase.
type phase interface {
	name() string
}

type awaitingTitle struct{}

type awaitingCount struct {
	title string
}

type awaitingQuestion struct {
	title string
	total int
	built []quiz.DraftQuestion
}

type awaitingOptions struct {
	title        string
	total        int
	built        []quiz.DraftQuestion
	questionText string
}

type awaitingCorrect struct {
	title        string
	total        int
	built        []quiz.DraftQuestion
	questionText string
	options      []string
}

func (awaitingTitle) name() string    { return "awaiting_title" }
func (awaitingCount) name() string    { return "awaiting_question_count" }
func (awaitingQuestion) name() string { return "awaiting_question_text" }
func (awaitingOptions) name() string  { return "awaiting_answers" }
func (awaitingCorrect) name() string  { return "awaiting_correct_answer" }
