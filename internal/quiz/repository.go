package quiz

import (
	"context"
	"errors"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrQuizEmpty    = errors.New("quiz has no questions")
	ErrInvalidQuiz  = errors.New("invalid quiz")
)

type UserRepository interface {
	// GetOrCreateUser returns the stored user for the telegram account,
	// creating the row on first contact. Concurrent first contacts must
	// both succeed and resolve to the same row.
	GetOrCreateUser(ctx context.Context, identity TelegramUser) (User, error)
}

type QuizRepository interface {
	// CreateQuizWithQuestions persists the quiz, its questions and their
	// options in one transaction. Nothing is visible if any insert fails.
	CreateQuizWithQuestions(ctx context.Context, title string, creatorID int64, questions []DraftQuestion) (int64, error)
	GetQuizWithQuestions(ctx context.Context, quizID int64) (QuizWithQuestions, error)
	ListQuizzes(ctx context.Context, page, pageSize int) (Page, error)
	DeleteQuiz(ctx context.Context, quizID int64) error
}
