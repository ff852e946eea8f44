package httpapi

import "github.com/sqdnosita/telegramQuizBot/internal/quiz"

// API exposes a read/write JSON surface over the same repositories the
// bot uses.
type API struct {
	users   quiz.UserRepository
	quizzes quiz.QuizRepository
}

func NewAPI(users quiz.UserRepository, quizzes quiz.QuizRepository) *API {
	return &API{
		users:   users,
		quizzes: quizzes,
	}
}
