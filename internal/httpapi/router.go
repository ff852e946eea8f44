package httpapi

import (
	"net/http"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

func NewRouter(users quiz.UserRepository, quizzes quiz.QuizRepository) http.Handler {
	api := NewAPI(users, quizzes)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", api.HandleHealth)
	mux.HandleFunc("/quizzes", api.HandleQuizzes)
	mux.HandleFunc("/quizzes/{quiz_id}", api.HandleQuizDetail)

	return withRequestLogging(mux)
}
