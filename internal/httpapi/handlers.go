package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (a *API) HandleQuizzes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		a.handleListQuizzes(w, r)
	case http.MethodPost:
		a.handleCreateQuiz(w, r)
	default:
		writeMethodNotAllowed(w, "GET, POST")
	}
}

func (a *API) handleListQuizzes(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	listing, err := a.quizzes.ListQuizzes(r.Context(), page, quiz.DefaultPageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]quizResponse, 0, len(listing.Quizzes))
	for _, q := range listing.Quizzes {
		items = append(items, quizResponse{
			QuizID:    q.ID,
			Title:     q.Title,
			CreatedAt: q.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, quizListResponse{
		Quizzes:    items,
		Total:      listing.Total,
		Page:       listing.Page,
		PageSize:   listing.PageSize,
		TotalPages: listing.TotalPages,
		HasPrev:    listing.HasPrev,
		HasNext:    listing.HasNext,
	})
}

func (a *API) handleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var request createQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.CreatorTelegramID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "creator_telegram_id is required"})
		return
	}

	creator, err := a.users.GetOrCreateUser(r.Context(), quiz.TelegramUser{ID: request.CreatorTelegramID})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questions := make([]quiz.DraftQuestion, 0, len(request.Questions))
	for _, q := range request.Questions {
		questions = append(questions, quiz.DraftQuestion{
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
		})
	}

	quizID, err := a.quizzes.CreateQuizWithQuestions(r.Context(), request.Title, creator.ID, questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createQuizResponse{QuizID: quizID})
}

func (a *API) HandleQuizDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	quizID, err := parseQuizID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tree, err := a.quizzes.GetQuizWithQuestions(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	questions := make([]questionResponse, 0, len(tree.Questions))
	for _, question := range tree.Questions {
		answers := make([]answerResponse, 0, len(question.Answers))
		for _, answer := range question.Answers {
			answers = append(answers, answerResponse{
				AnswerID: answer.ID,
				Text:     answer.Text,
				Position: answer.Position,
			})
		}
		questions = append(questions, questionResponse{
			QuestionID: question.ID,
			Text:       question.Text,
			Position:   question.Position,
			Answers:    answers,
		})
	}

	writeJSON(w, http.StatusOK, quizDetailResponse{
		QuizID:    tree.ID,
		Title:     tree.Title,
		CreatedAt: tree.CreatedAt,
		Questions: questions,
	})
}
