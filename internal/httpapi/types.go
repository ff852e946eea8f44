package httpapi

import "time"

type quizResponse struct {
	QuizID    int64     `json:"quiz_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

type quizListResponse struct {
	Quizzes    []quizResponse `json:"quizzes"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
	HasPrev    bool           `json:"has_prev"`
	HasNext    bool           `json:"has_next"`
}

// answerResponse deliberately omits correctness; takers fetch quizzes
// through this endpoint.
type answerResponse struct {
	AnswerID int64  `json:"answer_id"`
	Text     string `json:"text"`
	Position int    `json:"position"`
}

type questionResponse struct {
	QuestionID int64            `json:"question_id"`
	Text       string           `json:"text"`
	Position   int              `json:"position"`
	Answers    []answerResponse `json:"answers"`
}

type quizDetailResponse struct {
	QuizID    int64              `json:"quiz_id"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"created_at"`
	Questions []questionResponse `json:"questions"`
}

type createQuestionRequest struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

type createQuizRequest struct {
	Title             string                  `json:"title"`
	CreatorTelegramID int64                   `json:"creator_telegram_id"`
	Questions         []createQuestionRequest `json:"questions"`
}

type createQuizResponse struct {
	QuizID int64 `json:"quiz_id"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Error string `json:"error"`
}
