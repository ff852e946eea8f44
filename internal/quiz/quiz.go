package quiz

import "time"

// Limits mirror the ones enforced by the existing bot database, so quizzes
// written by either implementation stay interchangeable.
const (
	MaxTitleLen    = 200
	MaxQuestionLen = 500
	MaxOptionLen   = 200
	MinOptions     = 2
	MaxOptions     = 6
	MinQuestions   = 1
	MaxQuestions   = 20

	DefaultPageSize = 6
)

type User struct {
	ID         int64
	TelegramID int64
	Username   string
	FirstName  string
	CreatedAt  time.Time
}

// TelegramUser is the identity the transport layer knows about before any
// database row exists.
type TelegramUser struct {
	ID        int64
	Username  string
	FirstName string
}

type Quiz struct {
	ID        int64
	Title     string
	CreatorID int64
	CreatedAt time.Time
}

type Question struct {
	ID            int64
	QuizID        int64
	Text          string
	Position      int // 1-based, dense within the quiz
	CorrectAnswer int // 1-based position of the correct option
	Answers       []Answer
}

type Answer struct {
	ID         int64
	QuestionID int64
	Text       string
	Position   int // 1-based, dense within the question
}

type QuizWithQuestions struct {
	Quiz
	Questions []Question
}

// DraftQuestion is the authoring-side shape of a question before it is
// persisted and assigned identifiers.
type DraftQuestion struct {
	Text          string
	Options       []string
	CorrectOption int // 1-based
}

type Page struct {
	Quizzes    []Quiz
	Total      int
	Page       int
	PageSize   int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

type Result struct {
	TotalQuestions int
	CorrectAnswers int
	Percentage     float64
}
