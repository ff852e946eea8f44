package taking

import (
	"context"
	"errors"
	"sync"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

var (
	ErrNoSession   = errors.New("no active session")
	ErrBadPosition = errors.New("answer position out of range")
	ErrAtFirst     = errors.New("already at the first question")
)

// View is one screen of a quiz run.
type View struct {
	Title    string
	Question quiz.Question
	Number   int // 1-based
	Total    int
	Prior    int // previously chosen position for this question, 0 if none
	Done     bool
}

// Summary is the outcome of a finished run.
type Summary struct {
	QuizID int64
	Title  string
	quiz.Result
}

// Tracker holds live quiz runs keyed by (user, quiz), so a user can run
// several quizzes in parallel and a quiz id is required on every action.
type Tracker struct {
	quizzes quiz.QuizRepository

	mu       sync.Mutex
	sessions map[sessionKey]*session
}

type sessionKey struct {
	userID int64
	quizID int64
}

// session serializes actions on one run. gone marks sessions finished or
// replaced while another action was waiting on the lock.
type session struct {
	mu   sync.Mutex
	gone bool

	title     string
	questions []quiz.Question
	current   int
	answers   map[int64]int
}

func NewTracker(quizzes quiz.QuizRepository) *Tracker {
	return &Tracker{
		quizzes:  quizzes,
		sessions: make(map[sessionKey]*session),
	}
}

// Start loads the quiz snapshot and opens a fresh run, replacing any
// previous run of the same quiz by the same user.
func (t *Tracker) Start(ctx context.Context, userID, quizID int64) (View, error) {
	tree, err := t.quizzes.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return View{}, err
	}
	if len(tree.Questions) == 0 {
		return View{}, quiz.ErrQuizEmpty
	}

	fresh := &session{
		title:     tree.Title,
		questions: tree.Questions,
		answers:   make(map[int64]int),
	}

	key := sessionKey{userID: userID, quizID: quizID}
	t.mu.Lock()
	old := t.sessions[key]
	t.sessions[key] = fresh
	t.mu.Unlock()

	if old != nil {
		old.mu.Lock()
		old.gone = true
		old.mu.Unlock()
	}

	return fresh.view(), nil
}

// Answer records the chosen position and advances. When the last question
// was just answered the returned view has Done set and the caller is
// expected to call Finish.
func (t *Tracker) Answer(userID, quizID, questionID int64, position int) (View, error) {
	s, err := t.lookup(userID, quizID)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	question, ok := s.questionByID(questionID)
	if !ok {
		return View{}, ErrBadPosition
	}
	if position < 1 || position > len(question.Answers) {
		return View{}, ErrBadPosition
	}

	s.answers[questionID] = position
	s.current++

	if s.current >= len(s.questions) {
		return View{Title: s.title, Total: len(s.questions), Done: true}, nil
	}
	return s.view(), nil
}

// Back steps to the previous question and shows the answer recorded for it.
func (t *Tracker) Back(userID, quizID int64) (View, error) {
	s, err := t.lookup(userID, quizID)
	if err != nil {
		return View{}, err
	}
	defer s.mu.Unlock()

	if s.current == 0 {
		return View{}, ErrAtFirst
	}

	s.current--
	return s.view(), nil
}

// Finish scores the run and closes the session; a finished run cannot be
// resumed.
func (t *Tracker) Finish(userID, quizID int64) (Summary, error) {
	s, err := t.lookup(userID, quizID)
	if err != nil {
		return Summary{}, err
	}
	defer s.mu.Unlock()

	result := quiz.Score(s.questions, s.answers)

	s.gone = true
	key := sessionKey{userID: userID, quizID: quizID}
	t.mu.Lock()
	if t.sessions[key] == s {
		delete(t.sessions, key)
	}
	t.mu.Unlock()

	return Summary{QuizID: quizID, Title: s.title, Result: result}, nil
}

// lookup returns the session with its lock held, or ErrNoSession.
func (t *Tracker) lookup(userID, quizID int64) (*session, error) {
	t.mu.Lock()
	s := t.sessions[sessionKey{userID: userID, quizID: quizID}]
	t.mu.Unlock()

	if s == nil {
		return nil, ErrNoSession
	}

	s.mu.Lock()
	if s.gone {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	return s, nil
}

func (s *session) questionByID(questionID int64) (quiz.Question, bool) {
	for _, question := range s.questions {
		if question.ID == questionID {
			return question, true
		}
	}
	return quiz.Question{}, false
}

// view renders the current question; callers hold s.mu.
func (s *session) view() View {
	question := s.questions[s.current]
	return View{
		Title:    s.title,
		Question: question,
		Number:   s.current + 1,
		Total:    len(s.questions),
		Prior:    s.answers[question.ID],
	}
}
