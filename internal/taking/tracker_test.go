package taking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

type fakeQuizRepo struct {
	trees map[int64]quiz.QuizWithQuestions
}

func (f *fakeQuizRepo) GetQuizWithQuestions(_ context.Context, quizID int64) (quiz.QuizWithQuestions, error) {
	tree, ok := f.trees[quizID]
	if !ok {
		return quiz.QuizWithQuestions{}, quiz.ErrQuizNotFound
	}
	return tree, nil
}

func (f *fakeQuizRepo) CreateQuizWithQuestions(context.Context, string, int64, []quiz.DraftQuestion) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeQuizRepo) ListQuizzes(context.Context, int, int) (quiz.Page, error) {
	return quiz.Page{}, nil
}

func (f *fakeQuizRepo) DeleteQuiz(context.Context, int64) error { return nil }

func answersFor(questionID int64, count int) []quiz.Answer {
	answers := make([]quiz.Answer, 0, count)
	for i := 1; i <= count; i++ {
		answers = append(answers, quiz.Answer{
			ID:         questionID*10 + int64(i),
			QuestionID: questionID,
			Position:   i,
		})
	}
	return answers
}

func threeQuestionTree() quiz.QuizWithQuestions {
	return quiz.QuizWithQuestions{
		Quiz: quiz.Quiz{ID: 1, Title: "Тройка"},
		Questions: []quiz.Question{
			{ID: 11, QuizID: 1, Text: "Первый", Position: 1, CorrectAnswer: 1, Answers: answersFor(11, 2)},
			{ID: 12, QuizID: 1, Text: "Второй", Position: 2, CorrectAnswer: 3, Answers: answersFor(12, 3)},
			{ID: 13, QuizID: 1, Text: "Третий", Position: 3, CorrectAnswer: 2, Answers: answersFor(13, 4)},
		},
	}
}

func newTestTracker() *Tracker {
	return NewTracker(&fakeQuizRepo{trees: map[int64]quiz.QuizWithQuestions{
		1: threeQuestionTree(),
		2: {Quiz: quiz.Quiz{ID: 2, Title: "Пустой"}},
	}})
}

const userID = int64(500)

func TestStartReturnsFirstQuestion(t *testing.T) {
	tracker := newTestTracker()

	view, err := tracker.Start(context.Background(), userID, 1)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if view.Question.ID != 11 || view.Number != 1 || view.Total != 3 {
		t.Fatalf("unexpected first view: %+v", view)
	}
	if view.Prior != 0 || view.Done {
		t.Fatalf("fresh view carries state: %+v", view)
	}
}

func TestStartMissingAndEmptyQuiz(t *testing.T) {
	tracker := newTestTracker()

	if _, err := tracker.Start(context.Background(), userID, 99); !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
	if _, err := tracker.Start(context.Background(), userID, 2); !errors.Is(err, quiz.ErrQuizEmpty) {
		t.Fatalf("expected ErrQuizEmpty, got %v", err)
	}
}

func TestAnswerAdvancesAndBackShowsRecordedAnswer(t *testing.T) {
	tracker := newTestTracker()
	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	view, err := tracker.Answer(userID, 1, 11, 1)
	if err != nil || view.Question.ID != 12 || view.Number != 2 {
		t.Fatalf("answer 1: %+v err=%v", view, err)
	}
	view, err = tracker.Answer(userID, 1, 12, 3)
	if err != nil || view.Question.ID != 13 {
		t.Fatalf("answer 2: %+v err=%v", view, err)
	}
	view, err = tracker.Answer(userID, 1, 13, 2)
	if err != nil || !view.Done {
		t.Fatalf("answer 3 should complete the run: %+v err=%v", view, err)
	}

	// Two steps back from the completion point lands on question 2 with its
	// recorded answer shown.
	if _, err := tracker.Back(userID, 1); err != nil {
		t.Fatalf("first Back failed: %v", err)
	}
	view, err = tracker.Back(userID, 1)
	if err != nil {
		t.Fatalf("second Back failed: %v", err)
	}
	if view.Question.ID != 12 || view.Prior != 3 {
		t.Fatalf("expected question 12 with prior=3, got %+v", view)
	}
}

func TestBackAtFirstQuestionFailsWithoutStateChange(t *testing.T) {
	tracker := newTestTracker()
	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := tracker.Back(userID, 1); !errors.Is(err, ErrAtFirst) {
		t.Fatalf("expected ErrAtFirst, got %v", err)
	}

	view, err := tracker.Answer(userID, 1, 11, 2)
	if err != nil || view.Question.ID != 12 {
		t.Fatalf("state changed by failed Back: %+v err=%v", view, err)
	}
}

func TestAnswerValidation(t *testing.T) {
	tracker := newTestTracker()

	if _, err := tracker.Answer(userID, 1, 11, 1); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession before Start, got %v", err)
	}

	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := tracker.Answer(userID, 1, 11, 0); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition for 0, got %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 3); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition past option count, got %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 999, 1); !errors.Is(err, ErrBadPosition) {
		t.Fatalf("expected ErrBadPosition for unknown question, got %v", err)
	}
}

func TestOverwrittenAnswerScoresLatestChoice(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()
	if _, err := tracker.Start(ctx, userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Wrong answer first, then revisit and correct it.
	if _, err := tracker.Answer(userID, 1, 11, 2); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if _, err := tracker.Back(userID, 1); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 1); err != nil {
		t.Fatalf("re-Answer failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 12, 1); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 13, 2); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	summary, err := tracker.Finish(userID, 1)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if summary.CorrectAnswers != 2 || summary.TotalQuestions != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Percentage != 66.67 {
		t.Fatalf("unexpected percentage: %v", summary.Percentage)
	}
}

func TestFinishClosesSession(t *testing.T) {
	tracker := newTestTracker()
	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := tracker.Finish(userID, 1); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if _, err := tracker.Finish(userID, 1); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on double finish, got %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 1); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after finish, got %v", err)
	}
}

func TestUnansweredQuestionsCountAsIncorrect(t *testing.T) {
	tracker := newTestTracker()
	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 1); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	summary, err := tracker.Finish(userID, 1)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if summary.CorrectAnswers != 1 || summary.Percentage != 33.33 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestParallelRunsOfDifferentQuizzesCoexist(t *testing.T) {
	tracker := NewTracker(&fakeQuizRepo{trees: map[int64]quiz.QuizWithQuestions{
		1: threeQuestionTree(),
		3: {
			Quiz: quiz.Quiz{ID: 3, Title: "Другой"},
			Questions: []quiz.Question{
				{ID: 31, QuizID: 3, Text: "Q", Position: 1, CorrectAnswer: 1, Answers: answersFor(31, 2)},
			},
		},
	}})
	ctx := context.Background()

	if _, err := tracker.Start(ctx, userID, 1); err != nil {
		t.Fatalf("Start quiz 1 failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 1); err != nil {
		t.Fatalf("Answer quiz 1 failed: %v", err)
	}

	if _, err := tracker.Start(ctx, userID, 3); err != nil {
		t.Fatalf("Start quiz 3 failed: %v", err)
	}

	// The first run is untouched by the second Start.
	view, err := tracker.Back(userID, 1)
	if err != nil {
		t.Fatalf("Back on quiz 1 failed: %v", err)
	}
	if view.Question.ID != 11 || view.Prior != 1 {
		t.Fatalf("quiz 1 state lost: %+v", view)
	}
}

func TestRestartReplacesSession(t *testing.T) {
	tracker := newTestTracker()
	ctx := context.Background()

	if _, err := tracker.Start(ctx, userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := tracker.Answer(userID, 1, 11, 1); err != nil {
		t.Fatalf("Answer failed: %v", err)
	}

	view, err := tracker.Start(ctx, userID, 1)
	if err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if view.Number != 1 || view.Prior != 0 {
		t.Fatalf("restart kept old progress: %+v", view)
	}
}

func TestConcurrentDuplicateTapsStayConsistent(t *testing.T) {
	tracker := newTestTracker()
	if _, err := tracker.Start(context.Background(), userID, 1); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// A burst of identical taps on the first question must not corrupt the
	// answers map or the score.
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tracker.Answer(userID, 1, 11, 1)
		}()
	}
	wg.Wait()

	summary, err := tracker.Finish(userID, 1)
	if err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if summary.TotalQuestions != 3 || summary.CorrectAnswers != 1 {
		t.Fatalf("duplicate taps corrupted state: %+v", summary)
	}
}
