package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sqdnosita/telegramQuizBot/internal/opentdb"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz/sqlite"
)

type fakeUserRepo struct {
	calls int
	err   error
}

func (f *fakeUserRepo) GetOrCreateUser(_ context.Context, identity quiz.TelegramUser) (quiz.User, error) {
	f.calls++
	if f.err != nil {
		return quiz.User{}, f.err
	}
	return quiz.User{ID: 1, TelegramID: identity.ID}, nil
}

type createdQuiz struct {
	title     string
	creatorID int64
	questions []quiz.DraftQuestion
}

type fakeQuizRepo struct {
	created []createdQuiz
	listing quiz.Page
}

func (f *fakeQuizRepo) CreateQuizWithQuestions(_ context.Context, title string, creatorID int64, questions []quiz.DraftQuestion) (int64, error) {
	f.created = append(f.created, createdQuiz{title: title, creatorID: creatorID, questions: questions})
	return int64(len(f.created)), nil
}

func (f *fakeQuizRepo) GetQuizWithQuestions(context.Context, int64) (quiz.QuizWithQuestions, error) {
	return quiz.QuizWithQuestions{}, quiz.ErrQuizNotFound
}

func (f *fakeQuizRepo) ListQuizzes(context.Context, int, int) (quiz.Page, error) {
	return f.listing, nil
}

func (f *fakeQuizRepo) DeleteQuiz(context.Context, int64) error { return nil }

type fakeAdmin struct {
	counts   sqlite.RowCounts
	resets   int
	countErr error
}

func (f *fakeAdmin) CountRows(context.Context) (sqlite.RowCounts, error) {
	if f.countErr != nil {
		return sqlite.RowCounts{}, f.countErr
	}
	return f.counts, nil
}

func (f *fakeAdmin) Reset(context.Context) error {
	f.resets++
	return nil
}

type fakeFetcher struct {
	raw []opentdb.RawQuestion
	err error
}

func (f *fakeFetcher) FetchQuestions(context.Context, int) ([]opentdb.RawQuestion, error) {
	return f.raw, f.err
}

func newTestApp() (*App, *fakeUserRepo, *fakeQuizRepo, *fakeAdmin, *fakeFetcher, *bytes.Buffer) {
	users := &fakeUserRepo{}
	quizzes := &fakeQuizRepo{}
	admin := &fakeAdmin{}
	fetcher := &fakeFetcher{}
	out := &bytes.Buffer{}
	app := &App{Users: users, Quizzes: quizzes, Admin: admin, Fetcher: fetcher, Out: out}
	return app, users, quizzes, admin, fetcher, out
}

func TestSeedCreatesSampleQuizzes(t *testing.T) {
	app, users, quizzes, _, _, out := newTestApp()

	if err := app.Run(context.Background(), []string{"seed"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if users.calls != 1 {
		t.Fatalf("expected one user lookup, got %d", users.calls)
	}
	if len(quizzes.created) != len(sampleQuizzes) {
		t.Fatalf("created %d quizzes, want %d", len(quizzes.created), len(sampleQuizzes))
	}
	first := quizzes.created[0]
	if first.title != "Python Основы" || first.creatorID != 1 || len(first.questions) != 5 {
		t.Fatalf("unexpected first quiz: %+v", first)
	}
	if !strings.Contains(out.String(), "seeding completed") {
		t.Fatalf("missing completion line: %s", out.String())
	}
}

func TestFetchCreatesQuizFromTrivia(t *testing.T) {
	app, _, quizzes, _, fetcher, out := newTestApp()
	fetcher.raw = []opentdb.RawQuestion{
		{Question: "Q1", CorrectAnswer: "a", IncorrectAnswers: []string{"b", "c"}},
		{Question: "Q2", CorrectAnswer: "x", IncorrectAnswers: []string{"y"}},
	}

	if err := app.Run(context.Background(), []string{"fetch", "2"}); err != nil {
		t.Fatalf("fetch failed: %v", err)
	}

	if len(quizzes.created) != 1 {
		t.Fatalf("created %d quizzes, want 1", len(quizzes.created))
	}
	created := quizzes.created[0]
	if created.title != fetchQuizTitle || len(created.questions) != 2 {
		t.Fatalf("unexpected fetched quiz: %+v", created)
	}
	if !strings.Contains(out.String(), "quiz created") {
		t.Fatalf("missing creation line: %s", out.String())
	}
}

func TestFetchFailsWithoutUsableQuestions(t *testing.T) {
	app, _, quizzes, _, fetcher, _ := newTestApp()
	fetcher.raw = []opentdb.RawQuestion{
		{Question: "no options", CorrectAnswer: "only"},
	}

	if err := app.Run(context.Background(), []string{"fetch"}); err == nil {
		t.Fatalf("expected error for unusable questions")
	}
	if len(quizzes.created) != 0 {
		t.Fatalf("quiz created from unusable questions")
	}
}

func TestFetchPropagatesFetcherError(t *testing.T) {
	app, _, _, _, fetcher, _ := newTestApp()
	fetcher.err = errors.New("network down")

	if err := app.Run(context.Background(), []string{"fetch"}); err == nil {
		t.Fatalf("expected fetch error")
	}
}

func TestCheckPrintsRowCountsAndQuizzes(t *testing.T) {
	app, _, quizzes, admin, _, out := newTestApp()
	admin.counts = sqlite.RowCounts{Users: 2, Quizzes: 3, Questions: 12, Answers: 48}
	quizzes.listing = quiz.Page{
		Quizzes: []quiz.Quiz{{ID: 1, Title: "Python Основы"}},
		Total:   1,
	}

	if err := app.Run(context.Background(), []string{"check"}); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{
		"users:     2", "quizzes:   3", "questions: 12", "answers:   48",
		"quiz 1: Python Основы",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in output:\n%s", want, text)
		}
	}
}

func TestResetCallsStore(t *testing.T) {
	app, _, _, admin, _, _ := newTestApp()

	if err := app.Run(context.Background(), []string{"reset"}); err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if admin.resets != 1 {
		t.Fatalf("expected one reset call, got %d", admin.resets)
	}
}

func TestRunRejectsUnknownSubcommand(t *testing.T) {
	app, _, _, _, _, out := newTestApp()

	if err := app.Run(context.Background(), []string{"explode"}); err == nil {
		t.Fatalf("expected error for unknown subcommand")
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("usage not printed: %s", out.String())
	}

	if err := app.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error without subcommand")
	}
}
