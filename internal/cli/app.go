package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sqdnosita/telegramQuizBot/internal/opentdb"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz/sqlite"
)

const fetchQuizTitle = "Случайная викторина"

// AdminStore covers the maintenance operations that go beyond the
// regular repositories.
type AdminStore interface {
	CountRows(ctx context.Context) (sqlite.RowCounts, error)
	Reset(ctx context.Context) error
}

// QuestionFetcher pulls trivia questions from an external source.
type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, amount int) ([]opentdb.RawQuestion, error)
}

// App is the maintenance tool around the quiz database.
type App struct {
	Users   quiz.UserRepository
	Quizzes quiz.QuizRepository
	Admin   AdminStore
	Fetcher QuestionFetcher
	Out     io.Writer
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("subcommand is required")
	}

	switch args[0] {
	case "seed":
		return a.runSeed(ctx)
	case "fetch":
		return a.runFetch(ctx, args[1:])
	case "check":
		return a.runCheck(ctx)
	case "reset":
		return a.runReset(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown subcommand %q", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.Out, "Usage: quiz-admin <seed|fetch|check|reset>")
	fmt.Fprintln(a.Out, "  seed         load the sample quizzes")
	fmt.Fprintln(a.Out, "  fetch [n]    create a quiz from n OpenTriviaDB questions")
	fmt.Fprintln(a.Out, "  check        print table row counts")
	fmt.Fprintln(a.Out, "  reset        delete all data")
}

func (a *App) runSeed(ctx context.Context) error {
	creator, err := a.Users.GetOrCreateUser(ctx, seedUser)
	if err != nil {
		return fmt.Errorf("create seed user: %w", err)
	}
	fmt.Fprintf(a.Out, "seed user ready: id=%d\n", creator.ID)

	for _, sample := range sampleQuizzes {
		quizID, err := a.Quizzes.CreateQuizWithQuestions(ctx, sample.title, creator.ID, sample.questions)
		if err != nil {
			return fmt.Errorf("seed quiz %q: %w", sample.title, err)
		}
		fmt.Fprintf(a.Out, "quiz created: id=%d title=%q questions=%d\n",
			quizID, sample.title, len(sample.questions))
	}

	fmt.Fprintf(a.Out, "seeding completed: %d quizzes\n", len(sampleQuizzes))
	return nil
}

func (a *App) runFetch(ctx context.Context, args []string) error {
	amount := 0
	if len(args) > 0 {
		if _, err := fmt.Sscanf(args[0], "%d", &amount); err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount %q", args[0])
		}
	}
	if amount > quiz.MaxQuestions {
		amount = quiz.MaxQuestions
	}

	raw, err := a.Fetcher.FetchQuestions(ctx, amount)
	if err != nil {
		return fmt.Errorf("fetch questions: %w", err)
	}

	drafts := opentdb.ToDraftQuestions(raw)
	if len(drafts) > quiz.MaxQuestions {
		drafts = drafts[:quiz.MaxQuestions]
	}
	if len(drafts) == 0 {
		return errors.New("no usable questions fetched")
	}

	creator, err := a.Users.GetOrCreateUser(ctx, seedUser)
	if err != nil {
		return fmt.Errorf("create seed user: %w", err)
	}

	quizID, err := a.Quizzes.CreateQuizWithQuestions(ctx, fetchQuizTitle, creator.ID, drafts)
	if err != nil {
		return fmt.Errorf("create fetched quiz: %w", err)
	}

	fmt.Fprintf(a.Out, "quiz created: id=%d title=%q questions=%d\n",
		quizID, fetchQuizTitle, len(drafts))
	return nil
}

func (a *App) runCheck(ctx context.Context) error {
	counts, err := a.Admin.CountRows(ctx)
	if err != nil {
		return fmt.Errorf("count rows: %w", err)
	}

	fmt.Fprintf(a.Out, "users:     %d\n", counts.Users)
	fmt.Fprintf(a.Out, "quizzes:   %d\n", counts.Quizzes)
	fmt.Fprintf(a.Out, "questions: %d\n", counts.Questions)
	fmt.Fprintf(a.Out, "answers:   %d\n", counts.Answers)

	for page := 1; ; page++ {
		listing, err := a.Quizzes.ListQuizzes(ctx, page, quiz.DefaultPageSize)
		if err != nil {
			return fmt.Errorf("list quizzes: %w", err)
		}
		for _, q := range listing.Quizzes {
			fmt.Fprintf(a.Out, "  quiz %d: %s\n", q.ID, q.Title)
		}
		if !listing.HasNext {
			break
		}
	}
	return nil
}

func (a *App) runReset(ctx context.Context) error {
	if err := a.Admin.Reset(ctx); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	fmt.Fprintln(a.Out, "database reset")
	return nil
}
