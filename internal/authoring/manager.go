package authoring

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

type Kind int

const (
	// KindPrompt carries the next prompt, both on progress and on a
	// validation re-prompt (the phase does not change for the latter).
	KindPrompt Kind = iota
	KindCommitted
	KindFailed
	KindCancelled
	KindNoDraft
)

// Reply is what the transport layer shows to the author.
type Reply struct {
	Kind   Kind
	State  string
	Text   string
	QuizID int64
}

// Manager drives the quiz-creation dialogue, one draft per telegram user.
type Manager struct {
	users   quiz.UserRepository
	quizzes quiz.QuizRepository

	mu     sync.Mutex
	drafts map[int64]*draft
}

// draft serializes all input for one author: the entry mutex is held for the
// whole step, including the final commit. gone flags entries removed while a
// concurrent action was waiting on the lock.
type draft struct {
	mu    sync.Mutex
	gone  bool
	phase phase
}

func NewManager(users quiz.UserRepository, quizzes quiz.QuizRepository) *Manager {
	return &Manager{
		users:   users,
		quizzes: quizzes,
		drafts:  make(map[int64]*draft),
	}
}

// Begin starts a fresh draft, discarding any draft in progress.
func (m *Manager) Begin(user quiz.TelegramUser) Reply {
	fresh := &draft{phase: awaitingTitle{}}

	m.mu.Lock()
	old := m.drafts[user.ID]
	m.drafts[user.ID] = fresh
	m.mu.Unlock()

	if old != nil {
		old.mu.Lock()
		old.gone = true
		old.mu.Unlock()
	}

	return Reply{Kind: KindPrompt, State: fresh.phase.name(), Text: textBegin}
}

// Cancel discards the user's draft, if any.
func (m *Manager) Cancel(user quiz.TelegramUser) Reply {
	m.mu.Lock()
	d := m.drafts[user.ID]
	delete(m.drafts, user.ID)
	m.mu.Unlock()

	if d == nil {
		return Reply{Kind: KindNoDraft, Text: textNoDraft}
	}

	d.mu.Lock()
	d.gone = true
	d.mu.Unlock()

	return Reply{Kind: KindCancelled, Text: textCancelled}
}

// Active reports whether the user has a draft in progress.
func (m *Manager) Active(user quiz.TelegramUser) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drafts[user.ID] != nil
}

// Input feeds one message into the dialogue. Invalid input re-prompts and
// leaves the draft untouched; the answer to the final step commits the quiz.
func (m *Manager) Input(ctx context.Context, user quiz.TelegramUser, text string) Reply {
	m.mu.Lock()
	d := m.drafts[user.ID]
	m.mu.Unlock()

	if d == nil {
		return Reply{Kind: KindNoDraft, Text: textNoDraft}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gone {
		return Reply{Kind: KindNoDraft, Text: textNoDraft}
	}

	switch p := d.phase.(type) {
	case awaitingTitle:
		return m.handleTitle(d, text)
	case awaitingCount:
		return m.handleCount(d, p, text)
	case awaitingQuestion:
		return m.handleQuestion(d, p, text)
	case awaitingOptions:
		return m.handleOptions(d, p, text)
	case awaitingCorrect:
		return m.handleCorrect(ctx, d, p, user, text)
	default:
		return Reply{Kind: KindNoDraft, Text: textNoDraft}
	}
}

func (m *Manager) handleTitle(d *draft, text string) Reply {
	title := strings.TrimSpace(text)
	if title == "" {
		return reprompt(d, textTitleEmpty)
	}
	if utf8.RuneCountInString(title) > quiz.MaxTitleLen {
		return reprompt(d, textTitleTooLong)
	}

	d.phase = awaitingCount{title: title}
	return Reply{Kind: KindPrompt, State: d.phase.name(), Text: textTitleAccepted(title)}
}

func (m *Manager) handleCount(d *draft, p awaitingCount, text string) Reply {
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return reprompt(d, textCountNotNumber)
	}
	if count < quiz.MinQuestions || count > quiz.MaxQuestions {
		return reprompt(d, textCountOutOfRange)
	}

	d.phase = awaitingQuestion{title: p.title, total: count}
	return Reply{Kind: KindPrompt, State: d.phase.name(), Text: textCountAccepted(count)}
}

func (m *Manager) handleQuestion(d *draft, p awaitingQuestion, text string) Reply {
	questionText := strings.TrimSpace(text)
	if questionText == "" {
		return reprompt(d, textQuestionEmpty)
	}
	if utf8.RuneCountInString(questionText) > quiz.MaxQuestionLen {
		return reprompt(d, textQuestionTooLong)
	}

	d.phase = awaitingOptions{
		title:        p.title,
		total:        p.total,
		built:        p.built,
		questionText: questionText,
	}
	return Reply{Kind: KindPrompt, State: d.phase.name(), Text: textAskOptions(len(p.built)+1, questionText)}
}

func (m *Manager) handleOptions(d *draft, p awaitingOptions, text string) Reply {
	options := splitOptions(text)
	if len(options) < quiz.MinOptions {
		return reprompt(d, textOptionsTooFew)
	}
	if len(options) > quiz.MaxOptions {
		return reprompt(d, textOptionsTooMany)
	}
	for idx, option := range options {
		if utf8.RuneCountInString(option) > quiz.MaxOptionLen {
			return reprompt(d, textOptionTooLong(idx+1))
		}
	}

	d.phase = awaitingCorrect{
		title:        p.title,
		total:        p.total,
		built:        p.built,
		questionText: p.questionText,
		options:      options,
	}
	return Reply{Kind: KindPrompt, State: d.phase.name(), Text: textAskCorrect(options)}
}

func (m *Manager) handleCorrect(ctx context.Context, d *draft, p awaitingCorrect, user quiz.TelegramUser, text string) Reply {
	correct, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return reprompt(d, textCorrectNotNumber)
	}
	if correct < 1 || correct > len(p.options) {
		return reprompt(d, textCorrectOutOfRange(len(p.options)))
	}

	built := append(p.built, quiz.DraftQuestion{
		Text:          p.questionText,
		Options:       p.options,
		CorrectOption: correct,
	})

	if len(built) < p.total {
		d.phase = awaitingQuestion{title: p.title, total: p.total, built: built}
		return Reply{
			Kind:  KindPrompt,
			State: d.phase.name(),
			Text:  textQuestionSaved(len(built), len(built)+1),
		}
	}

	return m.commit(ctx, d, user, p.title, built)
}

// commit runs with the draft lock held; the draft is gone afterwards whether
// the write succeeded or not, so a failed commit never leaves a half-open
// dialogue behind.
func (m *Manager) commit(ctx context.Context, d *draft, user quiz.TelegramUser, title string, built []quiz.DraftQuestion) Reply {
	defer m.remove(user.ID, d)

	author, err := m.users.GetOrCreateUser(ctx, user)
	if err != nil {
		log.Printf("authoring: resolve author %d failed: %v", user.ID, err)
		return Reply{Kind: KindFailed, Text: textCommitFailed}
	}

	quizID, err := m.quizzes.CreateQuizWithQuestions(ctx, title, author.ID, built)
	if err != nil {
		log.Printf("authoring: commit quiz %q for user %d failed: %v", title, user.ID, err)
		return Reply{Kind: KindFailed, Text: textCommitFailed}
	}

	log.Printf("authoring: quiz created id=%d title=%q questions=%d", quizID, title, len(built))
	return Reply{
		Kind:   KindCommitted,
		QuizID: quizID,
		Text:   textCommitted(title, len(built), quizID),
	}
}

func (m *Manager) remove(userID int64, d *draft) {
	d.gone = true
	m.mu.Lock()
	if m.drafts[userID] == d {
		delete(m.drafts, userID)
	}
	m.mu.Unlock()
}

func reprompt(d *draft, text string) Reply {
	return Reply{Kind: KindPrompt, State: d.phase.name(), Text: text}
}

func splitOptions(text string) []string {
	lines := strings.Split(text, "\n")
	options := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			options = append(options, line)
		}
	}
	return options
}
