package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sqdnosita/telegramQuizBot/internal/authoring"
	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
	"github.com/sqdnosita/telegramQuizBot/internal/taking"
)

// Bot wires the Telegram transport to the quiz services. Updates are
// handled concurrently; the authoring manager and the run tracker do
// their own per-user serialization.
type Bot struct {
	api     *tgbotapi.BotAPI
	users   quiz.UserRepository
	quizzes quiz.QuizRepository
	drafts  *authoring.Manager
	runs    *taking.Tracker
}

func New(token string, users quiz.UserRepository, quizzes quiz.QuizRepository, drafts *authoring.Manager, runs *taking.Tracker) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:     api,
		users:   users,
		quizzes: quizzes,
		drafts:  drafts,
		runs:    runs,
	}, nil
}

// Run long-polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	log.Printf("telegram: authorized as @%s", b.api.Self.UserName)

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60
	updates := b.api.GetUpdatesChan(cfg)

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		update := update
		go b.handleUpdate(ctx, update)
	}
	return ctx.Err()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	user := identity(msg.From)
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		b.handleStart(ctx, chatID, user)
	case "help":
		b.send(chatID, textHelp, nil)
	case "create_quiz":
		reply := b.drafts.Begin(user)
		b.send(chatID, reply.Text, nil)
	case "cancel":
		reply := b.drafts.Cancel(user)
		b.send(chatID, reply.Text, nil)
	case "":
		b.handleText(ctx, chatID, user, msg.Text)
	default:
		b.send(chatID, textUnknownInput, nil)
	}
}

func (b *Bot) handleStart(ctx context.Context, chatID int64, user quiz.TelegramUser) {
	row, err := b.users.GetOrCreateUser(ctx, user)
	if err != nil {
		log.Printf("telegram: register user %d failed: %v", user.ID, err)
		b.send(chatID, alertGeneric, nil)
		return
	}
	log.Printf("telegram: user started bot: id=%d telegram_id=%d", row.ID, user.ID)

	kb := mainMenuKeyboard()
	b.send(chatID, textWelcome, &kb)
}

// handleText routes free text into the authoring dialogue when one is in
// progress.
func (b *Bot) handleText(ctx context.Context, chatID int64, user quiz.TelegramUser, text string) {
	if !b.drafts.Active(user) {
		b.send(chatID, textUnknownInput, nil)
		return
	}

	reply := b.drafts.Input(ctx, user, text)
	if reply.Kind == authoring.KindCommitted {
		kb := mainMenuKeyboard()
		b.send(chatID, reply.Text, &kb)
		return
	}
	b.send(chatID, reply.Text, nil)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		b.ack(cb.ID)
		return
	}
	user := identity(cb.From)
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	data := cb.Data

	var err error
	switch {
	case data == cbNoop:
	case data == cbMainMenu:
		kb := mainMenuKeyboard()
		b.edit(chatID, messageID, textMainMenu, kb)
	case data == cbCreateQuiz:
		reply := b.drafts.Begin(user)
		b.send(chatID, reply.Text, nil)
	case data == cbTakeQuiz:
		err = b.showQuizList(ctx, chatID, messageID, 1)
	case strings.HasPrefix(data, prefixQuizPage):
		err = b.handleQuizPage(ctx, chatID, messageID, data)
	case strings.HasPrefix(data, prefixStartQuiz):
		err = b.handleStartQuiz(ctx, chatID, messageID, user, data)
	case strings.HasPrefix(data, prefixAnswer):
		err = b.handleAnswer(chatID, messageID, user, data)
	case strings.HasPrefix(data, prefixBack):
		err = b.handleBack(chatID, messageID, user, data)
	case strings.HasPrefix(data, prefixFinish):
		err = b.handleFinish(chatID, messageID, user, data)
	default:
		err = errBadCallback
	}

	if err != nil {
		b.alert(cb.ID, alertFor(err))
		return
	}
	b.ack(cb.ID)
}

func (b *Bot) showQuizList(ctx context.Context, chatID int64, messageID, pageNum int) error {
	page, err := b.quizzes.ListQuizzes(ctx, pageNum, quiz.DefaultPageSize)
	if err != nil {
		log.Printf("telegram: list quizzes page %d failed: %v", pageNum, err)
		return err
	}

	if page.Total == 0 {
		b.edit(chatID, messageID, textNoQuizzes, mainMenuKeyboard())
		return nil
	}
	b.edit(chatID, messageID, textChooseQuiz, quizListKeyboard(page))
	return nil
}

func (b *Bot) handleQuizPage(ctx context.Context, chatID int64, messageID int, data string) error {
	pageNum, err := parseQuizPage(data)
	if err != nil {
		return err
	}
	return b.showQuizList(ctx, chatID, messageID, pageNum)
}

func (b *Bot) handleStartQuiz(ctx context.Context, chatID int64, messageID int, user quiz.TelegramUser, data string) error {
	quizID, err := parseStartQuiz(data)
	if err != nil {
		return err
	}

	view, err := b.runs.Start(ctx, user.ID, quizID)
	if err != nil {
		log.Printf("telegram: start quiz %d for user %d failed: %v", quizID, user.ID, err)
		return err
	}
	log.Printf("telegram: quiz started: id=%d user=%d questions=%d", quizID, user.ID, view.Total)

	b.edit(chatID, messageID, textQuestion(view), questionKeyboard(quizID, view))
	return nil
}

func (b *Bot) handleAnswer(chatID int64, messageID int, user quiz.TelegramUser, data string) error {
	quizID, questionID, position, err := parseAnswer(data)
	if err != nil {
		return err
	}

	view, err := b.runs.Answer(user.ID, quizID, questionID, position)
	if err != nil {
		return err
	}

	if view.Done {
		b.edit(chatID, messageID, textAllAnswered(view), finishKeyboard(quizID))
		return nil
	}
	b.edit(chatID, messageID, textQuestion(view), questionKeyboard(quizID, view))
	return nil
}

func (b *Bot) handleBack(chatID int64, messageID int, user quiz.TelegramUser, data string) error {
	quizID, err := parseBack(data)
	if err != nil {
		return err
	}

	view, err := b.runs.Back(user.ID, quizID)
	if err != nil {
		return err
	}
	b.edit(chatID, messageID, textQuestion(view), questionKeyboard(quizID, view))
	return nil
}

func (b *Bot) handleFinish(chatID int64, messageID int, user quiz.TelegramUser, data string) error {
	quizID, err := parseFinish(data)
	if err != nil {
		return err
	}

	summary, err := b.runs.Finish(user.ID, quizID)
	if err != nil {
		return err
	}
	log.Printf("telegram: quiz completed: id=%d user=%d score=%d/%d percentage=%v",
		quizID, user.ID, summary.CorrectAnswers, summary.TotalQuestions, summary.Percentage)

	b.edit(chatID, messageID, textResult(summary), mainMenuKeyboard())
	return nil
}

func (b *Bot) send(chatID int64, text string, kb *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = *kb
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: send to chat %d failed: %v", chatID, err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("telegram: edit message %d in chat %d failed: %v", messageID, chatID, err)
	}
}

func (b *Bot) ack(callbackID string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("telegram: answer callback failed: %v", err)
	}
}

func (b *Bot) alert(callbackID, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		log.Printf("telegram: answer callback failed: %v", err)
	}
}

func identity(from *tgbotapi.User) quiz.TelegramUser {
	return quiz.TelegramUser{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
	}
}
