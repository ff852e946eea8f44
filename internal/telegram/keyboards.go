package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
	"github.com/sqdnosita/telegramQuizBot/internal/taking"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 Пройти тест", cbTakeQuiz),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Создать тест", cbCreateQuiz),
		),
	)
}

// quizListKeyboard renders one page of quizzes, a navigation row when the
// list spans several pages, and a way back to the menu.
func quizListKeyboard(page quiz.Page) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, q := range page.Quizzes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(q.Title, cbStartQuiz(q.ID)),
		))
	}

	if page.TotalPages > 1 {
		var nav []tgbotapi.InlineKeyboardButton
		if page.HasPrev {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", cbQuizPage(page.Page-1)))
		}
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("📄 %d/%d", page.Page, page.TotalPages), cbNoop))
		if page.HasNext {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("Вперёд ➡️", cbQuizPage(page.Page+1)))
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(nav...))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔙 Назад в меню", cbMainMenu),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// questionKeyboard lists the answer options one per row. The back row is
// omitted on the first question.
func questionKeyboard(quizID int64, v taking.View) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, answer := range v.Question.Answers {
		label := strconv.Itoa(answer.Position) + ". " + answer.Text
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, cbAnswer(quizID, v.Question.ID, answer.Position)),
		))
	}
	if v.Number > 1 {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", cbBack(quizID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func finishKeyboard(quizID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Завершить квиз", cbFinish(quizID)),
		),
	)
}
