package telegram

import (
	"errors"
	"fmt"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
	"github.com/sqdnosita/telegramQuizBot/internal/taking"
)

const (
	textWelcome = "👋 Добро пожаловать в Quiz Bot!\n\n" +
		"Этот бот позволяет:\n" +
		"📝 Проходить тесты по программированию\n" +
		"➕ Создавать собственные квизы\n" +
		"📊 Получать результаты с процентами\n\n" +
		"Выберите действие из меню ниже:"

	textMainMenu = "👋 Главное меню\n\nВыберите действие:"

	textHelp = "📚 Доступные команды:\n\n" +
		"/start - Запустить бота и показать главное меню\n" +
		"/help - Показать это сообщение\n" +
		"/create_quiz - Создать новый квиз\n" +
		"/cancel - Отменить текущее действие\n\n" +
		"🎯 Как использовать бота:\n\n" +
		"1️⃣ Прохождение тестов:\n" +
		"   • Нажмите 'Пройти тест' в главном меню\n" +
		"   • Выберите квиз из списка\n" +
		"   • Отвечайте на вопросы, выбирая варианты\n" +
		"   • Используйте кнопку 'Назад' для возврата\n" +
		"   • Получите результат в конце\n\n" +
		"2️⃣ Создание квизов:\n" +
		"   • Нажмите 'Создать тест' или /create_quiz\n" +
		"   • Введите название квиза\n" +
		"   • Укажите количество вопросов (1-20)\n" +
		"   • Для каждого вопроса:\n" +
		"     - Введите текст вопроса\n" +
		"     - Введите варианты ответов (2-6 штук)\n" +
		"     - Укажите номер правильного ответа\n" +
		"   • Используйте /cancel для отмены\n\n" +
		"💡 Совет: Все взаимодействие происходит через кнопки " +
		"и текстовые сообщения."

	textNoQuizzes = "📝 Пока нет доступных квизов.\n\n" +
		"Вы можете создать первый квиз, нажав " +
		"'Создать тест' в главном меню."
	textChooseQuiz = "📚 Выберите квиз для прохождения:"

	textUnknownInput = "Используйте кнопки меню или команду /start."

	alertGeneric     = "❌ Произошла техническая ошибка. Попробуйте позже."
	alertBadData     = "❌ Некорректные данные"
	alertQuizMissing = "❌ Квиз не найден"
	alertQuizEmpty   = "❌ В квизе нет вопросов"
	alertNoRun       = "❌ Прогресс прохождения не найден. Начните квиз заново."
	alertFirst       = "❌ Это первый вопрос"
	alertScoring     = "❌ Произошла техническая ошибка при подсчете результатов."
)

func textQuestion(v taking.View) string {
	text := fmt.Sprintf("📝 %s\n\nВопрос %d из %d\n\n%s",
		v.Title, v.Number, v.Total, v.Question.Text)
	if v.Prior > 0 {
		text += fmt.Sprintf("\n\n✅ Ранее выбран ответ: %d", v.Prior)
	}
	return text
}

func textAllAnswered(v taking.View) string {
	return fmt.Sprintf("📝 %s\n\n"+
		"Вы ответили на все вопросы!\n"+
		"Всего вопросов: %d\n\n"+
		"Нажмите кнопку ниже, чтобы увидеть результаты.",
		v.Title, v.Total)
}

func textResult(s taking.Summary) string {
	text := fmt.Sprintf("🎉 Квиз завершен!\n\n"+
		"📝 %s\n\n"+
		"✅ Правильных ответов: %d из %d\n"+
		"📊 Процент: %v%%\n\n",
		s.Title, s.CorrectAnswers, s.TotalQuestions, s.Percentage)

	switch {
	case s.Percentage >= 90:
		text += "🏆 Отличный результат!"
	case s.Percentage >= 70:
		text += "👍 Хороший результат!"
	case s.Percentage >= 50:
		text += "📚 Неплохо, но есть куда расти!"
	default:
		text += "💪 Попробуйте еще раз!"
	}
	return text
}

func alertFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quiz.ErrQuizNotFound):
		return alertQuizMissing
	case errors.Is(err, quiz.ErrQuizEmpty):
		return alertQuizEmpty
	case errors.Is(err, taking.ErrNoSession):
		return alertNoRun
	case errors.Is(err, taking.ErrAtFirst):
		return alertFirst
	case errors.Is(err, taking.ErrBadPosition), errors.Is(err, errBadCallback):
		return alertBadData
	default:
		return alertGeneric
	}
}
