package authoring

import (
	"fmt"
	"strings"
)

const cancelHint = "Используйте /cancel для отмены создания."

const (
	textBegin = "📝 Создание нового квиза\n\n" +
		"Шаг 1: Введите название квиза\n\n" + cancelHint

	textTitleEmpty = "❌ Название квиза не может быть пустым.\n\n" +
		"Пожалуйста, введите название квиза:"
	textTitleTooLong = "❌ Название квиза слишком длинное (максимум 200 символов).\n\n" +
		"Пожалуйста, введите более короткое название:"

	textCountNotNumber = "❌ Некорректный ввод. Введите целое число от 1 до 20.\n\n" +
		"Например: 5"
	textCountOutOfRange = "❌ Количество вопросов должно быть от 1 до 20.\n\n" +
		"Пожалуйста, введите корректное число:"

	textQuestionEmpty = "❌ Текст вопроса не может быть пустым.\n\n" +
		"Пожалуйста, введите текст вопроса:"
	textQuestionTooLong = "❌ Текст вопроса слишком длинный (максимум 500 символов).\n\n" +
		"Пожалуйста, введите более короткий вопрос:"

	textOptionsTooFew = "❌ Необходимо минимум 2 варианта ответа.\n\n" +
		"Введите варианты ответов, каждый на новой строке:"
	textOptionsTooMany = "❌ Максимум 6 вариантов ответа.\n\n" +
		"Введите от 2 до 6 вариантов ответа, каждый на новой строке:"

	textCorrectNotNumber = "❌ Некорректный ввод. Введите целое число.\n\n" +
		"Например: 1"

	textCommitFailed = "❌ Произошла ошибка при создании квиза. " +
		"Пожалуйста, попробуйте позже."

	textCancelled = "❌ Создание квиза отменено.\n\n" +
		"Вы можете начать заново, выбрав 'Создать тест' в меню."
	textNoDraft = "Нет активного процесса создания квиза."
)

func textTitleAccepted(title string) string {
	return fmt.Sprintf("✅ Название квиза: %s\n\n"+
		"Шаг 2: Введите количество вопросов (от 1 до 20)\n\n"+cancelHint, title)
}

func textCountAccepted(count int) string {
	return fmt.Sprintf("✅ Количество вопросов: %d\n\n"+
		"Шаг 3: Введите текст вопроса 1\n\n"+cancelHint, count)
}

func textAskOptions(number int, questionText string) string {
	return fmt.Sprintf("✅ Вопрос %d: %s\n\n"+
		"Шаг 4: Введите варианты ответов\n\n"+
		"Введите от 2 до 6 вариантов ответа, каждый на новой строке.\n\n"+
		"Пример:\nPython\nJavaScript\nJava\nC++\n\n"+cancelHint,
		number, questionText)
}

func textOptionTooLong(number int) string {
	return fmt.Sprintf("❌ Вариант ответа %d слишком длинный (максимум 200 символов).\n\n"+
		"Пожалуйста, введите более короткие варианты:", number)
}

func textAskCorrect(options []string) string {
	var listing strings.Builder
	for idx, option := range options {
		fmt.Fprintf(&listing, "%d. %s\n", idx+1, option)
	}
	return fmt.Sprintf("✅ Варианты ответов:\n%s\n"+
		"Шаг 5: Введите номер правильного ответа\n\n"+
		"Введите число от 1 до %d\n\n"+cancelHint,
		listing.String(), len(options))
}

func textCorrectOutOfRange(optionCount int) string {
	return fmt.Sprintf("❌ Номер ответа должен быть от 1 до %d.\n\n"+
		"Пожалуйста, введите корректный номер:", optionCount)
}

func textQuestionSaved(saved, next int) string {
	return fmt.Sprintf("✅ Вопрос %d сохранен!\n\n"+
		"Шаг 3: Введите текст вопроса %d\n\n"+cancelHint, saved, next)
}

func textCommitted(title string, questionCount int, quizID int64) string {
	return fmt.Sprintf("🎉 Квиз успешно создан!\n\n"+
		"📝 Название: %s\n"+
		"📊 Вопросов: %d\n"+
		"🆔 ID квиза: %d\n\n"+
		"Теперь другие пользователи могут пройти ваш квиз!",
		title, questionCount, quizID)
}
