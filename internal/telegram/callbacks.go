package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback data formats. Quiz runs are keyed by (user, quiz), so every
// in-run action carries the quiz id.
const (
	cbMainMenu   = "main_menu"
	cbCreateQuiz = "create_quiz"
	cbTakeQuiz   = "take_quiz"
	cbNoop       = "noop"

	prefixQuizPage  = "quizlist_"
	prefixStartQuiz = "startquiz_"
	prefixAnswer    = "ans_"
	prefixBack      = "back_"
	prefixFinish    = "finish_"
)

var errBadCallback = errors.New("malformed callback data")

func cbQuizPage(page int) string {
	return prefixQuizPage + strconv.Itoa(page)
}

func cbStartQuiz(quizID int64) string {
	return prefixStartQuiz + strconv.FormatInt(quizID, 10)
}

func cbAnswer(quizID, questionID int64, position int) string {
	return fmt.Sprintf("%s%d_%d_%d", prefixAnswer, quizID, questionID, position)
}

func cbBack(quizID int64) string {
	return prefixBack + strconv.FormatInt(quizID, 10)
}

func cbFinish(quizID int64) string {
	return prefixFinish + strconv.FormatInt(quizID, 10)
}

func parseQuizPage(data string) (int, error) {
	page, err := strconv.Atoi(strings.TrimPrefix(data, prefixQuizPage))
	if err != nil || page < 1 {
		return 0, errBadCallback
	}
	return page, nil
}

func parseStartQuiz(data string) (int64, error) {
	return parseID(strings.TrimPrefix(data, prefixStartQuiz))
}

func parseAnswer(data string) (quizID, questionID int64, position int, err error) {
	parts := strings.Split(strings.TrimPrefix(data, prefixAnswer), "_")
	if len(parts) != 3 {
		return 0, 0, 0, errBadCallback
	}
	if quizID, err = parseID(parts[0]); err != nil {
		return 0, 0, 0, err
	}
	if questionID, err = parseID(parts[1]); err != nil {
		return 0, 0, 0, err
	}
	position, convErr := strconv.Atoi(parts[2])
	if convErr != nil || position < 1 {
		return 0, 0, 0, errBadCallback
	}
	return quizID, questionID, position, nil
}

func parseBack(data string) (int64, error) {
	return parseID(strings.TrimPrefix(data, prefixBack))
}

func parseFinish(data string) (int64, error) {
	return parseID(strings.TrimPrefix(data, prefixFinish))
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadCallback
	}
	return id, nil
}
