package quiz

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidateDraft checks the full quiz shape before anything touches storage.
// All violations wrap ErrInvalidQuiz.
func ValidateDraft(title string, questions []DraftQuestion) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidQuiz)
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidQuiz, MaxTitleLen)
	}
	if len(questions) < MinQuestions {
		return fmt.Errorf("%w: quiz must have at least %d question", ErrInvalidQuiz, MinQuestions)
	}
	if len(questions) > MaxQuestions {
		return fmt.Errorf("%w: quiz cannot have more than %d questions", ErrInvalidQuiz, MaxQuestions)
	}

	for idx, question := range questions {
		number := idx + 1

		text := strings.TrimSpace(question.Text)
		if text == "" {
			return fmt.Errorf("%w: question %d text is empty", ErrInvalidQuiz, number)
		}
		if utf8.RuneCountInString(text) > MaxQuestionLen {
			return fmt.Errorf("%w: question %d text exceeds %d characters", ErrInvalidQuiz, number, MaxQuestionLen)
		}

		if len(question.Options) < MinOptions {
			return fmt.Errorf("%w: question %d must have at least %d options", ErrInvalidQuiz, number, MinOptions)
		}
		if len(question.Options) > MaxOptions {
			return fmt.Errorf("%w: question %d cannot have more than %d options", ErrInvalidQuiz, number, MaxOptions)
		}
		for optIdx, option := range question.Options {
			option = strings.TrimSpace(option)
			if option == "" {
				return fmt.Errorf("%w: question %d option %d is empty", ErrInvalidQuiz, number, optIdx+1)
			}
			if utf8.RuneCountInString(option) > MaxOptionLen {
				return fmt.Errorf("%w: question %d option %d exceeds %d characters", ErrInvalidQuiz, number, optIdx+1, MaxOptionLen)
			}
		}

		if question.CorrectOption < 1 || question.CorrectOption > len(question.Options) {
			return fmt.Errorf("%w: question %d correct option must be between 1 and %d", ErrInvalidQuiz, number, len(question.Options))
		}
	}

	return nil
}
