package quiz

import "math"

// Score compares recorded answers against the correct option positions.
// Questions absent from the answer map count as incorrect. The percentage
// is rounded to two decimal places; an empty question list scores 0.0.
func Score(questions []Question, answers map[int64]int) Result {
	result := Result{TotalQuestions: len(questions)}
	if len(questions) == 0 {
		return result
	}

	for _, question := range questions {
		if chosen, ok := answers[question.ID]; ok && chosen == question.CorrectAnswer {
			result.CorrectAnswers++
		}
	}

	percentage := float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100
	result.Percentage = math.Round(percentage*100) / 100
	return result
}
