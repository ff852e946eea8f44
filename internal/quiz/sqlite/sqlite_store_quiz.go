package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

func (s *SQLiteStore) CreateQuizWithQuestions(ctx context.Context, title string, creatorID int64, questions []quiz.DraftQuestion) (int64, error) {
	if err := quiz.ValidateDraft(title, questions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO quizzes (title, creator_id) VALUES (?, ?)`,
		strings.TrimSpace(title),
		creatorID,
	)
	if err != nil {
		return 0, err
	}
	quizID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for idx, question := range questions {
		questionResult, err := tx.ExecContext(ctx,
			`INSERT INTO questions (quiz_id, text, position, correct_answer) VALUES (?, ?, ?, ?)`,
			quizID,
			strings.TrimSpace(question.Text),
			idx+1,
			question.CorrectOption,
		)
		if err != nil {
			return 0, err
		}
		questionID, err := questionResult.LastInsertId()
		if err != nil {
			return 0, err
		}

		for optIdx, option := range question.Options {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO answers (question_id, text, position) VALUES (?, ?, ?)`,
				questionID,
				strings.TrimSpace(option),
				optIdx+1,
			); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return quizID, nil
}

func (s *SQLiteStore) GetQuizWithQuestions(ctx context.Context, quizID int64) (quiz.QuizWithQuestions, error) {
	var tree quiz.QuizWithQuestions
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, creator_id, created_at FROM quizzes WHERE id = ?`,
		quizID,
	).Scan(&tree.ID, &tree.Title, &tree.CreatorID, &tree.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.QuizWithQuestions{}, quiz.ErrQuizNotFound
		}
		return quiz.QuizWithQuestions{}, err
	}

	questions, err := s.questionsForQuiz(ctx, quizID)
	if err != nil {
		return quiz.QuizWithQuestions{}, err
	}

	tree.Questions = questions
	return tree, nil
}

func (s *SQLiteStore) questionsForQuiz(ctx context.Context, quizID int64) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, quiz_id, text, position, correct_answer
		 FROM questions
		 WHERE quiz_id = ?
		 ORDER BY position ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := make([]quiz.Question, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var question quiz.Question
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Text, &question.Position, &question.CorrectAnswer); err != nil {
			return nil, err
		}
		index[question.ID] = len(questions)
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	answerRows, err := s.db.QueryContext(ctx,
		`SELECT a.id, a.question_id, a.text, a.position
		 FROM answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE q.quiz_id = ?
		 ORDER BY q.position ASC, a.position ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer answerRows.Close()

	for answerRows.Next() {
		var answer quiz.Answer
		if err := answerRows.Scan(&answer.ID, &answer.QuestionID, &answer.Text, &answer.Position); err != nil {
			return nil, err
		}
		if at, ok := index[answer.QuestionID]; ok {
			questions[at].Answers = append(questions[at].Answers, answer)
		}
	}

	return questions, answerRows.Err()
}

func (s *SQLiteStore) ListQuizzes(ctx context.Context, page, pageSize int) (quiz.Page, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = quiz.DefaultPageSize
	}
	offset := (page - 1) * pageSize

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&total); err != nil {
		return quiz.Page{}, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, creator_id, created_at
		 FROM quizzes
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		pageSize,
		offset,
	)
	if err != nil {
		return quiz.Page{}, err
	}
	defer rows.Close()

	quizzes := make([]quiz.Quiz, 0, pageSize)
	for rows.Next() {
		var item quiz.Quiz
		if err := rows.Scan(&item.ID, &item.Title, &item.CreatorID, &item.CreatedAt); err != nil {
			return quiz.Page{}, err
		}
		quizzes = append(quizzes, item)
	}
	if err := rows.Err(); err != nil {
		return quiz.Page{}, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	return quiz.Page{
		Quizzes:    quizzes,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}, nil
}

func (s *SQLiteStore) DeleteQuiz(ctx context.Context, quizID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, quizID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return quiz.ErrQuizNotFound
	}
	return nil
}
