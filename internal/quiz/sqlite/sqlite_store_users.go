package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/sqdnosita/telegramQuizBot/internal/quiz"
)

var errUserNotFound = errors.New("user not found")

func (s *SQLiteStore) GetOrCreateUser(ctx context.Context, identity quiz.TelegramUser) (quiz.User, error) {
	if identity.ID <= 0 {
		return quiz.User{}, fmt.Errorf("telegram id must be positive, got %d", identity.ID)
	}

	user, err := s.getUserByTelegramID(ctx, identity.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errUserNotFound) {
		return quiz.User{}, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (telegram_id, username, first_name) VALUES (?, ?, ?)`,
		identity.ID,
		toNullString(identity.Username),
		toNullString(identity.FirstName),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
			return quiz.User{}, fmt.Errorf("insert user: %w", err)
		}
		// Lost the insert race; the row exists now, fall through to re-read.
	}

	return s.getUserByTelegramID(ctx, identity.ID)
}

func (s *SQLiteStore) getUserByTelegramID(ctx context.Context, telegramID int64) (quiz.User, error) {
	var (
		user      quiz.User
		username  sql.NullString
		firstName sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, telegram_id, username, first_name, created_at
		 FROM users
		 WHERE telegram_id = ?`,
		telegramID,
	).Scan(&user.ID, &user.TelegramID, &username, &firstName, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.User{}, errUserNotFound
		}
		return quiz.User{}, err
	}

	user.Username = username.String
	user.FirstName = firstName.String
	return user, nil
}

func toNullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
