package sqlite

import (
	"context"
	"fmt"
)

// RowCounts reports how many rows each table holds, for the check command.
type RowCounts struct {
	Users     int
	Quizzes   int
	Questions int
	Answers   int
}

func (s *SQLiteStore) CountRows(ctx context.Context) (RowCounts, error) {
	var counts RowCounts
	targets := []struct {
		table string
		dest  *int
	}{
		{"users", &counts.Users},
		{"quizzes", &counts.Quizzes},
		{"questions", &counts.Questions},
		{"answers", &counts.Answers},
	}
	for _, target := range targets {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, target.table)
		if err := s.db.QueryRowContext(ctx, query).Scan(target.dest); err != nil {
			return RowCounts{}, fmt.Errorf("count %s: %w", target.table, err)
		}
	}
	return counts, nil
}

// Reset removes every row and restarts the id sequences. Children go first so
// the delete order never trips a foreign key.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"answers", "questions", "quizzes", "users"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sqlite_sequence`); err != nil {
		return err
	}

	return tx.Commit()
}
