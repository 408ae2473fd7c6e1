package result

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saulo-duarte/tabuada-lambda/internal/evaluation"
	_ "modernc.org/sqlite" // driver: sqlite
)

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS evaluation_results (
  id TEXT PRIMARY KEY,
  position INTEGER NOT NULL,
  student_id TEXT NOT NULL,
  date TEXT NOT NULL,
  score INTEGER NOT NULL DEFAULT 0,
  total_questions INTEGER NOT NULL DEFAULT 0,
  missed_questions TEXT NOT NULL,
  created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluation_results_position ON evaluation_results(position);
CREATE INDEX IF NOT EXISTS idx_evaluation_results_student ON evaluation_results(student_id);
`

// OpenSQLite opens a local database and ensures the schema exists.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = "file:tabuada.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// single writer
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schemaSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure sqlite schema: %w", err)
	}
	return db, nil
}

type sqliteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) ResultStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Load(ctx context.Context) ([]evaluation.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT student_id, date, score, total_questions, missed_questions
FROM evaluation_results
ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []evaluation.Result{}
	for rows.Next() {
		var (
			res    evaluation.Result
			date   string
			missed string
		)
		if err := rows.Scan(&res.StudentID, &date, &res.Score, &res.TotalQuestions, &missed); err != nil {
			return nil, err
		}
		if res.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("invalid stored date %q: %w", date, err)
		}
		if res.MissedQuestions, err = decodeMissed([]byte(missed)); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

func (s *sqliteStore) Save(ctx context.Context, all []evaluation.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM evaluation_results`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO evaluation_results (id, position, student_id, date, score, total_questions, missed_questions, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for i, res := range all {
		rec, err := toRecord(i, res)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID.String(), rec.Position, rec.StudentID, rec.Date.Format(time.RFC3339Nano),
			rec.Score, rec.TotalQuestions, string(rec.MissedQuestions), now,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
