package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fraudlens/fraudlens/internal/common"
	"github.com/fraudlens/fraudlens/internal/model"
)

// SaveSubmission inserts a scored submission and returns its row id.
func (s *SQLiteStorage) SaveSubmission(ctx context.Context, sub *model.Submission) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateSubmission(sub); err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO submissions (mode, payload, fraud_probability, label)
		 VALUES (?, ?, ?, ?)`,
		string(sub.Mode), sub.Payload, sub.FraudProbability, string(sub.Label))
	if err != nil {
		return 0, fmt.Errorf("failed to save submission: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get submission id: %w", err)
	}
	return id, nil
}

// RecordFeedback stores the operator's correctness verdict for a
// submission. A submission that already carries feedback is not updated.
func (s *SQLiteStorage) RecordFeedback(ctx context.Context, id int64, correct bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE submissions SET feedback_correct = ?
		 WHERE id = ? AND feedback_correct IS NULL`,
		correct, id)
	if err != nil {
		return fmt.Errorf("failed to record feedback: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check feedback update: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("submission %d: %w or already answered", id, common.ErrNotFound)
	}
	return nil
}

// GetSubmission fetches a single submission by id.
func (s *SQLiteStorage) GetSubmission(ctx context.Context, id int64) (*model.Submission, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, mode, payload, fraud_probability, label, feedback_correct, created_at
		 FROM submissions WHERE id = ?`, id)

	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("submission %d: %w", id, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return sub, nil
}

// GetLatestSubmission fetches the most recently scored submission.
func (s *SQLiteStorage) GetLatestSubmission(ctx context.Context) (*model.Submission, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, mode, payload, fraud_probability, label, feedback_correct, created_at
		 FROM submissions ORDER BY id DESC LIMIT 1`)

	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("latest submission: %w", common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get latest submission: %w", err)
	}
	return sub, nil
}

// ListSubmissions returns the most recent submissions, newest first.
func (s *SQLiteStorage) ListSubmissions(ctx context.Context, limit int) ([]model.Submission, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, payload, fraud_probability, label, feedback_correct, created_at
		 FROM submissions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Submission
	for rows.Next() {
		sub, scanErr := scanSubmission(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", scanErr)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate submissions: %w", err)
	}
	return subs, nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*model.Submission, error) {
	var (
		sub      model.Submission
		mode     string
		label    string
		feedback sql.NullBool
	)

	err := row.Scan(&sub.ID, &mode, &sub.Payload, &sub.FraudProbability,
		&label, &feedback, &sub.CreatedAt)
	if err != nil {
		return nil, err
	}

	sub.Mode = model.Mode(mode)
	sub.Label = model.Label(label)
	if feedback.Valid {
		v := feedback.Bool
		sub.FeedbackCorrect = &v
	}
	return &sub, nil
}
