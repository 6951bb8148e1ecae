/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/humaidq/vitalsense/biomarker"
)

const reportColumns = `id, user_id, report_date, file_name, file_type, retest_recommendation, processed_at, created_at`

// CreateReport stores a report and its results. A nil ID is replaced with a
// new UUID and zero timestamps with the current time; report is updated in
// place.
func (s *Store) CreateReport(ctx context.Context, report *biomarker.Report) error {
	if report.UserID == "" {
		return ErrUserIDRequired
	}

	now := time.Now().UTC()

	if report.ID == uuid.Nil {
		report.ID = uuid.New()
	}

	if report.ReportDate.IsZero() {
		report.ReportDate = now
	}

	if report.ProcessedAt.IsZero() {
		report.ProcessedAt = now
	}

	report.CreatedAt = now

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO reports (id, user_id, report_date, file_name, file_type, retest_recommendation, processed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, query,
		report.ID, report.UserID, report.ReportDate, report.FileName, report.FileType,
		report.RetestRecommendation, report.ProcessedAt, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"test_results"},
		[]string{"report_id", "position", "test_name", "value", "unit", "reference_range", "status"},
		pgx.CopyFromSlice(len(report.Results), func(i int) ([]any, error) {
			r := report.Results[i]
			return []any{report.ID, i, r.TestName, r.Value, r.Unit, r.ReferenceRange, string(r.Status)}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert test results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report: %w", err)
	}

	logger.Info("Stored report", "report_id", report.ID, "user_id", report.UserID, "results", len(report.Results))

	return nil
}

// ListReports returns the user's reports, newest report date first.
func (s *Store) ListReports(ctx context.Context, userID string) ([]biomarker.Report, error) {
	return s.queryReports(ctx, `WHERE user_id = $1 ORDER BY report_date DESC, created_at DESC`, userID)
}

// ListReportsChronological returns the user's reports, oldest first.
func (s *Store) ListReportsChronological(ctx context.Context, userID string) ([]biomarker.Report, error) {
	return s.queryReports(ctx, `WHERE user_id = $1 ORDER BY report_date ASC, created_at ASC`, userID)
}

// RecentReports returns at most n of the user's newest reports.
func (s *Store) RecentReports(ctx context.Context, userID string, n int) ([]biomarker.Report, error) {
	if n <= 0 {
		return []biomarker.Report{}, nil
	}

	return s.queryReports(ctx, `WHERE user_id = $1 ORDER BY report_date DESC, created_at DESC LIMIT $2`, userID, n)
}

// GetReport returns one of the user's reports.
func (s *Store) GetReport(ctx context.Context, userID string, id uuid.UUID) (*biomarker.Report, error) {
	reports, err := s.queryReports(ctx, `WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return nil, err
	}

	if len(reports) == 0 {
		return nil, ErrReportNotFound
	}

	return &reports[0], nil
}

// DeleteReport removes one of the user's reports and its results.
func (s *Store) DeleteReport(ctx context.Context, userID string, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM reports WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrReportNotFound
	}

	return nil
}

func (s *Store) queryReports(ctx context.Context, where string, args ...any) ([]biomarker.Report, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports `+where, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	reports := []biomarker.Report{}
	index := map[uuid.UUID]int{}

	var ids []uuid.UUID

	for rows.Next() {
		var r biomarker.Report

		err := rows.Scan(
			&r.ID, &r.UserID, &r.ReportDate, &r.FileName, &r.FileType,
			&r.RetestRecommendation, &r.ProcessedAt, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		r.Results = []biomarker.TestResult{}
		index[r.ID] = len(reports)
		ids = append(ids, r.ID)
		reports = append(reports, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	if len(ids) == 0 {
		return reports, nil
	}

	if err := s.attachResults(ctx, reports, index, ids); err != nil {
		return nil, err
	}

	return reports, nil
}

func appendResult(reports []biomarker.Report, index map[uuid.UUID]int, reportID uuid.UUID, res biomarker.TestResult) error {
	i, ok := index[reportID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedResult, reportID)
	}

	reports[i].Results = append(reports[i].Results, res)

	return nil
}

func (s *Store) attachResults(ctx context.Context, reports []biomarker.Report, index map[uuid.UUID]int, ids []uuid.UUID) error {
	query := `
		SELECT report_id, test_name, value, unit, reference_range, status
		FROM test_results
		WHERE report_id = ANY($1)
		ORDER BY report_id, position
	`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to list test results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			reportID uuid.UUID
			res      biomarker.TestResult
			status   string
		)

		if err := rows.Scan(&reportID, &res.TestName, &res.Value, &res.Unit, &res.ReferenceRange, &status); err != nil {
			return fmt.Errorf("failed to scan test result: %w", err)
		}

		res.Status = biomarker.Status(status)

		if err := appendResult(reports, index, reportID, res); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating test results: %w", err)
	}

	return nil
}
