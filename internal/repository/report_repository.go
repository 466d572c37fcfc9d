package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Rohithsilent/P-o-P/internal/model"

	"github.com/lib/pq"
)

const createReportTableSQL = `
CREATE TABLE IF NOT EXISTS analysis_report (
	id             BIGSERIAL PRIMARY KEY,
	video_id       TEXT NOT NULL,
	video_title    TEXT NOT NULL DEFAULT '',
	positive       INTEGER NOT NULL,
	negative       INTEGER NOT NULL,
	neutral        INTEGER NOT NULL,
	total          INTEGER NOT NULL,
	insights       JSONB,
	insight_source TEXT NOT NULL DEFAULT '',
	model_used     TEXT NOT NULL DEFAULT '',
	warnings       TEXT[] NOT NULL DEFAULT '{}',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Migrate() error {
	_, err := r.db.Exec(createReportTableSQL)
	return err
}

func (r *ReportRepository) SaveReport(report *model.AnalysisReport) error {
	var insights []byte
	if report.Insights != nil {
		var err error
		insights, err = json.Marshal(report.Insights)
		if err != nil {
			return err
		}
	}

	warnings := report.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return r.db.QueryRow(`
		INSERT INTO analysis_report(video_id, video_title, positive, negative, neutral, total, insights, insight_source, model_used, warnings)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, report.VideoID, report.VideoTitle, report.Tally.Positive, report.Tally.Negative, report.Tally.Neutral, report.Tally.Total,
		insights, report.InsightSource, report.ModelUsed, pq.Array(warnings)).Scan(&report.ID, &report.CreatedAt)
}

func (r *ReportRepository) GetReports(limit, offset int) ([]model.AnalysisReport, error) {
	rows, err := r.db.Query(`
		SELECT id, video_id, video_title, positive, negative, neutral, total, insights, insight_source, model_used, warnings, created_at
		FROM analysis_report
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (r *ReportRepository) GetReportTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM analysis_report`).Scan(&total)
	return total, err
}

func (r *ReportRepository) GetLatestReport() (*model.AnalysisReport, error) {
	row := r.db.QueryRow(`
		SELECT id, video_id, video_title, positive, negative, neutral, total, insights, insight_source, model_used, warnings, created_at
		FROM analysis_report
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)

	report, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*model.AnalysisReport, error) {
	var (
		report   model.AnalysisReport
		insights []byte
		warnings pq.StringArray
	)
	err := s.Scan(&report.ID, &report.VideoID, &report.VideoTitle,
		&report.Tally.Positive, &report.Tally.Negative, &report.Tally.Neutral, &report.Tally.Total,
		&insights, &report.InsightSource, &report.ModelUsed, &warnings, &report.CreatedAt)
	if err != nil {
		return nil, err
	}

	if len(insights) > 0 {
		report.Insights = &model.Insights{}
		if err := json.Unmarshal(insights, report.Insights); err != nil {
			return nil, err
		}
	}
	report.Warnings = warnings

	return &report, nil
}
