package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/campushq/campuscore-backend/internal/config"
	"github.com/campushq/campuscore-backend/internal/model"
	"github.com/campushq/campuscore-backend/internal/repository"
)

// ReportService builds bursary reports. Reports aggregate the whole payments
// table, so results are cached in Redis for ReportCacheTTL.
type ReportService struct {
	reportRepo *repository.ReportRepository
	rdb        *redis.Client
	cfg        *config.Config
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo *repository.ReportRepository, rdb *redis.Client, cfg *config.Config) *ReportService {
	return &ReportService{reportRepo: reportRepo, rdb: rdb, cfg: cfg}
}

// Bursary returns the payment aggregates for a session, serving from cache
// when fresh. Cache failures fall through to the database.
func (s *ReportService) Bursary(ctx context.Context, session string) (*model.BursaryReport, error) {
	key := config.CacheKey.BursaryReportKey(session)

	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var report model.BursaryReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
	}

	report, err := s.build(ctx, session)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(report); err == nil {
		if err := s.rdb.Set(ctx, key, payload, s.cfg.ReportCacheTTL).Err(); err != nil {
			log.Warn().Err(err).Str("session", session).Msg("Failed to cache bursary report")
		}
	}
	return report, nil
}

func (s *ReportService) build(ctx context.Context, session string) (*model.BursaryReport, error) {
	confirmed, pending, failed, err := s.reportRepo.Totals(ctx, session)
	if err != nil {
		return nil, err
	}
	byPurpose, err := s.reportRepo.ByPurpose(ctx, session)
	if err != nil {
		return nil, err
	}
	byMonth, err := s.reportRepo.ByMonth(ctx, session)
	if err != nil {
		return nil, err
	}

	return &model.BursaryReport{
		Session:        session,
		TotalConfirmed: confirmed,
		TotalPending:   pending,
		TotalFailed:    failed,
		ByPurpose:      byPurpose,
		ByMonth:        byMonth,
		GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ExportXLSX renders the bursary report as an Excel workbook with a summary
// sheet and per-purpose and per-month breakdowns.
func (s *ReportService) ExportXLSX(ctx context.Context, session string) (*bytes.Buffer, error) {
	report, err := s.Bursary(ctx, session)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bursary Report"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Bursary Report", report.Session},
		{"Generated", report.GeneratedAt},
		{},
		{"Total confirmed", report.TotalConfirmed},
		{"Total pending", report.TotalPending},
		{"Total failed", report.TotalFailed},
		{},
		{"Purpose", "Count", "Amount"},
	}
	for _, p := range report.ByPurpose {
		rows = append(rows, []interface{}{string(p.Purpose), p.Count, p.Amount})
	}
	rows = append(rows, []interface{}{}, []interface{}{"Month", "Count", "Amount"})
	for _, m := range report.ByMonth {
		rows = append(rows, []interface{}{m.Month, m.Count, m.Amount})
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
