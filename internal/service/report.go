package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type reportService struct {
	gate     *ReadinessGate
	cache    *SnapshotCache
	sessions store.SessionRepository

	logger *logger.Logger
}

func NewReportService(gate *ReadinessGate, cache *SnapshotCache, sessions store.SessionRepository, logger *logger.Logger) ReportService {
	return &reportService{
		gate:     gate,
		cache:    cache,
		sessions: sessions,
		logger:   logger,
	}
}

// Build reads the snapshot cache only; it never calls the ledger, so it works
// on a wrong network or before the engine is initialized.
func (s *reportService) Build(ctx context.Context, r models.ReportRange, now time.Time) (models.Report, error) {
	session, ok := s.gate.ActiveSession()
	if !ok {
		return models.Report{}, &NotReadyError{State: models.Disconnected}
	}

	snapshot, err := s.cache.Current(ctx, session.ID)
	if err != nil {
		return models.Report{}, err
	}

	record, err := s.sessions.GetSessionByAccount(ctx, session.Account)
	if err != nil {
		return models.Report{}, fmt.Errorf("read session: %w", err)
	}

	return BuildReport(snapshot, r, now, record.MutationSeq), nil
}

// BuildReport filters the snapshot by range and sums it per category.
// Shares follow the category table order, with unknown categories last.
// mutationSeq is the session's current mutation count; the report is stale
// when it moved past the count the snapshot was decrypted against.
func BuildReport(snapshot models.Snapshot, r models.ReportRange, now time.Time, mutationSeq uint64) models.Report {
	report := models.Report{
		Range:       r,
		Records:     make([]models.ExpenseRecord, 0, len(snapshot.Records)),
		Shares:      []models.CategoryShare{},
		Total:       snapshot.Total,
		RangeTotal:  decimal.Zero,
		DecryptedAt: snapshot.DecryptedAt,
	}

	window := r.Window()
	sums := make(map[string]decimal.Decimal)
	for _, rec := range snapshot.Records {
		if window > 0 && now.Sub(rec.Timestamp) > window {
			continue
		}
		report.Records = append(report.Records, rec)
		sums[rec.Category] = sums[rec.Category].Add(rec.Amount)
		report.RangeTotal = report.RangeTotal.Add(rec.Amount)
	}

	labels := append(append([]string{}, models.Categories...), models.UnknownCategory)
	for _, label := range labels {
		amount, ok := sums[label]
		if !ok {
			continue
		}
		percent := decimal.Zero
		if report.RangeTotal.IsPositive() {
			percent = amount.Mul(hundred).Div(report.RangeTotal).Round(2)
		}
		report.Shares = append(report.Shares, models.CategoryShare{
			Category: label,
			Amount:   amount,
			Percent:  percent,
		})
	}

	report.Stale = snapshot.DecryptedAt != nil && mutationSeq > snapshot.MutationSeq

	return report
}
