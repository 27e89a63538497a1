package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportRange selects how far back a report looks.
type ReportRange string

const (
	RangeAll     ReportRange = "all"
	RangeDaily   ReportRange = "daily"
	RangeWeekly  ReportRange = "weekly"
	RangeMonthly ReportRange = "monthly"
)

// ParseReportRange validates a user supplied range. Empty means all.
func ParseReportRange(s string) (ReportRange, error) {
	switch r := ReportRange(s); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeDaily, RangeWeekly, RangeMonthly:
		return r, nil
	default:
		return "", fmt.Errorf("unknown report range %q", s)
	}
}

// Window returns the maximum age of an entry kept by the range, or zero for
// no limit.
func (r ReportRange) Window() time.Duration {
	switch r {
	case RangeDaily:
		return 24 * time.Hour
	case RangeWeekly:
		return 7 * 24 * time.Hour
	case RangeMonthly:
		return 30 * 24 * time.Hour
	default:
		return 0
	}
}

// CategoryShare is the sum of decrypted amounts for one category.
type CategoryShare struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// Report is the read-only view built from the snapshot cache.
type Report struct {
	Range       ReportRange      `json:"range"`
	Records     []ExpenseRecord  `json:"records"`
	Shares      []CategoryShare  `json:"shares"`
	Total       *decimal.Decimal `json:"total,omitempty"`
	RangeTotal  decimal.Decimal  `json:"range_total"`
	DecryptedAt *time.Time       `json:"decrypted_at,omitempty"`
	Stale       bool             `json:"stale"`
}
