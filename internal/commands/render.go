package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/app"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

// displayCurrency is the unit the ledger amounts are entered in.
const displayCurrency = money.USD

const (
	dateLayout      = "2006-01-02 15:04"
	encryptedAmount = "encrypted"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// formatAmount renders a whole-unit amount with the currency symbol.
func formatAmount(amount decimal.Decimal) string {
	cur := money.GetCurrency(displayCurrency)
	minor := amount.Shift(int32(cur.Fraction))
	return money.New(minor.IntPart(), displayCurrency).Display()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// renderRecords prints the view as a table. Amounts are shown only when
// decrypted is set.
func renderRecords(w io.Writer, records []models.ExpenseRecord, decrypted bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, faintStyle.Render(app.MsgNothingToDecrypt))
		return
	}

	t := newTable("#", "CATEGORY", "AMOUNT", "DATE")
	for _, r := range records {
		amount := encryptedAmount
		if decrypted {
			amount = formatAmount(r.Amount)
		}
		t.Row(strconv.FormatUint(r.Index, 10), r.Category, amount, r.Timestamp.Format(dateLayout))
	}
	fmt.Fprintln(w, t.Render())
}

// renderStatus prints the readiness status.
func renderStatus(w io.Writer, status models.Status) {
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("state:"), status.State)
	if status.Account != "" {
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render("account:"), status.Account)
		fmt.Fprintf(w, "%s %d\n", titleStyle.Render("chain id:"), status.ChainID)
	}
	if status.SessionID != "" {
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render("session:"), status.SessionID)
	}
}

// renderReport prints the totals, the category breakdown and the records of
// the range.
func renderReport(w io.Writer, report models.Report) {
	total := app.MsgNotDecrypted
	if report.Total != nil {
		total = formatAmount(*report.Total)
	}
	fmt.Fprintf(w, "%s %s\n", titleStyle.Render("total spending:"), total)
	fmt.Fprintf(w, "%s %s (%s)\n", titleStyle.Render("range total:"), formatAmount(report.RangeTotal), report.Range)
	if report.DecryptedAt != nil {
		fmt.Fprintf(w, "%s %s\n", titleStyle.Render("decrypted at:"), report.DecryptedAt.Local().Format(time.DateTime))
	}
	if report.Stale {
		fmt.Fprintln(w, warnStyle.Render(app.MsgReportStale))
	}

	if len(report.Shares) > 0 {
		shares := newTable("CATEGORY", "AMOUNT", "SHARE")
		for _, s := range report.Shares {
			shares.Row(s.Category, formatAmount(s.Amount), s.Percent.StringFixed(2)+"%")
		}
		fmt.Fprintln(w, shares.Render())
	}

	renderRecords(w, report.Records, report.DecryptedAt != nil)
}
