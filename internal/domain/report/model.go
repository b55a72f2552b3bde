package report

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventKind string

const (
	KindIncome  EventKind = "income"
	KindExpense EventKind = "expense"
)

// MonetaryEvent is the normalized form of a paid invoice or an approved
// expense. Callers map their source records into this shape; the engine
// never looks at invoices or expenses directly.
type MonetaryEvent struct {
	Amount     decimal.Decimal
	OccurredOn time.Time
	Kind       EventKind
}

type WindowKind string

const (
	WindowMonth  WindowKind = "month"
	WindowYear   WindowKind = "year"
	WindowCustom WindowKind = "custom"
)

// ReportWindow selects the reporting range. Start/End are only read for
// WindowCustom; Month and Year are resolved against the reference instant
// passed to Aggregate.
type ReportWindow struct {
	Kind  WindowKind
	Start time.Time
	End   time.Time
}

func MonthWindow() ReportWindow {
	return ReportWindow{Kind: WindowMonth}
}

func YearWindow() ReportWindow {
	return ReportWindow{Kind: WindowYear}
}

func CustomWindow(start, end time.Time) ReportWindow {
	return ReportWindow{Kind: WindowCustom, Start: start, End: end}
}

type Bucket struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

type SummaryTotals struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
	// PendingIncome covers sent and overdue invoices across all time,
	// regardless of the selected window. The dashboard has always shown
	// it that way; do not scope it to the window without product sign-off.
	PendingIncome decimal.Decimal `json:"pending_income"`
}

type AggregationResult struct {
	Summary SummaryTotals `json:"summary"`
	Series  []Bucket      `json:"series"`
}
