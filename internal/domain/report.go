package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Report is a cash-flow summary. The flow totals cover the period window
// only; CurrentBalance covers every entry ever recorded, so a running
// balance sits next to a period-scoped breakdown. Reports are derived,
// never persisted.
type Report struct {
	CurrentBalance decimal.Decimal
	RevenueTotal   decimal.Decimal
	CostTotal      decimal.Decimal
	ExpenseTotal   decimal.Decimal
}

// BuildReport aggregates entries into a report for the half-open window
// day-period < e.Day <= day.
func BuildReport(entries []*Entry, day, period int) *Report {
	r := &Report{
		CurrentBalance: decimal.Zero,
		RevenueTotal:   decimal.Zero,
		CostTotal:      decimal.Zero,
		ExpenseTotal:   decimal.Zero,
	}

	for _, e := range entries {
		inWindow := e.Day <= day && e.Day > day-period

		switch e.Classification {
		case Revenue:
			r.CurrentBalance = r.CurrentBalance.Add(e.Amount)
			if inWindow {
				r.RevenueTotal = r.RevenueTotal.Add(e.Amount)
			}
		case Cost:
			r.CurrentBalance = r.CurrentBalance.Sub(e.Amount)
			if inWindow {
				r.CostTotal = r.CostTotal.Add(e.Amount)
			}
		case Expense:
			r.CurrentBalance = r.CurrentBalance.Sub(e.Amount)
			if inWindow {
				r.ExpenseTotal = r.ExpenseTotal.Add(e.Amount)
			}
		}
	}

	return r
}

// OpeningBalance derives the balance as it stood before the window's
// flows: OpeningBalance + RevenueTotal - CostTotal - ExpenseTotal equals
// CurrentBalance for every report.
func (r *Report) OpeningBalance() decimal.Decimal {
	outflows := r.CostTotal.Add(r.ExpenseTotal)

	return r.CurrentBalance.Sub(r.RevenueTotal).Add(outflows)
}

// Render formats the report as human-readable text. Pure formatting, no I/O.
func (r *Report) Render(day, period int) string {
	inflows := r.RevenueTotal
	outflows := r.CostTotal.Add(r.ExpenseTotal)

	return fmt.Sprintf(`CASH FLOW FOR DAY %d OVER A PERIOD OF %d DAY(S)

OPENING BALANCE: %s

TOTAL EXPENSES: %s
TOTAL COSTS: %s
TOTAL OUTFLOWS: %s

TOTAL REVENUES: %s
TOTAL INFLOWS: %s

CURRENT BALANCE: %s
`,
		day,
		period,
		r.OpeningBalance().StringFixed(2),
		r.ExpenseTotal.StringFixed(2),
		r.CostTotal.StringFixed(2),
		outflows.StringFixed(2),
		r.RevenueTotal.StringFixed(2),
		inflows.StringFixed(2),
		r.CurrentBalance.StringFixed(2),
	)
}
