package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

// EntryResponse represents an entry in API responses.
type EntryResponse struct {
	ID          string                `json:"id"`
	Amount      decimal.Decimal       `json:"amount"`
	Day         int                   `json:"day"`
	Class       domain.Classification `json:"class"`
	Origin      *int                  `json:"origin,omitempty"`
	Destination *int                  `json:"destination,omitempty"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		Amount:      e.Amount,
		Day:         e.Day,
		Class:       e.Classification,
		Origin:      e.Origin,
		Destination: e.Destination,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// ReportResponse represents a cash-flow report in API responses.
type ReportResponse struct {
	Day            int             `json:"day"`
	Period         int             `json:"period"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	RevenueTotal   decimal.Decimal `json:"revenue_total"`
	CostTotal      decimal.Decimal `json:"cost_total"`
	ExpenseTotal   decimal.Decimal `json:"expense_total"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// ReportFromDomain converts a domain report to a response.
func ReportFromDomain(r *domain.Report, day, period int) *ReportResponse {
	return &ReportResponse{
		Day:            day,
		Period:         period,
		OpeningBalance: r.OpeningBalance(),
		RevenueTotal:   r.RevenueTotal,
		CostTotal:      r.CostTotal,
		ExpenseTotal:   r.ExpenseTotal,
		CurrentBalance: r.CurrentBalance,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
