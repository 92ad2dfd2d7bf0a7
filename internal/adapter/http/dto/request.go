package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pedro-h-dias/c3s-project/internal/domain"
)

// CreateEntryRequest represents a request to create a ledger entry.
// Exactly one of origin/destination is expected; validation happens in
// the domain layer.
type CreateEntryRequest struct {
	Amount      decimal.Decimal       `json:"amount"`
	Day         int                   `json:"day"`
	Class       domain.Classification `json:"class"`
	Origin      *int                  `json:"origin,omitempty"`
	Destination *int                  `json:"destination,omitempty"`
}

// ToDomain converts the request into an unvalidated draft.
func (r *CreateEntryRequest) ToDomain() domain.NewEntry {
	return domain.NewEntry{
		Amount:         r.Amount,
		Day:            r.Day,
		Classification: r.Class,
		Origin:         r.Origin,
		Destination:    r.Destination,
	}
}
