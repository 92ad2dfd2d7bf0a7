package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// QueryField identifies a ledger column entries can be fetched by. The
// set is closed so that no caller-supplied identifier ever reaches the
// query layer.
type QueryField string

const (
	QueryDay         QueryField = "day"
	QueryOrigin      QueryField = "origin"
	QueryDestination QueryField = "destination"
	QueryAmount      QueryField = "amount"
)

// ParseQueryField maps a caller-supplied name onto the queryable set.
func ParseQueryField(s string) (QueryField, error) {
	switch f := QueryField(strings.ToLower(strings.TrimSpace(s))); f {
	case QueryDay, QueryOrigin, QueryDestination, QueryAmount:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQueryField, s)
	}
}

// Valid reports whether the field belongs to the queryable set.
func (f QueryField) Valid() bool {
	switch f {
	case QueryDay, QueryOrigin, QueryDestination, QueryAmount:
		return true
	default:
		return false
	}
}

// Column returns the ledger table column the field maps to.
func (f QueryField) Column() string {
	return string(f)
}

// Decimal reports whether the field compares against a decimal value
// rather than an integer.
func (f QueryField) Decimal() bool {
	return f == QueryAmount
}

// EntryFilter selects entries whose field equals a value. Amount queries
// carry the value in Amount; every other field uses Int.
type EntryFilter struct {
	Field  QueryField
	Int    int
	Amount decimal.Decimal
}
