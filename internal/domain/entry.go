package domain

import (
	"github.com/shopspring/decimal"
)

// Valid ranges for entry fields. Day is a day-of-period index, not a
// calendar date; origin and destination are internal account references.
const (
	MinDay = 1
	MaxDay = 30

	MinAccount = 1
	MaxAccount = 10
)

// Entry is a persisted ledger line. Exactly one of Origin/Destination is
// set: revenue arrives from an origin account, outflows go to a
// destination account. The ID is assigned by the store and immutable.
type Entry struct {
	ID             string
	Amount         decimal.Decimal
	Day            int
	Classification Classification
	Origin         *int
	Destination    *int
}

// Validate checks the persistence invariant: exactly one counterpart
// account, both it and the day within range, and a known classification.
func (e *Entry) Validate() error {
	return validateFields(e.Day, e.Classification, e.Origin, e.Destination)
}

// NewEntry is a not-yet-persisted draft of an Entry. It carries external
// input and has no life after persistence; callers re-fetch the stored
// Entry if they need it.
type NewEntry struct {
	Amount         decimal.Decimal
	Day            int
	Classification Classification
	Origin         *int
	Destination    *int
}

// Validate reports why the draft must not be persisted, or nil.
func (n *NewEntry) Validate() error {
	return validateFields(n.Day, n.Classification, n.Origin, n.Destination)
}

// IsValid reports whether the draft may be persisted.
func (n *NewEntry) IsValid() bool {
	return n.Validate() == nil
}

// Entry builds the persisted form of the draft under the given identifier.
func (n *NewEntry) Entry(id string) *Entry {
	return &Entry{
		ID:             id,
		Amount:         n.Amount,
		Day:            n.Day,
		Classification: n.Classification,
		Origin:         n.Origin,
		Destination:    n.Destination,
	}
}

func validateFields(day int, class Classification, origin, destination *int) error {
	switch {
	case origin != nil && destination != nil:
		return ErrBothCounterparts
	case origin == nil && destination == nil:
		return ErrMissingCounterpart
	}

	account := origin
	if account == nil {
		account = destination
	}

	if *account < MinAccount || *account > MaxAccount {
		return ErrAccountOutOfRange
	}

	if day < MinDay || day > MaxDay {
		return ErrDayOutOfRange
	}

	if !class.Valid() {
		return ErrBadClassification
	}

	return nil
}
