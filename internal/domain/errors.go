package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEntryNotFound is returned when a query or delete matched zero rows.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidEntry is the root of every validation error. Callers map it
	// to a client error; it must never reach storage.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInvalidPeriod is returned when a report is requested for a
	// non-positive period.
	ErrInvalidPeriod = errors.New("period must be a positive number of days")

	// ErrUnknownClassification is returned for names outside the
	// Revenue/Cost/Expense set.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrUnknownQueryField is returned for fields outside the queryable set.
	ErrUnknownQueryField = errors.New("unknown query field")
)

// Fine-grained validation errors, all wrapping ErrInvalidEntry.
var (
	ErrMissingCounterpart = fmt.Errorf("%w: neither origin nor destination is set", ErrInvalidEntry)
	ErrBothCounterparts   = fmt.Errorf("%w: both origin and destination are set", ErrInvalidEntry)
	ErrDayOutOfRange      = fmt.Errorf("%w: day must be between %d and %d", ErrInvalidEntry, MinDay, MaxDay)
	ErrAccountOutOfRange  = fmt.Errorf("%w: account must be between %d and %d", ErrInvalidEntry, MinAccount, MaxAccount)
	ErrBadClassification  = fmt.Errorf("%w: unknown classification", ErrInvalidEntry)
)
