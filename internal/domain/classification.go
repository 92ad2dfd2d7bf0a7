package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Classification is the kind of a ledger entry.
type Classification string

const (
	Revenue Classification = "Revenue"
	Cost    Classification = "Cost"
	Expense Classification = "Expense"
)

// ParseClassification maps a name onto the closed set of classifications.
// It accepts both the API spelling ("Revenue") and the database enum
// value ("revenue").
func ParseClassification(s string) (Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "revenue":
		return Revenue, nil
	case "cost":
		return Cost, nil
	case "expense":
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownClassification, s)
	}
}

// Valid reports whether the classification is one of the known kinds.
func (c Classification) Valid() bool {
	switch c {
	case Revenue, Cost, Expense:
		return true
	default:
		return false
	}
}

// UnmarshalJSON rejects unknown classification names at decode time.
func (c *Classification) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseClassification(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
