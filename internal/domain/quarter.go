package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Quarter is one of the four three-month fiscal buckets
type Quarter string

const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters holds the fixed presentation order of the report
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

var (
	ErrInvalidMonth   = errors.New("month must be between 1 and 12")
	ErrInvalidQuarter = errors.New("invalid quarter label")
)

// ClassifyQuarter maps a calendar month to its fiscal quarter.
// It is defined only for months 1..12 and returns ErrInvalidMonth otherwise.
func ClassifyQuarter(month int) (Quarter, error) {
	switch {
	case month >= 1 && month <= 3:
		return Q1, nil
	case month >= 4 && month <= 6:
		return Q2, nil
	case month >= 7 && month <= 9:
		return Q3, nil
	case month >= 10 && month <= 12:
		return Q4, nil
	}

	return "", fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
}

// ParseQuarter accepts labels such as "Q2" or "q2"
func ParseQuarter(label string) (Quarter, error) {
	q := Quarter(strings.ToUpper(strings.TrimSpace(label)))
	for _, known := range Quarters {
		if q == known {
			return q, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidQuarter, label)
}

func (q Quarter) String() string {
	return string(q)
}
