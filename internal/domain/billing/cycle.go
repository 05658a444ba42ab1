// Package billing implements the billing-cycle resolution and installment
// scheduling rules for household expenses.
package billing

import (
	"fmt"
	"time"

	"github.com/household-budget/backend/internal/domain/valueobject"
)

// Cycle is the (month, year) pair an expense amount counts against.
// It may differ from the calendar month of purchase because of card
// statement timing.
type Cycle struct {
	Month int // 1-12
	Year  int
}

// CycleOf returns the cycle containing the given date.
func CycleOf(date time.Time) Cycle {
	return Cycle{Month: int(date.Month()), Year: date.Year()}
}

// AddMonths returns the cycle n calendar months after c, rolling over year
// boundaries in either direction.
func (c Cycle) AddMonths(n int) Cycle {
	// time.Date normalizes out-of-range months for us.
	t := time.Date(c.Year, time.Month(c.Month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Cycle{Month: int(t.Month()), Year: t.Year()}
}

// Next returns the cycle immediately following c.
func (c Cycle) Next() Cycle {
	return c.AddMonths(1)
}

// Before reports whether c is strictly earlier than other.
func (c Cycle) Before(other Cycle) bool {
	if c.Year != other.Year {
		return c.Year < other.Year
	}
	return c.Month < other.Month
}

// After reports whether c is strictly later than other.
func (c Cycle) After(other Cycle) bool {
	return other.Before(c)
}

// String formats the cycle as MM/YYYY for display.
func (c Cycle) String() string {
	return fmt.Sprintf("%02d/%d", c.Month, c.Year)
}

// LastDay returns the last valid day-of-month of the cycle.
func (c Cycle) LastDay() int {
	// Day zero of the following month.
	return time.Date(c.Year, time.Month(c.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns the given day-of-month clamped to the last valid day of
// the cycle, e.g. day 31 in a 30-day month becomes 30.
func (c Cycle) ClampDay(day int) int {
	if last := c.LastDay(); day > last {
		return last
	}
	return day
}

// ResolveCycle maps a purchase to the cycle it is billed to.
//
// Cash-like methods bill to the purchase month. Card methods bill to the
// purchase month unless the purchase day is on or after the card's statement
// closing day, in which case they roll to the following month. A method with
// no configured closing day is treated as cash-like; this silent fallback is
// intentional, not an error. When deferNextMonth is set the resolved cycle
// is advanced by exactly one additional month.
func ResolveCycle(purchaseDate time.Time, method valueobject.PaymentMethod, deferNextMonth bool) Cycle {
	cycle := CycleOf(purchaseDate)

	if closingDay, ok := method.ClosingDay(); ok && purchaseDate.Day() >= closingDay {
		cycle = cycle.Next()
	}

	if deferNextMonth {
		cycle = cycle.Next()
	}

	return cycle
}
