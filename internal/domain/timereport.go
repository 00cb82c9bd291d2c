package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeEstimate is a planning-stage forecast of labor for a booking,
// independent of any time actually reported.
type TimeEstimate struct {
	ID            int64           `json:"id"`
	BookingID     int64           `json:"booking_id"`
	Name          string          `json:"name"`
	NumberOfHours decimal.Decimal `json:"number_of_hours"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
}

// TimeReport is an actual recorded labor entry for one user on one booking.
// Actual hours may exceed billable hours when part of a shift is not billed.
type TimeReport struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id"`
	UserID    int64 `json:"user_id"`

	ActualWorkingHours   decimal.Decimal `json:"actual_working_hours"`
	BillableWorkingHours decimal.Decimal `json:"billable_working_hours"`

	// PricePerHour, when set, overrides the wage-ratio derived rate.
	PricePerHour *decimal.Decimal `json:"price_per_hour,omitempty"`

	StartDatetime *time.Time `json:"start_datetime,omitempty"`
	EndDatetime   *time.Time `json:"end_datetime,omitempty"`
}
