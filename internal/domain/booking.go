package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingDraft    BookingStatus = "draft"
	BookingBooked   BookingStatus = "booked"
	BookingOut      BookingStatus = "out"
	BookingOngoing  BookingStatus = "ongoing"
	BookingReturned BookingStatus = "returned"
	BookingDone     BookingStatus = "done"
	BookingInvoiced BookingStatus = "invoiced"
	BookingPaid     BookingStatus = "paid"
	BookingCanceled BookingStatus = "canceled"
)

// Closed reports whether the booking has reached a state where no further
// equipment or labor activity is expected.
func (s BookingStatus) Closed() bool {
	switch s {
	case BookingDone, BookingInvoiced, BookingPaid, BookingCanceled:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentNotPaid             PaymentStatus = "not_paid"
	PaymentPaid                PaymentStatus = "paid"
	PaymentInvoiced            PaymentStatus = "invoiced"
	PaymentPaidWithInvoice     PaymentStatus = "paid_with_invoice"
	PaymentReadyForCashPayment PaymentStatus = "ready_for_cash_payment"
	PaymentPaidWithCash        PaymentStatus = "paid_with_cash"
)

// PricePlan selects both the equipment price column and the wage ratio.
// THS is the organization's own discounted plan.
type PricePlan string

const (
	PricePlanTHS      PricePlan = "ths"
	PricePlanExternal PricePlan = "external"
)

type Booking struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PricePlan     PricePlan     `json:"price_plan"`

	// FixedPrice, when set, replaces the computed price on invoices.
	FixedPrice *decimal.Decimal `json:"fixed_price,omitempty"`

	EquipmentLists []EquipmentList `json:"equipment_lists,omitempty"`
	TimeEstimates  []TimeEstimate  `json:"time_estimates,omitempty"`
	TimeReports    []TimeReport    `json:"time_reports,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasTimeReports reports whether any actual time has been recorded. Price
// displays switch from estimated to reported labor once it returns true.
func (b Booking) HasTimeReports() bool {
	return len(b.TimeReports) > 0
}
