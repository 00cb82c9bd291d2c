package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalStatus tracks whether an equipment list's gear has physically left
// the storage. Returned is terminal: a list never reverts from it.
type RentalStatus string

const (
	RentalStatusNone     RentalStatus = ""
	RentalStatusOut      RentalStatus = "out"
	RentalStatusReturned RentalStatus = "returned"
)

// EquipmentList is a named, dated sub-collection of equipment line items on a
// booking. Usage datetimes cover the period the equipment is used; the
// out/in datetimes cover the period it is physically held, which may be wider.
type EquipmentList struct {
	ID           int64        `json:"id"`
	BookingID    int64        `json:"booking_id"`
	Name         string       `json:"name"`
	RentalStatus RentalStatus `json:"rental_status,omitempty"`

	UsageStartDatetime   *time.Time `json:"usage_start_datetime,omitempty"`
	UsageEndDatetime     *time.Time `json:"usage_end_datetime,omitempty"`
	EquipmentOutDatetime *time.Time `json:"equipment_out_datetime,omitempty"`
	EquipmentInDatetime  *time.Time `json:"equipment_in_datetime,omitempty"`

	ListEntries  []EquipmentListEntry   `json:"list_entries,omitempty"`
	ListHeadings []EquipmentListHeading `json:"list_headings,omitempty"`
}

// EquipmentListHeading groups entries under a display heading inside a list.
type EquipmentListHeading struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	ListEntries []EquipmentListEntry `json:"list_entries,omitempty"`
}

type EquipmentListEntry struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	NumberOfUnits int             `json:"number_of_units"`
	NumberOfHours decimal.Decimal `json:"number_of_hours"`
	PricePerUnit  decimal.Decimal `json:"price_per_unit"`
	PricePerHour  decimal.Decimal `json:"price_per_hour"`
	Discount      decimal.Decimal `json:"discount"`

	// Hidden and free entries stay in the list but price at zero.
	IsHidden bool `json:"is_hidden,omitempty"`
	IsFree   bool `json:"is_free,omitempty"`
}
