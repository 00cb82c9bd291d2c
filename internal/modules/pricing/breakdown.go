package pricing

import (
	"github.com/shopspring/decimal"

	"stagebook/internal/domain"
	"stagebook/internal/modules/salary"
)

// Breakdown is the roll-up the booking detail page and the estimate/invoice
// documents render: equipment and labor parts, VAT split, and the fixed-price
// comparison when a fixed price is set.
type Breakdown struct {
	EquipmentPrice decimal.Decimal `json:"equipment_price"`
	LaborPrice     decimal.Decimal `json:"labor_price"`

	// UsesReportedLabor is true once the booking has time reports and the
	// labor part comes from them rather than from estimates.
	UsesReportedLabor bool `json:"uses_reported_labor"`

	Subtotal decimal.Decimal `json:"subtotal"`
	VAT      decimal.Decimal `json:"vat"`
	Total    decimal.Decimal `json:"total"`

	FixedPrice      *decimal.Decimal `json:"fixed_price,omitempty"`
	FixedPriceDelta *decimal.Decimal `json:"fixed_price_delta,omitempty"`
}

// BookingBreakdown computes the full price breakdown for one booking.
func BookingBreakdown(b domain.Booking, rates salary.Rates) Breakdown {
	equipment := decimal.Zero
	for _, list := range b.EquipmentLists {
		equipment = equipment.Add(ListPrice(list))
	}

	reported := b.HasTimeReports()
	var labor decimal.Decimal
	if reported {
		labor = ReportedLaborPrice(b.TimeReports, b.PricePlan, rates)
	} else {
		labor = EstimatedLaborPrice(b.TimeEstimates)
	}

	subtotal := equipment.Add(labor)
	breakdown := Breakdown{
		EquipmentPrice:    equipment,
		LaborPrice:        labor,
		UsesReportedLabor: reported,
		Subtotal:          subtotal,
		VAT:               VATPortion(subtotal),
		Total:             AddVAT(subtotal),
	}

	if delta, ok := FixedPriceDelta(b, rates); ok {
		breakdown.FixedPrice = b.FixedPrice
		breakdown.FixedPriceDelta = &delta
	}
	return breakdown
}
