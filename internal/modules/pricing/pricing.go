// Package pricing computes booking prices from equipment lists, time
// estimates and time reports. All arithmetic is exact decimal; results feed
// price estimates and invoices, so binary floating point is never used.
package pricing

import (
	"github.com/shopspring/decimal"

	"stagebook/internal/domain"
	"stagebook/internal/modules/salary"
)

// VATRate is the statutory VAT applied to all booking prices.
var VATRate = decimal.New(25, -2)

// EntryPrice returns the price contribution of a single list entry:
// units times unit price plus hours times hourly price, minus the discount.
// The discount can drive a line to zero but never below it. Hidden and free
// entries contribute nothing while staying in the list.
func EntryPrice(e domain.EquipmentListEntry) decimal.Decimal {
	if e.IsHidden || e.IsFree {
		return decimal.Zero
	}
	gross := e.PricePerUnit.Mul(decimal.NewFromInt(int64(e.NumberOfUnits))).
		Add(e.PricePerHour.Mul(e.NumberOfHours))
	net := gross.Sub(e.Discount)
	if net.IsNegative() && !gross.IsNegative() {
		return decimal.Zero
	}
	return net
}

// HeadingPrice returns the summed price of the entries nested under a
// heading. Each nested entry follows the same rules as a top-level one.
func HeadingPrice(h domain.EquipmentListHeading) decimal.Decimal {
	total := decimal.Zero
	for _, e := range h.ListEntries {
		total = total.Add(EntryPrice(e))
	}
	return total
}

// ListPrice returns the price of an equipment list: every entry in the list
// plus every entry nested under its headings.
func ListPrice(list domain.EquipmentList) decimal.Decimal {
	total := decimal.Zero
	for _, e := range list.ListEntries {
		total = total.Add(EntryPrice(e))
	}
	for _, h := range list.ListHeadings {
		total = total.Add(HeadingPrice(h))
	}
	return total
}

// EstimatedLaborPrice sums hours times hourly price over planning estimates.
func EstimatedLaborPrice(estimates []domain.TimeEstimate) decimal.Decimal {
	total := decimal.Zero
	for _, est := range estimates {
		total = total.Add(est.NumberOfHours.Mul(est.PricePerHour))
	}
	return total
}

// ReportedLaborPrice sums billable hours times hourly price over actual time
// reports. Reports without an explicit rate are priced at the salary-derived
// rate for the booking's price plan.
func ReportedLaborPrice(reports []domain.TimeReport, plan domain.PricePlan, rates salary.Rates) decimal.Decimal {
	total := decimal.Zero
	for _, report := range reports {
		rate := salary.HourlyRateFor(report, plan, rates)
		total = total.Add(report.BillableWorkingHours.Mul(rate))
	}
	return total
}

// BookingPrice is the single entry point for a booking's computed price: the
// sum of all equipment list prices, plus labor when includeLabor is set.
// Estimated labor is shown until time is reported; reported labor is ground
// truth once it exists, selected by useEstimatedLabor.
func BookingPrice(b domain.Booking, useEstimatedLabor, includeLabor bool, rates salary.Rates) decimal.Decimal {
	total := decimal.Zero
	for _, list := range b.EquipmentLists {
		total = total.Add(ListPrice(list))
	}
	if !includeLabor {
		return total
	}
	if useEstimatedLabor {
		return total.Add(EstimatedLaborPrice(b.TimeEstimates))
	}
	return total.Add(ReportedLaborPrice(b.TimeReports, b.PricePlan, rates))
}

// VATPortion returns the VAT amount on a VAT-exclusive price.
func VATPortion(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(VATRate)
}

// AddVAT returns the VAT-inclusive price. AddVAT(x) equals x plus
// VATPortion(x) exactly.
func AddVAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(VATPortion(amount))
}

// FixedPriceDelta returns how far the booking's fixed price sits above (+) or
// below (-) its computed price, labor included. The second return value is
// false when no fixed price is set.
func FixedPriceDelta(b domain.Booking, rates salary.Rates) (decimal.Decimal, bool) {
	if b.FixedPrice == nil {
		return decimal.Zero, false
	}
	computed := BookingPrice(b, !b.HasTimeReports(), true, rates)
	return b.FixedPrice.Sub(computed), true
}
