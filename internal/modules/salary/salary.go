// Package salary computes the payable amount for reported working time.
//
// A time report is paid at its own hourly rate when one was entered
// explicitly; otherwise the rate is derived from the organization's base
// hourly wage multiplied by the wage ratio matching the booking's price plan.
package salary

import (
	"github.com/shopspring/decimal"

	"stagebook/internal/domain"
)

// Rates is the salary-relevant slice of the global settings, resolved to
// numbers by the configuration boundary before any computation runs.
type Rates struct {
	BaseHourlyRate decimal.Decimal
	RatioExternal  decimal.Decimal
	RatioTHS       decimal.Decimal
}

func (r Rates) ratioFor(plan domain.PricePlan) decimal.Decimal {
	if plan == domain.PricePlanTHS {
		return r.RatioTHS
	}
	return r.RatioExternal
}

// HourlyRateFor returns the payable hourly rate for a time report. An
// explicit rate on the report always wins over the derived one.
func HourlyRateFor(report domain.TimeReport, plan domain.PricePlan, rates Rates) decimal.Decimal {
	if report.PricePerHour != nil {
		return *report.PricePerHour
	}
	return rates.BaseHourlyRate.Mul(rates.ratioFor(plan))
}

// Salary is the payable outcome of a single time report.
type Salary struct {
	TimeReportID int64           `json:"time_report_id"`
	UserID       int64           `json:"user_id"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Sum          decimal.Decimal `json:"sum"`
}

// ForTimeReport computes the salary for one report. Billable hours are the
// multiplier; actual hours are informational only and never affect the sum.
// Zero billable hours yield a zero sum, not an error.
func ForTimeReport(report domain.TimeReport, plan domain.PricePlan, rates Rates) Salary {
	rate := HourlyRateFor(report, plan, rates)
	return Salary{
		TimeReportID: report.ID,
		UserID:       report.UserID,
		HourlyRate:   rate,
		Sum:          rate.Mul(report.BillableWorkingHours),
	}
}

// ForBooking computes one salary line per time report on the booking, in
// report order. The per-user time report page renders these directly.
func ForBooking(b domain.Booking, rates Rates) []Salary {
	if len(b.TimeReports) == 0 {
		return nil
	}
	lines := make([]Salary, 0, len(b.TimeReports))
	for _, report := range b.TimeReports {
		lines = append(lines, ForTimeReport(report, b.PricePlan, rates))
	}
	return lines
}
