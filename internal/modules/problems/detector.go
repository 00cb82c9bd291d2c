// Package problems flags bookings whose recorded status lags behind what
// their scheduled equipment datetimes say should already have happened.
//
// Bookings move draft -> booked -> out -> ongoing -> returned -> done ->
// invoiced -> paid, with canceled reachable from any non-terminal state.
// Each equipment list independently moves unset -> out -> returned, and
// returned is terminal. The detector only reads the current snapshot; it
// never enforces transitions.
package problems

import (
	"time"

	"stagebook/internal/domain"
)

// Result holds the independent problem flags for one booking. A booking can
// match several at once.
type Result struct {
	// ShouldBeBooked: equipment is scheduled to leave but the booking is
	// still a draft.
	ShouldBeBooked bool `json:"should_be_booked"`

	// ShouldBeDone: the booking was active and every scheduled return time
	// has elapsed, but it was never marked complete.
	ShouldBeDone bool `json:"should_be_done"`

	// ShouldBeOut lists equipment that was due out but never marked as
	// handed out.
	ShouldBeOut []domain.EquipmentList `json:"should_be_out,omitempty"`

	// ShouldBeIn lists equipment that is out past its scheduled return time.
	ShouldBeIn []domain.EquipmentList `json:"should_be_in,omitempty"`
}

// Any reports whether the result carries at least one problem.
func (r Result) Any() bool {
	return r.ShouldBeBooked || r.ShouldBeDone || len(r.ShouldBeOut) > 0 || len(r.ShouldBeIn) > 0
}

func dueAt(t *time.Time, now time.Time) bool {
	return t != nil && !t.After(now)
}

// Detect evaluates all problem rules for one booking against the supplied
// instant. Canceled bookings never report problems. Lists without the
// relevant datetime are skipped rather than treated as due, and a returned
// list is excluded from the out/in checks regardless of dates.
func Detect(b domain.Booking, now time.Time) Result {
	if b.Status == domain.BookingCanceled {
		return Result{}
	}

	var result Result
	for _, list := range b.EquipmentLists {
		if list.RentalStatus == domain.RentalStatusReturned {
			continue
		}
		switch list.RentalStatus {
		case domain.RentalStatusNone:
			if dueAt(list.EquipmentOutDatetime, now) {
				result.ShouldBeOut = append(result.ShouldBeOut, list)
			}
		case domain.RentalStatusOut:
			if dueAt(list.EquipmentInDatetime, now) {
				result.ShouldBeIn = append(result.ShouldBeIn, list)
			}
		}
	}

	if b.Status == domain.BookingDraft {
		for _, list := range b.EquipmentLists {
			if dueAt(list.EquipmentOutDatetime, now) {
				result.ShouldBeBooked = true
				break
			}
		}
	}

	result.ShouldBeDone = shouldBeDone(b, now)
	return result
}

// shouldBeDone holds when the booking progressed past draft, is not yet
// closed, and every list with a scheduled return time has passed it. Lists
// without a return time carry no evidence either way; with no dated list at
// all there is nothing to conclude.
func shouldBeDone(b domain.Booking, now time.Time) bool {
	if b.Status == domain.BookingDraft || b.Status.Closed() {
		return false
	}
	dated := 0
	for _, list := range b.EquipmentLists {
		if list.EquipmentInDatetime == nil {
			continue
		}
		dated++
		if list.EquipmentInDatetime.After(now) {
			return false
		}
	}
	return dated > 0
}

// BookingProblems pairs a booking with its detected problems.
type BookingProblems struct {
	Booking domain.Booking `json:"booking"`
	Result  Result         `json:"result"`
}

// DetectAll runs the detector over a set of bookings and keeps only those
// with at least one problem, in input order. The problem report page renders
// this directly.
func DetectAll(bookings []domain.Booking, now time.Time) []BookingProblems {
	var flagged []BookingProblems
	for _, b := range bookings {
		if result := Detect(b, now); result.Any() {
			flagged = append(flagged, BookingProblems{Booking: b, Result: result})
		}
	}
	return flagged
}
