package problems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagebook/internal/domain"
)

var now = time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time {
	return &t
}

func yesterday() *time.Time { return timePtr(now.Add(-24 * time.Hour)) }
func tomorrow() *time.Time  { return timePtr(now.Add(24 * time.Hour)) }

func TestDetect_DraftWithDueEquipment(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingDraft,
		EquipmentLists: []domain.EquipmentList{
			{ID: 1, RentalStatus: domain.RentalStatusNone, EquipmentOutDatetime: yesterday()},
		},
	}

	result := Detect(booking, now)

	assert.True(t, result.ShouldBeBooked)
	require.Len(t, result.ShouldBeOut, 1)
	assert.Equal(t, int64(1), result.ShouldBeOut[0].ID)
	assert.False(t, result.ShouldBeDone)
	assert.Empty(t, result.ShouldBeIn)
}

func TestDetect_CanceledBookingReportsNothing(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingCanceled,
		EquipmentLists: []domain.EquipmentList{
			{RentalStatus: domain.RentalStatusNone, EquipmentOutDatetime: yesterday(), EquipmentInDatetime: yesterday()},
			{RentalStatus: domain.RentalStatusOut, EquipmentInDatetime: yesterday()},
		},
	}

	result := Detect(booking, now)

	assert.False(t, result.Any())
	assert.Equal(t, Result{}, result)
}

func TestDetect_ShouldBeIn(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingOut,
		EquipmentLists: []domain.EquipmentList{
			{ID: 1, RentalStatus: domain.RentalStatusOut, EquipmentInDatetime: yesterday()},
			{ID: 2, RentalStatus: domain.RentalStatusOut, EquipmentInDatetime: tomorrow()},
			{ID: 3, RentalStatus: domain.RentalStatusOut}, // no scheduled return
		},
	}

	result := Detect(booking, now)

	require.Len(t, result.ShouldBeIn, 1)
	assert.Equal(t, int64(1), result.ShouldBeIn[0].ID)
	assert.Empty(t, result.ShouldBeOut)
}

func TestDetect_ReturnedListIsTerminal(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingOngoing,
		EquipmentLists: []domain.EquipmentList{
			{RentalStatus: domain.RentalStatusReturned, EquipmentOutDatetime: yesterday(), EquipmentInDatetime: yesterday()},
		},
	}

	result := Detect(booking, now)

	assert.Empty(t, result.ShouldBeOut)
	assert.Empty(t, result.ShouldBeIn)
}

func TestDetect_MissingDatesAreNotDue(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingDraft,
		EquipmentLists: []domain.EquipmentList{
			{RentalStatus: domain.RentalStatusNone}, // no dates at all
		},
	}

	result := Detect(booking, now)

	assert.False(t, result.Any())
}

func TestDetect_ShouldBeDone(t *testing.T) {
	lists := []domain.EquipmentList{
		{RentalStatus: domain.RentalStatusReturned, EquipmentInDatetime: yesterday()},
		{RentalStatus: domain.RentalStatusReturned, EquipmentInDatetime: timePtr(now)}, // due exactly now counts
	}

	// Still in booked with the whole return window elapsed: flagged.
	flagged := Detect(domain.Booking{Status: domain.BookingBooked, EquipmentLists: lists}, now)
	assert.True(t, flagged.ShouldBeDone)

	// One list not yet due holds the flag back.
	open := append([]domain.EquipmentList{}, lists...)
	open = append(open, domain.EquipmentList{RentalStatus: domain.RentalStatusOut, EquipmentInDatetime: tomorrow()})
	assert.False(t, Detect(domain.Booking{Status: domain.BookingReturned, EquipmentLists: open}, now).ShouldBeDone)

	// Drafts and closed bookings are never flagged.
	assert.False(t, Detect(domain.Booking{Status: domain.BookingDraft, EquipmentLists: lists}, now).ShouldBeDone)
	for _, status := range []domain.BookingStatus{domain.BookingDone, domain.BookingInvoiced, domain.BookingPaid, domain.BookingCanceled} {
		assert.False(t, Detect(domain.Booking{Status: status, EquipmentLists: lists}, now).ShouldBeDone, "status %s", status)
	}

	// No list with a scheduled return time: nothing to conclude.
	undated := []domain.EquipmentList{{RentalStatus: domain.RentalStatusOut}}
	assert.False(t, Detect(domain.Booking{Status: domain.BookingBooked, EquipmentLists: undated}, now).ShouldBeDone)
}

func TestDetect_Deterministic(t *testing.T) {
	booking := domain.Booking{
		Status: domain.BookingBooked,
		EquipmentLists: []domain.EquipmentList{
			{ID: 1, RentalStatus: domain.RentalStatusNone, EquipmentOutDatetime: yesterday(), EquipmentInDatetime: yesterday()},
		},
	}

	first := Detect(booking, now)
	second := Detect(booking, now)

	assert.Equal(t, first, second)
}

func TestDetectAll_KeepsOnlyFlaggedBookings(t *testing.T) {
	clean := domain.Booking{
		ID:     1,
		Status: domain.BookingBooked,
		EquipmentLists: []domain.EquipmentList{
			{RentalStatus: domain.RentalStatusNone, EquipmentOutDatetime: tomorrow(), EquipmentInDatetime: tomorrow()},
		},
	}
	overdue := domain.Booking{
		ID:     2,
		Status: domain.BookingOut,
		EquipmentLists: []domain.EquipmentList{
			{RentalStatus: domain.RentalStatusOut, EquipmentInDatetime: yesterday()},
		},
	}

	flagged := DetectAll([]domain.Booking{clean, overdue}, now)

	require.Len(t, flagged, 1)
	assert.Equal(t, int64(2), flagged[0].Booking.ID)
	assert.Len(t, flagged[0].Result.ShouldBeIn, 1)

	assert.Empty(t, DetectAll(nil, now))
}
