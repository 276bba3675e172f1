package services

import (
	"testing"
	"time"

	"estate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, arrival, departure string) DateRange {
	t.Helper()
	r, err := ParseDateRange(arrival, departure)
	require.NoError(t, err)
	return r
}

func TestOverlapsSymmetric(t *testing.T) {
	a := mustRange(t, "2025-06-01", "2025-06-10")
	b := mustRange(t, "2025-06-05", "2025-06-15")

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))

	c := mustRange(t, "2025-07-01", "2025-07-05")
	assert.False(t, Overlaps(a, c))
	assert.False(t, Overlaps(c, a))
}

func TestOverlapsSelf(t *testing.T) {
	a := mustRange(t, "2025-06-01", "2025-06-10")
	assert.True(t, Overlaps(a, a))
}

func TestOverlapsTouchingBoundary(t *testing.T) {
	// Trả phòng và nhận phòng cùng ngày vẫn tính là trùng
	a := mustRange(t, "2025-06-01", "2025-06-10")
	b := mustRange(t, "2025-06-10", "2025-06-15")

	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(b, a))
}

func TestOverlapsDisjointWithGap(t *testing.T) {
	a := mustRange(t, "2025-06-01", "2025-06-10")
	b := mustRange(t, "2025-06-11", "2025-06-15")

	assert.False(t, Overlaps(a, b))
	assert.False(t, Overlaps(b, a))
}

func TestHasConflict(t *testing.T) {
	existing := []DateRange{
		mustRange(t, "2025-06-01", "2025-06-10"),
		mustRange(t, "2025-07-01", "2025-07-10"),
	}

	assert.True(t, HasConflict(existing, mustRange(t, "2025-06-10", "2025-06-15")))
	assert.False(t, HasConflict(existing, mustRange(t, "2025-06-11", "2025-06-30")))
	assert.False(t, HasConflict(nil, mustRange(t, "2025-06-11", "2025-06-30")))
}

func TestBookingRangesSkipsUnparsable(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, ArrivalDate: "2025-06-01", DepartureDate: "2025-06-10"},
		{ID: 2, ArrivalDate: "not-a-date", DepartureDate: "2025-06-10"},
	}

	ranges := BookingRanges(bookings)
	require.Len(t, ranges, 1)
	assert.Equal(t, mustRange(t, "2025-06-01", "2025-06-10"), ranges[0])
}

func TestReconcileExpiryDeparturePassed(t *testing.T) {
	// Hôm nay 06-11, booking trả phòng 06-10: booking hết hạn,
	// căn hộ trở lại còn trống
	today := time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 7, ArrivalDate: "2025-06-01", DepartureDate: "2025-06-10"},
	}

	result := ReconcileExpiry(today, bookings)
	assert.True(t, result.Applied)
	assert.True(t, result.Available)
	assert.Equal(t, uint(7), result.ExpiredBookingID)
}

func TestReconcileExpiryArrivalToday(t *testing.T) {
	today := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 3, ArrivalDate: "2025-06-01", DepartureDate: "2025-06-10"},
	}

	result := ReconcileExpiry(today, bookings)
	assert.True(t, result.Applied)
	assert.False(t, result.Available)
	assert.Zero(t, result.ExpiredBookingID)
}

func TestReconcileExpiryNothingApplies(t *testing.T) {
	today := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	bookings := []models.Booking{
		{ID: 3, ArrivalDate: "2025-06-06", DepartureDate: "2025-06-10"},
	}

	result := ReconcileExpiry(today, bookings)
	assert.False(t, result.Applied)
}
