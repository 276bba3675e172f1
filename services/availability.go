package services

import (
	"time"

	"estate/models"
)

// DateRange là khoảng ngày [Arrival, Departure] của một booking
type DateRange struct {
	Arrival   time.Time
	Departure time.Time
}

// ParseDateRange parse chuỗi ngày theo models.DateLayout
func ParseDateRange(arrivalDate, departureDate string) (DateRange, error) {
	arrival, err := time.Parse(models.DateLayout, arrivalDate)
	if err != nil {
		return DateRange{}, err
	}
	departure, err := time.Parse(models.DateLayout, departureDate)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Arrival: arrival, Departure: departure}, nil
}

// Overlaps kiểm tra hai khoảng ngày có giao nhau không.
// Biên được tính inclusive: departure trùng arrival vẫn là giao nhau,
// không cho phép trả và nhận phòng cùng ngày.
func Overlaps(a, b DateRange) bool {
	return !a.Departure.Before(b.Arrival) && !b.Departure.Before(a.Arrival)
}

// HasConflict kiểm tra candidate có giao với booking nào đang tồn tại không
func HasConflict(existing []DateRange, candidate DateRange) bool {
	for _, r := range existing {
		if Overlaps(r, candidate) {
			return true
		}
	}
	return false
}

// BookingRanges chuyển danh sách booking thành danh sách khoảng ngày,
// bỏ qua booking có ngày không parse được
func BookingRanges(bookings []models.Booking) []DateRange {
	ranges := make([]DateRange, 0, len(bookings))
	for _, b := range bookings {
		r, err := ParseDateRange(b.ArrivalDate, b.DepartureDate)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// ExpiryResult là kết quả của một lần tính lại trạng thái
type ExpiryResult struct {
	Applied          bool // Có rule nào khớp không
	Available        bool // Trạng thái mới của apartment khi Applied
	ExpiredBookingID uint // Booking cần xóa, 0 nếu không có
}

// ReconcileExpiry tính lại cờ trạng thái của apartment theo danh sách booking.
// Thuần túy, không đụng DB: booking đầu tiên có arrival đúng hôm nay đánh dấu
// apartment hết trống; nếu không, booking đầu tiên có departure <= hôm nay
// đánh dấu apartment còn trống và booking đó hết hạn. Caller chịu trách nhiệm
// lưu trạng thái và xóa booking hết hạn (xóa theo primary key, đã xóa rồi thì
// không sao — hai request đọc cùng lúc có thể cùng quan sát trạng thái cũ).
func ReconcileExpiry(today time.Time, bookings []models.Booking) ExpiryResult {
	day := today.UTC().Truncate(24 * time.Hour)

	for _, b := range bookings {
		r, err := ParseDateRange(b.ArrivalDate, b.DepartureDate)
		if err != nil {
			continue
		}
		if r.Arrival.Equal(day) {
			return ExpiryResult{Applied: true, Available: false}
		}
		if !day.Before(r.Departure) {
			return ExpiryResult{Applied: true, Available: true, ExpiredBookingID: b.ID}
		}
	}

	return ExpiryResult{}
}
