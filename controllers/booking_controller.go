package controllers

import (
	"strconv"

	"estate/config"
	"estate/dto"
	"estate/errors"
	"estate/models"
	"estate/response"
	"estate/services"
	"estate/validator"

	"github.com/gin-gonic/gin"
)

// GetApartmentBookings trả về danh sách booking của một căn hộ,
// chỉ chủ sở hữu xem được
func GetApartmentBookings(c *gin.Context) {
	apartmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var apartment models.Apartment
	if err := config.DB.First(&apartment, apartmentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	var bookings []models.Booking
	if err := config.DB.Where("apartment_id = ?", apartment.ID).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingsResponse := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		bookingsResponse = append(bookingsResponse, dto.NewBookingResponse(b))
	}

	response.Success(c, bookingsResponse)
}

// CreateBooking tạo booking cho căn hộ, từ chối khoảng ngày trùng
// với booking đang tồn tại
func CreateBooking(c *gin.Context) {
	apartmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var apartment models.Apartment
	if err := config.DB.Preload("Bookings").First(&apartment, apartmentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateBooking(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	candidate, err := services.ParseDateRange(request.ArrivalDate, request.DepartureDate)
	if err != nil {
		response.ValidationError(c, "Khoảng ngày không hợp lệ")
		return
	}

	if services.HasConflict(services.BookingRanges(apartment.Bookings), candidate) {
		response.BadRequest(c, "Khoảng ngày bị trùng với booking hiện có")
		return
	}

	booking := models.Booking{
		ApartmentID:   apartment.ID,
		ArrivalDate:   request.ArrivalDate,
		DepartureDate: request.DepartureDate,
	}
	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateApartmentCache()
	response.Success(c, dto.NewBookingResponse(booking))
}

// loadBookingWithOwner lấy booking và căn hộ của nó để kiểm tra quyền
func loadBookingWithOwner(bookingID int) (models.Booking, models.Apartment, error) {
	var booking models.Booking
	if err := config.DB.First(&booking, bookingID).Error; err != nil {
		return booking, models.Apartment{}, errors.ErrBookingNotFound
	}

	var apartment models.Apartment
	if err := config.DB.First(&apartment, booking.ApartmentID).Error; err != nil {
		return booking, apartment, errors.ErrApartmentNotFound
	}

	return booking, apartment, nil
}

// GetBookingDetail trả về chi tiết một booking, chỉ chủ căn hộ xem được
func GetBookingDetail(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, apartment, err := loadBookingWithOwner(bookingID)
	if err != nil {
		response.NotFound(c, "Không tìm thấy booking")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	response.Success(c, dto.NewBookingResponse(booking))
}

// UpdateBooking cập nhật khoảng ngày của booking, kiểm tra lại trùng lặp
// với các booking khác của cùng căn hộ
func UpdateBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, apartment, err := loadBookingWithOwner(bookingID)
	if err != nil {
		response.NotFound(c, "Không tìm thấy booking")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if request.ArrivalDate == "" {
		request.ArrivalDate = booking.ArrivalDate
	}
	if request.DepartureDate == "" {
		request.DepartureDate = booking.DepartureDate
	}

	if err := validator.ValidateBooking(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	candidate, err := services.ParseDateRange(request.ArrivalDate, request.DepartureDate)
	if err != nil {
		response.ValidationError(c, "Khoảng ngày không hợp lệ")
		return
	}

	// Booking đang sửa không tự xung đột với chính nó
	var siblings []models.Booking
	if err := config.DB.Where("apartment_id = ? AND id <> ?", booking.ApartmentID, booking.ID).Find(&siblings).Error; err != nil {
		response.ServerError(c)
		return
	}
	if services.HasConflict(services.BookingRanges(siblings), candidate) {
		response.BadRequest(c, "Khoảng ngày bị trùng với booking hiện có")
		return
	}

	booking.ArrivalDate = request.ArrivalDate
	booking.DepartureDate = request.DepartureDate
	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateApartmentCache()
	response.Success(c, dto.NewBookingResponse(booking))
}

// DeleteBooking xóa một booking, chỉ chủ căn hộ được xóa
func DeleteBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, apartment, err := loadBookingWithOwner(bookingID)
	if err != nil {
		response.NotFound(c, "Không tìm thấy booking")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateApartmentCache()
	response.Success(c, nil)
}
