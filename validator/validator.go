package validator

import (
	"regexp"
	"time"

	"estate/dto"
	"estate/errors"
	"estate/models"
)

// ValidateUser validate thông tin user khi đăng ký
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	return nil
}

// ValidateApartment validate thông tin căn hộ khi tạo mới
func ValidateApartment(req *dto.ApartmentRequest) error {
	if req.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}

	if req.TotalArea < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Diện tích không được âm", nil)
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Vĩ độ phải nằm trong khoảng từ -90 đến 90", nil)
	}

	if req.Longitude < -180 || req.Longitude > 180 {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Kinh độ phải nằm trong khoảng từ -180 đến 180", nil)
	}

	return nil
}

// ValidateBooking validate khoảng ngày đặt phòng
func ValidateBooking(req *dto.BookingRequest) error {
	if req.ArrivalDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận phòng không được để trống", nil)
	}

	if req.DepartureDate == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày trả phòng không được để trống", nil)
	}

	arrival, err := time.Parse(models.DateLayout, req.ArrivalDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	departure, err := time.Parse(models.DateLayout, req.DepartureDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	if departure.Before(arrival) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}

// ValidateComment validate bình luận
func ValidateComment(req *dto.CommentRequest) error {
	if req.Content == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Nội dung bình luận không được để trống", nil)
	}

	return nil
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !isValidEmail(email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}
	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
