package controllers

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"estate/config"
	"estate/dto"
	"estate/errors"
	"estate/models"
	"estate/response"
	"estate/services"
	"estate/validator"

	"github.com/gin-gonic/gin"
)

// apartmentFilter gom các tham số lọc của danh sách căn hộ
type apartmentFilter struct {
	minPrice     string
	maxPrice     string
	minArea      string
	maxArea      string
	region       string
	city         string
	typeID       string
	room         string
	floor        string
	construction string
	state        string
	currency     string
	objects      string
	nearby       string
}

func readApartmentFilter(c *gin.Context) apartmentFilter {
	return apartmentFilter{
		minPrice:     c.Query("minPrice"),
		maxPrice:     c.Query("maxPrice"),
		minArea:      c.Query("minArea"),
		maxArea:      c.Query("maxArea"),
		region:       c.Query("region"),
		city:         c.Query("city"),
		typeID:       c.Query("type"),
		room:         c.Query("room"),
		floor:        c.Query("floor"),
		construction: c.Query("construction"),
		state:        c.Query("state"),
		currency:     c.Query("currency"),
		objects:      c.Query("objectsInApartment"),
		nearby:       c.Query("nearbyObjects"),
	}
}

// isMatch kiểm tra một căn hộ có qua hết các bộ lọc không, các điều kiện AND với nhau
func isMatch(a models.Apartment, f apartmentFilter) bool {
	if f.minPrice != "" {
		if parsed, err := strconv.Atoi(f.minPrice); err == nil && a.Price < parsed {
			return false
		}
	}
	if f.maxPrice != "" {
		if parsed, err := strconv.Atoi(f.maxPrice); err == nil && a.Price > parsed {
			return false
		}
	}
	if f.minArea != "" {
		if parsed, err := strconv.ParseFloat(f.minArea, 64); err == nil && a.TotalArea < parsed {
			return false
		}
	}
	if f.maxArea != "" {
		if parsed, err := strconv.ParseFloat(f.maxArea, 64); err == nil && a.TotalArea > parsed {
			return false
		}
	}
	if f.region != "" {
		if parsed, err := strconv.Atoi(f.region); err == nil && a.Location.RegionID != uint(parsed) {
			return false
		}
	}
	if f.city != "" {
		if parsed, err := strconv.Atoi(f.city); err == nil && a.Location.CityID != uint(parsed) {
			return false
		}
	}
	if f.typeID != "" {
		if parsed, err := strconv.Atoi(f.typeID); err == nil && a.TypeID != uint(parsed) {
			return false
		}
	}
	if f.room != "" {
		if parsed, err := strconv.Atoi(f.room); err == nil && a.RoomID != uint(parsed) {
			return false
		}
	}
	if f.floor != "" {
		if parsed, err := strconv.Atoi(f.floor); err == nil && a.FloorID != uint(parsed) {
			return false
		}
	}
	if f.construction != "" {
		if parsed, err := strconv.Atoi(f.construction); err == nil && a.ConstructionTypeID != uint(parsed) {
			return false
		}
	}
	if f.state != "" {
		if parsed, err := strconv.Atoi(f.state); err == nil && a.StateID != uint(parsed) {
			return false
		}
	}
	if f.currency != "" {
		if parsed, err := strconv.Atoi(f.currency); err == nil && a.CurrencyID != uint(parsed) {
			return false
		}
	}
	if f.objects != "" {
		if !strings.Contains(strings.ToLower(a.ObjectsInApartment), strings.ToLower(f.objects)) {
			return false
		}
	}
	if f.nearby != "" {
		if !strings.Contains(strings.ToLower(a.NearbyObjects), strings.ToLower(f.nearby)) {
			return false
		}
	}

	return true
}

// loadApartmentsFromDB load toàn bộ căn hộ kèm quan hệ từ DB
func loadApartmentsFromDB(allApartments *[]models.Apartment) error {
	return config.DB.Model(&models.Apartment{}).
		Preload("Location").
		Preload("User").
		Preload("Bookings").
		Preload("Images").
		Find(allApartments).Error
}

// loadAllApartments lấy danh sách căn hộ, ưu tiên cache Redis
func loadAllApartments() ([]models.Apartment, error) {
	var allApartments []models.Apartment

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, apartmentsCacheKey, &allApartments); err == nil && len(allApartments) > 0 {
			return allApartments, nil
		}
	}

	if err := loadApartmentsFromDB(&allApartments); err != nil {
		return nil, err
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, apartmentsCacheKey, allApartments, 60*time.Minute); err != nil {
			appLogger.Error("Lỗi khi lưu danh sách căn hộ vào Redis: %v", err)
		}
	}

	return allApartments, nil
}

// GetAllApartments trả về danh sách căn hộ theo bộ lọc, có phân trang
func GetAllApartments(c *gin.Context) {
	page, limit := parsePagination(c, 12, 1000)
	filter := readApartmentFilter(c)
	bookingParam := c.Query("booking")
	searchParam := c.Query("search")

	allApartments, err := loadAllApartments()
	if err != nil {
		response.ServerError(c)
		return
	}

	// Lọc theo khoảng ngày ở: loại căn hộ có booking giao với khoảng yêu cầu
	var stay *services.DateRange
	if bookingParam != "" {
		parts := strings.Fields(bookingParam)
		if len(parts) != 2 {
			response.ValidationError(c, "Tham số booking phải có dạng 'YYYY-MM-DD YYYY-MM-DD'")
			return
		}
		parsed, err := services.ParseDateRange(parts[0], parts[1])
		if err != nil {
			response.ValidationError(c, "Khoảng ngày booking không hợp lệ")
			return
		}
		stay = &parsed
	}

	filtered := make([]models.Apartment, 0, len(allApartments))
	for _, a := range allApartments {
		if !isMatch(a, filter) {
			continue
		}
		if stay != nil && services.HasConflict(services.BookingRanges(a.Bookings), *stay) {
			continue
		}
		filtered = append(filtered, a)
	}

	// Mới đăng lên trước
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].PubDate.After(filtered[j].PubDate)
	})

	// Tìm kiếm mờ theo từ khóa: chấm điểm và xếp lại theo điểm
	if searchParam != "" {
		scored := filterAndScoreApartments(searchParam, filtered)
		filtered = filtered[:0]
		for _, s := range scored {
			filtered = append(filtered, s.Apartment)
		}
	}

	total := len(filtered)
	start, end := paginateWindow(page, limit, total)

	apartmentsResponse := make([]dto.ApartmentSummaryResponse, 0, end-start)
	for _, a := range filtered[start:end] {
		apartmentsResponse = append(apartmentsResponse, dto.NewApartmentSummaryResponse(a))
	}

	response.SuccessWithPagination(c, apartmentsResponse, page, limit, total)
}

// CreateApartment tạo căn hộ mới, caller trở thành chủ sở hữu
func CreateApartment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var request dto.ApartmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateApartment(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	location := models.Location{
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
		RegionID:  request.RegionID,
		CityID:    request.CityID,
	}
	if err := config.DB.Create(&location).Error; err != nil {
		response.ServerError(c)
		return
	}

	apartment := models.Apartment{
		UserID:             userID,
		LocationID:         location.ID,
		Price:              request.Price,
		CurrencyID:         request.CurrencyID,
		TotalArea:          request.TotalArea,
		TypeID:             request.TypeID,
		RoomID:             request.RoomID,
		FloorID:            request.FloorID,
		ConstructionTypeID: request.ConstructionTypeID,
		StateID:            request.StateID,
		ObjectsInApartment: request.ObjectsInApartment,
		NearbyObjects:      request.NearbyObjects,
		Description:        request.Description,
		Img:                request.Img,
		Status:             true,
	}
	if err := config.DB.Create(&apartment).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Ghi nhận quyền sở hữu trên user
	var user models.User
	if err := config.DB.First(&user, userID).Error; err == nil {
		user.ApartmentIDs = append(user.ApartmentIDs, int64(apartment.ID))
		if err := config.DB.Model(&user).Update("apartment_ids", user.ApartmentIDs).Error; err != nil {
			appLogger.Error("Lỗi khi cập nhật danh sách căn hộ của user %d: %v", userID, err)
		}
	}

	invalidateApartmentCache()

	apartment.Location = location
	response.Success(c, dto.NewApartmentDetailResponse(apartment))
}

// GetApartmentDetail trả về chi tiết căn hộ, tính lại trạng thái còn trống
// trước khi trả. View phụ thuộc danh tính caller.
func GetApartmentDetail(c *gin.Context) {
	apartmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var apartment models.Apartment
	if err := config.DB.
		Preload("Location").
		Preload("User").
		Preload("Bookings").
		Preload("Images").
		First(&apartment, apartmentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}

	result := services.ReconcileExpiry(time.Now(), apartment.Bookings)
	if result.Applied {
		if apartment.Status != result.Available {
			if err := config.DB.Model(&apartment).Update("status", result.Available).Error; err != nil {
				response.ServerError(c)
				return
			}
			apartment.Status = result.Available
		}
		if result.ExpiredBookingID != 0 {
			// Xóa theo primary key nên hai request đọc cùng lúc không giẫm nhau
			if err := config.DB.Delete(&models.Booking{}, result.ExpiredBookingID).Error; err != nil {
				response.ServerError(c)
				return
			}
			remaining := make([]models.Booking, 0, len(apartment.Bookings))
			for _, b := range apartment.Bookings {
				if b.ID != result.ExpiredBookingID {
					remaining = append(remaining, b)
				}
			}
			apartment.Bookings = remaining
		}
		invalidateApartmentCache()
	}

	callerID, _ := getCaller(c)
	response.Success(c, dto.ApartmentViewFor(callerID, apartment))
}

// UpdateApartment cập nhật căn hộ, chỉ chủ sở hữu được sửa.
// Field để trống trong request thì giữ nguyên giá trị cũ.
func UpdateApartment(c *gin.Context) {
	apartmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var apartment models.Apartment
	if err := config.DB.Preload("Location").First(&apartment, apartmentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	var request dto.ApartmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateApartment(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	if request.Price != 0 {
		apartment.Price = request.Price
	}
	if request.CurrencyID != 0 {
		apartment.CurrencyID = request.CurrencyID
	}
	if request.TotalArea != 0 {
		apartment.TotalArea = request.TotalArea
	}
	if request.TypeID != 0 {
		apartment.TypeID = request.TypeID
	}
	if request.RoomID != 0 {
		apartment.RoomID = request.RoomID
	}
	if request.FloorID != 0 {
		apartment.FloorID = request.FloorID
	}
	if request.ConstructionTypeID != 0 {
		apartment.ConstructionTypeID = request.ConstructionTypeID
	}
	if request.StateID != 0 {
		apartment.StateID = request.StateID
	}
	if request.ObjectsInApartment != "" {
		apartment.ObjectsInApartment = request.ObjectsInApartment
	}
	if request.NearbyObjects != "" {
		apartment.NearbyObjects = request.NearbyObjects
	}
	if request.Description != "" {
		apartment.Description = request.Description
	}
	if len(request.Img) > 0 {
		apartment.Img = request.Img
	}

	if err := config.DB.Save(&apartment).Error; err != nil {
		response.ServerError(c)
		return
	}

	if request.Latitude != 0 || request.Longitude != 0 || request.RegionID != 0 || request.CityID != 0 {
		if request.Latitude != 0 {
			apartment.Location.Latitude = request.Latitude
		}
		if request.Longitude != 0 {
			apartment.Location.Longitude = request.Longitude
		}
		if request.RegionID != 0 {
			apartment.Location.RegionID = request.RegionID
		}
		if request.CityID != 0 {
			apartment.Location.CityID = request.CityID
		}
		if err := config.DB.Save(&apartment.Location).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	invalidateApartmentCache()
	response.Success(c, dto.NewApartmentDetailResponse(apartment))
}

// DeleteApartment xóa căn hộ cùng location, booking, ảnh và bình luận kèm theo
func DeleteApartment(c *gin.Context) {
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

	if err := config.DB.Where("apartment_id = ?", apartment.ID).Delete(&models.Booking{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Where("apartment_id = ?", apartment.ID).Delete(&models.ApartmentImage{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Where("apartment_id = ?", apartment.ID).Delete(&models.Comment{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&apartment).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&models.Location{}, apartment.LocationID).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Gỡ id khỏi danh sách sở hữu của user
	var user models.User
	if err := config.DB.First(&user, apartment.UserID).Error; err == nil {
		remaining := make([]int64, 0, len(user.ApartmentIDs))
		for _, id := range user.ApartmentIDs {
			if id != int64(apartment.ID) {
				remaining = append(remaining, id)
			}
		}
		if err := config.DB.Model(&user).Update("apartment_ids", remaining).Error; err != nil {
			appLogger.Error("Lỗi khi cập nhật danh sách căn hộ của user %d: %v", apartment.UserID, err)
		}
	}

	invalidateApartmentCache()
	response.Success(c, nil)
}

// GetNearbyApartments trả về tối đa `limit` căn hộ ngẫu nhiên trong bán kính
// `radius` km quanh một căn hộ, không bao giờ trả danh sách rỗng thành công
func GetNearbyApartments(c *gin.Context) {
	apartmentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var origin models.Apartment
	if err := config.DB.Preload("Location").First(&origin, apartmentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}

	radius := 3.0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		if parsed, err := strconv.ParseFloat(radiusStr, 64); err == nil && parsed > 0 {
			radius = parsed
		}
	}
	limit := 3
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	latMin, latMax, lonMin, lonMax := services.BoundingBox(origin.Location.Latitude, origin.Location.Longitude, radius)

	var locationIDs []uint
	if err := config.DB.Model(&models.Location{}).
		Where("latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?", latMin, latMax, lonMin, lonMax).
		Pluck("id", &locationIDs).Error; err != nil {
		response.ServerError(c)
		return
	}
	if len(locationIDs) == 0 {
		response.NotFound(c, "Không có căn hộ nào gần đây")
		return
	}

	var candidates []models.Apartment
	if err := config.DB.
		Preload("Location").
		Preload("User").
		Preload("Images").
		Where("location_id IN ? AND id <> ?", locationIDs, origin.ID).
		Find(&candidates).Error; err != nil {
		response.ServerError(c)
		return
	}
	if len(candidates) == 0 {
		response.NotFound(c, "Không có căn hộ nào gần đây")
		return
	}

	byID := make(map[uint]models.Apartment, len(candidates))
	ids := make([]uint, 0, len(candidates))
	for _, a := range candidates {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picked := services.SampleApartments(rng, ids, limit)

	nearbyResponse := make([]dto.ApartmentSummaryResponse, 0, len(picked))
	for _, id := range picked {
		nearbyResponse = append(nearbyResponse, dto.NewApartmentSummaryResponse(byID[id]))
	}

	response.Success(c, nearbyResponse)
}
