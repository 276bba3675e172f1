package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"estate/config"
	"estate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApartmentRequiresAuth(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(router, "POST", "/api/v1/apartments", "", map[string]interface{}{
		"price": 100,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateApartmentSetsOwnerAndLocation(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	w := doRequest(router, "POST", "/api/v1/apartments", tokenFor(t, owner), map[string]interface{}{
		"price":     500,
		"totalArea": 80.5,
		"latitude":  21.0,
		"longitude": 105.8,
		"regionId":  1,
		"cityId":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var apartment models.Apartment
	require.NoError(t, config.DB.Preload("Location").First(&apartment).Error)
	assert.Equal(t, owner.ID, apartment.UserID)
	assert.Equal(t, 500, apartment.Price)
	assert.Equal(t, 21.0, apartment.Location.Latitude)

	var user models.User
	require.NoError(t, config.DB.First(&user, owner.ID).Error)
	require.Len(t, user.ApartmentIDs, 1)
	assert.Equal(t, int64(apartment.ID), user.ApartmentIDs[0])
}

func TestCreateApartmentRejectsBadCoordinates(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	w := doRequest(router, "POST", "/api/v1/apartments", tokenFor(t, owner), map[string]interface{}{
		"price":    100,
		"latitude": 95.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), config.DB.Find(&[]models.Apartment{}).RowsAffected)
}

func TestGetApartmentDetailViews(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")
	apartment := createTestApartment(t, owner, 21.0, 105.8)
	createTestBooking(t, apartment.ID, dateFromToday(5), dateFromToday(10))

	path := fmt.Sprintf("/api/v1/apartments/%d", apartment.ID)

	// Chủ sở hữu thấy view đầy đủ kèm booking
	w := doRequest(router, "GET", path, tokenFor(t, owner), nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Contains(t, data, "bookings")
	assert.Contains(t, data, "owner")

	// Người khác và khách ẩn danh chỉ thấy view rút gọn
	for _, token := range []string{tokenFor(t, other), ""} {
		w = doRequest(router, "GET", path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		data = decodeData(t, w)
		assert.NotContains(t, data, "bookings")
		assert.Contains(t, data, "ownerName")
	}
}

func TestGetApartmentDetailMissing(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(router, "GET", "/api/v1/apartments/9999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetApartmentDetailExpiresPassedBooking(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	apartment := createTestApartment(t, owner, 21.0, 105.8)
	booking := createTestBooking(t, apartment.ID, dateFromToday(-10), dateFromToday(-1))
	require.NoError(t, config.DB.Model(&apartment).Update("status", false).Error)

	w := doRequest(router, "GET", fmt.Sprintf("/api/v1/apartments/%d", apartment.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Booking đã qua bị xóa và căn hộ trở lại còn trống
	var count int64
	config.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	var reloaded models.Apartment
	require.NoError(t, config.DB.First(&reloaded, apartment.ID).Error)
	assert.True(t, reloaded.Status)
}

func TestGetApartmentDetailArrivalTodayMarksUnavailable(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	apartment := createTestApartment(t, owner, 21.0, 105.8)
	booking := createTestBooking(t, apartment.ID, dateFromToday(0), dateFromToday(5))

	w := doRequest(router, "GET", fmt.Sprintf("/api/v1/apartments/%d", apartment.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Apartment
	require.NoError(t, config.DB.First(&reloaded, apartment.ID).Error)
	assert.False(t, reloaded.Status)

	// Booking nhận phòng hôm nay vẫn còn nguyên
	var count int64
	config.DB.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateApartmentOwnership(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	other := createTestUser(t, "other@example.com")
	apartment := createTestApartment(t, owner, 21.0, 105.8)

	path := fmt.Sprintf("/api/v1/apartments/%d", apartment.ID)
	body := map[string]interface{}{"price": 999}

	// Không phải chủ thì bị cấm, kể cả khách ẩn danh
	w := doRequest(router, "PUT", path, tokenFor(t, other), body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = doRequest(router, "PUT", path, "", body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// ID không tồn tại trả NotFound bất kể caller là ai
	w = doRequest(router, "PUT", "/api/v1/apartments/9999", "", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(router, "PUT", "/api/v1/apartments/9999", tokenFor(t, other), body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Chủ sở hữu sửa được, field bỏ trống giữ nguyên
	w = doRequest(router, "PUT", path, tokenFor(t, owner), body)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.Apartment
	require.NoError(t, config.DB.First(&reloaded, apartment.ID).Error)
	assert.Equal(t, 999, reloaded.Price)
	assert.Equal(t, "Căn hộ test", reloaded.Description)
}

func TestDeleteApartmentTwice(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	apartment := createTestApartment(t, owner, 21.0, 105.8)
	createTestBooking(t, apartment.ID, dateFromToday(5), dateFromToday(10))

	path := fmt.Sprintf("/api/v1/apartments/%d", apartment.ID)
	token := tokenFor(t, owner)

	w := doRequest(router, "DELETE", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Xóa xong thì booking kèm theo cũng biến mất
	var count int64
	config.DB.Model(&models.Booking{}).Where("apartment_id = ?", apartment.ID).Count(&count)
	assert.Equal(t, int64(0), count)

	// Lần xóa thứ hai trả NotFound
	w = doRequest(router, "DELETE", path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAllApartmentsFilters(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	cheap := createTestApartment(t, owner, 21.0, 105.8)
	require.NoError(t, config.DB.Model(&cheap).Update("price", 100).Error)
	expensive := createTestApartment(t, owner, 21.0, 105.8)
	require.NoError(t, config.DB.Model(&expensive).Update("price", 900).Error)

	w := doRequest(router, "GET", "/api/v1/apartments?minPrice=500", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeDataList(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(expensive.ID), rows[0]["id"])

	w = doRequest(router, "GET", "/api/v1/apartments?minPrice=50&maxPrice=500", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows = decodeDataList(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(cheap.ID), rows[0]["id"])
}

func TestGetAllApartmentsBookingExclusion(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	booked := createTestApartment(t, owner, 21.0, 105.8)
	createTestBooking(t, booked.ID, dateFromToday(1), dateFromToday(10))
	free := createTestApartment(t, owner, 21.0, 105.8)

	// Khoảng ngày chạm biên booking hiện có vẫn tính là trùng
	path := "/api/v1/apartments?booking=" + url.QueryEscape(dateFromToday(10)+" "+dateFromToday(15))
	w := doRequest(router, "GET", path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeDataList(t, w)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(free.ID), rows[0]["id"])

	// Cách ít nhất một ngày thì không trùng
	path = "/api/v1/apartments?booking=" + url.QueryEscape(dateFromToday(11)+" "+dateFromToday(15))
	w = doRequest(router, "GET", path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDataList(t, w), 2)
}

func TestGetAllApartmentsPagination(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")
	for i := 0; i < 5; i++ {
		createTestApartment(t, owner, 21.0, 105.8)
	}

	w := doRequest(router, "GET", "/api/v1/apartments?page=2&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDataList(t, w), 2)

	w = doRequest(router, "GET", "/api/v1/apartments?page=3&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDataList(t, w), 1)

	w = doRequest(router, "GET", "/api/v1/apartments?page=4&limit=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeDataList(t, w), 0)
}

func TestGetNearbyApartments(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	origin := createTestApartment(t, owner, 21.0, 105.8)
	nearA := createTestApartment(t, owner, 21.005, 105.81)
	nearB := createTestApartment(t, owner, 20.995, 105.79)
	far := createTestApartment(t, owner, 22.0, 105.8)

	w := doRequest(router, "GET", fmt.Sprintf("/api/v1/apartments/%d/nearby", origin.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decodeDataList(t, w)
	require.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), 3)

	allowed := map[float64]bool{float64(nearA.ID): true, float64(nearB.ID): true}
	for _, row := range rows {
		id := row["id"].(float64)
		assert.NotEqual(t, float64(origin.ID), id)
		assert.NotEqual(t, float64(far.ID), id)
		assert.True(t, allowed[id])
	}
}

func TestGetNearbyApartmentsEmptyIsNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	owner := createTestUser(t, "owner@example.com")

	// Chỉ có chính nó trong hộp bao thì coi như không có gì gần đây
	origin := createTestApartment(t, owner, 21.0, 105.8)
	createTestApartment(t, owner, 50.0, 10.0)

	w := doRequest(router, "GET", fmt.Sprintf("/api/v1/apartments/%d/nearby", origin.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNearbyApartmentsMissingOrigin(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := doRequest(router, "GET", "/api/v1/apartments/9999/nearby", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
