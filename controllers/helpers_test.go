package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"estate/config"
	middlewares "estate/middleware"
	"estate/models"
	"estate/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB gắn một DB sqlite in-memory riêng cho mỗi test vào config.DB
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	config.DB = db
	config.RedisClient = nil
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", RegisterUser)
	v1.POST("/auth/login", Login)
	v1.GET("/profile", middlewares.AuthMiddleware(), GetProfile)

	v1.GET("/apartments", GetAllApartments)
	v1.POST("/apartments", middlewares.AuthMiddleware(), CreateApartment)
	v1.GET("/apartments/:id", GetApartmentDetail)
	v1.PUT("/apartments/:id", UpdateApartment)
	v1.DELETE("/apartments/:id", DeleteApartment)
	v1.GET("/apartments/:id/nearby", GetNearbyApartments)

	v1.GET("/apartments/:id/bookings", GetApartmentBookings)
	v1.POST("/apartments/:id/bookings", CreateBooking)
	v1.GET("/bookings/:id", GetBookingDetail)
	v1.PUT("/bookings/:id", UpdateBooking)
	v1.DELETE("/bookings/:id", DeleteBooking)

	v1.GET("/photos/:id", GetPhotoDetail)
	v1.PUT("/photos/:id", UpdatePhoto)
	v1.DELETE("/photos/:id", DeletePhoto)

	v1.GET("/apartments/:id/comments", GetApartmentComments)
	v1.POST("/apartments/:id/comments", CreateComment)
	v1.PUT("/comments/:id", middlewares.AuthMiddleware(models.RoleAdmin), UpdateComment)
	v1.DELETE("/comments/:id", middlewares.AuthMiddleware(models.RoleAdmin), DeleteComment)

	return router
}

func createTestUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{
		Name:     "Người dùng test",
		Email:    email,
		Password: "hashed",
		Role:     models.RoleUser,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func createTestApartment(t *testing.T, owner models.User, lat, lon float64) models.Apartment {
	t.Helper()
	location := models.Location{Latitude: lat, Longitude: lon, RegionID: 1, CityID: 1}
	require.NoError(t, config.DB.Create(&location).Error)

	apartment := models.Apartment{
		UserID:      owner.ID,
		LocationID:  location.ID,
		Price:       100,
		TotalArea:   50,
		Description: "Căn hộ test",
		Status:      true,
	}
	require.NoError(t, config.DB.Create(&apartment).Error)
	apartment.Location = location
	return apartment
}

func createTestBooking(t *testing.T, apartmentID uint, arrival, departure string) models.Booking {
	t.Helper()
	booking := models.Booking{
		ApartmentID:   apartmentID,
		ArrivalDate:   arrival,
		DepartureDate: departure,
	}
	require.NoError(t, config.DB.Create(&booking).Error)
	return booking
}

func createTestPhoto(t *testing.T, apartmentID uint, url string) models.ApartmentImage {
	t.Helper()
	image := models.ApartmentImage{
		ApartmentID: apartmentID,
		URL:         url,
	}
	require.NoError(t, config.DB.Create(&image).Error)
	return image
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, 60)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData parse phần data của envelope response
func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Code int                    `json:"code"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeDataList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var envelope struct {
		Code int                      `json:"code"`
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

// dateFromToday trả về ngày cách hôm nay offset ngày, theo định dạng chuẩn
func dateFromToday(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(models.DateLayout)
}
