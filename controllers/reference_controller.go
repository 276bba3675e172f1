package controllers

import (
	"time"

	"estate/config"
	"estate/models"
	"estate/response"
	"estate/services"

	"github.com/gin-gonic/gin"
)

// listReference trả về một bảng tham chiếu, đọc qua cache Redis.
// count báo số dòng hiện có trong rows sau khi đọc cache.
func listReference(c *gin.Context, cacheKey string, rows interface{}, count func() int) {
	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, rows); err == nil && count() > 0 {
			response.Success(c, rows)
			return
		}
	}

	if err := config.DB.Find(rows).Error; err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, rows, 60*time.Minute); err != nil {
			appLogger.Error("Lỗi khi lưu %s vào Redis: %v", cacheKey, err)
		}
	}

	response.Success(c, rows)
}

func GetAllRegions(c *gin.Context) {
	var regions []models.Region
	listReference(c, "reference:regions", &regions, func() int { return len(regions) })
}

func GetAllCities(c *gin.Context) {
	var cities []models.City
	listReference(c, "reference:cities", &cities, func() int { return len(cities) })
}

func GetAllApartmentTypes(c *gin.Context) {
	var types []models.ApartmentType
	listReference(c, "reference:types", &types, func() int { return len(types) })
}

func GetAllRoomCounts(c *gin.Context) {
	var rooms []models.RoomCount
	listReference(c, "reference:rooms", &rooms, func() int { return len(rooms) })
}

func GetAllFloors(c *gin.Context) {
	var floors []models.Floor
	listReference(c, "reference:floors", &floors, func() int { return len(floors) })
}

func GetAllConstructionTypes(c *gin.Context) {
	var constructions []models.ConstructionType
	listReference(c, "reference:constructions", &constructions, func() int { return len(constructions) })
}

func GetAllApartmentStates(c *gin.Context) {
	var states []models.ApartmentState
	listReference(c, "reference:states", &states, func() int { return len(states) })
}

func GetAllCurrencies(c *gin.Context) {
	var currencies []models.Currency
	listReference(c, "reference:currencies", &currencies, func() int { return len(currencies) })
}
