package controllers

import (
	"strconv"
	"strings"

	"estate/config"
	"estate/services"
	"estate/services/logger"

	"github.com/gin-gonic/gin"
)

const apartmentsCacheKey = "apartments:all"

var appLogger logger.Logger = logger.NewDefaultLogger(logger.InfoLevel)

// SetLogger thay logger của package, gọi từ main khi khởi động
func SetLogger(l logger.Logger) {
	if l != nil {
		appLogger = l
	}
}

// getCaller đọc userID và role từ Authorization header nếu có.
// Caller ẩn danh hoặc token hỏng trả về 0 — không chặn request,
// từng handler tự quyết định quyền.
func getCaller(c *gin.Context) (uint, int) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, 0
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, role, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		return 0, 0
	}
	return userID, role
}

// parsePagination đọc page/limit từ query string, page bắt đầu từ 1
func parsePagination(c *gin.Context, defaultLimit, maxLimit int) (int, int) {
	page := 1
	limit := defaultLimit

	if pageStr := c.Query("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

// paginateWindow tính cửa sổ [start, end) của trang hiện tại trên tổng total
func paginateWindow(page, limit, total int) (int, int) {
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}

// invalidateApartmentCache xóa cache danh sách sau khi ghi, best effort
func invalidateApartmentCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, apartmentsCacheKey); err != nil {
		appLogger.Error("Lỗi khi xóa cache danh sách căn hộ: %v", err)
	}
}
