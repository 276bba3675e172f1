package routes

import (
	"estate/controllers"
	middlewares "estate/middleware"
	"estate/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {

	v1 := router.Group("/api/v1")

	v1.POST("/auth/register", controllers.RegisterUser)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)

	v1.GET("/apartments", controllers.GetAllApartments)
	v1.POST("/apartments", middlewares.AuthMiddleware(), controllers.CreateApartment)
	v1.GET("/apartments/:id", controllers.GetApartmentDetail)
	v1.PUT("/apartments/:id", controllers.UpdateApartment)
	v1.DELETE("/apartments/:id", controllers.DeleteApartment)
	v1.GET("/apartments/:id/nearby", controllers.GetNearbyApartments)

	v1.GET("/apartments/:id/bookings", controllers.GetApartmentBookings)
	v1.POST("/apartments/:id/bookings", controllers.CreateBooking)
	v1.GET("/bookings/:id", controllers.GetBookingDetail)
	v1.PUT("/bookings/:id", controllers.UpdateBooking)
	v1.DELETE("/bookings/:id", controllers.DeleteBooking)

	v1.POST("/apartments/:id/photos", controllers.CreateApartmentPhotos)
	v1.GET("/photos/:id", controllers.GetPhotoDetail)
	v1.PUT("/photos/:id", controllers.UpdatePhoto)
	v1.DELETE("/photos/:id", controllers.DeletePhoto)

	v1.GET("/apartments/:id/comments", controllers.GetApartmentComments)
	v1.POST("/apartments/:id/comments", controllers.CreateComment)
	v1.PUT("/comments/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.UpdateComment)
	v1.DELETE("/comments/:id", middlewares.AuthMiddleware(models.RoleAdmin), controllers.DeleteComment)

	v1.GET("/regions", controllers.GetAllRegions)
	v1.GET("/cities", controllers.GetAllCities)
	v1.GET("/types", controllers.GetAllApartmentTypes)
	v1.GET("/rooms", controllers.GetAllRoomCounts)
	v1.GET("/floors", controllers.GetAllFloors)
	v1.GET("/constructions", controllers.GetAllConstructionTypes)
	v1.GET("/states", controllers.GetAllApartmentStates)
	v1.GET("/currencies", controllers.GetAllCurrencies)
}
