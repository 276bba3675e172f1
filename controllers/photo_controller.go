package controllers

import (
	"context"
	"strconv"

	"estate/config"
	"estate/errors"
	"estate/models"
	"estate/response"
	"estate/services"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
)

// loadPhotoWithOwner lấy ảnh và căn hộ của nó để kiểm tra quyền.
// Ảnh không tồn tại và căn hộ không tồn tại là hai lỗi phân biệt.
func loadPhotoWithOwner(photoID int) (models.ApartmentImage, models.Apartment, error) {
	var image models.ApartmentImage
	if err := config.DB.First(&image, photoID).Error; err != nil {
		return image, models.Apartment{}, errors.ErrPhotoNotFound
	}

	var apartment models.Apartment
	if err := config.DB.First(&apartment, image.ApartmentID).Error; err != nil {
		return image, apartment, errors.ErrApartmentNotFound
	}

	return image, apartment, nil
}

func respondPhotoNotFound(c *gin.Context, err error) {
	if err == errors.ErrApartmentNotFound {
		response.NotFound(c, "Không tìm thấy căn hộ")
		return
	}
	response.NotFound(c, "Không tìm thấy ảnh")
}

// CreateApartmentPhotos upload ảnh lên Cloudinary và gắn vào căn hộ,
// chỉ chủ sở hữu được thêm ảnh
func CreateApartmentPhotos(c *gin.Context) {
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

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "Không có file")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "Không có file")
		return
	}

	images := make([]models.ApartmentImage, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Lỗi khi mở file")
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "apartments"})
		if err != nil {
			response.ServerError(c)
			return
		}

		image := models.ApartmentImage{
			ApartmentID: apartment.ID,
			URL:         resp.SecureURL,
		}
		if err := config.DB.Create(&image).Error; err != nil {
			response.ServerError(c)
			return
		}
		images = append(images, image)
	}

	invalidateApartmentCache()
	response.Success(c, images)
}

// GetPhotoDetail trả về một ảnh theo id
func GetPhotoDetail(c *gin.Context) {
	photoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var image models.ApartmentImage
	if err := config.DB.First(&image, photoID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy ảnh")
		return
	}

	response.Success(c, image)
}

// UpdatePhoto thay URL của một ảnh, chỉ chủ căn hộ được sửa
func UpdatePhoto(c *gin.Context) {
	photoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	image, apartment, err := loadPhotoWithOwner(photoID)
	if err != nil {
		respondPhotoNotFound(c, err)
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	var request struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&request); err != nil || request.URL == "" {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	image.URL = request.URL
	if err := config.DB.Save(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateApartmentCache()
	response.Success(c, image)
}

// DeletePhoto xóa một ảnh, chỉ chủ căn hộ được xóa
func DeletePhoto(c *gin.Context) {
	photoID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	image, apartment, err := loadPhotoWithOwner(photoID)
	if err != nil {
		respondPhotoNotFound(c, err)
		return
	}

	callerID, _ := getCaller(c)
	if !services.IsOwner(callerID, apartment.UserID) {
		response.Forbidden(c)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateApartmentCache()
	response.Success(c, nil)
}
