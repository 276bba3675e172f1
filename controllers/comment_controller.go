package controllers

import (
	"strconv"

	"estate/config"
	"estate/dto"
	"estate/errors"
	"estate/models"
	"estate/response"
	"estate/validator"

	"github.com/gin-gonic/gin"
)

// GetApartmentComments trả về bình luận của căn hộ, công khai, mới nhất trước
func GetApartmentComments(c *gin.Context) {
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

	page, limit := parsePagination(c, 18, 1000)

	var comments []models.Comment
	if err := config.DB.
		Preload("User").
		Where("apartment_id = ?", apartment.ID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		response.ServerError(c)
		return
	}

	total := len(comments)
	start, end := paginateWindow(page, limit, total)

	commentsResponse := make([]dto.CommentResponse, 0, end-start)
	for _, cm := range comments[start:end] {
		commentsResponse = append(commentsResponse, dto.NewCommentResponse(cm))
	}

	response.SuccessWithPagination(c, commentsResponse, page, limit, total)
}

// CreateComment tạo bình luận, caller ẩn danh bị từ chối
func CreateComment(c *gin.Context) {
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
	if callerID == 0 {
		response.Forbidden(c)
		return
	}

	var request dto.CommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateComment(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	comment := models.Comment{
		ApartmentID: apartment.ID,
		UserID:      callerID,
		Content:     request.Content,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	config.DB.Preload("User").First(&comment, comment.ID)
	response.Success(c, dto.NewCommentResponse(comment))
}

// UpdateComment sửa nội dung bình luận, chỉ admin được sửa (route đã gắn middleware)
func UpdateComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var comment models.Comment
	if err := config.DB.Preload("User").First(&comment, commentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy bình luận")
		return
	}

	var request dto.CommentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateComment(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	comment.Content = request.Content
	if err := config.DB.Save(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.NewCommentResponse(comment))
}

// DeleteComment xóa bình luận, chỉ admin được xóa (route đã gắn middleware)
func DeleteComment(c *gin.Context) {
	commentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, commentID).Error; err != nil {
		response.NotFound(c, "Không tìm thấy bình luận")
		return
	}

	if err := config.DB.Delete(&comment).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
