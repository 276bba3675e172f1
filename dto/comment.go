package dto

import (
	"time"

	"estate/models"
)

type CommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID          uint      `json:"id"`
	ApartmentID uint      `json:"apartmentId"`
	UserID      uint      `json:"userId"`
	UserName    string    `json:"userName"`
	Avatar      string    `json:"avatar"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewCommentResponse(cm models.Comment) CommentResponse {
	return CommentResponse{
		ID:          cm.ID,
		ApartmentID: cm.ApartmentID,
		UserID:      cm.UserID,
		UserName:    cm.User.Name,
		Avatar:      cm.User.Avatar,
		Content:     cm.Content,
		CreatedAt:   cm.CreatedAt,
		UpdatedAt:   cm.UpdatedAt,
	}
}
