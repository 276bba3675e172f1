package dto

import (
	"time"

	"estate/models"
)

type BookingRequest struct {
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
}

type BookingResponse struct {
	ID            uint      `json:"id"`
	ApartmentID   uint      `json:"apartmentId"`
	ArrivalDate   string    `json:"arrivalDate"`
	DepartureDate string    `json:"departureDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ApartmentID:   b.ApartmentID,
		ArrivalDate:   b.ArrivalDate,
		DepartureDate: b.DepartureDate,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
