package dto

import (
	"encoding/json"
	"time"

	"estate/models"
)

type ApartmentRequest struct {
	Price              int             `json:"price"`
	CurrencyID         uint            `json:"currencyId"`
	TotalArea          float64         `json:"totalArea"`
	TypeID             uint            `json:"typeId"`
	RoomID             uint            `json:"roomId"`
	FloorID            uint            `json:"floorId"`
	ConstructionTypeID uint            `json:"constructionTypeId"`
	StateID            uint            `json:"stateId"`
	ObjectsInApartment string          `json:"objectsInApartment"`
	NearbyObjects      string          `json:"nearbyObjects"`
	Description        string          `json:"description"`
	Img                json.RawMessage `json:"img"`
	Latitude           float64         `json:"latitude"`
	Longitude          float64         `json:"longitude"`
	RegionID           uint            `json:"regionId"`
	CityID             uint            `json:"cityId"`
}

type Actor struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ApartmentSummaryResponse là một dòng trong danh sách kết quả tìm kiếm
type ApartmentSummaryResponse struct {
	ID                 uint            `json:"id"`
	Price              int             `json:"price"`
	CurrencyID         uint            `json:"currencyId"`
	TotalArea          float64         `json:"totalArea"`
	TypeID             uint            `json:"typeId"`
	RoomID             uint            `json:"roomId"`
	FloorID            uint            `json:"floorId"`
	ConstructionTypeID uint            `json:"constructionTypeId"`
	StateID            uint            `json:"stateId"`
	Location           models.Location `json:"location"`
	PubDate            time.Time       `json:"pubDate"`
	Status             bool            `json:"status"`
}

// ApartmentDetailResponse là view đầy đủ dành cho chủ sở hữu
type ApartmentDetailResponse struct {
	ID                 uint                    `json:"id"`
	Price              int                     `json:"price"`
	CurrencyID         uint                    `json:"currencyId"`
	TotalArea          float64                 `json:"totalArea"`
	TypeID             uint                    `json:"typeId"`
	RoomID             uint                    `json:"roomId"`
	FloorID            uint                    `json:"floorId"`
	ConstructionTypeID uint                    `json:"constructionTypeId"`
	StateID            uint                    `json:"stateId"`
	ObjectsInApartment string                  `json:"objectsInApartment"`
	NearbyObjects      string                  `json:"nearbyObjects"`
	Description        string                  `json:"description"`
	Img                json.RawMessage         `json:"img"`
	Location           models.Location         `json:"location"`
	PubDate            time.Time               `json:"pubDate"`
	Status             bool                    `json:"status"`
	Owner              Actor                   `json:"owner"`
	Bookings           []BookingResponse       `json:"bookings"`
	Images             []models.ApartmentImage `json:"images"`
}

// ApartmentPublicResponse là view rút gọn cho người xem không phải chủ:
// không có danh sách booking, không có thông tin liên hệ đầy đủ
type ApartmentPublicResponse struct {
	ID                 uint                    `json:"id"`
	Price              int                     `json:"price"`
	CurrencyID         uint                    `json:"currencyId"`
	TotalArea          float64                 `json:"totalArea"`
	TypeID             uint                    `json:"typeId"`
	RoomID             uint                    `json:"roomId"`
	FloorID            uint                    `json:"floorId"`
	ConstructionTypeID uint                    `json:"constructionTypeId"`
	StateID            uint                    `json:"stateId"`
	ObjectsInApartment string                  `json:"objectsInApartment"`
	NearbyObjects      string                  `json:"nearbyObjects"`
	Description        string                  `json:"description"`
	Img                json.RawMessage         `json:"img"`
	Location           models.Location         `json:"location"`
	PubDate            time.Time               `json:"pubDate"`
	Status             bool                    `json:"status"`
	OwnerName          string                  `json:"ownerName"`
	Images             []models.ApartmentImage `json:"images"`
}

func NewApartmentSummaryResponse(a models.Apartment) ApartmentSummaryResponse {
	return ApartmentSummaryResponse{
		ID:                 a.ID,
		Price:              a.Price,
		CurrencyID:         a.CurrencyID,
		TotalArea:          a.TotalArea,
		TypeID:             a.TypeID,
		RoomID:             a.RoomID,
		FloorID:            a.FloorID,
		ConstructionTypeID: a.ConstructionTypeID,
		StateID:            a.StateID,
		Location:           a.Location,
		PubDate:            a.PubDate,
		Status:             a.Status,
	}
}

func NewApartmentDetailResponse(a models.Apartment) ApartmentDetailResponse {
	bookings := make([]BookingResponse, 0, len(a.Bookings))
	for _, b := range a.Bookings {
		bookings = append(bookings, NewBookingResponse(b))
	}

	return ApartmentDetailResponse{
		ID:                 a.ID,
		Price:              a.Price,
		CurrencyID:         a.CurrencyID,
		TotalArea:          a.TotalArea,
		TypeID:             a.TypeID,
		RoomID:             a.RoomID,
		FloorID:            a.FloorID,
		ConstructionTypeID: a.ConstructionTypeID,
		StateID:            a.StateID,
		ObjectsInApartment: a.ObjectsInApartment,
		NearbyObjects:      a.NearbyObjects,
		Description:        a.Description,
		Img:                a.Img,
		Location:           a.Location,
		PubDate:            a.PubDate,
		Status:             a.Status,
		Owner: Actor{
			Name:        a.User.Name,
			Email:       a.User.Email,
			PhoneNumber: a.User.PhoneNumber,
		},
		Bookings: bookings,
		Images:   a.Images,
	}
}

func NewApartmentPublicResponse(a models.Apartment) ApartmentPublicResponse {
	return ApartmentPublicResponse{
		ID:                 a.ID,
		Price:              a.Price,
		CurrencyID:         a.CurrencyID,
		TotalArea:          a.TotalArea,
		TypeID:             a.TypeID,
		RoomID:             a.RoomID,
		FloorID:            a.FloorID,
		ConstructionTypeID: a.ConstructionTypeID,
		StateID:            a.StateID,
		ObjectsInApartment: a.ObjectsInApartment,
		NearbyObjects:      a.NearbyObjects,
		Description:        a.Description,
		Img:                a.Img,
		Location:           a.Location,
		PubDate:            a.PubDate,
		Status:             a.Status,
		OwnerName:          a.User.Name,
		Images:             a.Images,
	}
}

// ApartmentViewFor chọn view theo danh tính caller, tách khỏi đường đi
// lấy dữ liệu: chủ sở hữu nhận view đầy đủ, còn lại nhận view rút gọn
func ApartmentViewFor(callerID uint, a models.Apartment) interface{} {
	if callerID != 0 && callerID == a.UserID {
		return NewApartmentDetailResponse(a)
	}
	return NewApartmentPublicResponse(a)
}

// ScoredApartment gắn điểm phù hợp khi tìm kiếm theo từ khóa
type ScoredApartment struct {
	Apartment models.Apartment `json:"apartment"`
	Score     int              `json:"score"`
}
