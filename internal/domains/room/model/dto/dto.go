package dto

import (
	"mime/multipart"

	hotelDto "ehotels/internal/domains/hotel/model/dto"
	"ehotels/internal/domains/room/model"
	"ehotels/shared"
	gDto "ehotels/shared/dto"
	gModel "ehotels/shared/model"
	"ehotels/shared/timezone"
)

// RoomRequest is the body of both the add and the edit form. The image comes
// either as a multipart file or as a base64 data URI.
type RoomRequest struct {
	HotelID    int64                 `form:"hotel_id"   json:"hotel_id"   validate:"required,gt=0"`
	Capacity   int                   `form:"capacity"   json:"capacity"   validate:"required,gte=1"`
	ViewType   string                `form:"viewtype"   json:"viewtype"   validate:"max=50"`
	Extendable bool                  `form:"extendable" json:"extendable"`
	Price      float64               `form:"price"      json:"price"      validate:"gte=0"`
	Status     string                `form:"status"     json:"status"     validate:"required,max=50"`
	Image      string                `form:"image"      json:"image"      validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=3"`
	ImageFile  *multipart.FileHeader `form:"-"          json:"-"          validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=2"`
}

// HasImage reports whether a new image was sent with the request.
func (r *RoomRequest) HasImage() bool {
	return r.ImageFile != nil || r.Image != ""
}

func (r *RoomRequest) ToModel(actor string) model.Room {
	return model.Room{
		HotelID:    r.HotelID,
		Capacity:   r.Capacity,
		ViewType:   r.ViewType,
		Extendable: r.Extendable,
		Price:      r.Price,
		Status:     r.Status,
		Metadata:   gModel.NewMetadata(actor, timezone.Now()),
	}
}

type RoomResponse struct {
	ID         int64   `json:"room_id"`
	HotelID    int64   `json:"hotel_id"`
	HotelName  string  `json:"hotel_name"`
	Capacity   int     `json:"capacity"`
	ViewType   string  `json:"viewtype"`
	Extendable bool    `json:"extendable"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
	Image      string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.HotelName = model.HotelName
	r.Capacity = model.Capacity
	r.ViewType = model.ViewType
	r.Extendable = model.Extendable
	r.Price = model.Price
	r.Status = model.Status
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type RoomFormResponse struct {
	Hotels []hotelDto.HotelOption `json:"hotels"`
}
