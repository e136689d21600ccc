package dto

import (
	"ehotels/internal/domains/hotel/model"
	chainModel "ehotels/internal/domains/hotelchain/model"
	"ehotels/shared"
	gDto "ehotels/shared/dto"
	gModel "ehotels/shared/model"
	"ehotels/shared/timezone"
)

// HotelRequest is the body of both the add and the edit form.
type HotelRequest struct {
	HotelName    string  `form:"hotel_name"     json:"hotel_name"     validate:"required,max=100"`
	Address      string  `form:"address"        json:"address"        validate:"required,max=255"`
	HotelChainID int64   `form:"hotel_chain_id" json:"hotel_chain_id" validate:"required,gt=0"`
	Category     int     `form:"category"       json:"category"       validate:"required,gte=1,lte=5"`
	NumRooms     int     `form:"num_rooms"      json:"num_rooms"      validate:"gte=0"`
	Rating       float64 `form:"rating"         json:"rating"         validate:"gte=0,lte=5"`
}

func (h *HotelRequest) ToModel(actor string) model.Hotel {
	return model.Hotel{
		HotelName:    h.HotelName,
		Address:      h.Address,
		HotelChainID: h.HotelChainID,
		Category:     h.Category,
		NumRooms:     h.NumRooms,
		Rating:       h.Rating,
		Metadata:     gModel.NewMetadata(actor, timezone.Now()),
	}
}

type HotelResponse struct {
	ID           int64   `json:"hotel_id"`
	HotelName    string  `json:"hotel_name"`
	Address      string  `json:"address"`
	HotelChainID int64   `json:"hotel_chain_id"`
	ChainName    string  `json:"chain_name"`
	Category     int     `json:"category"`
	NumRooms     int     `json:"num_rooms"`
	Rating       float64 `json:"rating"`
	gDto.Metadata
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.HotelName = model.HotelName
	h.Address = model.Address
	h.HotelChainID = model.HotelChainID
	h.ChainName = model.ChainName
	h.Category = model.Category
	h.NumRooms = model.NumRooms
	h.Rating = model.Rating
	h.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (h *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	h.TotalData = totalData
	h.TotalPage = shared.CalculateTotalPage(totalData, limit)

	h.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		h.Hotels[i].FromModel(mod)
	}
}

type HotelChainOption struct {
	ID        int64  `json:"hotel_chain_id"`
	ChainName string `json:"chain_name"`
}

// HotelFormResponse holds what the add form needs to offer.
type HotelFormResponse struct {
	HotelChains []HotelChainOption `json:"hotel_chains"`
}

func (h *HotelFormResponse) FromModels(chains []chainModel.HotelChain) {
	h.HotelChains = make([]HotelChainOption, len(chains))
	for i, chain := range chains {
		h.HotelChains[i] = HotelChainOption{ID: chain.ID, ChainName: chain.ChainName}
	}
}

// HotelOption is a short hotel reference used by the room and employee forms.
type HotelOption struct {
	ID        int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
}

func HotelOptionsFromModels(hotels []model.Hotel) []HotelOption {
	options := make([]HotelOption, len(hotels))
	for i, hotel := range hotels {
		options[i] = HotelOption{ID: hotel.ID, HotelName: hotel.HotelName}
	}

	return options
}
