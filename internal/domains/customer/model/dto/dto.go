package dto

import (
	"ehotels/internal/domains/customer/model"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	gModel "ehotels/shared/model"
	"ehotels/shared/timezone"
)

// CustomerRequest is the body of both the add and the edit form. An empty
// registration date means today.
type CustomerRequest struct {
	FullName         string `form:"full_name"         json:"full_name"         validate:"required,max=100"`
	Address          string `form:"address"           json:"address"           validate:"max=255"`
	IDType           string `form:"id_type"           json:"id_type"           validate:"required,max=50"`
	IDNumber         string `form:"id_number"         json:"id_number"         validate:"required,max=50"`
	RegistrationDate string `form:"registration_date" json:"registration_date" validate:"omitempty,datetime=2006-01-02"`
}

func (c *CustomerRequest) ToModel(actor string) (model.Customer, error) {
	registeredAt := timezone.Today()

	if c.RegistrationDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnly, c.RegistrationDate)
		if err != nil {
			return model.Customer{}, err
		}

		registeredAt = parsed
	}

	return model.Customer{
		FullName:         c.FullName,
		Address:          c.Address,
		IDType:           c.IDType,
		IDNumber:         c.IDNumber,
		RegistrationDate: registeredAt,
		Metadata:         gModel.NewMetadata(actor, timezone.Now()),
	}, nil
}

type CustomerResponse struct {
	ID               int64  `json:"customer_id"`
	FullName         string `json:"full_name"`
	Address          string `json:"address"`
	IDType           string `json:"id_type"`
	IDNumber         string `json:"id_number"`
	RegistrationDate string `json:"registration_date"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(model model.Customer) {
	c.ID = model.ID
	c.FullName = model.FullName
	c.Address = model.Address
	c.IDType = model.IDType
	c.IDNumber = model.IDNumber
	c.RegistrationDate = model.RegistrationDate.Format(constant.DateOnly)
	c.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (c *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	c.TotalData = totalData
	c.TotalPage = shared.CalculateTotalPage(totalData, limit)

	c.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		c.Customers[i].FromModel(mod)
	}
}

// CustomerFormResponse carries the defaults of the add form.
type CustomerFormResponse struct {
	RegistrationDate string `json:"registration_date"`
}
