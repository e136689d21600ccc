package dto

import (
	accountModel "ehotels/internal/domains/account/model"
	"ehotels/internal/domains/employee/model"
	hotelDto "ehotels/internal/domains/hotel/model/dto"
	"ehotels/shared"
	"ehotels/shared/constant"
	gDto "ehotels/shared/dto"
	gModel "ehotels/shared/model"
	"ehotels/shared/timezone"
)

// EmployeeAddRequest is the body of the add form. Username and password are
// optional but must be sent together; they create a login for the employee.
type EmployeeAddRequest struct {
	Name     string `form:"name"     json:"name"     validate:"required,max=100"`
	Addr     string `form:"addr"     json:"addr"     validate:"max=255"`
	Pos      string `form:"pos"      json:"pos"      validate:"required,max=50"`
	SSN      string `form:"ssn"      json:"ssn"      validate:"required,max=20"`
	HotelID  int64  `form:"hid"      json:"hid"      validate:"required,gt=0"`
	Username string `form:"username" json:"username" validate:"required_with=Password,omitempty,min=3,max=64"`
	Password string `form:"password" json:"password" validate:"required_with=Username,omitempty,min=8,max=72"`
}

func (e *EmployeeAddRequest) HasAccount() bool {
	return e.Username != constant.Empty
}

func (e *EmployeeAddRequest) ToModel(actor string) model.Employee {
	return model.Employee{
		FullName: e.Name,
		Address:  e.Addr,
		Position: e.Pos,
		SSN:      e.SSN,
		HotelID:  e.HotelID,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

func (e *EmployeeAddRequest) ToAccountModel(employeeID int64, hashedPassword, actor string) accountModel.Account {
	return accountModel.Account{
		Username: e.Username,
		Password: hashedPassword,
		UserType: constant.UserTypeEmployee,
		UserID:   employeeID,
		Active:   true,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

// EmployeeEditRequest is the body of the edit form.
type EmployeeEditRequest struct {
	FullName string `form:"fullname" json:"fullname" validate:"required,max=100"`
	Address  string `form:"address"  json:"address"  validate:"max=255"`
	Position string `form:"position" json:"position" validate:"required,max=50"`
	SSN      string `form:"ssn"      json:"ssn"      validate:"required,max=20"`
	HotelID  int64  `form:"hotel_id" json:"hotel_id" validate:"required,gt=0"`
}

func (e *EmployeeEditRequest) ToModel(actor string) model.Employee {
	return model.Employee{
		FullName: e.FullName,
		Address:  e.Address,
		Position: e.Position,
		SSN:      e.SSN,
		HotelID:  e.HotelID,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

type EmployeeResponse struct {
	ID        int64  `json:"employee_id"`
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
	Position  string `json:"position"`
	SSN       string `json:"ssn"`
	HotelID   int64  `json:"hotel_id"`
	HotelName string `json:"hotel_name"`
	gDto.Metadata
}

func (e *EmployeeResponse) FromModel(model model.Employee) {
	e.ID = model.ID
	e.FullName = model.FullName
	e.Address = model.Address
	e.Position = model.Position
	e.SSN = model.SSN
	e.HotelID = model.HotelID
	e.HotelName = model.HotelName
	e.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (e *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	e.TotalData = totalData
	e.TotalPage = shared.CalculateTotalPage(totalData, limit)

	e.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		e.Employees[i].FromModel(mod)
	}
}

type EmployeeFormResponse struct {
	Hotels []hotelDto.HotelOption `json:"hotels"`
}
