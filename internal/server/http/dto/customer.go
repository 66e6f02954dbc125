package dto

import (
	"fmt"
	"time"

	"github.com/polkiloo/customersystem/internal/domain/model"
)

// CustomerRequest is the full customer field set used by both create and update.
type CustomerRequest struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required"`
	CompanyName        string `json:"company_name"`
	Phone              string `json:"phone"`
	ProfilePictureURL  string `json:"profile_picture_url"`
	ContractStartDate  string `json:"contract_start_date" binding:"required,calendardate"`
	ContractExpireDate string `json:"contract_expire_date" binding:"required,calendardate"`
}

// ToModel converts the request into a domain customer.
func (r CustomerRequest) ToModel() (model.Customer, error) {
	start, err := ParseDate(r.ContractStartDate)
	if err != nil {
		return model.Customer{}, fmt.Errorf("contract_start_date: %w", err)
	}
	expire, err := ParseDate(r.ContractExpireDate)
	if err != nil {
		return model.Customer{}, fmt.Errorf("contract_expire_date: %w", err)
	}

	return model.Customer{
		Name:               r.Name,
		Email:              r.Email,
		CompanyName:        r.CompanyName,
		Phone:              r.Phone,
		ProfilePictureURL:  r.ProfilePictureURL,
		ContractStartDate:  start,
		ContractExpireDate: expire,
	}, nil
}

// CustomerResponse is the JSON view of a customer.
type CustomerResponse struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	CompanyName        string    `json:"company_name"`
	Phone              string    `json:"phone"`
	ProfilePictureURL  string    `json:"profile_picture_url"`
	ContractStartDate  string    `json:"contract_start_date"`
	ContractExpireDate string    `json:"contract_expire_date"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewCustomerListResponse converts customers, always returning a non-nil slice.
func NewCustomerListResponse(customers []model.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, CustomerResponse{
			ID:                 c.ID,
			Name:               c.Name,
			Email:              c.Email,
			CompanyName:        c.CompanyName,
			Phone:              c.Phone,
			ProfilePictureURL:  c.ProfilePictureURL,
			ContractStartDate:  FormatDate(c.ContractStartDate),
			ContractExpireDate: FormatDate(c.ContractExpireDate),
			CreatedAt:          c.CreatedAt,
		})
	}
	return resp
}
