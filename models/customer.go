package models

import (
	"time"

	"github.com/mmdatafocus/books_gateway/utils"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID             int             `json:"id"`
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	Gstin          string          `json:"gstin"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type NewCustomer struct {
	Name           string          `json:"name" binding:"required"`
	Email          string          `json:"email"`
	Mobile         string          `json:"mobile"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	Pincode        string          `json:"pincode"`
	Gstin          string          `json:"gstin"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

func (input *NewCustomer) Validate() map[string]string {
	fieldErrors := make(map[string]string)
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		fieldErrors["email"] = "invalid email"
	}
	if input.Mobile != "" {
		if err := utils.ValidatePhoneNumber(input.Mobile, utils.CountryCode); err != nil {
			fieldErrors["mobile"] = "invalid mobile number"
		}
	}
	return fieldErrors
}
