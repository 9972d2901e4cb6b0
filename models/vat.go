package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type VatMaster struct {
	ID        int             `json:"id"`
	Name      string          `json:"name" binding:"required"`
	Rate      decimal.Decimal `json:"rate"`
	IsActive  *bool           `json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type NewVatMaster struct {
	Name string          `json:"name" binding:"required"`
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

func (input *NewVatMaster) Validate() map[string]string {
	fieldErrors := make(map[string]string)
	if input.Rate.IsNegative() {
		fieldErrors["rate"] = "must not be negative"
	}
	return fieldErrors
}
