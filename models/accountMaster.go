package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountMaster is one ledger in the upstream chart of accounts. Voucher
// entries reference it by id only; the alias is what selection dropdowns
// display.
type AccountMaster struct {
	ID             int             `json:"id"`
	Name           string          `json:"name" binding:"required"`
	Alias          string          `json:"alias"`
	GroupId        int             `json:"group_id" binding:"required"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	BalanceType    EntryType       `json:"balance_type"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type NewAccountMaster struct {
	Name           string          `json:"name" binding:"required"`
	Alias          string          `json:"alias"`
	GroupId        int             `json:"group_id" binding:"required"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	BalanceType    EntryType       `json:"balance_type"`
}

func (input *NewAccountMaster) Validate() map[string]string {
	fieldErrors := make(map[string]string)
	if input.BalanceType != "" && input.BalanceType != EntryTypeDebit && input.BalanceType != EntryTypeCredit {
		fieldErrors["balance_type"] = "must be Debit or Credit"
	}
	return fieldErrors
}
