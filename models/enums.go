package models

import (
	"errors"
	"strconv"
)

type VoucherType string

const (
	VoucherTypePurchase VoucherType = "Purchase"
	VoucherTypeSales    VoucherType = "Sales"
	VoucherTypePayment  VoucherType = "Payment"
	VoucherTypeReceipt  VoucherType = "Receipt"
)

// HasItems reports whether this voucher type carries line items.
// Payment and receipt vouchers are entries-only.
func (t VoucherType) HasItems() bool {
	return t == VoucherTypePurchase || t == VoucherTypeSales
}

func (t VoucherType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *VoucherType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("voucher type must be string")
	}
	switch str {
	case "Purchase":
		*t = VoucherTypePurchase
	case "Sales":
		*t = VoucherTypeSales
	case "Payment":
		*t = VoucherTypePayment
	case "Receipt":
		*t = VoucherTypeReceipt
	default:
		return errors.New("invalid voucher type")
	}
	return nil
}

// EntryType is the single debit/credit representation used everywhere.
type EntryType string

const (
	EntryTypeDebit  EntryType = "Debit"
	EntryTypeCredit EntryType = "Credit"
)

func (t EntryType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *EntryType) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("entry type must be string")
	}
	switch str {
	case "Debit":
		*t = EntryTypeDebit
	case "Credit":
		*t = EntryTypeCredit
	default:
		return errors.New("invalid entry type")
	}
	return nil
}

func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "Debit":
		return EntryTypeDebit, nil
	case "Credit":
		return EntryTypeCredit, nil
	default:
		return "", errors.New("invalid entry type")
	}
}

type DraftState string

const (
	DraftStateEmpty        DraftState = "Empty"
	DraftStateEditing      DraftState = "Editing"
	DraftStateValid        DraftState = "Valid"
	DraftStateInvalid      DraftState = "Invalid"
	DraftStateSubmitting   DraftState = "Submitting"
	DraftStateSubmitted    DraftState = "Submitted"
	DraftStateSubmitFailed DraftState = "SubmitFailed"
)

func (s DraftState) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

func (s *DraftState) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("draft state must be string")
	}
	switch str {
	case "Empty", "Editing", "Valid", "Invalid", "Submitting", "Submitted", "SubmitFailed":
		*s = DraftState(str)
	default:
		return errors.New("invalid draft state")
	}
	return nil
}
