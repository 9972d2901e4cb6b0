package models

import (
	"errors"

	"github.com/mmdatafocus/books_gateway/utils"
)

// Generic add/remove/edit behavior for the repeatable rows of a voucher
// form. The minimum-one-row guard lives here, at the action level; the
// slices themselves permit emptying.

var (
	ErrorRowNotFound     = errors.New("row not found")
	ErrorLastRow         = errors.New("cannot remove the last remaining row")
	ErrorCounterEntry    = errors.New("counter entry is managed by the voucher")
	ErrorUnknownRowField = errors.New("unknown row field")
)

func (draft *VoucherDraft) AddItemRow(defaults LineItem) error {
	if !draft.Type.HasItems() {
		return errors.New(string(draft.Type) + " voucher has no item rows")
	}
	draft.Items = append(draft.Items, defaults)
	return nil
}

// RemoveItemRow is a no-op error when exactly one row remains.
func (draft *VoucherDraft) RemoveItemRow(index int) error {
	if index < 0 || index >= len(draft.Items) {
		return ErrorRowNotFound
	}
	if len(draft.Items) <= 1 {
		return ErrorLastRow
	}
	draft.Items = append(draft.Items[:index], draft.Items[index+1:]...)
	return nil
}

// EditItemField coerces rawValue by field type and replaces the row.
// Numeric coercion is silent: an unparsable value becomes zero.
func (draft *VoucherDraft) EditItemField(index int, field string, rawValue string) error {
	if index < 0 || index >= len(draft.Items) {
		return ErrorRowNotFound
	}
	item := draft.Items[index]
	switch field {
	case "item_id":
		item.ItemId = utils.CoerceInt(rawValue)
	case "quantity":
		item.Quantity = utils.CoerceDecimal(rawValue)
	case "rate":
		item.Rate = utils.CoerceDecimal(rawValue)
	case "cgst_percent":
		item.Gst.CgstPercent = utils.CoerceDecimal(rawValue)
	case "sgst_percent":
		item.Gst.SgstPercent = utils.CoerceDecimal(rawValue)
	case "igst_percent":
		item.Gst.IgstPercent = utils.CoerceDecimal(rawValue)
	default:
		return ErrorUnknownRowField
	}
	draft.Items[index] = item
	return nil
}

func (draft *VoucherDraft) AddEntryRow(defaults LedgerEntry) error {
	// The privileged counter entry exists from creation; added rows are
	// always ordinary particulars.
	defaults.IsCounter = false
	if defaults.EntryType == "" {
		defaults.EntryType = oppositeEntryType(counterEntryType(draft.Type))
	}
	draft.Entries = append(draft.Entries, defaults)
	return nil
}

func (draft *VoucherDraft) RemoveEntryRow(index int) error {
	if index < 0 || index >= len(draft.Entries) {
		return ErrorRowNotFound
	}
	if draft.Entries[index].IsCounter {
		return ErrorCounterEntry
	}
	particulars := 0
	for _, entry := range draft.Entries {
		if !entry.IsCounter {
			particulars++
		}
	}
	if particulars <= 1 {
		return ErrorLastRow
	}
	draft.Entries = append(draft.Entries[:index], draft.Entries[index+1:]...)
	return nil
}

func (draft *VoucherDraft) EditEntryField(index int, field string, rawValue string) error {
	if index < 0 || index >= len(draft.Entries) {
		return ErrorRowNotFound
	}
	entry := draft.Entries[index]
	switch field {
	case "ledger_id":
		entry.LedgerId = utils.CoerceInt(rawValue)
	case "entry_type":
		if entry.IsCounter {
			return ErrorCounterEntry
		}
		entryType, err := ParseEntryType(rawValue)
		if err != nil {
			return err
		}
		entry.EntryType = entryType
	case "amount":
		// The counter amount is derived from the items aggregate.
		if entry.IsCounter {
			return ErrorCounterEntry
		}
		entry.Amount = utils.CoerceDecimal(rawValue)
	default:
		return ErrorUnknownRowField
	}
	draft.Entries[index] = entry
	return nil
}
