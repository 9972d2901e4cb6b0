package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmdatafocus/books_gateway/utils"
	"github.com/shopspring/decimal"
)

type GstRates struct {
	CgstPercent decimal.Decimal `json:"cgst_percent"`
	SgstPercent decimal.Decimal `json:"sgst_percent"`
	IgstPercent decimal.Decimal `json:"igst_percent"`
}

// LineItem is one goods/services row on a purchase or sales voucher.
// ItemId 0 means "not selected"; the item catalog itself lives upstream.
type LineItem struct {
	ItemId   int             `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
	Gst      GstRates        `json:"gst"`
}

// Derived amounts are computed on demand, never stored.

func (item LineItem) BaseAmount() decimal.Decimal {
	return utils.CalculateBaseAmount(item.Quantity, item.Rate)
}

func (item LineItem) TaxBreakdown() utils.GstBreakdown {
	return utils.CalculateGstBreakdown(item.BaseAmount(), item.Gst.CgstPercent, item.Gst.SgstPercent, item.Gst.IgstPercent)
}

func (item LineItem) TaxAmount() decimal.Decimal {
	return item.TaxBreakdown().Total()
}

func (item LineItem) LineTotal() decimal.Decimal {
	return item.BaseAmount().Add(item.TaxAmount())
}

// LedgerEntry is one debit or credit posting. The counter entry is bound
// to the voucher's main account; its amount is derived from the items
// aggregate and is never edited directly.
type LedgerEntry struct {
	LedgerId  int             `json:"ledger_id"`
	EntryType EntryType       `json:"entry_type"`
	Amount    decimal.Decimal `json:"amount"`
	IsCounter bool            `json:"is_counter"`
}

type VoucherTotals struct {
	Base       decimal.Decimal    `json:"base"`
	Tax        utils.GstBreakdown `json:"tax"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
}

// VoucherDraft is the root entity of the voucher entry form. It owns its
// Items and Entries exclusively; item/ledger ids are weak references into
// upstream catalogs.
type VoucherDraft struct {
	ID            string            `json:"id"`
	Owner         string            `json:"-"`
	Type          VoucherType       `json:"type"`
	State         DraftState        `json:"state"`
	VoucherNumber string            `json:"voucher_number"`
	Date          time.Time         `json:"date"`
	Narration     string            `json:"narration"`
	Items         []LineItem        `json:"items,omitempty"`
	Entries       []LedgerEntry     `json:"entries"`
	FieldErrors   map[string]string `json:"field_errors,omitempty"`
	LastError     string            `json:"last_error,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// counterEntryType is the posting side of the voucher's main account:
// a purchase credits the supplier, a sale debits the customer, a payment
// credits cash/bank, a receipt debits cash/bank.
func counterEntryType(voucherType VoucherType) EntryType {
	switch voucherType {
	case VoucherTypePurchase, VoucherTypePayment:
		return EntryTypeCredit
	default:
		return EntryTypeDebit
	}
}

func oppositeEntryType(t EntryType) EntryType {
	if t == EntryTypeDebit {
		return EntryTypeCredit
	}
	return EntryTypeDebit
}

// NewVoucherDraft creates the Empty draft: one blank item row for
// purchase/sales, one counter entry plus one blank particular entry.
func NewVoucherDraft(owner string, voucherType VoucherType) *VoucherDraft {
	now := time.Now().UTC()
	counterType := counterEntryType(voucherType)
	draft := &VoucherDraft{
		ID:    uuid.NewString(),
		Owner: owner,
		Type:  voucherType,
		State: DraftStateEmpty,
		Date:  now,
		Entries: []LedgerEntry{
			{EntryType: counterType, IsCounter: true},
			{EntryType: oppositeEntryType(counterType)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if voucherType.HasItems() {
		draft.Items = []LineItem{{}}
	}
	return draft
}

// Totals aggregates the item rows. Entries-only vouchers have no items,
// so their totals stay zero and balancing works off the entries directly.
func (draft *VoucherDraft) Totals() VoucherTotals {
	totals := VoucherTotals{}
	for _, item := range draft.Items {
		totals.Base = totals.Base.Add(item.BaseAmount())
		totals.Tax = totals.Tax.Add(item.TaxBreakdown())
	}
	totals.GrandTotal = totals.Base.Add(totals.Tax.Total())
	return totals
}

// Recompute is the second phase of every mutation: re-derive the items
// aggregate and push it into the counter entry, then re-validate. Running
// it synchronously inside the same store transaction guarantees the
// balancer always reads post-mutation state.
func (draft *VoucherDraft) Recompute() {
	if draft.Type.HasItems() {
		SyncCounterEntry(draft.Entries, draft.Totals().GrandTotal)
	} else {
		// Entries-only vouchers: the counter mirrors the particulars, so
		// debits and credits meet at the header account.
		total := decimal.Zero
		for _, entry := range draft.Entries {
			if !entry.IsCounter {
				total = total.Add(entry.Amount)
			}
		}
		SyncCounterEntry(draft.Entries, total)
	}
	draft.revalidate()
	draft.UpdatedAt = time.Now().UTC()
}

// revalidate records per-field errors and settles Editing into
// Valid/Invalid. Submit-phase states are left alone.
func (draft *VoucherDraft) revalidate() {
	fieldErrors := make(map[string]string)

	if draft.VoucherNumber == "" {
		fieldErrors["voucher_number"] = "required"
	}
	if draft.Date.IsZero() {
		fieldErrors["date"] = "required"
	}

	if draft.Type.HasItems() {
		for i, item := range draft.Items {
			if item.ItemId == 0 {
				fieldErrors[fmt.Sprintf("items[%d].item_id", i)] = "required"
			}
			if item.Quantity.IsZero() {
				fieldErrors[fmt.Sprintf("items[%d].quantity", i)] = "required"
			}
			if item.Rate.IsZero() {
				fieldErrors[fmt.Sprintf("items[%d].rate", i)] = "required"
			}
		}
	}
	for i, entry := range draft.Entries {
		if entry.LedgerId == 0 {
			fieldErrors[fmt.Sprintf("entries[%d].ledger_id", i)] = "required"
		}
		if !entry.IsCounter && !draft.Type.HasItems() && entry.Amount.IsZero() {
			fieldErrors[fmt.Sprintf("entries[%d].amount", i)] = "required"
		}
	}

	draft.FieldErrors = fieldErrors
	switch draft.State {
	case DraftStateSubmitting, DraftStateSubmitted:
		return
	}
	if len(fieldErrors) == 0 {
		draft.State = DraftStateValid
	} else {
		draft.State = DraftStateInvalid
	}
}

// clone returns a snapshot safe to hand outside the store's lock.
func (draft *VoucherDraft) clone() *VoucherDraft {
	copied := *draft
	copied.Items = append([]LineItem(nil), draft.Items...)
	copied.Entries = append([]LedgerEntry(nil), draft.Entries...)
	if draft.FieldErrors != nil {
		copied.FieldErrors = make(map[string]string, len(draft.FieldErrors))
		for k, v := range draft.FieldErrors {
			copied.FieldErrors[k] = v
		}
	}
	return &copied
}

// reset clears the draft back to Empty after a successful submit, keeping
// its identity so the open form can continue on the same draft id.
func (draft *VoucherDraft) reset() {
	fresh := NewVoucherDraft(draft.Owner, draft.Type)
	fresh.ID = draft.ID
	fresh.CreatedAt = draft.CreatedAt
	*draft = *fresh
}
