package erpapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/mmdatafocus/books_gateway/models"
	"github.com/shopspring/decimal"
)

const voucherDateLayout = "2006-01-02"

type voucherItemPayload struct {
	ItemId      int             `json:"item_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	CgstPercent decimal.Decimal `json:"cgst_percent"`
	SgstPercent decimal.Decimal `json:"sgst_percent"`
	IgstPercent decimal.Decimal `json:"igst_percent"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type voucherEntryPayload struct {
	LedgerId  int              `json:"ledger_id"`
	EntryType models.EntryType `json:"entry_type"`
	Amount    decimal.Decimal  `json:"amount"`
	IsCounter bool             `json:"is_counter"`
}

type voucherPayload struct {
	Type          models.VoucherType    `json:"type"`
	VoucherNumber string                `json:"voucher_number"`
	Date          string                `json:"date"`
	Narration     string                `json:"narration"`
	Items         []voucherItemPayload  `json:"items,omitempty"`
	Entries       []voucherEntryPayload `json:"entries"`
	GrandTotal    decimal.Decimal       `json:"grand_total"`
}

func buildVoucherPayload(draft *models.VoucherDraft) voucherPayload {
	payload := voucherPayload{
		Type:          draft.Type,
		VoucherNumber: draft.VoucherNumber,
		Date:          draft.Date.Format(voucherDateLayout),
		Narration:     draft.Narration,
		GrandTotal:    draft.Totals().GrandTotal,
	}
	for _, item := range draft.Items {
		payload.Items = append(payload.Items, voucherItemPayload{
			ItemId:      item.ItemId,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			CgstPercent: item.Gst.CgstPercent,
			SgstPercent: item.Gst.SgstPercent,
			IgstPercent: item.Gst.IgstPercent,
			TaxAmount:   item.TaxAmount(),
			LineTotal:   item.LineTotal(),
		})
	}
	for _, entry := range draft.Entries {
		payload.Entries = append(payload.Entries, voucherEntryPayload{
			LedgerId:  entry.LedgerId,
			EntryType: entry.EntryType,
			Amount:    entry.Amount,
			IsCounter: entry.IsCounter,
		})
	}
	return payload
}

// SubmitVoucher posts a finished draft. Only the success/failure signal
// matters to the caller's state machine; the acknowledgement body is not
// inspected beyond the status code.
func (c *Client) SubmitVoucher(ctx context.Context, draft *models.VoucherDraft) error {
	_, err := c.do(ctx, http.MethodPost, "/vouchers", nil, buildVoucherPayload(draft))
	return err
}

// VoucherRecord is a submitted voucher as the upstream reports it,
// consumed by the day-book export.
type VoucherRecord struct {
	ID            int                `json:"id"`
	Type          models.VoucherType `json:"type"`
	VoucherNumber string             `json:"voucher_number"`
	Date          string             `json:"date"`
	Narration     string             `json:"narration"`
	GrandTotal    decimal.Decimal    `json:"grand_total"`
}

type vouchersResponse struct {
	Data []VoucherRecord `json:"data"`
}

func (c *Client) ListVouchers(ctx context.Context, fromDate time.Time, toDate time.Time) ([]VoucherRecord, error) {
	params := url.Values{}
	params.Set("from_date", fromDate.Format(voucherDateLayout))
	params.Set("to_date", toDate.Format(voucherDateLayout))

	body, err := c.do(ctx, http.MethodGet, "/vouchers", params, nil)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[vouchersResponse]("/vouchers", body)
	if err != nil {
		return nil, err
	}
	return parsed.Data, nil
}
