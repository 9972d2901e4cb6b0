package erpapi

import (
	"context"
	"net/http"
)

// Lookup options populate the selection dropdowns on voucher forms.
// Callers treat a failed lookup as an empty option list; editing is never
// blocked on these.

type LedgerOption struct {
	LedgerId int    `json:"ledger_id"`
	Alias    string `json:"alias"`
}

type ItemOption struct {
	ItemId   int    `json:"item_id"`
	ItemName string `json:"item_name"`
}

type ledgersResponse struct {
	Data []LedgerOption `json:"data"`
}

type itemsResponse struct {
	Data []ItemOption `json:"data"`
}

func (c *Client) FetchLedgers(ctx context.Context) ([]LedgerOption, error) {
	body, err := c.do(ctx, http.MethodGet, "/ledgers", nil, nil)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[ledgersResponse]("/ledgers", body)
	if err != nil {
		return nil, err
	}
	return parsed.Data, nil
}

func (c *Client) FetchItems(ctx context.Context) ([]ItemOption, error) {
	body, err := c.do(ctx, http.MethodGet, "/items", nil, nil)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[itemsResponse]("/items", body)
	if err != nil {
		return nil, err
	}
	return parsed.Data, nil
}
