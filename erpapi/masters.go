package erpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mmdatafocus/books_gateway/models"
)

// Master-data CRUD is a pass-through: the gateway validates input and the
// upstream API owns the records. Every endpoint wraps its payload in a
// single `data` envelope.

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

func listResource[T any](c *Client, ctx context.Context, path string) ([]T, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[dataEnvelope[[]T]](path, body)
	if err != nil {
		return nil, err
	}
	return parsed.Data, nil
}

func createResource[T any](c *Client, ctx context.Context, path string, input interface{}) (*T, error) {
	body, err := c.do(ctx, http.MethodPost, path, nil, input)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[dataEnvelope[T]](path, body)
	if err != nil {
		return nil, err
	}
	return &parsed.Data, nil
}

func updateResource[T any](c *Client, ctx context.Context, path string, id int, input interface{}) (*T, error) {
	fullPath := fmt.Sprintf("%s/%d", path, id)
	body, err := c.do(ctx, http.MethodPut, fullPath, nil, input)
	if err != nil {
		return nil, err
	}
	parsed, err := decodeResponse[dataEnvelope[T]](fullPath, body)
	if err != nil {
		return nil, err
	}
	return &parsed.Data, nil
}

func deleteResource(c *Client, ctx context.Context, path string, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil)
	return err
}

func (c *Client) ListAccountCategories(ctx context.Context) ([]models.AccountCategory, error) {
	return listResource[models.AccountCategory](c, ctx, "/account-categories")
}

func (c *Client) CreateAccountCategory(ctx context.Context, input *models.NewAccountCategory) (*models.AccountCategory, error) {
	return createResource[models.AccountCategory](c, ctx, "/account-categories", input)
}

func (c *Client) UpdateAccountCategory(ctx context.Context, id int, input *models.NewAccountCategory) (*models.AccountCategory, error) {
	return updateResource[models.AccountCategory](c, ctx, "/account-categories", id, input)
}

func (c *Client) DeleteAccountCategory(ctx context.Context, id int) error {
	return deleteResource(c, ctx, "/account-categories", id)
}

func (c *Client) ListAccountGroups(ctx context.Context) ([]models.AccountGroup, error) {
	return listResource[models.AccountGroup](c, ctx, "/account-groups")
}

func (c *Client) CreateAccountGroup(ctx context.Context, input *models.NewAccountGroup) (*models.AccountGroup, error) {
	return createResource[models.AccountGroup](c, ctx, "/account-groups", input)
}

func (c *Client) UpdateAccountGroup(ctx context.Context, id int, input *models.NewAccountGroup) (*models.AccountGroup, error) {
	return updateResource[models.AccountGroup](c, ctx, "/account-groups", id, input)
}

func (c *Client) DeleteAccountGroup(ctx context.Context, id int) error {
	return deleteResource(c, ctx, "/account-groups", id)
}

func (c *Client) ListAccountMasters(ctx context.Context) ([]models.AccountMaster, error) {
	return listResource[models.AccountMaster](c, ctx, "/account-masters")
}

func (c *Client) CreateAccountMaster(ctx context.Context, input *models.NewAccountMaster) (*models.AccountMaster, error) {
	return createResource[models.AccountMaster](c, ctx, "/account-masters", input)
}

func (c *Client) UpdateAccountMaster(ctx context.Context, id int, input *models.NewAccountMaster) (*models.AccountMaster, error) {
	return updateResource[models.AccountMaster](c, ctx, "/account-masters", id, input)
}

func (c *Client) DeleteAccountMaster(ctx context.Context, id int) error {
	return deleteResource(c, ctx, "/account-masters", id)
}

func (c *Client) ListVatMasters(ctx context.Context) ([]models.VatMaster, error) {
	return listResource[models.VatMaster](c, ctx, "/vat-masters")
}

func (c *Client) CreateVatMaster(ctx context.Context, input *models.NewVatMaster) (*models.VatMaster, error) {
	return createResource[models.VatMaster](c, ctx, "/vat-masters", input)
}

func (c *Client) UpdateVatMaster(ctx context.Context, id int, input *models.NewVatMaster) (*models.VatMaster, error) {
	return updateResource[models.VatMaster](c, ctx, "/vat-masters", id, input)
}

func (c *Client) DeleteVatMaster(ctx context.Context, id int) error {
	return deleteResource(c, ctx, "/vat-masters", id)
}

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return listResource[models.Customer](c, ctx, "/customers")
}

func (c *Client) CreateCustomer(ctx context.Context, input *models.NewCustomer) (*models.Customer, error) {
	return createResource[models.Customer](c, ctx, "/customers", input)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, input *models.NewCustomer) (*models.Customer, error) {
	return updateResource[models.Customer](c, ctx, "/customers", id, input)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return deleteResource(c, ctx, "/customers", id)
}
