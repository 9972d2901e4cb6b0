// Package erpapi is the typed HTTP client for the upstream ERP REST API,
// which owns all persistence and business records. Each endpoint has one
// explicit response schema; an unexpected body is a decode error, never a
// reason to probe alternative shapes.
package erpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmdatafocus/books_gateway/config"
)

type Client struct {
	baseURL   string
	apiKey    string
	apiKeyHdr string
	http      *http.Client
}

func NewClient() (*Client, error) {
	cfg := config.GetConfig()
	baseURL := strings.TrimSpace(cfg.ErpApiBaseURL)
	if baseURL == "" {
		return nil, errors.New("ERP_API_BASE_URL is empty")
	}
	if strings.TrimSpace(cfg.ErpApiKey) == "" {
		return nil, errors.New("erp api key is empty")
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    cfg.ErpApiKey,
		apiKeyHdr: cfg.ErpApiKeyHdr,
		http:      &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// DecodeError marks a response body that did not match the endpoint's
// declared schema.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("erp api decode error for %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (c *Client) do(ctx context.Context, method string, path string, params url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set(c.apiKeyHdr, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("erp api error %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return respBody, nil
}

func decodeResponse[T any](path string, data []byte) (*T, error) {
	var parsed T
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &parsed, nil
}
