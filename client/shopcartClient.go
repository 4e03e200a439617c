// Package client is a typed HTTP client for the shopcart REST API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Kariqs/shopcart-api/models"
	"github.com/go-resty/resty/v2"
)

const basePath = "/api/shopcarts"

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	Detail     string `json:"error"`
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("shopcart api: %d %s: %s", e.StatusCode, e.Message, e.Detail)
	}
	return fmt.Sprintf("shopcart api: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30*time.Second).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json"),
	}
}

// ItemInput is the writable part of an item.
type ItemInput struct {
	ItemID      string `json:"item_id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}

// ItemFilter mirrors the list query parameters; only the first set field is
// honoured by the server.
type ItemFilter struct {
	Price    *int
	ItemID   *string
	Quantity *int
}

func (f ItemFilter) params() map[string]string {
	params := map[string]string{}
	if f.Price != nil {
		params["price"] = strconv.Itoa(*f.Price)
	}
	if f.ItemID != nil {
		params["item_id"] = *f.ItemID
	}
	if f.Quantity != nil {
		params["quantity"] = strconv.Itoa(*f.Quantity)
	}
	return params
}

func (c *Client) do(ctx context.Context, method, path string, body, result any, params map[string]string) error {
	req := c.http.R().SetContext(ctx).SetError(&APIError{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr, ok := resp.Error().(*APIError)
		if !ok || apiErr == nil {
			apiErr = &APIError{Message: http.StatusText(resp.StatusCode())}
		}
		apiErr.StatusCode = resp.StatusCode()
		return apiErr
	}
	return nil
}

func shopcartPath(id uint) string {
	return fmt.Sprintf("%s/%d", basePath, id)
}

func itemPath(shopcartID, id uint) string {
	return fmt.Sprintf("%s/%d/items/%d", basePath, shopcartID, id)
}

func (c *Client) CreateShopcart(ctx context.Context, name string) (*models.Shopcart, error) {
	var shopcart models.Shopcart
	err := c.do(ctx, http.MethodPost, basePath, shopcartBody(name), &shopcart, nil)
	if err != nil {
		return nil, err
	}
	return &shopcart, nil
}

func (c *Client) GetShopcart(ctx context.Context, id uint) (*models.Shopcart, error) {
	var shopcart models.Shopcart
	if err := c.do(ctx, http.MethodGet, shopcartPath(id), nil, &shopcart, nil); err != nil {
		return nil, err
	}
	return &shopcart, nil
}

// ListShopcarts returns every shopcart, or only those named name when it is
// not empty.
func (c *Client) ListShopcarts(ctx context.Context, name string) ([]models.Shopcart, error) {
	var params map[string]string
	if name != "" {
		params = map[string]string{"name": name}
	}
	var shopcarts []models.Shopcart
	if err := c.do(ctx, http.MethodGet, basePath, nil, &shopcarts, params); err != nil {
		return nil, err
	}
	return shopcarts, nil
}

func (c *Client) UpdateShopcart(ctx context.Context, id uint, name string) (*models.Shopcart, error) {
	var shopcart models.Shopcart
	err := c.do(ctx, http.MethodPut, shopcartPath(id), shopcartBody(name), &shopcart, nil)
	if err != nil {
		return nil, err
	}
	return &shopcart, nil
}

func (c *Client) DeleteShopcart(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, shopcartPath(id), nil, nil, nil)
}

func (c *Client) ClearShopcart(ctx context.Context, id uint) (*models.Shopcart, error) {
	var shopcart models.Shopcart
	if err := c.do(ctx, http.MethodPut, shopcartPath(id)+"/clear", nil, &shopcart, nil); err != nil {
		return nil, err
	}
	return &shopcart, nil
}

func (c *Client) TotalPrice(ctx context.Context, id uint) (int, error) {
	var result struct {
		TotalPrice int `json:"total_price"`
	}
	if err := c.do(ctx, http.MethodGet, shopcartPath(id)+"/calculate_total_price", nil, &result, nil); err != nil {
		return 0, err
	}
	return result.TotalPrice, nil
}

func (c *Client) AddItem(ctx context.Context, shopcartID uint, input ItemInput) (*models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPost, shopcartPath(shopcartID)+"/items", itemBody(shopcartID, input), &item, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) ListItems(ctx context.Context, shopcartID uint, filter ItemFilter) ([]models.Item, error) {
	var items []models.Item
	if err := c.do(ctx, http.MethodGet, shopcartPath(shopcartID)+"/items", nil, &items, filter.params()); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) GetItem(ctx context.Context, shopcartID, id uint) (*models.Item, error) {
	var item models.Item
	if err := c.do(ctx, http.MethodGet, itemPath(shopcartID, id), nil, &item, nil); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateItem(ctx context.Context, shopcartID, id uint, input ItemInput) (*models.Item, error) {
	var item models.Item
	err := c.do(ctx, http.MethodPut, itemPath(shopcartID, id), itemBody(shopcartID, input), &item, nil)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(ctx context.Context, shopcartID, id uint) error {
	return c.do(ctx, http.MethodDelete, itemPath(shopcartID, id), nil, nil, nil)
}

func shopcartBody(name string) map[string]any {
	return map[string]any{"name": name, "items": []any{}}
}

func itemBody(shopcartID uint, input ItemInput) map[string]any {
	return map[string]any{
		"shopcart_id": shopcartID,
		"item_id":     input.ItemID,
		"description": input.Description,
		"quantity":    input.Quantity,
		"price":       input.Price,
	}
}
