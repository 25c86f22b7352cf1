package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/sales_dashboard/internal/dto"
	"resty.dev/v3"
)

// apiError is the body the backend returns on failure.
type apiError struct {
	Error string `json:"error"`
}

// Client calls the sales dashboard REST API.
type Client struct {
	http *resty.Client
}

// NewClient creates an API client rooted at baseURL (for example http://localhost:5000/api).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, result any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		SetError(&apiError{}).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*apiError); ok && e.Error != "" {
			return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode(), e.Error)
		}
		return fmt.Errorf("GET %s: status %d", path, resp.StatusCode())
	}
	return nil
}

// Transactions fetches one page of the transaction list.
func (c *Client) Transactions(ctx context.Context, month, search string, page, perPage int) (*dto.ListTransactionsResponse, error) {
	var out dto.ListTransactionsResponse
	err := c.get(ctx, "/transactions", map[string]string{
		"month":   month,
		"search":  search,
		"page":    strconv.Itoa(page),
		"perPage": strconv.Itoa(perPage),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Statistics fetches the monthly statistics.
func (c *Client) Statistics(ctx context.Context, month string) (*dto.StatisticsResponse, error) {
	var out dto.StatisticsResponse
	if err := c.get(ctx, "/statistics", map[string]string{"month": month}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PriceRanges fetches the monthly price histogram.
func (c *Client) PriceRanges(ctx context.Context, month string) ([]dto.PriceRangeResponse, error) {
	var out []dto.PriceRangeResponse
	if err := c.get(ctx, "/price-range", map[string]string{"month": month}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Categories fetches the monthly category breakdown.
func (c *Client) Categories(ctx context.Context, month string) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := c.get(ctx, "/categories", map[string]string{"month": month}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
