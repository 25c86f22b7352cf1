package seedfeed

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/sales_dashboard/internal/apperrors"
	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"resty.dev/v3"
)

// feedItem is one element of the upstream JSON array. The upstream id is ignored.
type feedItem struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  string          `json:"dateOfSale"`
	Image       string          `json:"image"`
}

// Client downloads the seed dataset over HTTP.
type Client struct {
	http *resty.Client
	url  string
}

var _ portsrepo.SeedSource = (*Client)(nil)

// NewClient creates a feed client for url with the given request timeout.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetTimeout(timeout),
		url:  url,
	}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchTransactions GETs the feed and decodes it. Non-2xx responses and undecodable bodies fail.
func (c *Client) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var items []feedItem
	resp, err := c.http.R().
		SetContext(ctx).
		SetForceResponseContentType("application/json").
		SetResult(&items).
		Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching seed feed: %v", apperrors.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: seed feed returned status %d", apperrors.ErrUpstream, resp.StatusCode())
	}

	transactions := make([]domain.Transaction, len(items))
	for i, item := range items {
		transactions[i] = domain.Transaction{
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price,
			Category:    item.Category,
			Sold:        item.Sold,
			DateOfSale:  item.DateOfSale,
			Image:       item.Image,
		}
	}
	return transactions, nil
}
