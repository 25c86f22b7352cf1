package dto

import (
	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/SscSPs/sales_dashboard/internal/utils/pagination"
)

// ListTransactionsQuery holds the raw query parameters of the list endpoint.
// page and perPage stay strings so malformed values are coerced instead of rejected.
type ListTransactionsQuery struct {
	Search  string `form:"search"`
	Page    string `form:"page"`
	PerPage string `form:"perPage"`
	Month   string `form:"month"`
}

// ToFilter coerces the query into a filter and returns the effective page and perPage.
func (q ListTransactionsQuery) ToFilter() (domain.TransactionFilter, int, int) {
	page, perPage := pagination.Normalize(q.Page, q.PerPage)
	return domain.TransactionFilter{
		Month:  domain.ParseMonthFilter(q.Month),
		Search: q.Search,
		Offset: pagination.Offset(page, perPage),
		Limit:  perPage,
	}, page, perPage
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Sold        bool    `json:"sold"`
	DateOfSale  string  `json:"dateOfSale"`
	Image       string  `json:"image,omitempty"`
}

// ListTransactionsResponse is one page of the list endpoint.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PerPage      int                   `json:"perPage"`
}

// StatisticsResponse summarises the sold and unsold records of a month.
type StatisticsResponse struct {
	TotalSold   int64   `json:"totalSold"`
	TotalUnsold int64   `json:"totalUnsold"`
	TotalSales  float64 `json:"totalSales"`
}

// PriceRangeResponse is one histogram bucket.
type PriceRangeResponse struct {
	Range string `json:"range"`
	Count int64  `json:"count"`
}

// CategoryResponse is the number of records in one category.
type CategoryResponse struct {
	Category string `json:"_id"`
	Count    int64  `json:"count"`
}

// InitializeResponse is returned once the store has been reseeded.
type InitializeResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Price:       t.Price.InexactFloat64(),
		Category:    t.Category,
		Sold:        t.Sold,
		DateOfSale:  t.DateOfSale,
		Image:       t.Image,
	}
}

// ToListTransactionsResponse converts a page of transactions to the list response
func ToListTransactionsResponse(p *domain.TransactionPage, page, perPage int) ListTransactionsResponse {
	res := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(p.Transactions)),
		Total:        p.Total,
		Page:         page,
		PerPage:      perPage,
	}
	for i, t := range p.Transactions {
		res.Transactions[i] = ToTransactionResponse(t)
	}
	return res
}

// ToStatisticsResponse converts domain statistics to the response DTO
func ToStatisticsResponse(s *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalSold:   s.TotalSold,
		TotalUnsold: s.TotalUnsold,
		TotalSales:  s.TotalSales.InexactFloat64(),
	}
}

// ToPriceRangeResponses converts the histogram to response DTOs, keeping bucket order
func ToPriceRangeResponses(ranges []domain.PriceRangeCount) []PriceRangeResponse {
	res := make([]PriceRangeResponse, len(ranges))
	for i, r := range ranges {
		res[i] = PriceRangeResponse{Range: r.Bucket.Label(), Count: r.Count}
	}
	return res
}

// ToCategoryResponses converts the category breakdown to response DTOs
func ToCategoryResponses(categories []domain.CategoryCount) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{Category: c.Category, Count: c.Count}
	}
	return res
}
