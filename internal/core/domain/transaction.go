package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single product sale record loaded from the seed feed.
type Transaction struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  string          `json:"dateOfSale"`
	Image       string          `json:"image,omitempty"`

	// SaleMonth is derived from DateOfSale at seed time; 0 when the date could not be read.
	SaleMonth int `json:"-"`
	// Position is the index of the record in the seed feed and drives list ordering.
	Position int `json:"-"`
}

// PriceText is the textual form of the price that search terms are matched against.
func (t Transaction) PriceText() string {
	return t.Price.String()
}

// TransactionFilter selects the records returned by the list operation.
type TransactionFilter struct {
	Month  MonthFilter
	Search string
	Offset int
	Limit  int
}

// Matches reports whether t satisfies the month and search parts of the filter.
// Offset and Limit are applied by the caller.
func (f TransactionFilter) Matches(t Transaction) bool {
	if !f.Month.Matches(t.DateOfSale, t.SaleMonth) {
		return false
	}
	return MatchesSearch(t, f.Search)
}

// MatchesSearch reports whether the title, description or price text of t contains
// term, ignoring case. An empty term matches everything.
func MatchesSearch(t Transaction, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.PriceText()), needle)
}

// TransactionPage is one window of the list operation plus the total match count.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
}
