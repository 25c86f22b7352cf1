package models

import "github.com/shopspring/decimal"

// Transaction is the persisted form of a sale record.
type Transaction struct {
	ID          string          `json:"id"`          // Primary Key (UUID)
	Position    int             `json:"position"`    // Index in the seed feed
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PriceText   string          `json:"priceText"`   // Textual price used by search
	Category    string          `json:"category"`
	Sold        bool            `json:"sold"`
	DateOfSale  string          `json:"dateOfSale"`  // Verbatim feed value
	SaleMonth   int             `json:"saleMonth"`   // 1..12, 0 when unknown
	Image       string          `json:"image"`
}
