package domain_test

import (
	"testing"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_PriceText(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		want  string
	}{
		{name: "integer price", price: decimal.NewFromInt(50), want: "50"},
		{name: "fractional price", price: decimal.RequireFromString("329.85"), want: "329.85"},
		{name: "trailing zero dropped", price: decimal.RequireFromString("50.0"), want: "50"},
		{name: "zero", price: decimal.Zero, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Transaction{Price: tt.price}.PriceText())
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	txn := domain.Transaction{
		Title:       "Fjallraven Backpack",
		Description: "Fits 15 Inch Laptops",
		Price:       decimal.RequireFromString("329.85"),
	}

	tests := []struct {
		name string
		term string
		want bool
	}{
		{name: "empty term matches", term: "", want: true},
		{name: "title case-insensitive", term: "backpack", want: true},
		{name: "description substring", term: "laptop", want: true},
		{name: "price substring", term: "29.8", want: true},
		{name: "price whole", term: "329.85", want: true},
		{name: "no match", term: "jacket", want: false},
		{name: "price not a textual match", term: "329.850", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MatchesSearch(txn, tt.term))
		})
	}
}

func TestTransactionFilter_Matches(t *testing.T) {
	march := domain.Transaction{Title: "A", DateOfSale: "March 1 2024", SaleMonth: 3, Price: decimal.NewFromInt(50)}
	isoMarch := domain.Transaction{Title: "B", DateOfSale: "2022-03-27T20:29:54+05:30", SaleMonth: 3, Price: decimal.NewFromInt(150)}
	april := domain.Transaction{Title: "C", DateOfSale: "April 2 2024", SaleMonth: 4, Price: decimal.NewFromInt(75)}

	filter := domain.TransactionFilter{Month: domain.ParseMonthFilter("March")}
	assert.True(t, filter.Matches(march))
	assert.True(t, filter.Matches(isoMarch), "parsed month should match ISO dates")
	assert.False(t, filter.Matches(april))

	filter.Search = "a"
	assert.True(t, filter.Matches(march))
	assert.False(t, filter.Matches(isoMarch))

	all := domain.TransactionFilter{}
	assert.True(t, all.Matches(april))
}
