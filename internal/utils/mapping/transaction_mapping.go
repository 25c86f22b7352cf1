package mapping

import (
	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	"github.com/SscSPs/sales_dashboard/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:          d.ID,
		Position:    d.Position,
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		PriceText:   d.PriceText(),
		Category:    d.Category,
		Sold:        d.Sold,
		DateOfSale:  d.DateOfSale,
		SaleMonth:   d.SaleMonth,
		Image:       d.Image,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Category:    m.Category,
		Sold:        m.Sold,
		DateOfSale:  m.DateOfSale,
		Image:       m.Image,
		SaleMonth:   m.SaleMonth,
		Position:    m.Position,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
