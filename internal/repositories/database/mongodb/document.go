package mongodb

import (
	"fmt"

	"github.com/SscSPs/sales_dashboard/internal/models"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// transactionDocument is the BSON shape of a stored transaction.
type transactionDocument struct {
	ID          string               `bson:"_id"`
	Position    int                  `bson:"position"`
	Title       string               `bson:"title"`
	Description string               `bson:"description"`
	Price       primitive.Decimal128 `bson:"price"`
	PriceText   string               `bson:"priceText"`
	Category    string               `bson:"category"`
	Sold        bool                 `bson:"sold"`
	DateOfSale  string               `bson:"dateOfSale"`
	SaleMonth   int                  `bson:"saleMonth"`
	Image       string               `bson:"image,omitempty"`
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("invalid price %s: %w", d.String(), err)
	}
	return v, nil
}

func fromDecimal128(v primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid stored price %s: %w", v.String(), err)
	}
	return d, nil
}

func toDocument(m models.Transaction) (transactionDocument, error) {
	price, err := toDecimal128(m.Price)
	if err != nil {
		return transactionDocument{}, err
	}
	return transactionDocument{
		ID:          m.ID,
		Position:    m.Position,
		Title:       m.Title,
		Description: m.Description,
		Price:       price,
		PriceText:   m.PriceText,
		Category:    m.Category,
		Sold:        m.Sold,
		DateOfSale:  m.DateOfSale,
		SaleMonth:   m.SaleMonth,
		Image:       m.Image,
	}, nil
}

func (doc transactionDocument) toModel() (models.Transaction, error) {
	price, err := fromDecimal128(doc.Price)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		ID:          doc.ID,
		Position:    doc.Position,
		Title:       doc.Title,
		Description: doc.Description,
		Price:       price,
		PriceText:   doc.PriceText,
		Category:    doc.Category,
		Sold:        doc.Sold,
		DateOfSale:  doc.DateOfSale,
		SaleMonth:   doc.SaleMonth,
		Image:       doc.Image,
	}, nil
}
