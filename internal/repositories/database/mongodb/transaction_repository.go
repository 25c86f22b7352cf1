package mongodb

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/models"
	"github.com/SscSPs/sales_dashboard/internal/utils/mapping"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTransactionRepository struct {
	collection *mongo.Collection
}

func newMongoTransactionRepository(collection *mongo.Collection) *MongoTransactionRepository {
	return &MongoTransactionRepository{collection: collection}
}

var _ portsrepo.TransactionRepositoryFacade = (*MongoTransactionRepository)(nil)

// ListTransactions returns the requested window of matching documents ordered by feed position.
func (r *MongoTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := combine(monthCondition(filter.Month), searchCondition(filter.Search))
	opts := options.Find().
		SetSort(bson.D{{Key: "position", Value: 1}}).
		SetSkip(int64(filter.Offset)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	result := make([]models.Transaction, 0, len(docs))
	for _, doc := range docs {
		m, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return mapping.ToDomainTransactionSlice(result), nil
}

// CountTransactions counts every document that matches the filter.
func (r *MongoTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	query := combine(monthCondition(filter.Month), searchCondition(filter.Search))
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// ReplaceAll removes every document and inserts the given transactions.
// The two steps are not atomic.
func (r *MongoTransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	docs := make([]any, 0, len(transactions))
	for _, t := range transactions {
		doc, err := toDocument(mapping.ToModelTransaction(t))
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes used by ordering and month filtering.
func (r *MongoTransactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}}},
		{Keys: bson.D{{Key: "saleMonth", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create transaction indexes: %w", err)
	}
	return nil
}
