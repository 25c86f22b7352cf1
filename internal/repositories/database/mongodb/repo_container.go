package mongodb

import (
	"context"

	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider builds the repositories on one collection and makes sure its indexes exist.
func NewRepositoryProvider(ctx context.Context, collection *mongo.Collection) (portsrepo.RepositoryProvider, error) {
	transactionRepo := newMongoTransactionRepository(collection)
	if err := transactionRepo.EnsureIndexes(ctx); err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{
		TransactionRepo: transactionRepo,
		ReportingRepo:   newReportingRepository(collection),
	}, nil
}
