package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/sales_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/sales_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/sales_dashboard/internal/models"
	"github.com/SscSPs/sales_dashboard/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var transactionColumns = []string{
	"id", "position", "title", "description", "price", "price_text",
	"category", "sold", "date_of_sale", "sale_month", "image",
}

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

// ListTransactions returns the requested window of matching transactions ordered by feed position.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	w := (&whereBuilder{}).month(filter.Month).search(filter.Search)
	query := `
		SELECT id, position, title, description, price, price_text, category, sold, date_of_sale, sale_month, image
		FROM transactions` + w.String() +
		fmt.Sprintf(" ORDER BY position LIMIT %s OFFSET %s", w.arg(filter.Limit), w.arg(filter.Offset))

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var m models.Transaction
		var price pgtype.Numeric
		if err := rows.Scan(
			&m.ID,
			&m.Position,
			&m.Title,
			&m.Description,
			&price,
			&m.PriceText,
			&m.Category,
			&m.Sold,
			&m.DateOfSale,
			&m.SaleMonth,
			&m.Image,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		m.Price = decimalFromNumeric(price)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(result), nil
}

// CountTransactions counts every transaction that matches the filter.
func (r *PgxTransactionRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int64, error) {
	w := (&whereBuilder{}).month(filter.Month).search(filter.Search)
	query := "SELECT COUNT(*) FROM transactions" + w.String()

	var total int64
	if err := r.Pool.QueryRow(ctx, query, w.args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// ReplaceAll deletes every row and bulk-loads the given transactions in one database transaction,
// so a failed load keeps the previous contents.
func (r *PgxTransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	if _, err := tx.Exec(ctx, "DELETE FROM transactions"); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"transactions"},
		transactionColumns,
		pgx.CopyFromSlice(len(transactions), func(i int) ([]any, error) {
			m := mapping.ToModelTransaction(transactions[i])
			return []any{
				m.ID, m.Position, m.Title, m.Description, numericFromDecimal(m.Price), m.PriceText,
				m.Category, m.Sold, m.DateOfSale, m.SaleMonth, m.Image,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}
	if copied != int64(len(transactions)) {
		return fmt.Errorf("inserted %d of %d transactions", copied, len(transactions))
	}

	return r.Commit(ctx, tx)
}
