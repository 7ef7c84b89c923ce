package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type TransactionRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// SaveTransaction upserts one gateway operation keyed by (transaction id,
// order id), so replayed webhook deliveries refresh the status instead of
// duplicating audit rows.
func (r *TransactionRepo) SaveTransaction(ctx context.Context, t entities.Transaction) error {
	query, args := r.qb.Insert("transactions").
		Columns("transaction_id", "order_id", "kind", "status", "amount", "currency", "created_at").
		Values(t.ID, t.OrderID, string(t.Kind), string(t.Status), t.Amount, t.Currency, t.CreatedAt).
		Suffix("ON CONFLICT (transaction_id, order_id) DO UPDATE SET status = EXCLUDED.status").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) UpdateTransactionStatus(ctx context.Context, transactionID string, status entities.TransactionStatus) error {
	query, args := r.qb.Update("transactions").
		Set("status", string(status)).
		Where(sq.Eq{"transaction_id": transactionID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update transaction status: %w", err)
	}
	return nil
}

func (r *TransactionRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}
