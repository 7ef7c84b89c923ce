package trm

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

func withTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ExtractTx returns the transaction carried by the context, or nil when the
// caller runs outside of one. Repositories use it to pick the right executor.
func ExtractTx(ctx context.Context) *sqlx.Tx {
	tx, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	if !ok {
		return nil
	}
	return tx
}

type Transaction interface {
	Commit() error
	Rollback() error
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) error
}

type txManager struct {
	db   *sqlx.DB
	opts *sql.TxOptions
}

type Option func(*txManager)

// WithIsolation sets the isolation level for every transaction the manager opens.
func WithIsolation(level sql.IsolationLevel) Option {
	return func(m *txManager) {
		m.opts = &sql.TxOptions{Isolation: level}
	}
}

func NewManager(db *sqlx.DB, opts ...Option) Manager {
	m := &txManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	// nested Do reuses the surrounding transaction
	if tx := ExtractTx(ctx); tx != nil {
		return ctx, nopTransaction{}, nil
	}

	tx, err := m.db.BeginTxx(ctx, m.opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return withTx(ctx, tx), tx, nil
}

func (m *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	ctx, tx, err := m.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

// nopTransaction is handed out for nested transactions; commit and rollback
// remain the outermost caller's responsibility.
type nopTransaction struct{}

func (nopTransaction) Commit() error   { return nil }
func (nopTransaction) Rollback() error { return nil }
