package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type ProductRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *ProductRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select("product_id", "seller_id", "title", "price", "quantity", "sold", "out_of_stock", "status").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	query, args = r.qb.Select("product_id", "color", "price", "quantity", "out_of_stock").
		From("product_variants").
		Where(sq.Eq{"product_id": productID}).
		OrderBy("color").
		MustSql()

	var variants []Variant
	if err := r.selectContext(ctx, &variants, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product variants: %w", err)
	}

	return ProductToEntity(product, variants), nil
}

// UpdateStock persists the stock-bearing fields of a product and its variants
// after an inventory adjustment. Prices and titles are left alone.
func (r *ProductRepo) UpdateStock(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("quantity", p.Quantity).
		Set("sold", p.Sold).
		Set("out_of_stock", p.OutOfStock).
		Where(sq.Eq{"product_id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}

	for _, v := range p.Variants {
		query, args := r.qb.Update("product_variants").
			Set("quantity", v.Quantity).
			Set("out_of_stock", v.OutOfStock).
			Where(sq.Eq{"product_id": p.ID, "color": v.Color}).
			MustSql()

		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to update variant stock: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *ProductRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *ProductRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx := trm.ExtractTx(ctx); tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
