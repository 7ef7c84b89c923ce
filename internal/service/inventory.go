package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/pkg/trm"
)

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	UpdateStock(ctx context.Context, p entities.Product) error
}

// InventoryService decrements stock for reconciled orders. Line items are
// independent units of work: a missing product or a failed save is logged and
// the remaining items are still adjusted.
type InventoryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	products  ProductRepo
}

func NewInventoryService(logger *slog.Logger, txManager trm.Manager, products ProductRepo) *InventoryService {
	return &InventoryService{
		logger:    logger.With(slog.String("service", "inventory")),
		txManager: txManager,
		products:  products,
	}
}

func (s *InventoryService) AdjustForOrder(ctx context.Context, order entities.Order) error {
	var failed int
	for _, item := range order.Items {
		if err := s.adjustItem(ctx, item); err != nil {
			failed++
			s.logger.Error("failed to adjust stock",
				slog.String("order_id", order.ID),
				slog.String("product_id", item.ProductID),
				slog.Any("error", err),
			)
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to adjust stock for %d of %d items", failed, len(order.Items))
	}
	return nil
}

func (s *InventoryService) adjustItem(ctx context.Context, item entities.Item) error {
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.products.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return err
		}

		if item.Color != "" && !hasVariant(product, item.Color) && len(product.Variants) > 0 {
			// data inconsistency between the frozen line item and the live
			// product; fall back to the parent quantity
			s.logger.Warn("line item color has no matching variant",
				slog.String("product_id", item.ProductID),
				slog.String("color", item.Color),
			)
		}

		oversold := wouldOversell(product, item)
		product.Deduct(item.Color, item.Quantity)
		if oversold {
			s.logger.Warn("stock clamped at zero",
				slog.String("product_id", item.ProductID),
				slog.String("color", item.Color),
				slog.Int("requested", item.Quantity),
			)
		}

		if err := s.products.UpdateStock(ctx, product); err != nil {
			if errors.Is(err, entities.ErrProductNotFound) {
				return err
			}
			return fmt.Errorf("failed to persist stock: %w", err)
		}
		return nil
	})
}

func hasVariant(p entities.Product, color string) bool {
	for _, v := range p.Variants {
		if v.Color == color {
			return true
		}
	}
	return false
}

func wouldOversell(p entities.Product, item entities.Item) bool {
	if item.Color != "" {
		for _, v := range p.Variants {
			if v.Color == item.Color {
				return v.Quantity < item.Quantity
			}
		}
	}
	return p.Quantity < item.Quantity
}
