package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/velesmarket/payment-service/internal/service"
	mocks "github.com/velesmarket/payment-service/internal/service/mocks"
	trmmocks "github.com/velesmarket/payment-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventoryService(t *testing.T) (*service.InventoryService, *mocks.MockProductRepo) {
	tx := trmmocks.NewMockManager(t)
	tx.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	products := mocks.NewMockProductRepo(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewInventoryService(logger, tx, products), products
}

func TestInventoryService_AdjustForOrder(t *testing.T) {
	order := func(items ...entities.Item) entities.Order {
		return entities.Order{ID: "A", Items: items}
	}

	t.Run("variant stock is decremented, siblings untouched", func(t *testing.T) {
		svc, products := newInventoryService(t)

		products.EXPECT().GetProductByID(mock.Anything, "p1").Return(entities.Product{
			ID: "p1", Quantity: 10,
			Variants: []entities.Variant{
				{Color: "blue", Quantity: 3},
				{Color: "red", Quantity: 4},
			},
		}, nil).Once()
		products.EXPECT().UpdateStock(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
			return p.Variants[0].Quantity == 1 && !p.Variants[0].OutOfStock &&
				p.Variants[1].Quantity == 4 &&
				p.Quantity == 10 && p.Sold == 2
		})).Return(nil).Once()

		err := svc.AdjustForOrder(context.Background(), order(
			entities.Item{ProductID: "p1", Color: "blue", Quantity: 2},
		))
		require.NoError(t, err)
	})

	t.Run("unmatched color falls back to parent stock", func(t *testing.T) {
		svc, products := newInventoryService(t)

		products.EXPECT().GetProductByID(mock.Anything, "p1").Return(entities.Product{
			ID: "p1", Quantity: 5,
			Variants: []entities.Variant{{Color: "blue", Quantity: 3}},
		}, nil).Once()
		products.EXPECT().UpdateStock(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
			return p.Quantity == 4 && p.Variants[0].Quantity == 3 && p.Sold == 1
		})).Return(nil).Once()

		err := svc.AdjustForOrder(context.Background(), order(
			entities.Item{ProductID: "p1", Color: "green", Quantity: 1},
		))
		require.NoError(t, err)
	})

	t.Run("oversell clamps at zero and flags out of stock", func(t *testing.T) {
		svc, products := newInventoryService(t)

		products.EXPECT().GetProductByID(mock.Anything, "p1").Return(entities.Product{
			ID: "p1", Quantity: 2,
		}, nil).Once()
		products.EXPECT().UpdateStock(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
			return p.Quantity == 0 && p.OutOfStock && p.Sold == 5
		})).Return(nil).Once()

		err := svc.AdjustForOrder(context.Background(), order(
			entities.Item{ProductID: "p1", Quantity: 5},
		))
		require.NoError(t, err)
	})

	t.Run("missing product does not block remaining items", func(t *testing.T) {
		svc, products := newInventoryService(t)

		products.EXPECT().GetProductByID(mock.Anything, "gone").
			Return(entities.Product{}, entities.ErrProductNotFound).Once()
		products.EXPECT().GetProductByID(mock.Anything, "p2").Return(entities.Product{
			ID: "p2", Quantity: 3,
		}, nil).Once()
		products.EXPECT().UpdateStock(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
			return p.ID == "p2" && p.Quantity == 2
		})).Return(nil).Once()

		err := svc.AdjustForOrder(context.Background(), order(
			entities.Item{ProductID: "gone", Quantity: 1},
			entities.Item{ProductID: "p2", Quantity: 1},
		))
		assert.EqualError(t, err, "failed to adjust stock for 1 of 2 items")
	})

	t.Run("save failure is reported per item", func(t *testing.T) {
		svc, products := newInventoryService(t)

		products.EXPECT().GetProductByID(mock.Anything, "p1").
			Return(entities.Product{ID: "p1", Quantity: 3}, nil).Once()
		products.EXPECT().UpdateStock(mock.Anything, mock.Anything).
			Return(errors.New("connection reset")).Once()

		err := svc.AdjustForOrder(context.Background(), order(
			entities.Item{ProductID: "p1", Quantity: 1},
		))
		assert.Error(t, err)
	})

	t.Run("order without items is a no-op", func(t *testing.T) {
		svc, products := newInventoryService(t)

		err := svc.AdjustForOrder(context.Background(), order())
		require.NoError(t, err)
		products.AssertNotCalled(t, "GetProductByID", mock.Anything, mock.Anything)
	})
}
