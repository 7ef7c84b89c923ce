package entities_test

import (
	"testing"

	"github.com/velesmarket/payment-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Deduct(t *testing.T) {
	testCases := []struct {
		name     string
		product  entities.Product
		color    string
		quantity int
		check    func(t *testing.T, p entities.Product)
	}{
		{
			name: "matching variant is adjusted, siblings untouched",
			product: entities.Product{
				Quantity: 10,
				Variants: []entities.Variant{
					{Color: "red", Quantity: 5},
					{Color: "blue", Quantity: 3},
				},
			},
			color:    "blue",
			quantity: 2,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 5, p.Variants[0].Quantity)
				assert.False(t, p.Variants[0].OutOfStock)
				assert.Equal(t, 1, p.Variants[1].Quantity)
				assert.False(t, p.Variants[1].OutOfStock)
				assert.Equal(t, 10, p.Quantity, "parent stock untouched when variant matches")
				assert.Equal(t, 2, p.Sold)
			},
		},
		{
			name: "variant drained to zero flips its flag",
			product: entities.Product{
				Variants: []entities.Variant{{Color: "red", Quantity: 2}},
			},
			color:    "red",
			quantity: 2,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 0, p.Variants[0].Quantity)
				assert.True(t, p.Variants[0].OutOfStock)
			},
		},
		{
			name: "unmatched color falls back to parent quantity",
			product: entities.Product{
				Quantity: 4,
				Variants: []entities.Variant{{Color: "red", Quantity: 5}},
			},
			color:    "green",
			quantity: 3,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 1, p.Quantity)
				assert.Equal(t, 5, p.Variants[0].Quantity)
				assert.Equal(t, 3, p.Sold)
			},
		},
		{
			name:     "no variants adjusts parent and flips flag at zero",
			product:  entities.Product{Quantity: 2},
			quantity: 2,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 0, p.Quantity)
				assert.True(t, p.OutOfStock)
				assert.Equal(t, 2, p.Sold)
			},
		},
		{
			name:     "oversell clamps at zero instead of going negative",
			product:  entities.Product{Quantity: 1},
			quantity: 5,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 0, p.Quantity)
				assert.True(t, p.OutOfStock)
				assert.Equal(t, 5, p.Sold)
			},
		},
		{
			name: "variant oversell clamps at zero",
			product: entities.Product{
				Variants: []entities.Variant{{Color: "red", Quantity: 1}},
			},
			color:    "red",
			quantity: 4,
			check: func(t *testing.T, p entities.Product) {
				assert.Equal(t, 0, p.Variants[0].Quantity)
				assert.True(t, p.Variants[0].OutOfStock)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.product.Deduct(tc.color, tc.quantity)
			tc.check(t, tc.product)
		})
	}
}

func TestProduct_Deduct_FlagFollowsQuantity(t *testing.T) {
	// repeated decrements never drive stock negative and the flag is set
	// exactly when the quantity reaches zero
	product := entities.Product{Quantity: 3}

	product.Deduct("", 2)
	require.Equal(t, 1, product.Quantity)
	require.False(t, product.OutOfStock)

	product.Deduct("", 2)
	require.Equal(t, 0, product.Quantity)
	require.True(t, product.OutOfStock)

	product.Deduct("", 2)
	require.Equal(t, 0, product.Quantity)
	require.True(t, product.OutOfStock)
}
