package services_test

import (
	"math"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o := order.NewOrder("user-1", "addr-1")
	first, err := kernel.NewLineItem("p1", "Mug", "MUG-1", 2, 25.00)
	require.NoError(t, err)
	second, err := kernel.NewLineItem("p2", "Plate", "PLT-1", 1, 15.00)
	require.NoError(t, err)
	require.NoError(t, o.AddItem(first))
	require.NoError(t, o.AddItem(second))
	return o
}

func TestNewOrderPricer(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want float64
	}{
		{"positive rate is kept", 0.2, 0.2},
		{"zero falls back", 0, services.DefaultTaxRate},
		{"negative falls back", -1, services.DefaultTaxRate},
		{"NaN falls back", math.NaN(), services.DefaultTaxRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, services.NewOrderPricer(tt.rate).DefaultRate(), 0.0001)
		})
	}
}

func TestOrderPricer_Price(t *testing.T) {
	t.Run("should apply default tax and shipping", func(t *testing.T) {
		// Given
		o := newOrder(t)
		pricer := services.NewOrderPricer(0)

		// When
		err := pricer.Price(o, 0, 9.99)

		// Then
		require.NoError(t, err)
		assert.InDelta(t, 65.00, o.Subtotal(), 0.001)
		assert.InDelta(t, 5.20, o.TaxAmount(), 0.001)
		assert.InDelta(t, 9.99, o.ShippingAmount(), 0.001)
		assert.InDelta(t, 80.19, o.TotalAmount(), 0.001)
	})

	t.Run("should prefer an explicit rate", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, services.NewOrderPricer(0.1).Price(o, 0.2, 0))

		assert.InDelta(t, 13.00, o.TaxAmount(), 0.001)
		assert.InDelta(t, 78.00, o.TotalAmount(), 0.001)
	})

	t.Run("should reject malformed shipping and leave the order unpriced", func(t *testing.T) {
		for _, shipping := range []float64{-4, math.NaN(), math.Inf(1)} {
			o := newOrder(t)

			err := services.NewOrderPricer(0).Price(o, 0, shipping)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "shippingAmount")
			assert.Zero(t, o.TaxAmount())
			assert.Zero(t, o.ShippingAmount())
			assert.InDelta(t, 65.00, o.TotalAmount(), 0.001)
		}
	})

	t.Run("should keep sub-cent shipping as given", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, services.NewOrderPricer(0).Price(o, 0, 1.005))

		assert.Equal(t, 1.005, o.ShippingAmount())
	})
}
