package postgres_test

import (
	"sync"
	"testing"

	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func columnType(t *testing.T, model any, field string) string {
	t.Helper()
	parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	f := parsed.LookUpField(field)
	require.NotNil(t, f, field)
	return f.TagSettings["TYPE"]
}

func TestMoneyColumns(t *testing.T) {
	t.Run("should keep every digit of priced inputs", func(t *testing.T) {
		assert.Equal(t, "numeric", columnType(t, &cartrepo.CartItemDTO{}, "UnitPrice"))
		assert.Equal(t, "numeric", columnType(t, &orderrepo.OrderItemDTO{}, "UnitPrice"))
		assert.Equal(t, "numeric", columnType(t, &orderrepo.OrderDTO{}, "ShippingAmount"))
	})

	t.Run("should store derived amounts at cent scale", func(t *testing.T) {
		assert.Equal(t, "numeric(12,2)", columnType(t, &cartrepo.CartItemDTO{}, "LineTotal"))
		assert.Equal(t, "numeric(12,2)", columnType(t, &cartrepo.CartDTO{}, "TotalAmount"))
		assert.Equal(t, "numeric(12,2)", columnType(t, &orderrepo.OrderDTO{}, "TaxAmount"))
		assert.Equal(t, "numeric(12,2)", columnType(t, &orderrepo.OrderDTO{}, "TotalAmount"))
	})
}
