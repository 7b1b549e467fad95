package services

import (
	"fmt"
	"math"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// DefaultTaxRate applies when no positive rate is configured or requested.
const DefaultTaxRate = 0.08

// OrderPricer is a domain service that prices orders at placement time.
//
// Business rules:
//   - tax = Round2(subtotal * rate), computed once; later item changes do not
//     re-derive it
//   - a rate of zero or less means the pricer's default rate
//   - the shipping amount is kept as given; negative or non-finite amounts are rejected
//
// Example usage:
//
//	pricer := NewOrderPricer(0)           // 8% default
//	err := pricer.Price(o, 0, 9.99)       // subtotal 65.00 -> tax 5.20, total 80.19
type OrderPricer struct {
	defaultRate float64
}

// NewOrderPricer creates a pricer. A defaultRate of zero or less falls back to
// DefaultTaxRate.
func NewOrderPricer(defaultRate float64) OrderPricer {
	if defaultRate <= 0 || math.IsNaN(defaultRate) || math.IsInf(defaultRate, 0) {
		defaultRate = DefaultTaxRate
	}
	return OrderPricer{defaultRate: defaultRate}
}

// DefaultRate returns the rate used when Price receives none.
func (p OrderPricer) DefaultRate() float64 {
	return p.defaultRate
}

// Price sets tax and shipping on o; the order recomputes its total.
//
// Returns a ValueIsInvalidError, leaving o untouched, when shippingAmount is
// negative, NaN or infinite.
func (p OrderPricer) Price(o *order.Order, taxRate, shippingAmount float64) error {
	if math.IsNaN(shippingAmount) || math.IsInf(shippingAmount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("shippingAmount",
			fmt.Errorf("%v is not a finite amount", shippingAmount))
	}
	if shippingAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("shippingAmount",
			fmt.Errorf("%.2f is negative", shippingAmount))
	}
	if taxRate <= 0 || math.IsNaN(taxRate) || math.IsInf(taxRate, 0) {
		taxRate = p.defaultRate
	}

	o.SetTaxAmount(kernel.Round2(o.Subtotal() * taxRate))
	o.SetShippingAmount(shippingAmount)
	return nil
}
