package kernel

import "math"

// Round2 rounds an amount to cents: nearest value, ties away from zero.
// It is the only rounding used for stored monetary fields.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// LineTotal returns the rounded price of quantity units at unitPrice.
func LineTotal(quantity int, unitPrice float64) float64 {
	return Round2(float64(quantity) * unitPrice)
}

// SumRounded adds the already rounded line totals and rounds the sum again.
//
// The two rounding steps are deliberate: a cart or order total is the rounded sum of
// rounded lines, which can differ from rounding the raw products once.
func SumRounded(items []LineItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.LineTotal()
	}
	return Round2(sum)
}
