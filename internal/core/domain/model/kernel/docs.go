// Package kernel provides the shared domain primitives of the storefront: identifiers,
// the money calculator and the line item entity used by both carts and orders.
//
// The package includes:
//   - UUID: A value object for aggregate and line identifiers
//   - Round2, LineTotal, SumRounded: the single source of truth for monetary arithmetic
//   - LineItem: one product entry with quantity, unit price and derived line total
//
// Monetary amounts are float64 values rounded to cents after every operation that
// produces a new total. Rounding is applied per line and then again on the sum, and
// that order of operations is part of the contract.
package kernel
