// Package cart provides the Cart aggregate: the mutable set of line items a user is
// collecting before placing an order.
//
// Key business rules:
//   - A cart belongs to exactly one user, and a user has at most one cart
//   - A cart holds at most one line per product; adding a product again merges quantities
//   - The total is always the rounded sum of the rounded line totals
//   - Every mutation refreshes the update timestamp
//
// The aggregate reports a missing product through boolean results; turning that into
// a user-visible error is the job of the application layer.
package cart
