// Package order provides the Order aggregate, its lifecycle state machine and the
// status history entry type.
//
// The package includes:
//   - Order: The aggregate root holding the item snapshot, totals and status
//   - Status: The lifecycle enumeration and its declarative transition table
//   - StatusHistoryEntry: One accepted status change, for the audit ledger
//
// Key business rules:
//   - Subtotal is the rounded sum of rounded line totals; total adds tax and shipping
//   - Tax and shipping are fixed when the order is created
//   - Status changes follow the transition table; Cancelled and Refunded are terminal
//   - Only Pending or Cancelled orders may be deleted
package order
