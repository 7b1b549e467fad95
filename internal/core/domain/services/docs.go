// Package services provides domain services for rules that do not belong to a
// single aggregate method.
//
// The package includes:
//   - OrderPricer: applies the tax and shipping policy to a freshly built order
package services
