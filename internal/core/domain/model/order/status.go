package order

import (
	"fmt"
	"slices"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending    -> Confirmed, Cancelled
//	Confirmed  -> Processing, Cancelled, OnHold
//	Processing -> Shipped, Cancelled, OnHold
//	Shipped    -> Delivered
//	Delivered  -> Refunded
//	OnHold     -> Processing, Cancelled
//	Cancelled, Refunded: terminal
//
// The rules live in a declarative table (see getTransitions) rather than in
// per-status methods, so they can be read and tested as data.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Confirmed orders have been accepted by the storefront.
	Confirmed

	// Processing orders are being picked and packed.
	Processing

	// Shipped orders have been handed to a carrier.
	Shipped

	// Delivered orders reached the customer. Only a refund may follow.
	Delivered

	// Cancelled is terminal.
	Cancelled

	// Refunded is terminal.
	Refunded

	// OnHold orders are paused and may resume processing or be cancelled.
	OnHold
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Confirmed:  "CONFIRMED",
		Processing: "PROCESSING",
		Shipped:    "SHIPPED",
		Delivered:  "DELIVERED",
		Cancelled:  "CANCELLED",
		Refunded:   "REFUNDED",
		OnHold:     "ON_HOLD",
	}
}

// getTransitions returns the lifecycle table: current status -> allowed next statuses.
// Statuses without an entry, including the terminal ones, allow nothing.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses intentionally have no outgoing edges
	return map[Status][]Status{
		Pending:    {Confirmed, Cancelled},
		Confirmed:  {Processing, Cancelled, OnHold},
		Processing: {Shipped, Cancelled, OnHold},
		Shipped:    {Delivered},
		Delivered:  {Refunded},
		OnHold:     {Processing, Cancelled},
	}
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled, Refunded, OnHold}
}

// ParseStatus converts a wire name such as "ON_HOLD" into a Status.
// Matching ignores case and surrounding whitespace.
//
// Returns a ValueIsInvalidError for names that do not denote a valid status.
func ParseStatus(s string) (Status, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, status := range AllStatuses() {
		if status.String() == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// CanTransition reports whether the lifecycle allows moving from -> to.
// It is a pure lookup in the transition table; no other state influences it.
func CanTransition(from, to Status) bool {
	return slices.Contains(getTransitions()[from], to)
}

// Validate checks if the Status value is valid.
//
// Returns a ValueIsInvalidError for Unknown (0) and any value outside of the enumeration.
func (s Status) Validate() error {
	if !slices.Contains(AllStatuses(), s) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the lifecycle allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	return CanTransition(s, target)
}

// AvailableTransitions returns the statuses reachable from s in one step, in
// declaration order. Terminal statuses return an empty, non-nil slice.
func (s Status) AvailableTransitions() []Status {
	available := make([]Status, 0)
	for _, target := range AllStatuses() {
		if CanTransition(s, target) {
			available = append(available, target)
		}
	}
	return available
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitions()[s]) == 0
}

// IsDeletable reports whether an order in status s may be deleted.
// Only orders that never progressed or were cancelled can be removed.
func (s Status) IsDeletable() bool {
	return s == Pending || s == Cancelled
}
