// Package keylock provides per-key mutual exclusion over a fixed set of mutex stripes.
//
// Keys are hashed with xxhash onto stripes, so two different keys may share a stripe.
// That only costs parallelism; a given key always maps to the same stripe.
package keylock

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultStripes is the stripe count used by New when a non-positive count is given.
const DefaultStripes = 256

// Striped is a fixed array of mutexes addressed by key hash.
// The zero value is not usable; create instances with New.
type Striped struct {
	stripes []sync.Mutex
}

// New creates a Striped lock with n stripes.
func New(n int) *Striped {
	if n <= 0 {
		n = DefaultStripes
	}
	return &Striped{stripes: make([]sync.Mutex, n)}
}

// Lock blocks until key is free and returns the function that releases it.
// The returned function must be called exactly once.
func (s *Striped) Lock(key string) func() {
	m := &s.stripes[s.index(key)]
	m.Lock()
	return m.Unlock
}

// Stripes returns the number of stripes.
func (s *Striped) Stripes() int {
	return len(s.stripes)
}

func (s *Striped) index(key string) int {
	return int(xxhash.Sum64String(key) % uint64(len(s.stripes)))
}

// CartKey is the lock key for the cart owned by userID.
func CartKey(userID string) string {
	return "cart:user:" + userID
}

// OrderKey is the lock key for the order with the given identifier.
func OrderKey(orderID string) string {
	return "order:" + orderID
}
