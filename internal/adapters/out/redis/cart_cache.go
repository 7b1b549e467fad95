// Package redis caches cart read snapshots in Redis.
//
// Entries are JSON documents keyed "cart:<userID>" with a base TTL plus random jitter
// so entries written together do not expire together.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const (
	// DefaultTTL is used when NewCartCache receives a non-positive TTL.
	DefaultTTL = 15 * time.Minute
	maxJitter  = 5 * time.Minute
)

// CartCache implements ports.CartCache on a Redis client.
type CartCache struct {
	client  goredis.Cmdable
	baseTTL time.Duration
}

// NewCartCache creates a cache over client with the given base TTL.
func NewCartCache(client goredis.Cmdable, ttl time.Duration) *CartCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CartCache{
		client:  client,
		baseTTL: ttl,
	}
}

type cartSnapshot struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	Items     []itemSnapshot `json:"items"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type itemSnapshot struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	SKU         string  `json:"sku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Get returns the cached cart of userID or ports.ErrCacheMiss.
func (c *CartCache) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	data, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var snapshot cartSnapshot
	if err = json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	restored, err := snapshot.toDomain()
	if err != nil {
		return nil, fmt.Errorf("restore cart failed: %w", err)
	}
	return restored, nil
}

// Set stores snapshot for userID.
func (c *CartCache) Set(ctx context.Context, userID string, snapshot *cart.Cart) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(fromDomain(snapshot))
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	ttl := c.baseTTL + rand.N(maxJitter)
	if err = c.client.Set(ctx, cacheKey(userID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete drops the entry of userID. Deleting a missing entry is not an error.
func (c *CartCache) Delete(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func fromDomain(c *cart.Cart) cartSnapshot {
	items := make([]itemSnapshot, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, itemSnapshot{
			ID:          item.ID().String(),
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			SKU:         item.SKU(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}
	return cartSnapshot{
		ID:        c.ID().String(),
		UserID:    c.UserID(),
		Items:     items,
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func (s cartSnapshot) toDomain() (*cart.Cart, error) {
	id, err := kernel.UUIDFromString(s.ID)
	if err != nil {
		return nil, err
	}

	items := make([]kernel.LineItem, 0, len(s.Items))
	for _, is := range s.Items {
		itemID, itemErr := kernel.UUIDFromString(is.ID)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := kernel.RestoreLineItem(itemID, is.ProductID, is.ProductName, is.SKU, is.Quantity, is.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, s.UserID, items, s.CreatedAt, s.UpdatedAt)
}
