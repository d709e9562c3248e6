package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
	"treehouse/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository stores one cart per browsing session. Load returns an empty
// cart for unknown sessions.
type CartRepository interface {
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*models.Cart),
	}
}

func (r *MemoryCartRepository) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, exists := r.carts[sessionID]
	if !exists {
		return models.NewCart(), nil
	}
	return cart.Clone(), nil
}

func (r *MemoryCartRepository) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	r.mu.Lock()
	r.carts[sessionID] = cart.Clone()
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	delete(r.carts, sessionID)
	r.mu.Unlock()
	return nil
}

// RedisCartRepository keeps each cart as JSON under cart:<session> and
// refreshes its TTL on every write.
type RedisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := r.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := models.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []models.CartLineItem{}
	}
	return cart, nil
}

func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.rdb.Set(ctx, cartKey(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
