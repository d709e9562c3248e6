package services

import (
	"context"
	"sync"
	"treehouse/models"
	"treehouse/repositories"
)

// CartService is the single mutation path for session carts. Every call
// loads, mutates and stores the cart under one lock so reads after a write
// always see it.
type CartService struct {
	mu   sync.Mutex
	repo repositories.CartRepository
}

func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Load(ctx, sessionID)
}

func (s *CartService) AddItem(ctx context.Context, sessionID, id, name string, isMembers bool) (*models.Cart, error) {
	return s.AddItems(ctx, sessionID, id, name, isMembers, 1)
}

// AddItems performs count AddItem calls, as the detail overlay's quantity
// selector does. count is clamped to at least 1.
func (s *CartService) AddItems(ctx context.Context, sessionID, id, name string, isMembers bool, count int) (*models.Cart, error) {
	if count < 1 {
		count = 1
	}
	return s.mutate(ctx, sessionID, func(cart *models.Cart) {
		for i := 0; i < count; i++ {
			cart.AddItem(id, name, isMembers)
		}
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, id string, quantity int) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *models.Cart) {
		cart.UpdateQuantity(id, quantity)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, id string) (*models.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *models.Cart) {
		cart.RemoveItem(id)
	})
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, sessionID)
}

func (s *CartService) GetTotalItems(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cart.TotalItems(), nil
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(*models.Cart)) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(cart)

	if cart.IsEmpty() {
		if err := s.repo.Delete(ctx, sessionID); err != nil {
			return nil, err
		}
		return cart, nil
	}
	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}
