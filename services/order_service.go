package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
	"treehouse/models"
)

var (
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	ErrOrderFailed          = errors.New("order submission failed")
)

const (
	OrderConfirmedMessage = "Order Confirmed! We're getting on it! Your order has been received and we'll have it ready shortly."
	OrderFailedMessage    = "There was an error processing your order. Please try again."
)

// OrderRelay is the boundary the submission client posts to.
type OrderRelay interface {
	SubmitOrder(ctx context.Context, payload *models.OrderPayload) error
}

type submission struct {
	state       models.SubmissionState
	generation  uint64
	totalItems  int
	submittedAt time.Time
}

// OrderService drives idle -> submitting -> confirmed|failed per session.
// A confirmed submission falls back to idle after the confirmation window;
// a failed one falls back immediately with the cart left intact.
type OrderService struct {
	carts  *CartService
	relay  OrderRelay
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*submission
}

func NewOrderService(carts *CartService, relay OrderRelay, window time.Duration) *OrderService {
	return &OrderService{
		carts:    carts,
		relay:    relay,
		window:   window,
		now:      time.Now,
		sessions: make(map[string]*submission),
	}
}

func (s *OrderService) session(sessionID string) *submission {
	sub, ok := s.sessions[sessionID]
	if !ok {
		sub = &submission{state: models.SubmissionIdle}
		s.sessions[sessionID] = sub
	}
	return sub
}

func (s *OrderService) Status(sessionID string) models.SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.sessions[sessionID]
	if !ok {
		return models.SubmissionStatus{State: models.SubmissionIdle}
	}
	return s.statusLocked(sub)
}

func (s *OrderService) statusLocked(sub *submission) models.SubmissionStatus {
	status := models.SubmissionStatus{State: sub.state}
	if sub.state == models.SubmissionConfirmed {
		submittedAt := sub.submittedAt
		status.Submitted = true
		status.Message = OrderConfirmedMessage
		status.TotalItems = sub.totalItems
		status.SubmittedAt = &submittedAt
	}
	return status
}

// Submit sends the session cart to the relay once. An empty cart is a no-op
// that never reaches the relay. The relay call is not cancelled when ctx is.
func (s *OrderService) Submit(ctx context.Context, sessionID string) (models.SubmissionStatus, error) {
	s.mu.Lock()
	sub := s.session(sessionID)
	if sub.state == models.SubmissionSubmitting {
		s.mu.Unlock()
		return models.SubmissionStatus{State: models.SubmissionSubmitting}, ErrSubmissionInProgress
	}
	previous := sub.state
	sub.state = models.SubmissionSubmitting
	s.mu.Unlock()

	// An empty or unreadable cart leaves any pending confirmation reset
	// untouched; only a real submission moves the generation on.
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil || cart.IsEmpty() {
		s.mu.Lock()
		sub.state = previous
		if previous == models.SubmissionIdle {
			delete(s.sessions, sessionID)
		}
		s.mu.Unlock()
		status := models.SubmissionStatus{State: models.SubmissionIdle}
		if err != nil {
			return status, fmt.Errorf("failed to read cart: %w", err)
		}
		return status, nil
	}

	s.mu.Lock()
	sub.generation++
	s.mu.Unlock()

	submittedAt := s.now()
	payload := models.NewOrderPayload(cart, submittedAt)

	if err := s.relay.SubmitOrder(context.WithoutCancel(ctx), payload); err != nil {
		log.Printf("Order submission for session %s failed: %v", sessionID, err)
		s.mu.Lock()
		sub.state = models.SubmissionIdle
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return models.SubmissionStatus{
			State:   models.SubmissionFailed,
			Message: OrderFailedMessage,
		}, fmt.Errorf("%w: %v", ErrOrderFailed, err)
	}

	if err := s.carts.ClearCart(context.WithoutCancel(ctx), sessionID); err != nil {
		log.Printf("Order accepted but clearing cart for session %s failed: %v", sessionID, err)
	}

	s.mu.Lock()
	sub.state = models.SubmissionConfirmed
	sub.totalItems = payload.TotalItems
	sub.submittedAt = submittedAt
	sub.generation++
	generation := sub.generation
	status := s.statusLocked(sub)
	s.mu.Unlock()

	time.AfterFunc(s.window, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub.generation == generation && sub.state == models.SubmissionConfirmed {
			sub.state = models.SubmissionIdle
			delete(s.sessions, sessionID)
		}
	})

	log.Printf("Order submitted for session %s (%d items)", sessionID, payload.TotalItems)
	return status, nil
}
