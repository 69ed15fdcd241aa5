package store

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/giftmart/giftadmin/internal/models"
	"github.com/giftmart/giftadmin/internal/transition"
	"go.uber.org/zap"
)

// Backend is interface for the storefront backend order endpoints
type Backend interface {
	// ListOrders fetches the full order set
	ListOrders(ctx context.Context, filters url.Values) ([]models.Order, error)
	// ApplyStatus issues the transition-specific call for an order
	ApplyStatus(ctx context.Context, orderID string, next models.Status, reason string) (*models.Order, error)
}

// OrderStore owns the canonical in-memory order collection for the session
// and orchestrates remote status updates. It is the only writer.
type OrderStore struct {
	mu       sync.RWMutex
	orders   map[string]models.Order
	sequence []string
	updating map[string]struct{}
	backend  Backend
	logger   *zap.Logger
}

// New creates new OrderStore instance
func New(backend Backend, logger *zap.Logger) *OrderStore {
	return &OrderStore{
		orders:   make(map[string]models.Order),
		updating: make(map[string]struct{}),
		backend:  backend,
		logger:   logger,
	}
}

// Refresh fetches the full order set and replaces the collection wholesale.
// On failure the previous collection is kept untouched.
func (s *OrderStore) Refresh(ctx context.Context, filters url.Values) error {
	orders, err := s.backend.ListOrders(ctx, filters)
	if err != nil {
		return fmt.Errorf("load orders: %w", err)
	}

	next := make(map[string]models.Order, len(orders))
	sequence := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, dup := next[order.ID]; !dup {
			sequence = append(sequence, order.ID)
		}
		next[order.ID] = order
	}

	s.mu.Lock()
	s.orders = next
	s.sequence = sequence
	s.mu.Unlock()

	s.logger.Debug("order collection refreshed", zap.Int("count", len(next)))
	return nil
}

// Orders returns a snapshot of the collection in backend fetch order, so
// repeated reads of an unchanged store render identically
func (s *OrderStore) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.sequence))
	for _, id := range s.sequence {
		orders = append(orders, s.orders[id])
	}
	return orders
}

// Get returns a single order by id
func (s *OrderStore) Get(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[orderID]
	return order, ok
}

// Transitions returns the statuses an order may advance to and whether it
// may still be rejected
func (s *OrderStore) Transitions(orderID string) ([]models.Status, bool, error) {
	s.mu.RLock()
	order, ok := s.orders[orderID]
	s.mu.RUnlock()
	if !ok {
		return nil, false, models.ErrOrderNotFound
	}
	return transition.Available(order.Status), transition.CanReject(order.Status), nil
}

// legalMove covers both forward steps and rejection
func legalMove(from, to models.Status) bool {
	if to == models.StatusRejected {
		return transition.CanReject(from)
	}
	return transition.Can(from, to)
}

// UpdateStatus moves an order to the next status through the backend and
// folds the returned record into the collection. A second call for the same
// order while one is in flight fails immediately with ErrAlreadyUpdating.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, next models.Status, payload transition.Payload) (*models.Order, error) {
	s.mu.Lock()
	order, ok := s.orders[orderID]
	if !ok {
		s.mu.Unlock()
		return nil, models.ErrOrderNotFound
	}
	if !legalMove(order.Status, next) {
		s.mu.Unlock()
		return nil, models.ErrIllegalTransition
	}
	if err := transition.ValidatePayload(next, payload); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if _, busy := s.updating[orderID]; busy {
		s.mu.Unlock()
		return nil, models.ErrAlreadyUpdating
	}
	s.updating[orderID] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.updating, orderID)
		s.mu.Unlock()
	}()

	updated, err := s.backend.ApplyStatus(ctx, orderID, next, payload.RejectionReason)
	if err != nil {
		s.logger.Error("status update failed",
			zap.String("order", orderID),
			zap.String("next", string(next)),
			zap.Error(err))
		return nil, fmt.Errorf("update order %s: %w", orderID, err)
	}

	s.mu.Lock()
	current, ok := s.orders[orderID]
	switch {
	case !ok:
		// a refresh replaced the collection and dropped this order;
		// discard the late result instead of resurrecting it
	case current.Status == updated.Status || legalMove(current.Status, updated.Status):
		s.orders[orderID] = *updated
	default:
		// a refresh moved the order past us, keep the fresher state
		s.logger.Warn("stale status update discarded",
			zap.String("order", orderID),
			zap.String("have", string(current.Status)),
			zap.String("got", string(updated.Status)))
	}
	s.mu.Unlock()

	return updated, nil
}

// Updating reports whether a status update for the order is in flight
func (s *OrderStore) Updating(orderID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, busy := s.updating[orderID]
	return busy
}
