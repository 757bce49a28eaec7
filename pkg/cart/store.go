package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds one cart per user for the lifetime of the process. Carts
// are never persisted; checkout removes the purchased lines.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

func (s *Store) cart(userID string) *Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = &Cart{}
		s.carts[userID] = c
	}
	return c
}

func (s *Store) Add(userID string, line Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Add(line)
}

func (s *Store) UpdateQuantity(userID string, productID uuid.UUID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).UpdateQuantity(productID, quantity)
}

func (s *Store) Remove(userID string, productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Remove(productID)
}

func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

func (s *Store) Lines(userID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Lines()
}

func (s *Store) Total(userID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Total()
}
