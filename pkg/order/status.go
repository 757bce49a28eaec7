package order

import (
	"pawplate/domain"
	"pawplate/entities"
)

func validStatus(s string) bool {
	switch s {
	case entities.OrderStatusPending, entities.OrderStatusConfirmed,
		entities.OrderStatusShipped, entities.OrderStatusDelivered,
		entities.OrderStatusCancelled:
		return true
	}
	return false
}

func terminal(s string) bool {
	return s == entities.OrderStatusDelivered || s == entities.OrderStatusCancelled
}

// CheckTransition enforces PENDING -> CONFIRMED -> SHIPPED -> DELIVERED,
// with CANCELLED reachable from any non-terminal state.
func CheckTransition(from, to string) error {
	if !validStatus(from) || !validStatus(to) {
		return domain.ErrInvalidStatus
	}
	if terminal(from) {
		return domain.ErrInvalidTransition
	}
	if to == entities.OrderStatusCancelled {
		return nil
	}

	switch from {
	case entities.OrderStatusPending:
		if to == entities.OrderStatusConfirmed {
			return nil
		}
	case entities.OrderStatusConfirmed:
		if to == entities.OrderStatusShipped {
			return nil
		}
	case entities.OrderStatusShipped:
		if to == entities.OrderStatusDelivered {
			return nil
		}
	}
	return domain.ErrInvalidTransition
}
