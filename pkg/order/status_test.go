package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pawplate/domain"
	"pawplate/entities"
)

func TestCheckTransitionHappyPath(t *testing.T) {
	assert.NoError(t, CheckTransition(entities.OrderStatusPending, entities.OrderStatusConfirmed))
	assert.NoError(t, CheckTransition(entities.OrderStatusConfirmed, entities.OrderStatusShipped))
	assert.NoError(t, CheckTransition(entities.OrderStatusShipped, entities.OrderStatusDelivered))
}

func TestCheckTransitionCancellation(t *testing.T) {
	for _, from := range []string{
		entities.OrderStatusPending,
		entities.OrderStatusConfirmed,
		entities.OrderStatusShipped,
	} {
		assert.NoError(t, CheckTransition(from, entities.OrderStatusCancelled), from)
	}

	assert.ErrorIs(t,
		CheckTransition(entities.OrderStatusDelivered, entities.OrderStatusCancelled),
		domain.ErrInvalidTransition)
	assert.ErrorIs(t,
		CheckTransition(entities.OrderStatusCancelled, entities.OrderStatusPending),
		domain.ErrInvalidTransition)
}

func TestCheckTransitionRejectsSkipsAndUnknown(t *testing.T) {
	assert.ErrorIs(t,
		CheckTransition(entities.OrderStatusPending, entities.OrderStatusShipped),
		domain.ErrInvalidTransition)
	assert.ErrorIs(t,
		CheckTransition(entities.OrderStatusConfirmed, entities.OrderStatusPending),
		domain.ErrInvalidTransition)
	assert.ErrorIs(t,
		CheckTransition("PACKED", entities.OrderStatusShipped),
		domain.ErrInvalidStatus)
}
