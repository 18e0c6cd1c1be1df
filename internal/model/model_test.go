package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Cancellable(t *testing.T) {
	cancellable := []OrderStatus{OrderStatusPending, OrderStatusPaid, OrderStatusProcessing}
	for _, s := range cancellable {
		assert.True(t, s.Cancellable(), "status %s", s)
	}

	final := []OrderStatus{OrderStatusShipped, OrderStatusFulfilled, OrderStatusDelivered, OrderStatusCancelled}
	for _, s := range final {
		assert.False(t, s.Cancellable(), "status %s", s)
	}
}

func TestOrderStatus_ProgressStep(t *testing.T) {
	assert.Equal(t, 0, OrderStatusPending.ProgressStep())
	assert.Equal(t, 1, OrderStatusPaid.ProgressStep())
	assert.Equal(t, 2, OrderStatusProcessing.ProgressStep())
	assert.Equal(t, 3, OrderStatusShipped.ProgressStep())
	assert.Equal(t, 4, OrderStatusDelivered.ProgressStep())

	// Fulfilled shares the shipped slot on the tracking timeline.
	assert.Equal(t, 3, OrderStatusFulfilled.ProgressStep())
	assert.Equal(t, -1, OrderStatusCancelled.ProgressStep())
}
