package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	allowed := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:   {PaymentStatusCompleted, PaymentStatusCancelled},
		PaymentStatusCompleted: {PaymentStatusRefunded},
		PaymentStatusCancelled: {},
		PaymentStatusRefunded:  {},
	}
	all := []PaymentStatus{
		PaymentStatusPending, PaymentStatusCompleted,
		PaymentStatusCancelled, PaymentStatusRefunded,
	}

	for from, targets := range allowed {
		ok := make(map[PaymentStatus]bool, len(targets))
		for _, to := range targets {
			ok[to] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestPaymentTotal(t *testing.T) {
	p := &Payment{Amount: 1_000_000, Fee: 25_000}
	assert.Equal(t, uint64(1_025_000), p.Total())
}
