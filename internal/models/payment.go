package models

import "time"

// MaxProductIDLength bounds the opaque product id; creation rejects longer
// values regardless of the storage engine.
const MaxProductIDLength = 256

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// CanTransitionTo enforces the payment lifecycle: pending may complete or
// cancel, completed may refund, cancelled and refunded are terminal.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case PaymentStatusPending:
		return next == PaymentStatusCompleted || next == PaymentStatusCancelled
	case PaymentStatusCompleted:
		return next == PaymentStatusRefunded
	default:
		return false
	}
}

type Payment struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	Merchant string `gorm:"size:64;index;not null" json:"merchant"`
	Customer string `gorm:"size:64;index;not null" json:"customer"`
	Amount   uint64 `gorm:"not null" json:"amount"`
	// Fee is computed once at creation from the fee rate in force and never
	// recomputed; rate changes do not touch existing payments.
	Fee       uint64        `gorm:"not null" json:"fee"`
	Status    PaymentStatus `gorm:"size:16;not null;default:'pending'" json:"status"`
	ProductID string        `gorm:"size:256" json:"product_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total is the full settlement amount the customer owes: principal plus fee.
func (p *Payment) Total() uint64 {
	return p.Amount + p.Fee
}
