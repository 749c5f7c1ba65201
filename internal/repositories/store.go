// Package repositories provides the keyed persistence layer backing the
// gateway: merchants, payments, the per-customer payment index, the two id
// counters, and the platform fee rate scalar.
package repositories

import (
	"errors"

	"paygate/internal/models"
)

var (
	ErrMerchantNotFound = errors.New("merchant record not found")
	ErrPaymentNotFound  = errors.New("payment record not found")
	ErrIndexFull        = errors.New("customer payment index at capacity")
)

// Store is the contract every storage engine must satisfy. Records are
// written whole; readers never observe a partially updated payment.
type Store interface {
	GetMerchant(walletAddress string) (*models.Merchant, error)
	PutMerchant(m *models.Merchant) error

	GetPayment(id uint64) (*models.Payment, error)
	PutPayment(p *models.Payment) error
	DeletePayment(id uint64) error

	// AppendCustomerPayment appends a payment id to the customer's ordered
	// index, failing with ErrIndexFull when the index already holds max
	// entries. The length check and the append are one atomic step.
	AppendCustomerPayment(customer string, paymentID uint64, max int) error
	CustomerPayments(customer string) ([]uint64, error)

	// Merchant registrations and payments draw from independent counters.
	NextMerchantID() (uint64, error)
	NextPaymentID() (uint64, error)
	PaymentCounter() (uint64, error)

	FeeRate() (uint64, error)
	SetFeeRate(rateBps uint64) error
}
