// Package registry owns merchant identity, activation state, and cumulative
// settled volume. All administrative operations are gated on the operator
// principal.
package registry

import (
	"errors"
	"fmt"

	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
)

type Service struct {
	store    repositories.Store
	operator string
}

func NewService(store repositories.Store, operator string) *Service {
	if store == nil {
		panic("store is required")
	}
	if operator == "" {
		panic("operator account is required")
	}
	return &Service{store: store, operator: operator}
}

func (s *Service) isOperator(caller string) bool {
	return caller == s.operator
}

// Register inserts an active merchant with zero volume and a fresh
// registration id. Registering an address that already exists overwrites the
// record, discarding accumulated volume and reactivating the merchant; the
// registry is an upsert by contract, not an insert-or-fail.
func (s *Service) Register(name, walletAddress, caller string) (uint64, error) {
	if !s.isOperator(caller) {
		return 0, domain.ErrNotOwner
	}
	if len(name) > models.MaxNameLength {
		return 0, domain.ErrInvalidName
	}

	id, err := s.store.NextMerchantID()
	if err != nil {
		return 0, fmt.Errorf("failed to assign registration id: %w", err)
	}

	m := &models.Merchant{
		WalletAddress:  walletAddress,
		Name:           name,
		IsActive:       true,
		TotalVolume:    0,
		RegistrationID: id,
	}
	if err := s.store.PutMerchant(m); err != nil {
		return 0, fmt.Errorf("failed to store merchant: %w", err)
	}
	return id, nil
}

// Deactivate flips the merchant inactive. The record is preserved; volume
// and registration id survive.
func (s *Service) Deactivate(walletAddress, caller string) error {
	if !s.isOperator(caller) {
		return domain.ErrNotOwner
	}

	m, err := s.store.GetMerchant(walletAddress)
	if errors.Is(err, repositories.ErrMerchantNotFound) {
		return domain.ErrMerchantNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get merchant: %w", err)
	}

	m.IsActive = false
	if err := s.store.PutMerchant(m); err != nil {
		return fmt.Errorf("failed to store merchant: %w", err)
	}
	return nil
}

// IsActive reports whether the address is a registered, active merchant.
// Absent merchants are inactive.
func (s *Service) IsActive(walletAddress string) bool {
	m, err := s.store.GetMerchant(walletAddress)
	if err != nil {
		return false
	}
	return m.IsActive
}

func (s *Service) Get(walletAddress string) (*models.Merchant, error) {
	m, err := s.store.GetMerchant(walletAddress)
	if errors.Is(err, repositories.ErrMerchantNotFound) {
		return nil, domain.ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return m, nil
}

// AdjustVolume adds delta to the merchant's total volume. A negative delta
// that would take the volume below zero is rejected with ErrVolumeUnderflow
// rather than clamped; the caller only subtracts volume it previously added,
// so a rejection here means an invariant was already broken elsewhere.
func (s *Service) AdjustVolume(walletAddress string, delta int64) error {
	m, err := s.store.GetMerchant(walletAddress)
	if errors.Is(err, repositories.ErrMerchantNotFound) {
		return domain.ErrMerchantNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get merchant: %w", err)
	}

	if delta < 0 {
		sub := uint64(-delta)
		if m.TotalVolume < sub {
			return domain.ErrVolumeUnderflow
		}
		m.TotalVolume -= sub
	} else {
		m.TotalVolume += uint64(delta)
	}

	if err := s.store.PutMerchant(m); err != nil {
		return fmt.Errorf("failed to store merchant: %w", err)
	}
	return nil
}
