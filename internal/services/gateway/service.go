// Package gateway implements the payment-gateway core: it orchestrates the
// merchant registry, payment ledger, fee calculator, and balance service to
// provide the public operations with authorization and lifecycle checks.
//
// Every operation takes the authenticated caller principal explicitly; the
// core never infers identity from ambient state.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log"

	"paygate/internal/config"
	domain "paygate/internal/errors"
	"paygate/internal/models"
	"paygate/internal/repositories"
	"paygate/internal/services/balance"
	"paygate/internal/services/fee"
	"paygate/internal/services/registry"
)

// Config fixes the privileged principals and limits for one gateway
// instance. Operator is the single identity allowed to administer the
// registry and the fee rate; GatewayAccount is the gateway's own custodial
// balance account.
type Config struct {
	Operator            string
	GatewayAccount      string
	MaxCustomerPayments int
}

type Service struct {
	store    repositories.Store
	registry *registry.Service
	balances balance.Service
	fees     *fee.Calculator
	cfg      Config
	locks    paymentLocks
}

func NewService(store repositories.Store, reg *registry.Service, balances balance.Service, cfg Config) *Service {
	if store == nil {
		panic("store is required")
	}
	if reg == nil {
		panic("registry is required")
	}
	if balances == nil {
		panic("balance service is required")
	}
	if cfg.Operator == "" {
		panic("operator account is required")
	}
	if cfg.GatewayAccount == "" {
		cfg.GatewayAccount = cfg.Operator
	}
	if cfg.MaxCustomerPayments <= 0 {
		cfg.MaxCustomerPayments = config.DefaultMaxCustomerPayments
	}

	return &Service{
		store:    store,
		registry: reg,
		balances: balances,
		fees:     fee.NewCalculator(),
		cfg:      cfg,
	}
}

// Role predicates. Authorization is always decided by one of these three.

func (s *Service) isOperator(caller string) bool {
	return caller == s.cfg.Operator
}

func isCustomerOf(p *models.Payment, caller string) bool {
	return caller == p.Customer
}

func isMerchantOf(p *models.Payment, caller string) bool {
	return caller == p.Merchant
}

// RegisterMerchant registers (or re-registers) a merchant. Operator only.
func (s *Service) RegisterMerchant(name, walletAddress, caller string) (uint64, error) {
	return s.registry.Register(name, walletAddress, caller)
}

// DeactivateMerchant flips a merchant inactive. Operator only.
func (s *Service) DeactivateMerchant(walletAddress, caller string) error {
	return s.registry.Deactivate(walletAddress, caller)
}

// CreatePayment records a pending payment from the caller against an active
// merchant. The fee is computed from the rate in force and frozen on the
// record. The customer index append is part of the operation: a full index
// fails the whole create and nothing is stored.
func (s *Service) CreatePayment(merchant string, amount uint64, productID, caller string) (uint64, error) {
	if amount == 0 {
		return 0, domain.ErrInvalidAmount
	}
	if len(productID) > models.MaxProductIDLength {
		return 0, domain.ErrInvalidProductID
	}
	if !s.registry.IsActive(merchant) {
		return 0, domain.ErrMerchantNotRegistered
	}

	rate, err := s.store.FeeRate()
	if err != nil {
		return 0, fmt.Errorf("failed to read fee rate: %w", err)
	}

	id, err := s.store.NextPaymentID()
	if err != nil {
		return 0, fmt.Errorf("failed to assign payment id: %w", err)
	}

	p := &models.Payment{
		ID:        id,
		Merchant:  merchant,
		Customer:  caller,
		Amount:    amount,
		Fee:       s.fees.CalculateFee(amount, rate),
		Status:    models.PaymentStatusPending,
		ProductID: productID,
	}
	if err := s.store.PutPayment(p); err != nil {
		return 0, fmt.Errorf("failed to store payment: %w", err)
	}

	if err := s.store.AppendCustomerPayment(caller, id, s.cfg.MaxCustomerPayments); err != nil {
		if delErr := s.store.DeletePayment(id); delErr != nil {
			log.Printf("failed to remove payment %d after index append failure: %v", id, delErr)
		}
		if errors.Is(err, repositories.ErrIndexFull) {
			return 0, domain.ErrIndexOverflow
		}
		return 0, fmt.Errorf("failed to index payment: %w", err)
	}

	return id, nil
}

// ProcessPayment settles a pending payment: the customer pays amount+fee,
// the merchant receives the amount, the operator receives the fee. Only the
// payment's customer may process it. The two transfer legs are submitted as
// one atomic batch; either both apply or neither does.
func (s *Service) ProcessPayment(ctx context.Context, paymentID uint64, caller string) error {
	unlock := s.locks.lock(paymentID)
	defer unlock()

	p, err := s.getPayment(paymentID)
	if err != nil {
		return err
	}
	if !isCustomerOf(p, caller) {
		return domain.ErrUnauthorized
	}
	if !p.Status.CanTransitionTo(models.PaymentStatusCompleted) {
		return domain.ErrAlreadyProcessed
	}

	total := p.Total()
	bal, err := s.balances.Balance(ctx, p.Customer)
	if err != nil {
		return fmt.Errorf("failed to read customer balance: %w", err)
	}
	if bal < total {
		return domain.ErrInsufficientBalance
	}

	settlement := []balance.Transfer{
		{From: p.Customer, To: p.Merchant, Amount: p.Amount},
		{From: p.Customer, To: s.cfg.Operator, Amount: p.Fee},
	}
	if err := s.balances.ApplyBatch(ctx, settlement); err != nil {
		if errors.Is(err, balance.ErrInsufficientFunds) {
			return domain.ErrInsufficientBalance
		}
		return fmt.Errorf("settlement failed: %w", err)
	}

	p.Status = models.PaymentStatusCompleted
	if err := s.commitOrReverse(ctx, p, models.PaymentStatusPending, int64(p.Amount), settlement); err != nil {
		return err
	}
	return nil
}

// CancelPayment voids a pending payment. The payment's customer or the
// operator may cancel; no balance moves.
func (s *Service) CancelPayment(_ context.Context, paymentID uint64, caller string) error {
	unlock := s.locks.lock(paymentID)
	defer unlock()

	p, err := s.getPayment(paymentID)
	if err != nil {
		return err
	}
	if !isCustomerOf(p, caller) && !s.isOperator(caller) {
		return domain.ErrUnauthorized
	}
	if !p.Status.CanTransitionTo(models.PaymentStatusCancelled) {
		return domain.ErrAlreadyProcessed
	}

	p.Status = models.PaymentStatusCancelled
	if err := s.store.PutPayment(p); err != nil {
		return fmt.Errorf("failed to store payment: %w", err)
	}
	return nil
}

// RefundPayment reverses a completed settlement exactly: the merchant
// returns the amount and the operator returns the fee, both to the customer.
// The payment's merchant or the operator may refund. There is no balance
// pre-check; if either leg would overdraw, the batch is rejected and the
// payment stays completed.
func (s *Service) RefundPayment(ctx context.Context, paymentID uint64, caller string) error {
	unlock := s.locks.lock(paymentID)
	defer unlock()

	p, err := s.getPayment(paymentID)
	if err != nil {
		return err
	}
	if !isMerchantOf(p, caller) && !s.isOperator(caller) {
		return domain.ErrUnauthorized
	}
	if !p.Status.CanTransitionTo(models.PaymentStatusRefunded) {
		return domain.ErrInvalidStatus
	}

	refund := []balance.Transfer{
		{From: p.Merchant, To: p.Customer, Amount: p.Amount},
		{From: s.cfg.Operator, To: p.Customer, Amount: p.Fee},
	}
	if err := s.balances.ApplyBatch(ctx, refund); err != nil {
		if errors.Is(err, balance.ErrInsufficientFunds) {
			return domain.ErrInsufficientBalance
		}
		return fmt.Errorf("refund transfer failed: %w", err)
	}

	p.Status = models.PaymentStatusRefunded
	if err := s.commitOrReverse(ctx, p, models.PaymentStatusCompleted, -int64(p.Amount), refund); err != nil {
		return err
	}
	return nil
}

// UpdateFeeRate sets the platform fee rate in basis points. Operator only;
// capped at MaxFeeRateBps. Fees on existing payments are frozen and do not
// change.
func (s *Service) UpdateFeeRate(rateBps uint64, caller string) error {
	if !s.isOperator(caller) {
		return domain.ErrNotOwner
	}
	if rateBps > config.MaxFeeRateBps {
		return domain.ErrInvalidRate
	}
	if err := s.store.SetFeeRate(rateBps); err != nil {
		return fmt.Errorf("failed to store fee rate: %w", err)
	}
	return nil
}

// EmergencyWithdraw moves funds from the gateway's custodial account to the
// operator. Trusted-operator escape valve: it bypasses the payment ledger
// entirely and leaves no bookkeeping trail there.
func (s *Service) EmergencyWithdraw(ctx context.Context, amount uint64, caller string) error {
	if !s.isOperator(caller) {
		return domain.ErrNotOwner
	}
	err := s.balances.Transfer(ctx, s.cfg.GatewayAccount, s.cfg.Operator, amount)
	if errors.Is(err, balance.ErrInsufficientFunds) {
		return domain.ErrInsufficientBalance
	}
	if err != nil {
		return fmt.Errorf("withdrawal failed: %w", err)
	}
	return nil
}

// Read accessors.

func (s *Service) GetPaymentDetails(paymentID uint64) (*models.Payment, error) {
	return s.getPayment(paymentID)
}

func (s *Service) GetMerchantInfo(walletAddress string) (*models.Merchant, error) {
	return s.registry.Get(walletAddress)
}

func (s *Service) GetMerchantStats(walletAddress string) (*models.MerchantStats, error) {
	m, err := s.registry.Get(walletAddress)
	if errors.Is(err, domain.ErrMerchantNotFound) {
		return nil, domain.ErrMerchantNotRegistered
	}
	if err != nil {
		return nil, err
	}
	return &models.MerchantStats{
		Name:           m.Name,
		TotalVolume:    m.TotalVolume,
		IsActive:       m.IsActive,
		RegistrationID: m.RegistrationID,
	}, nil
}

func (s *Service) GetPlatformFeeRate() (uint64, error) {
	return s.store.FeeRate()
}

func (s *Service) GetPaymentCounter() (uint64, error) {
	return s.store.PaymentCounter()
}

func (s *Service) GetCustomerPayments(walletAddress string) ([]uint64, error) {
	return s.store.CustomerPayments(walletAddress)
}

func (s *Service) getPayment(id uint64) (*models.Payment, error) {
	p, err := s.store.GetPayment(id)
	if errors.Is(err, repositories.ErrPaymentNotFound) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

// commitOrReverse writes the transitioned payment and the merchant volume
// delta. If either write fails, the status transition is undone and the
// already-applied transfers are reversed so the ledger and the balance
// service stay in step.
func (s *Service) commitOrReverse(ctx context.Context, p *models.Payment, prev models.PaymentStatus, volumeDelta int64, applied []balance.Transfer) error {
	if err := s.store.PutPayment(p); err != nil {
		s.reverse(ctx, applied)
		return fmt.Errorf("failed to store payment: %w", err)
	}
	if err := s.registry.AdjustVolume(p.Merchant, volumeDelta); err != nil {
		p.Status = prev
		if perr := s.store.PutPayment(p); perr != nil {
			log.Printf("critical: failed to restore payment %d status after volume failure: %v", p.ID, perr)
		}
		s.reverse(ctx, applied)
		return fmt.Errorf("failed to adjust merchant volume: %w", err)
	}
	return nil
}

func (s *Service) reverse(ctx context.Context, applied []balance.Transfer) {
	reversed := make([]balance.Transfer, len(applied))
	for i, t := range applied {
		reversed[i] = balance.Transfer{From: t.To, To: t.From, Amount: t.Amount}
	}
	if err := s.balances.ApplyBatch(ctx, reversed); err != nil {
		log.Printf("critical: failed to reverse settlement after commit failure: %v", err)
	}
}
