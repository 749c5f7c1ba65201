package repositories

import (
	"sync"

	"paygate/internal/models"
)

// MemoryStore is the mutex-guarded in-memory Store used by tests and the
// dev server.
type MemoryStore struct {
	mu            sync.RWMutex
	merchants     map[string]models.Merchant
	payments      map[uint64]models.Payment
	customerIndex map[string][]uint64
	merchantSeq   uint64
	paymentSeq    uint64
	feeRate       uint64
}

func NewMemoryStore(defaultFeeRate uint64) *MemoryStore {
	return &MemoryStore{
		merchants:     make(map[string]models.Merchant),
		payments:      make(map[uint64]models.Payment),
		customerIndex: make(map[string][]uint64),
		feeRate:       defaultFeeRate,
	}
}

func (s *MemoryStore) GetMerchant(walletAddress string) (*models.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.merchants[walletAddress]
	if !ok {
		return nil, ErrMerchantNotFound
	}
	return &m, nil
}

func (s *MemoryStore) PutMerchant(m *models.Merchant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[m.WalletAddress] = *m
	return nil
}

func (s *MemoryStore) GetPayment(id uint64) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	return &p, nil
}

func (s *MemoryStore) PutPayment(p *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = *p
	return nil
}

func (s *MemoryStore) DeletePayment(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.payments, id)
	return nil
}

func (s *MemoryStore) AppendCustomerPayment(customer string, paymentID uint64, max int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.customerIndex[customer]) >= max {
		return ErrIndexFull
	}
	s.customerIndex[customer] = append(s.customerIndex[customer], paymentID)
	return nil
}

func (s *MemoryStore) CustomerPayments(customer string) ([]uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.customerIndex[customer]
	out := make([]uint64, len(ids))
	copy(out, ids)
	return out, nil
}

func (s *MemoryStore) NextMerchantID() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchantSeq++
	return s.merchantSeq, nil
}

func (s *MemoryStore) NextPaymentID() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paymentSeq++
	return s.paymentSeq, nil
}

func (s *MemoryStore) PaymentCounter() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paymentSeq, nil
}

func (s *MemoryStore) FeeRate() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feeRate, nil
}

func (s *MemoryStore) SetFeeRate(rateBps uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeRate = rateBps
	return nil
}
