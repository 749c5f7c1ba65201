package repositories

import (
	"errors"
	"fmt"

	"paygate/internal/models"

	"gorm.io/gorm"
)

const (
	counterMerchants = "merchant_registrations"
	counterPayments  = "payments"
	settingFeeRate   = "fee_rate_bps"
)

type counterRow struct {
	Name  string `gorm:"primarykey;size:32"`
	Value uint64 `gorm:"not null"`
}

func (counterRow) TableName() string { return "counters" }

type customerPaymentRow struct {
	ID        uint   `gorm:"primarykey"`
	Customer  string `gorm:"size:64;index;not null"`
	PaymentID uint64 `gorm:"not null"`
}

func (customerPaymentRow) TableName() string { return "customer_payments" }

// GormStore is the postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	if db == nil {
		panic("db is required")
	}
	return &GormStore{db: db}
}

// Migrate creates the schema and seeds the counter and fee-rate rows.
func (s *GormStore) Migrate(defaultFeeRate uint64) error {
	err := s.db.AutoMigrate(
		&models.Merchant{},
		&models.Payment{},
		&customerPaymentRow{},
		&counterRow{},
	)
	if err != nil {
		return err
	}
	for _, name := range []string{counterMerchants, counterPayments} {
		row := counterRow{Name: name, Value: 0}
		if err := s.db.FirstOrCreate(&row, counterRow{Name: name}).Error; err != nil {
			return err
		}
	}
	rate := counterRow{Name: settingFeeRate, Value: defaultFeeRate}
	return s.db.FirstOrCreate(&rate, counterRow{Name: settingFeeRate}).Error
}

func (s *GormStore) GetMerchant(walletAddress string) (*models.Merchant, error) {
	var m models.Merchant
	err := s.db.First(&m, "wallet_address = ?", walletAddress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get merchant: %w", err)
	}
	return &m, nil
}

func (s *GormStore) PutMerchant(m *models.Merchant) error {
	return s.db.Save(m).Error
}

func (s *GormStore) GetPayment(id uint64) (*models.Payment, error) {
	var p models.Payment
	err := s.db.First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &p, nil
}

func (s *GormStore) PutPayment(p *models.Payment) error {
	return s.db.Save(p).Error
}

func (s *GormStore) DeletePayment(id uint64) error {
	return s.db.Delete(&models.Payment{}, "id = ?", id).Error
}

func (s *GormStore) AppendCustomerPayment(customer string, paymentID uint64, max int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&customerPaymentRow{}).Where("customer = ?", customer).Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(max) {
			return ErrIndexFull
		}
		return tx.Create(&customerPaymentRow{Customer: customer, PaymentID: paymentID}).Error
	})
}

func (s *GormStore) CustomerPayments(customer string) ([]uint64, error) {
	var rows []customerPaymentRow
	err := s.db.Where("customer = ?", customer).Order("id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, len(rows))
	for i, r := range rows {
		ids[i] = r.PaymentID
	}
	return ids, nil
}

func (s *GormStore) nextCounter(name string) (uint64, error) {
	var next uint64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&counterRow{}).Where("name = ?", name).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		var row counterRow
		if err := tx.First(&row, "name = ?", name).Error; err != nil {
			return err
		}
		next = row.Value
		return nil
	})
	return next, err
}

func (s *GormStore) NextMerchantID() (uint64, error) {
	return s.nextCounter(counterMerchants)
}

func (s *GormStore) NextPaymentID() (uint64, error) {
	return s.nextCounter(counterPayments)
}

func (s *GormStore) PaymentCounter() (uint64, error) {
	var row counterRow
	if err := s.db.First(&row, "name = ?", counterPayments).Error; err != nil {
		return 0, err
	}
	return row.Value, nil
}

func (s *GormStore) FeeRate() (uint64, error) {
	var row counterRow
	if err := s.db.First(&row, "name = ?", settingFeeRate).Error; err != nil {
		return 0, err
	}
	return row.Value, nil
}

func (s *GormStore) SetFeeRate(rateBps uint64) error {
	return s.db.Model(&counterRow{}).Where("name = ?", settingFeeRate).
		UpdateColumn("value", rateBps).Error
}
