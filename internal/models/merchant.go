package models

import "time"

// MaxNameLength bounds the merchant name; the registry rejects longer names
// regardless of the storage engine.
const MaxNameLength = 128

type Merchant struct {
	WalletAddress  string `gorm:"primarykey;size:64" json:"wallet_address"`
	Name           string `gorm:"size:128;not null" json:"name"`
	IsActive       bool   `gorm:"not null" json:"is_active"`
	TotalVolume    uint64 `gorm:"not null;default:0" json:"total_volume"`
	RegistrationID uint64 `gorm:"not null" json:"registration_id"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MerchantStats is the read projection returned to callers asking about a
// merchant; it never exposes more than the registry tracks.
type MerchantStats struct {
	Name           string `json:"name"`
	TotalVolume    uint64 `json:"total_volume"`
	IsActive       bool   `json:"is_active"`
	RegistrationID uint64 `json:"registration_id"`
}
