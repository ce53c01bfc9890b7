package domain

import "time"

// Voucher carries no deletion stamp: the backend removes voucher rows
// outright instead of soft-deleting them.
type Voucher struct {
	BareModel
	Code      string     `json:"code" gorm:"size:64;uniqueIndex;not null"`
	Amount    float64    `json:"amount" gorm:"not null"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (v Voucher) Expired(now time.Time) bool {
	return v.ExpiresAt != nil && now.After(*v.ExpiresAt)
}
