package domain

// CustomerPoint is one loyalty ledger entry, usually written when an
// order is placed for a known customer.
type CustomerPoint struct {
	Model
	ProfileID uint64  `json:"profileId" gorm:"not null;index"`
	OrderID   *uint64 `json:"orderId"`
	Points    int     `json:"points" gorm:"not null"`
}
