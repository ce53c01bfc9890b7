package domain

type InventoryItem struct {
	Model
	Name      string  `json:"name" gorm:"size:255;not null"`
	Unit      string  `json:"unit" gorm:"size:32"`
	Quantity  float64 `json:"quantity"`
	Threshold float64 `json:"threshold"`
}

// LowStock reports whether the item has fallen to or below its restock
// threshold.
func (i InventoryItem) LowStock() bool { return i.Threshold > 0 && i.Quantity <= i.Threshold }
