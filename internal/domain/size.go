package domain

// Size is a cup size option; ExtraPrice is added on top of the product
// base price when the size is chosen.
type Size struct {
	Model
	Name       string  `json:"name" gorm:"size:64;not null"`
	ExtraPrice float64 `json:"extraPrice"`
}
