package domain

type Discount struct {
	Model
	Name    string  `json:"name" gorm:"size:255;not null"`
	Percent float64 `json:"percent" gorm:"not null"`
	Active  bool    `json:"active" gorm:"default:true"`
}
