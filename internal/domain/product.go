package domain

type ProductStatus string

const (
	ProductAvailable   ProductStatus = "available"
	ProductUnavailable ProductStatus = "unavailable"
)

type Product struct {
	Model
	Name        string        `json:"name" gorm:"size:255;not null"`
	Description string        `json:"description"`
	Price       float64       `json:"price" gorm:"not null"`
	ImageURL    string        `json:"imageUrl"`
	CategoryID  *uint64       `json:"categoryId" gorm:"index"`
	SizeID      *uint64       `json:"sizeId"`
	Status      ProductStatus `json:"status" gorm:"type:enum('available','unavailable');default:'available'"`
}
