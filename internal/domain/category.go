package domain

type Category struct {
	Model
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description"`
}
