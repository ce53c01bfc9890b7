package domain

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
)

type Table struct {
	Model
	Number int         `json:"number" gorm:"not null;uniqueIndex"`
	Seats  int         `json:"seats"`
	Status TableStatus `json:"status" gorm:"type:enum('available','occupied');default:'available'"`
}
