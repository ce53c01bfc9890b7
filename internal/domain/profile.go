package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// Profile is the single user row shared by the customer and staff
// surfaces; the Role field is the only thing telling them apart.
type Profile struct {
	Model
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"size:255;index"`
	Phone        string `json:"phone" gorm:"size:32"`
	Role         Role   `json:"role" gorm:"type:enum('admin','staff','customer');default:'customer'"`
	PasswordHash string `json:"-" gorm:"size:255"`
	AvatarURL    string `json:"avatarUrl"`
}
