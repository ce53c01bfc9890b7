package http

import "time"

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type OrderItemRequest struct {
	ProductID uint64  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	UnitPrice float64 `json:"unitPrice"`
	Points    int     `json:"points"`
}

type PlaceOrderRequest struct {
	CustomerID    *uint64            `json:"customerId"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	VoucherID     *uint64            `json:"voucherId"`
	DiscountID    *uint64            `json:"discountId"`
	Items         []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderPaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	CategoryID  *uint64 `json:"categoryId"`
	SizeID      *uint64 `json:"sizeId"`
	Status      string  `json:"status"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	CategoryID  *uint64  `json:"categoryId"`
	SizeID      *uint64  `json:"sizeId"`
	Status      *string  `json:"status"`
}

type NamedRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SizeRequest struct {
	Name       string   `json:"name"`
	ExtraPrice *float64 `json:"extraPrice"`
}

type TableRequest struct {
	Number int    `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
}

type InventoryRequest struct {
	Name      string   `json:"name"`
	Unit      string   `json:"unit"`
	Quantity  *float64 `json:"quantity"`
	Threshold *float64 `json:"threshold"`
}

type AdjustInventoryRequest struct {
	Delta float64 `json:"delta" binding:"required"`
}

type VoucherRequest struct {
	Code      string     `json:"code"`
	Amount    float64    `json:"amount"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

type DiscountRequest struct {
	Name    string  `json:"name"`
	Percent float64 `json:"percent"`
	Active  *bool   `json:"active"`
}

type ProfileRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
}

type AwardPointsRequest struct {
	ProfileID uint64  `json:"profileId" binding:"required"`
	Points    int     `json:"points" binding:"required"`
	OrderID   *uint64 `json:"orderId"`
}
