package domain

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderServed     OrderStatus = "served"
	OrderCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Order struct {
	Model
	OrderNumber   string        `json:"orderNumber" gorm:"size:64;uniqueIndex"`
	CustomerID    *uint64       `json:"customerId" gorm:"index"`
	Status        OrderStatus   `json:"status" gorm:"type:enum('pending','processing','served','cancelled');default:'pending'"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"type:enum('unpaid','paid','refunded');default:'unpaid'"`
	VoucherID     *uint64       `json:"voucherId"`
	DiscountID    *uint64       `json:"discountId"`
	TotalAmount   float64       `json:"totalAmount" gorm:"not null"`
	CancelledAt   *time.Time    `json:"cancelledAt"`
	Items         []OrderItem   `json:"items" gorm:"foreignKey:OrderID"`
}

// OrderItem snapshots the unit price and loyalty points of one product
// line at order time. Items are only ever created as a batch tied to one
// order, never independently.
type OrderItem struct {
	Model
	OrderID   uint64  `json:"orderId" gorm:"not null;index"`
	ProductID uint64  `json:"productId" gorm:"not null;index"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unitPrice" gorm:"not null"`
	Points    int     `json:"points"`
}

func (it OrderItem) Subtotal() float64 { return it.UnitPrice * float64(it.Quantity) }
