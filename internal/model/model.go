package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusFulfilled  OrderStatus = "fulfilled"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Cancellable reports whether an order in this status may still be
// cancelled by the customer. Once an order is shipped or fulfilled it is
// out of our hands.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing:
		return true
	}
	return false
}

var progressSteps = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// ProgressStep maps a status to its index in the order tracking timeline.
// Cancelled orders (and fulfilled, which shares the shipped slot) have no
// step of their own; cancelled returns -1.
func (s OrderStatus) ProgressStep() int {
	if s == OrderStatusFulfilled {
		s = OrderStatusShipped
	}
	for i, step := range progressSteps {
		if step == s {
			return i
		}
	}
	return -1
}

type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	FullName  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DesignPosition is the normalized placement of a customer design within
// its product placement area: x/y are percentage offsets in [-50, 50],
// scale a percentage in [50, 150].
type DesignPosition struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale int     `json:"scale"`
}

type Address struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Phone        string    `json:"phone"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

type CartItem struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ProductID      int
	VariantID      int
	ProductName    string
	VariantName    string
	Color          string
	Size           string
	DesignURL      *string
	MockupURL      *string
	Quantity       int
	UnitPrice      int64
	DesignPosition *DesignPosition
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Order struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	OrderNumber       string
	Status            OrderStatus
	Subtotal          int64
	ShippingCost      int64
	Tax               int64
	TotalAmount       int64
	Currency          string
	RazorpayOrderID   *string
	RazorpayPaymentID *string
	ShippingAddress   Address
	Items             []OrderItem
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderItem is an immutable snapshot of a cart item taken at checkout.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   int
	VariantID   int
	ProductName string
	VariantName string
	Color       string
	Size        string
	DesignURL   *string
	MockupURL   *string
	Quantity    int
	UnitPrice   int64
}

type OrderMessage struct {
	OrderID uuid.UUID `json:"order_id"`
	UserID  uuid.UUID `json:"user_id"`
}
