package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/catalog"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

// --- Auth ---

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone,omitempty"`
}

// --- Catalog ---

type ProductDetailResponse struct {
	Product  ProductResponse   `json:"product"`
	Variants []catalog.Variant `json:"variants"`
}

type ProductResponse struct {
	catalog.Product
	Category string `json:"category,omitempty"`
}

type CategoryProductsResponse struct {
	Category string            `json:"category"`
	Products []catalog.Product `json:"products"`
}

type CatalogResponse struct {
	Categories []catalog.Category `json:"categories"`
	Products   []catalog.Product  `json:"products"`
}

type SearchResponse struct {
	Products []catalog.Product `json:"products"`
}

// --- Cart ---

type AddCartItemRequest struct {
	ProductID      int                   `json:"printful_product_id" binding:"required"`
	VariantID      int                   `json:"printful_variant_id" binding:"required"`
	ProductName    string                `json:"product_name" binding:"required"`
	VariantName    string                `json:"variant_name" binding:"required"`
	Color          string                `json:"color"`
	Size           string                `json:"size"`
	DesignURL      *string               `json:"design_url"`
	MockupURL      *string               `json:"mockup_url"`
	Quantity       int                   `json:"quantity"`
	UnitPrice      int64                 `json:"unit_price" binding:"required,min=0"`
	DesignPosition *model.DesignPosition `json:"design_config"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type CartItemResponse struct {
	ID             uuid.UUID             `json:"id"`
	ProductID      int                   `json:"printful_product_id"`
	VariantID      int                   `json:"printful_variant_id"`
	ProductName    string                `json:"product_name"`
	VariantName    string                `json:"variant_name"`
	Color          string                `json:"color,omitempty"`
	Size           string                `json:"size,omitempty"`
	DesignURL      *string               `json:"design_url"`
	MockupURL      *string               `json:"mockup_url"`
	Quantity       int                   `json:"quantity"`
	UnitPrice      int64                 `json:"unit_price"`
	DesignPosition *model.DesignPosition `json:"design_config,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

// --- Addresses ---

type CreateAddressRequest struct {
	FullName     string `json:"full_name"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	IsDefault    bool   `json:"is_default"`
}

type AddressListResponse struct {
	Addresses []model.Address `json:"addresses"`
}

// --- Checkout / payment ---

type CreateOrderRequest struct {
	// Amount is what the client believes it owes; the server recomputes
	// pricing from the cart and ignores this for anything but logging.
	Amount            int64                 `json:"amount"`
	Currency          string                `json:"currency"`
	ShippingAddressID *uuid.UUID            `json:"shipping_address_id"`
	ShippingAddress   *CreateAddressRequest `json:"shippingAddress"`
	PaymentMethod     string                `json:"paymentMethod" binding:"required,oneof=razorpay cod"`
}

type CreateOrderResponse struct {
	OrderID         string    `json:"orderId,omitempty"` // gateway order id, online payments only
	InternalOrderID uuid.UUID `json:"internalOrderId"`
	OrderNumber     string    `json:"orderNumber"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string    `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string    `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string    `json:"razorpay_signature" binding:"required"`
	InternalOrderID   uuid.UUID `json:"internal_order_id" binding:"required"`
}

type VerifyPaymentResponse struct {
	Success bool         `json:"success"`
	Order   OrderSummary `json:"order"`
}

type OrderSummary struct {
	ID          uuid.UUID         `json:"id"`
	OrderNumber string            `json:"order_number"`
	Status      model.OrderStatus `json:"status"`
}

type PaymentConfigResponse struct {
	KeyID    string `json:"keyId"`
	Currency string `json:"currency"`
}

// --- Orders ---

type CancelOrderRequest struct {
	OrderID uuid.UUID `json:"orderId" binding:"required"`
}

type CancelOrderResponse struct {
	Success bool `json:"success"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	OrderNumber       string              `json:"order_number"`
	Status            model.OrderStatus   `json:"status"`
	ProgressStep      int                 `json:"progress_step"`
	Subtotal          int64               `json:"subtotal"`
	ShippingCost      int64               `json:"shipping_cost"`
	Tax               int64               `json:"tax"`
	TotalAmount       int64               `json:"total_amount"`
	Currency          string              `json:"currency"`
	RazorpayOrderID   *string             `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string             `json:"razorpay_payment_id,omitempty"`
	ShippingAddress   model.Address       `json:"shipping_address"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type OrderItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   int       `json:"printful_product_id"`
	VariantID   int       `json:"printful_variant_id"`
	ProductName string    `json:"product_name"`
	VariantName string    `json:"variant_name"`
	Color       string    `json:"color,omitempty"`
	Size        string    `json:"size,omitempty"`
	DesignURL   *string   `json:"design_url"`
	MockupURL   *string   `json:"mockup_url"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int64     `json:"unit_price"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Uploads / mockups ---

type UploadResponse struct {
	URL     string `json:"url"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

type MockupRequest struct {
	ProductID int                   `json:"productId" binding:"required"`
	DesignURL string                `json:"designUrl" binding:"required"`
	Scale     int                   `json:"scale"`
	Position  *model.DesignPosition `json:"position"`
}

type MockupResponse struct {
	Status    string       `json:"status"`
	MockupURL *string      `json:"mockupUrl"`
	Message   string       `json:"message,omitempty"`
	Config    MockupConfig `json:"config"`
}

type MockupConfig struct {
	Scale    int                   `json:"scale"`
	Position *model.DesignPosition `json:"position"`
}
