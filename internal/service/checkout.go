package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/gateway"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/repository"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrGatewayFailure   = errors.New("payment gateway request failed")
)

const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCOD      = "cod"

	// ShippingCost is the flat shipping charge in paise, applied to every
	// non-empty cart regardless of weight or item count.
	ShippingCost int64 = 99

	fulfillmentQueue = "orders"
)

// taxRate is 18% GST, applied to the subtotal and rounded half away from
// zero to whole paise.
var taxRate = decimal.RequireFromString("0.18")

type Pricing struct {
	Subtotal int64
	Shipping int64
	Tax      int64
	Total    int64
}

// ComputePricing derives the order totals from cart items, in paise.
// An empty cart prices to zero across the board.
func ComputePricing(items []model.CartItem) Pricing {
	if len(items) == 0 {
		return Pricing{}
	}
	var subtotal int64
	for _, item := range items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	return Pricing{
		Subtotal: subtotal,
		Shipping: ShippingCost,
		Tax:      tax,
		Total:    subtotal + ShippingCost + tax,
	}
}

// PaymentGateway is the slice of the Razorpay client checkout depends on.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*gateway.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type CheckoutService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	addressRepo repository.AddressRepository
	gateway     PaymentGateway
	redisClient *redis.Client
	amqpCh      *amqp.Channel
	currency    string
}

func NewCheckoutService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	gw PaymentGateway,
	redisClient *redis.Client,
	amqpCh *amqp.Channel,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		addressRepo: addressRepo,
		gateway:     gw,
		redisClient: redisClient,
		amqpCh:      amqpCh,
		currency:    currency,
	}
}

// CreateOrder prices the authoritative cart, persists a pending order with
// its item snapshots, and for online payments creates the matching gateway
// order. The client-submitted amount is never trusted.
func (s *CheckoutService) CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	shippingAddr, err := s.resolveAddress(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	pricing := ComputePricing(items)
	currency := req.Currency
	if currency == "" {
		currency = s.currency
	}

	order := &model.Order{
		UserID:          userID,
		OrderNumber:     newOrderNumber(),
		Status:          model.OrderStatusPending,
		Subtotal:        pricing.Subtotal,
		ShippingCost:    pricing.Shipping,
		Tax:             pricing.Tax,
		TotalAmount:     pricing.Total,
		Currency:        currency,
		ShippingAddress: *shippingAddr,
		Items:           snapshotItems(items),
	}
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	resp := &dto.CreateOrderResponse{
		InternalOrderID: order.ID,
		OrderNumber:     order.OrderNumber,
		Amount:          pricing.Total,
		Currency:        currency,
	}

	if req.PaymentMethod == PaymentMethodCOD {
		// COD orders stay pending until fulfillment picks them up. The
		// cart is intentionally left alone here, mirroring the original
		// storefront; only verified online payments clear it.
		return resp, nil
	}

	gwOrder, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		Amount:   pricing.Total,
		Currency: currency,
		Receipt:  order.OrderNumber,
		Notes: map[string]string{
			"internal_order_id": order.ID.String(),
			"user_id":           userID.String(),
		},
	})
	if err != nil {
		// The pending order row already exists; the caller is told the
		// checkout failed and may retry, which creates a fresh order.
		return nil, fmt.Errorf("%w: %w", ErrGatewayFailure, err)
	}

	if err := s.orderRepo.SetGatewayOrderID(ctx, order.ID, gwOrder.ID); err != nil {
		return nil, fmt.Errorf("record gateway order id: %w", err)
	}

	resp.OrderID = gwOrder.ID
	resp.Amount = gwOrder.Amount
	resp.Currency = gwOrder.Currency
	return resp, nil
}

// VerifyPayment checks the gateway signature and, on success, marks the
// order paid, clears the cart, and hands the order to the fulfillment
// queue. A bad signature mutates nothing.
func (s *CheckoutService) VerifyPayment(ctx context.Context, userID uuid.UUID, req dto.VerifyPaymentRequest) (*model.Order, error) {
	if !s.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return nil, ErrInvalidSignature
	}

	order, err := s.orderRepo.MarkPaid(ctx, req.InternalOrderID, userID, req.RazorpayPaymentID)
	if err != nil {
		return nil, fmt.Errorf("mark order paid: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	if s.redisClient != nil {
		s.redisClient.Del(ctx, cartCacheKey(userID))
	}

	// Hand off to the fulfillment worker for submission to production.
	if s.amqpCh != nil {
		msg, _ := json.Marshal(model.OrderMessage{OrderID: order.ID, UserID: userID})
		_ = s.amqpCh.PublishWithContext(ctx, "", fulfillmentQueue, false, false, amqp.Publishing{
			ContentType:  "application/json",
			Body:         msg,
			DeliveryMode: amqp.Persistent,
		})
	}

	return order, nil
}

func (s *CheckoutService) resolveAddress(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*model.Address, error) {
	if req.ShippingAddressID != nil {
		addr, err := s.addressRepo.GetByID(ctx, *req.ShippingAddressID, userID)
		if err != nil {
			return nil, fmt.Errorf("get address: %w", err)
		}
		if addr == nil {
			return nil, ErrAddressNotFound
		}
		return addr, nil
	}
	if req.ShippingAddress != nil {
		return addressFromRequest(userID, *req.ShippingAddress)
	}
	return nil, ErrInvalidAddress
}

func snapshotItems(items []model.CartItem) []model.OrderItem {
	out := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.OrderItem{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			Color:       item.Color,
			Size:        item.Size,
			DesignURL:   item.DesignURL,
			MockupURL:   item.MockupURL,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return out
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newOrderNumber builds a human-readable order number:
// POD-<unix millis>-<6 random uppercase alphanumerics>.
func newOrderNumber() string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = orderNumberAlphabet[int(b)%len(orderNumberAlphabet)]
	}
	return fmt.Sprintf("POD-%d-%s", time.Now().UnixMilli(), buf)
}
