package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/middleware"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/service"
)

type CheckoutHandler struct {
	svc      *service.CheckoutService
	keyID    string
	currency string
}

func NewCheckoutHandler(svc *service.CheckoutService, keyID, currency string) *CheckoutHandler {
	return &CheckoutHandler{svc: svc, keyID: keyID, currency: currency}
}

// PaymentConfig exposes the public gateway key the browser needs to open
// the payment popup. The secret never leaves the server.
func (h *CheckoutHandler) PaymentConfig(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PaymentConfigResponse{KeyID: h.keyID, Currency: h.currency})
}

func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.svc.CreateOrder(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		case errors.Is(err, service.ErrInvalidAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "shipping address is required"})
		case errors.Is(err, service.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment order"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.svc.VerifyPayment(c.Request.Context(), middleware.GetUserID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment signature"})
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "payment verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success: true,
		Order: dto.OrderSummary{
			ID:          order.ID,
			OrderNumber: order.OrderNumber,
			Status:      order.Status,
		},
	})
}
