package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/middleware"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, dto.OrderListResponse{Orders: items, Total: len(items)})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.orderService.GetByID(c.Request.Context(), orderID, middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if errors.Is(err, service.ErrOrderAccessDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	var req dto.CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order ID is required"})
		return
	}

	err := h.orderService.Cancel(c.Request.Context(), req.OrderID, middleware.GetUserID(c))
	if err != nil {
		var notCancellable *service.NotCancellableError
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrOrderAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		case errors.As(err, &notCancellable):
			c.JSON(http.StatusBadRequest, gin.H{"error": notCancellable.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.CancelOrderResponse{Success: true})
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
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
	return dto.OrderResponse{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            order.Status,
		ProgressStep:      order.Status.ProgressStep(),
		Subtotal:          order.Subtotal,
		ShippingCost:      order.ShippingCost,
		Tax:               order.Tax,
		TotalAmount:       order.TotalAmount,
		Currency:          order.Currency,
		RazorpayOrderID:   order.RazorpayOrderID,
		RazorpayPaymentID: order.RazorpayPaymentID,
		ShippingAddress:   order.ShippingAddress,
		Items:             items,
		CreatedAt:         order.CreatedAt,
		UpdatedAt:         order.UpdatedAt,
	}
}
