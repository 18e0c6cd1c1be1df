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

type CartHandler struct {
	svc *service.CartService
}

func NewCartHandler(svc *service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, toCartItemResponse(&item))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := &model.CartItem{
		UserID:         middleware.GetUserID(c),
		ProductID:      req.ProductID,
		VariantID:      req.VariantID,
		ProductName:    req.ProductName,
		VariantName:    req.VariantName,
		Color:          req.Color,
		Size:           req.Size,
		DesignURL:      req.DesignURL,
		MockupURL:      req.MockupURL,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		DesignPosition: req.DesignPosition,
	}
	if err := h.svc.Add(c.Request.Context(), item); err != nil {
		if errors.Is(err, service.ErrInvalidCartItem) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := toCartItemResponse(item)
	c.JSON(http.StatusCreated, gin.H{"item": resp})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.UpdateQuantity(c.Request.Context(), itemID, middleware.GetUserID(c), req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
		case errors.Is(err, service.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

func (h *CartHandler) DeleteItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), itemID, middleware.GetUserID(c)); err != nil {
		if errors.Is(err, service.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func toCartItemResponse(item *model.CartItem) dto.CartItemResponse {
	return dto.CartItemResponse{
		ID:             item.ID,
		ProductID:      item.ProductID,
		VariantID:      item.VariantID,
		ProductName:    item.ProductName,
		VariantName:    item.VariantName,
		Color:          item.Color,
		Size:           item.Size,
		DesignURL:      item.DesignURL,
		MockupURL:      item.MockupURL,
		Quantity:       item.Quantity,
		UnitPrice:      item.UnitPrice,
		DesignPosition: item.DesignPosition,
		CreatedAt:      item.CreatedAt,
	}
}
