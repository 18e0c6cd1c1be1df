package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderAccessDenied = errors.New("access denied")
)

// NotCancellableError reports a cancel attempt against an order whose
// status is past the cancellable window. The current status is part of the
// message shown to the caller.
type NotCancellableError struct {
	Status model.OrderStatus
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("cannot cancel order with status: %s", e.Status)
}

type OrderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

func (s *OrderService) GetByID(ctx context.Context, orderID, userID uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrOrderAccessDenied
	}
	return order, nil
}

func (s *OrderService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Cancel moves an order to cancelled. Only pending, paid, and processing
// orders may be cancelled; anything already shipped or fulfilled is
// rejected with the current status in the error.
func (s *OrderService) Cancel(ctx context.Context, orderID, userID uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	if order.UserID != userID {
		return ErrOrderAccessDenied
	}
	if !order.Status.Cancellable() {
		return &NotCancellableError{Status: order.Status}
	}
	if err := s.orderRepo.UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
		return fmt.Errorf("cancel order: %w", err)
	}
	return nil
}
