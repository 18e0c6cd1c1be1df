package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type mockOrderRepo struct {
	orders map[uuid.UUID]*model.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uuid.UUID]*model.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	return m.orders[id], nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Order, error) {
	var out []model.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) SetGatewayOrderID(_ context.Context, id uuid.UUID, gatewayOrderID string) error {
	if o, ok := m.orders[id]; ok {
		o.RazorpayOrderID = &gatewayOrderID
	}
	return nil
}

func (m *mockOrderRepo) MarkPaid(_ context.Context, id, userID uuid.UUID, paymentID string) (*model.Order, error) {
	o, ok := m.orders[id]
	if !ok || o.UserID != userID {
		return nil, nil
	}
	o.Status = model.OrderStatusPaid
	o.RazorpayPaymentID = &paymentID
	return o, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status model.OrderStatus) error {
	if o, ok := m.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func seedOrder(repo *mockOrderRepo, userID uuid.UUID, status model.OrderStatus) *model.Order {
	order := &model.Order{
		ID: uuid.New(), UserID: userID, OrderNumber: "POD-1-TEST01",
		Status: status, TotalAmount: 2691, Currency: "INR",
	}
	repo.orders[order.ID] = order
	return order
}

func TestOrderService_GetByID(t *testing.T) {
	repo := newMockOrderRepo()
	userID := uuid.New()
	order := seedOrder(repo, userID, model.OrderStatusPaid)

	svc := NewOrderService(repo)
	found, err := svc.GetByID(context.Background(), order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
}

func TestOrderService_GetByID_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_GetByID_OtherUser(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, uuid.New(), model.OrderStatusPaid)

	svc := NewOrderService(repo)
	_, err := svc.GetByID(context.Background(), order.ID, uuid.New())
	assert.ErrorIs(t, err, ErrOrderAccessDenied)
}

func TestOrderService_Cancel(t *testing.T) {
	for _, status := range []model.OrderStatus{
		model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusProcessing,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newMockOrderRepo()
			userID := uuid.New()
			order := seedOrder(repo, userID, status)

			svc := NewOrderService(repo)
			require.NoError(t, svc.Cancel(context.Background(), order.ID, userID))
			assert.Equal(t, model.OrderStatusCancelled, repo.orders[order.ID].Status)
		})
	}
}

func TestOrderService_Cancel_PastWindow(t *testing.T) {
	for _, status := range []model.OrderStatus{
		model.OrderStatusShipped, model.OrderStatusFulfilled,
		model.OrderStatusDelivered, model.OrderStatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			repo := newMockOrderRepo()
			userID := uuid.New()
			order := seedOrder(repo, userID, status)

			svc := NewOrderService(repo)
			err := svc.Cancel(context.Background(), order.ID, userID)

			var notCancellable *NotCancellableError
			require.ErrorAs(t, err, &notCancellable)
			assert.Equal(t, status, notCancellable.Status)
			assert.Contains(t, err.Error(), string(status))
			assert.Equal(t, status, repo.orders[order.ID].Status)
		})
	}
}

func TestOrderService_Cancel_OtherUsersOrder(t *testing.T) {
	repo := newMockOrderRepo()
	order := seedOrder(repo, uuid.New(), model.OrderStatusPending)

	svc := NewOrderService(repo)
	err := svc.Cancel(context.Background(), order.ID, uuid.New())
	assert.ErrorIs(t, err, ErrOrderAccessDenied)
	assert.Equal(t, model.OrderStatusPending, repo.orders[order.ID].Status)
}

func TestOrderService_Cancel_NotFound(t *testing.T) {
	svc := NewOrderService(newMockOrderRepo())
	err := svc.Cancel(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
