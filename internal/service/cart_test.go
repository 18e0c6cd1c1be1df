package service

import (
	"context"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type mockCartRepo struct {
	items map[uuid.UUID]*model.CartItem
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{items: make(map[uuid.UUID]*model.CartItem)}
}

func (m *mockCartRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockCartRepo) Add(_ context.Context, item *model.CartItem) error {
	item.ID = uuid.New()
	m.items[item.ID] = item
	return nil
}

func (m *mockCartRepo) UpdateQuantity(_ context.Context, itemID, userID uuid.UUID, quantity int) error {
	item, ok := m.items[itemID]
	if !ok || item.UserID != userID {
		return pgx.ErrNoRows
	}
	item.Quantity = quantity
	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, itemID, userID uuid.UUID) error {
	item, ok := m.items[itemID]
	if !ok || item.UserID != userID {
		return pgx.ErrNoRows
	}
	delete(m.items, itemID)
	return nil
}

func (m *mockCartRepo) Clear(_ context.Context, userID uuid.UUID) error {
	for id, item := range m.items {
		if item.UserID == userID {
			delete(m.items, id)
		}
	}
	return nil
}

func TestCartService_Add(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, nil)

	item := &model.CartItem{UserID: uuid.New(), ProductID: 71, VariantID: 71000, Quantity: 2, UnitPrice: 799}
	require.NoError(t, svc.Add(context.Background(), item))
	assert.Len(t, repo.items, 1)
}

func TestCartService_Add_DefaultsQuantity(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, nil)

	item := &model.CartItem{UserID: uuid.New(), ProductID: 71, VariantID: 71000, Quantity: 0, UnitPrice: 799}
	require.NoError(t, svc.Add(context.Background(), item))
	assert.Equal(t, 1, item.Quantity)
}

func TestCartService_Add_MissingProduct(t *testing.T) {
	svc := NewCartService(newMockCartRepo(), nil)

	err := svc.Add(context.Background(), &model.CartItem{UserID: uuid.New(), VariantID: 71000})
	assert.ErrorIs(t, err, ErrInvalidCartItem)

	err = svc.Add(context.Background(), &model.CartItem{UserID: uuid.New(), ProductID: 71})
	assert.ErrorIs(t, err, ErrInvalidCartItem)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, nil)
	userID := uuid.New()

	item := &model.CartItem{UserID: userID, ProductID: 71, VariantID: 71000, Quantity: 1, UnitPrice: 799}
	require.NoError(t, svc.Add(context.Background(), item))

	require.NoError(t, svc.UpdateQuantity(context.Background(), item.ID, userID, 3))
	assert.Equal(t, 3, repo.items[item.ID].Quantity)
}

func TestCartService_UpdateQuantity_Invalid(t *testing.T) {
	svc := NewCartService(newMockCartRepo(), nil)
	err := svc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartService_UpdateQuantity_OtherUsersItem(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, nil)

	item := &model.CartItem{UserID: uuid.New(), ProductID: 71, VariantID: 71000, Quantity: 1, UnitPrice: 799}
	require.NoError(t, svc.Add(context.Background(), item))

	err := svc.UpdateQuantity(context.Background(), item.ID, uuid.New(), 2)
	assert.ErrorIs(t, err, ErrCartItemNotFound)
	assert.Equal(t, 1, repo.items[item.ID].Quantity)
}

func TestCartService_Delete_NotFound(t *testing.T) {
	svc := NewCartService(newMockCartRepo(), nil)
	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrCartItemNotFound)
}

func TestCartService_Clear(t *testing.T) {
	repo := newMockCartRepo()
	svc := NewCartService(repo, nil)
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		item := &model.CartItem{UserID: userID, ProductID: 71, VariantID: 71000 + i, Quantity: 1, UnitPrice: 799}
		require.NoError(t, svc.Add(context.Background(), item))
	}
	other := &model.CartItem{UserID: uuid.New(), ProductID: 146, VariantID: 146000, Quantity: 1, UnitPrice: 1599}
	require.NoError(t, svc.Add(context.Background(), other))

	require.NoError(t, svc.Clear(context.Background(), userID))

	mine, _ := svc.List(context.Background(), userID)
	assert.Empty(t, mine)
	assert.Len(t, repo.items, 1)
}
