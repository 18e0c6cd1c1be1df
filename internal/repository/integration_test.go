package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

func createTestUser(t *testing.T, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "hashed", FullName: "Test User", Phone: "9876543210"}
	require.NoError(t, NewUserRepository(testPool).Create(context.Background(), user))
	return user
}

func testAddress(userID uuid.UUID, isDefault bool) *model.Address {
	return &model.Address{
		UserID: userID, FullName: "Asha Rao", AddressLine1: "14 MG Road",
		City: "Bengaluru", State: "Karnataka", PostalCode: "560001",
		Country: "IN", Phone: "9876543210", IsDefault: isDefault,
	}
}

func TestUserRepo_CreateAndGetByEmail(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewUserRepository(testPool)
	ctx := context.Background()

	user := createTestUser(t, "test@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)

	found, err := repo.GetByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Test User", found.FullName)

	missing, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestAddressRepo_DefaultUniqueness(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewAddressRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "addr@example.com")

	first := testAddress(user.ID, true)
	require.NoError(t, repo.Create(ctx, first))

	second := testAddress(user.ID, false)
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.SetDefault(ctx, second.ID, user.ID))

	addresses, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// The default sorts first.
	assert.Equal(t, second.ID, addresses[0].ID)
}

func TestAddressRepo_SetDefault_WrongUser(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewAddressRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "addr2@example.com")

	addr := testAddress(user.ID, false)
	require.NoError(t, repo.Create(ctx, addr))

	err := repo.SetDefault(ctx, addr.ID, uuid.New())
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestCartRepo_Flow(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewCartRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "cart@example.com")

	designURL := "http://localhost:8080/uploads/designs/x/1.png"
	item := &model.CartItem{
		UserID: user.ID, ProductID: 71, VariantID: 71000,
		ProductName: "Unisex Staple T-Shirt", VariantName: "White / M",
		Color: "White", Size: "M", DesignURL: &designURL,
		Quantity: 2, UnitPrice: 799,
		DesignPosition: &model.DesignPosition{X: 10, Y: -5, Scale: 120},
	}
	require.NoError(t, repo.Add(ctx, item))

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	require.NotNil(t, items[0].DesignPosition)
	assert.Equal(t, 120, items[0].DesignPosition.Scale)
	assert.Equal(t, -5.0, items[0].DesignPosition.Y)

	require.NoError(t, repo.UpdateQuantity(ctx, item.ID, user.ID, 5))
	items, _ = repo.ListByUser(ctx, user.ID)
	assert.Equal(t, 5, items[0].Quantity)

	// Another user cannot touch the item.
	assert.ErrorIs(t, repo.UpdateQuantity(ctx, item.ID, uuid.New(), 1), pgx.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID, uuid.New()), pgx.ErrNoRows)

	require.NoError(t, repo.Delete(ctx, item.ID, user.ID))
	items, _ = repo.ListByUser(ctx, user.ID)
	assert.Empty(t, items)
}

func TestCartRepo_Clear(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewCartRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "clear@example.com")

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Add(ctx, &model.CartItem{
			UserID: user.ID, ProductID: 71, VariantID: 71000 + i, Quantity: 1, UnitPrice: 799,
		}))
	}
	require.NoError(t, repo.Clear(ctx, user.ID))

	items, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderRepo_CreateAndGet(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewOrderRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "order@example.com")

	order := &model.Order{
		UserID: user.ID, OrderNumber: "POD-1-TEST01",
		Status: model.OrderStatusPending,
		Subtotal: 2197, ShippingCost: 99, Tax: 395, TotalAmount: 2691,
		Currency:        "INR",
		ShippingAddress: *testAddress(user.ID, false),
		Items: []model.OrderItem{
			{ProductID: 71, VariantID: 71000, ProductName: "Unisex Staple T-Shirt",
				VariantName: "White / M", Color: "White", Size: "M", Quantity: 2, UnitPrice: 799},
			{ProductID: 19, VariantID: 19000, ProductName: "White Glossy Mug",
				VariantName: "White / 11oz", Color: "White", Size: "11oz", Quantity: 1, UnitPrice: 599},
		},
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)

	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, model.OrderStatusPending, found.Status)
	assert.Equal(t, int64(2691), found.TotalAmount)
	assert.Equal(t, "Asha Rao", found.ShippingAddress.FullName)
	require.Len(t, found.Items, 2)

	orders, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)
}

func TestOrderRepo_MarkPaid(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewOrderRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "paid@example.com")

	order := &model.Order{
		UserID: user.ID, OrderNumber: "POD-2-TEST02",
		Status: model.OrderStatusPending, TotalAmount: 1279, Currency: "INR",
		ShippingAddress: *testAddress(user.ID, false),
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.SetGatewayOrderID(ctx, order.ID, "order_gw_123"))

	// Wrong owner finds nothing and mutates nothing.
	paid, err := repo.MarkPaid(ctx, order.ID, uuid.New(), "pay_abc")
	require.NoError(t, err)
	assert.Nil(t, paid)

	paid, err = repo.MarkPaid(ctx, order.ID, user.ID, "pay_abc")
	require.NoError(t, err)
	require.NotNil(t, paid)
	assert.Equal(t, model.OrderStatusPaid, paid.Status)
	require.NotNil(t, paid.RazorpayPaymentID)
	assert.Equal(t, "pay_abc", *paid.RazorpayPaymentID)
	require.NotNil(t, paid.RazorpayOrderID)
	assert.Equal(t, "order_gw_123", *paid.RazorpayOrderID)
}

func TestOrderRepo_UpdateStatus(t *testing.T) {
	cleanupTable(t, "order_items", "orders", "cart_items", "addresses", "users")

	repo := NewOrderRepository(testPool)
	ctx := context.Background()
	user := createTestUser(t, "status@example.com")

	order := &model.Order{
		UserID: user.ID, OrderNumber: "POD-3-TEST03",
		Status: model.OrderStatusPaid, TotalAmount: 1279, Currency: "INR",
		ShippingAddress: *testAddress(user.ID, false),
	}
	require.NoError(t, repo.Create(ctx, order))

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, model.OrderStatusProcessing))
	found, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusProcessing, found.Status)
}
