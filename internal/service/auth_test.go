package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
)

type mockUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "maker@example.com", Password: "password123", FullName: "Design Maker",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "maker@example.com", resp.User.Email)

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "maker@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	req := dto.RegisterRequest{Email: "dupe@example.com", Password: "password123", FullName: "Dupe"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, dto.RegisterRequest{
		Email: "maker@example.com", Password: "password123", FullName: "Design Maker",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "maker@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_TokenClaims(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), "test-secret", time.Hour)

	resp, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "claims@example.com", Password: "password123", FullName: "Claims",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "claims@example.com", claims["email"])
}
