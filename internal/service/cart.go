package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/repository"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidCartItem  = errors.New("product and variant are required")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

const cartCacheTTL = 60 * time.Second

func cartCacheKey(userID uuid.UUID) string { return "cart:" + userID.String() }

type CartService struct {
	cartRepo    repository.CartRepository
	redisClient *redis.Client
}

func NewCartService(cartRepo repository.CartRepository, redisClient *redis.Client) *CartService {
	return &CartService{cartRepo: cartRepo, redisClient: redisClient}
}

// List returns the user's cart items, newest first. The rendered cart view
// is cached briefly; every mutation drops the cache.
func (s *CartService) List(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cartCacheKey(userID)).Result(); err == nil {
			var items []model.CartItem
			if json.Unmarshal([]byte(cached), &items) == nil {
				return items, nil
			}
		}
	}

	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(items); err == nil {
			s.redisClient.Set(ctx, cartCacheKey(userID), data, cartCacheTTL)
		}
	}
	return items, nil
}

func (s *CartService) Add(ctx context.Context, item *model.CartItem) error {
	if item.ProductID == 0 || item.VariantID == 0 {
		return ErrInvalidCartItem
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	s.invalidate(ctx, item.UserID)
	return nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, itemID, userID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if err := s.cartRepo.UpdateQuantity(ctx, itemID, userID, quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("update cart item: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *CartService) Delete(ctx context.Context, itemID, userID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, itemID, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("delete cart item: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *CartService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, cartCacheKey(userID))
	}
}
