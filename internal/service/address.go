package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/dto"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/model"
	"github.com/SrikrishnaTophakhane/Srikrishna-Memmoire-WEBSITE/internal/repository"
)

var (
	ErrAddressNotFound = errors.New("address not found")
	ErrInvalidAddress  = errors.New("missing required address fields")
)

type AddressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) List(ctx context.Context, userID uuid.UUID) ([]model.Address, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateAddressRequest) (*model.Address, error) {
	addr, err := addressFromRequest(userID, req)
	if err != nil {
		return nil, err
	}
	if err := s.addressRepo.Create(ctx, addr); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return addr, nil
}

func (s *AddressService) SetDefault(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.addressRepo.SetDefault(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("set default address: %w", err)
	}
	return nil
}

func (s *AddressService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.addressRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrAddressNotFound
		}
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}

func addressFromRequest(userID uuid.UUID, req dto.CreateAddressRequest) (*model.Address, error) {
	if req.FullName == "" || req.AddressLine1 == "" || req.City == "" ||
		req.State == "" || req.PostalCode == "" || req.Phone == "" {
		return nil, ErrInvalidAddress
	}
	country := req.Country
	if country == "" {
		country = "IN"
	}
	return &model.Address{
		UserID:       userID,
		FullName:     req.FullName,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      country,
		Phone:        req.Phone,
		IsDefault:    req.IsDefault,
	}, nil
}
