package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Jahanvi-07/authify/internal/domain"
	"github.com/Jahanvi-07/authify/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemNameRequired = errors.New("name is required")
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

type ItemInput struct {
	Name        string
	Description string
}

// normalize trims both fields and rejects an empty name before any store
// call, so invalid input never leaves a partial write behind.
func (in ItemInput) normalize() (ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return in, ErrItemNameRequired
	}
	return in, nil
}

func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, input ItemInput) (*domain.Item, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID)
}

func (s *ItemService) Get(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	item, err := s.itemRepo.GetByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, ownerID, itemID uuid.UUID, input ItemInput) (*domain.Item, error) {
	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.UpdateByIDForOwner(ctx, ownerID, itemID, input.Name, input.Description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Delete(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	item, err := s.itemRepo.DeleteByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
