package repository

import (
	"context"

	"github.com/Jahanvi-07/authify/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// ItemRepository scopes every id lookup to the owning user in a single
// query, so a caller can never observe another user's record.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error)
	GetByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	UpdateByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID, name, description string) (*domain.Item, error)
	DeleteByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
}

type Repositories struct {
	User UserRepository
	Item ItemRepository
}
