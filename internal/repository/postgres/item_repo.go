package postgres

import (
	"context"

	"github.com/Jahanvi-07/authify/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error) {
	// Non-nil so an empty result serializes as [] rather than null.
	items := []*domain.Item{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "id = ? AND user_id = ?", itemID, ownerID).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID, name, description string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ? AND user_id = ?", itemID, ownerID).Error; err != nil {
			return err
		}
		item.Name = name
		item.Description = description
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) DeleteByIDForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ? AND user_id = ?", itemID, ownerID).Error; err != nil {
			return err
		}
		return tx.Delete(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
