package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormCartItemRepository implements ordering.CartItemRepository using GORM
type GormCartItemRepository struct {
	db *gorm.DB
}

// NewGormCartItemRepository creates a new GormCartItemRepository
func NewGormCartItemRepository(db *gorm.DB) *GormCartItemRepository {
	return &GormCartItemRepository{db: db}
}

// FindByID finds a cart line by ID
func (r *GormCartItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.CartItem, error) {
	var item ordering.CartItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCart finds all lines inside a cart
func (r *GormCartItemRepository) FindByCart(ctx context.Context, cartID uuid.UUID) ([]ordering.CartItem, error) {
	var items []ordering.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByCartAndProduct finds the line a cart holds for a product
func (r *GormCartItemRepository) FindByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*ordering.CartItem, error) {
	var item ordering.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds all cart lines matching the filter
func (r *GormCartItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.CartItem, error) {
	var items []ordering.CartItem
	query := applyFilter(r.db.WithContext(ctx).Model(&ordering.CartItem{}), filter)
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Save creates or updates a cart line
func (r *GormCartItemRepository) Save(ctx context.Context, item *ordering.CartItem) error {
	return TranslateError(r.db.WithContext(ctx).Save(item).Error)
}

// Delete deletes a cart line
func (r *GormCartItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.CartItem{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts cart lines matching the filter
func (r *GormCartItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.CartItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCartItemRepository implements CartItemRepository
var _ ordering.CartItemRepository = (*GormCartItemRepository)(nil)
