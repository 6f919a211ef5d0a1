package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormCartRepository implements ordering.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindByID finds a cart by ID
func (r *GormCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Cart, error) {
	var cart ordering.Cart
	if err := r.db.WithContext(ctx).First(&cart, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindByUser finds the cart belonging to a user
func (r *GormCartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*ordering.Cart, error) {
	var cart ordering.Cart
	if err := r.db.WithContext(ctx).First(&cart, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cart, nil
}

// FindAll finds all carts matching the filter
func (r *GormCartRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Cart, error) {
	var carts []ordering.Cart
	query := applyFilter(r.db.WithContext(ctx).Model(&ordering.Cart{}), filter)
	if err := query.Find(&carts).Error; err != nil {
		return nil, err
	}
	return carts, nil
}

// Save creates or updates a cart.
// A second cart for the same user surfaces as a unique violation.
func (r *GormCartRepository) Save(ctx context.Context, cart *ordering.Cart) error {
	return TranslateError(r.db.WithContext(ctx).Save(cart).Error)
}

// Delete deletes a cart row; use Purger.PurgeCart for the closure
func (r *GormCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Cart{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts carts matching the filter
func (r *GormCartRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Cart{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCartRepository implements CartRepository
var _ ordering.CartRepository = (*GormCartRepository)(nil)
