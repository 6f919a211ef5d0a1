package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormCourierRepository implements ordering.CourierRepository using GORM
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GormCourierRepository
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// FindByID finds a courier record by ID
func (r *GormCourierRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Courier, error) {
	var courier ordering.Courier
	if err := r.db.WithContext(ctx).First(&courier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &courier, nil
}

// FindByUser finds all courier records for a user
func (r *GormCourierRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]ordering.Courier, error) {
	var couriers []ordering.Courier
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// FindAvailable finds all couriers ready to take an order
func (r *GormCourierRepository) FindAvailable(ctx context.Context) ([]ordering.Courier, error) {
	var couriers []ordering.Courier
	if err := r.db.WithContext(ctx).
		Where("status = ?", ordering.CourierStatusAvailable).
		Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// FindAll finds all courier records matching the filter
func (r *GormCourierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Courier, error) {
	var couriers []ordering.Courier
	query := applyFilter(r.db.WithContext(ctx).Model(&ordering.Courier{}), filter)
	if err := query.Find(&couriers).Error; err != nil {
		return nil, err
	}
	return couriers, nil
}

// Save creates or updates a courier record
func (r *GormCourierRepository) Save(ctx context.Context, courier *ordering.Courier) error {
	return TranslateError(r.db.WithContext(ctx).Save(courier).Error)
}

// Delete deletes a courier record
func (r *GormCourierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&ordering.Courier{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts courier records matching the filter
func (r *GormCourierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ordering.Courier{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCourierRepository implements CourierRepository
var _ ordering.CourierRepository = (*GormCourierRepository)(nil)
