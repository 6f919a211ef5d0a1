package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormProductComboRepository implements catalog.ProductComboRepository using GORM
type GormProductComboRepository struct {
	db *gorm.DB
}

// NewGormProductComboRepository creates a new GormProductComboRepository
func NewGormProductComboRepository(db *gorm.DB) *GormProductComboRepository {
	return &GormProductComboRepository{db: db}
}

// FindByID finds a combo by ID
func (r *GormProductComboRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ProductCombo, error) {
	var combo catalog.ProductCombo
	if err := r.db.WithContext(ctx).First(&combo, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &combo, nil
}

// FindByStore finds all combos offered by a store
func (r *GormProductComboRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]catalog.ProductCombo, error) {
	var combos []catalog.ProductCombo
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("name ASC").
		Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// FindAll finds all combos matching the filter
func (r *GormProductComboRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ProductCombo, error) {
	var combos []catalog.ProductCombo
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.ProductCombo{}), filter, "name", "description")
	if err := query.Find(&combos).Error; err != nil {
		return nil, err
	}
	return combos, nil
}

// Save creates or updates a combo
func (r *GormProductComboRepository) Save(ctx context.Context, combo *catalog.ProductCombo) error {
	return TranslateError(r.db.WithContext(ctx).Save(combo).Error)
}

// Delete deletes a combo
func (r *GormProductComboRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductCombo{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts combos matching the filter
func (r *GormProductComboRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&catalog.ProductCombo{}), filter, "name", "description")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormProductComboRepository implements ProductComboRepository
var _ catalog.ProductComboRepository = (*GormProductComboRepository)(nil)
