package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormContactInfoRepository implements catalog.ContactInfoRepository using GORM
type GormContactInfoRepository struct {
	db *gorm.DB
}

// NewGormContactInfoRepository creates a new GormContactInfoRepository
func NewGormContactInfoRepository(db *gorm.DB) *GormContactInfoRepository {
	return &GormContactInfoRepository{db: db}
}

// FindByID finds a contact by ID
func (r *GormContactInfoRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ContactInfo, error) {
	var contact catalog.ContactInfo
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// FindByStore finds all contact numbers published for a store
func (r *GormContactInfoRepository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]catalog.ContactInfo, error) {
	var contacts []catalog.ContactInfo
	if err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindAll finds all contacts matching the filter
func (r *GormContactInfoRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.ContactInfo, error) {
	var contacts []catalog.ContactInfo
	query := applyFilter(r.db.WithContext(ctx).Model(&catalog.ContactInfo{}), filter)
	if err := query.Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Save creates or updates a contact
func (r *GormContactInfoRepository) Save(ctx context.Context, contact *catalog.ContactInfo) error {
	return TranslateError(r.db.WithContext(ctx).Save(contact).Error)
}

// Delete deletes a contact
func (r *GormContactInfoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ContactInfo{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts contacts matching the filter
func (r *GormContactInfoRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.ContactInfo{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormContactInfoRepository implements ContactInfoRepository
var _ catalog.ContactInfoRepository = (*GormContactInfoRepository)(nil)
