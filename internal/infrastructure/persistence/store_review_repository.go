package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormStoreReviewRepository implements review.StoreReviewRepository using GORM
type GormStoreReviewRepository struct {
	db *gorm.DB
}

// NewGormStoreReviewRepository creates a new GormStoreReviewRepository
func NewGormStoreReviewRepository(db *gorm.DB) *GormStoreReviewRepository {
	return &GormStoreReviewRepository{db: db}
}

// FindByID finds a review by ID
func (r *GormStoreReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.StoreReview, error) {
	var rev review.StoreReview
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// FindByStore finds all reviews of a store
func (r *GormStoreReviewRepository) FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]review.StoreReview, error) {
	var reviews []review.StoreReview
	query := r.db.WithContext(ctx).Model(&review.StoreReview{}).Where("store_id = ?", storeID)
	if err := applyFilter(query, filter, "comment").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByClient finds all reviews written by a client
func (r *GormStoreReviewRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]review.StoreReview, error) {
	var reviews []review.StoreReview
	query := r.db.WithContext(ctx).Model(&review.StoreReview{}).Where("client_id = ?", clientID)
	if err := applyFilter(query, filter, "comment").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating computes the mean rating a store holds, zero when unreviewed
func (r *GormStoreReviewRepository) AverageRating(ctx context.Context, storeID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&review.StoreReview{}).
		Where("store_id = ?", storeID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

// FindAll finds all reviews matching the filter
func (r *GormStoreReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.StoreReview, error) {
	var reviews []review.StoreReview
	query := applyFilter(r.db.WithContext(ctx).Model(&review.StoreReview{}), filter, "comment")
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates or updates a review
func (r *GormStoreReviewRepository) Save(ctx context.Context, rev *review.StoreReview) error {
	return TranslateError(r.db.WithContext(ctx).Save(rev).Error)
}

// Delete deletes a review
func (r *GormStoreReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&review.StoreReview{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts reviews matching the filter
func (r *GormStoreReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&review.StoreReview{}), filter, "comment")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStoreReviewRepository implements StoreReviewRepository
var _ review.StoreReviewRepository = (*GormStoreReviewRepository)(nil)
