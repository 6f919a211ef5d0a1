package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
)

// GormCourierReviewRepository implements review.CourierReviewRepository using GORM
type GormCourierReviewRepository struct {
	db *gorm.DB
}

// NewGormCourierReviewRepository creates a new GormCourierReviewRepository
func NewGormCourierReviewRepository(db *gorm.DB) *GormCourierReviewRepository {
	return &GormCourierReviewRepository{db: db}
}

// FindByID finds a review by ID
func (r *GormCourierReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.CourierReview, error) {
	var rev review.CourierReview
	if err := r.db.WithContext(ctx).First(&rev, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

// FindByCourier finds all reviews a courier received
func (r *GormCourierReviewRepository) FindByCourier(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]review.CourierReview, error) {
	var reviews []review.CourierReview
	query := r.db.WithContext(ctx).Model(&review.CourierReview{}).Where("courier_id = ?", courierID)
	if err := applyFilter(query, filter, "comment").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByReviewer finds all reviews a user wrote about couriers
func (r *GormCourierReviewRepository) FindByReviewer(ctx context.Context, reviewerID uuid.UUID, filter shared.Filter) ([]review.CourierReview, error) {
	var reviews []review.CourierReview
	query := r.db.WithContext(ctx).Model(&review.CourierReview{}).Where("reviewer_id = ?", reviewerID)
	if err := applyFilter(query, filter, "comment").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating computes the mean rating a courier holds, zero when unreviewed
func (r *GormCourierReviewRepository) AverageRating(ctx context.Context, courierID uuid.UUID) (float64, error) {
	var avg float64
	if err := r.db.WithContext(ctx).
		Model(&review.CourierReview{}).
		Where("courier_id = ?", courierID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error; err != nil {
		return 0, err
	}
	return avg, nil
}

// FindAll finds all reviews matching the filter
func (r *GormCourierReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.CourierReview, error) {
	var reviews []review.CourierReview
	query := applyFilter(r.db.WithContext(ctx).Model(&review.CourierReview{}), filter, "comment")
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Save creates or updates a review
func (r *GormCourierReviewRepository) Save(ctx context.Context, rev *review.CourierReview) error {
	return TranslateError(r.db.WithContext(ctx).Save(rev).Error)
}

// Delete deletes a review
func (r *GormCourierReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&review.CourierReview{}, "id = ?", id)
	if result.Error != nil {
		return TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts reviews matching the filter
func (r *GormCourierReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applySearch(r.db.WithContext(ctx).Model(&review.CourierReview{}), filter, "comment")
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCourierReviewRepository implements CourierReviewRepository
var _ review.CourierReviewRepository = (*GormCourierReviewRepository)(nil)
