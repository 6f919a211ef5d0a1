package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// StoreReviewRepository defines the persistence contract for store reviews
type StoreReviewRepository interface {
	shared.Repository[StoreReview]
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]StoreReview, error)
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]StoreReview, error)
	AverageRating(ctx context.Context, storeID uuid.UUID) (float64, error)
}

// CourierReviewRepository defines the persistence contract for courier reviews
type CourierReviewRepository interface {
	shared.Repository[CourierReview]
	FindByCourier(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]CourierReview, error)
	FindByReviewer(ctx context.Context, reviewerID uuid.UUID, filter shared.Filter) ([]CourierReview, error)
	AverageRating(ctx context.Context, courierID uuid.UUID) (float64, error)
}
