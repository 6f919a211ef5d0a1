package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
)

// ReviewService handles store and courier reviews
type ReviewService struct {
	storeReviewRepo   review.StoreReviewRepository
	courierReviewRepo review.CourierReviewRepository
	storeRepo         catalog.StoreRepository
	userRepo          identity.UserRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	storeReviewRepo review.StoreReviewRepository,
	courierReviewRepo review.CourierReviewRepository,
	storeRepo catalog.StoreRepository,
	userRepo identity.UserRepository,
) *ReviewService {
	return &ReviewService{
		storeReviewRepo:   storeReviewRepo,
		courierReviewRepo: courierReviewRepo,
		storeRepo:         storeRepo,
		userRepo:          userRepo,
	}
}

// RateStore records a client's review of a store
func (s *ReviewService) RateStore(ctx context.Context, req RateStoreRequest) (*StoreReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, err
	}

	rev, err := review.NewStoreReview(req.ClientID, req.StoreID, req.Comment, req.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.storeReviewRepo.Save(ctx, rev); err != nil {
		return nil, err
	}

	resp := ToStoreReviewResponse(rev)
	return &resp, nil
}

// RateCourier records a review of a courier
func (s *ReviewService) RateCourier(ctx context.Context, req RateCourierRequest) (*CourierReviewResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.ReviewerID); err != nil {
		return nil, err
	}
	courier, err := s.userRepo.FindByID(ctx, req.CourierID)
	if err != nil {
		return nil, err
	}
	if !courier.IsCourier() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Reviewed user is not a courier")
	}

	rev, err := review.NewCourierReview(req.ReviewerID, req.CourierID, req.Comment, req.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.courierReviewRepo.Save(ctx, rev); err != nil {
		return nil, err
	}

	resp := ToCourierReviewResponse(rev)
	return &resp, nil
}

// ListStoreReviews retrieves the reviews of a store
func (s *ReviewService) ListStoreReviews(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]StoreReviewResponse, error) {
	reviews, err := s.storeReviewRepo.FindByStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}
	return ToStoreReviewResponses(reviews), nil
}

// ListCourierReviews retrieves the reviews of a courier
func (s *ReviewService) ListCourierReviews(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]CourierReviewResponse, error) {
	reviews, err := s.courierReviewRepo.FindByCourier(ctx, courierID, filter)
	if err != nil {
		return nil, err
	}
	return ToCourierReviewResponses(reviews), nil
}

// StoreRating aggregates the reviews of a store
func (s *ReviewService) StoreRating(ctx context.Context, storeID uuid.UUID) (*RatingSummary, error) {
	average, err := s.storeReviewRepo.AverageRating(ctx, storeID)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	filter.Filters["store_id"] = storeID
	count, err := s.storeReviewRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: average, Count: count}, nil
}

// CourierRating aggregates the reviews of a courier
func (s *ReviewService) CourierRating(ctx context.Context, courierID uuid.UUID) (*RatingSummary, error) {
	average, err := s.courierReviewRepo.AverageRating(ctx, courierID)
	if err != nil {
		return nil, err
	}

	filter := shared.DefaultFilter()
	filter.Filters["courier_id"] = courierID
	count, err := s.courierReviewRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: average, Count: count}, nil
}

// DeleteStoreReview removes one store review
func (s *ReviewService) DeleteStoreReview(ctx context.Context, reviewID uuid.UUID) error {
	return s.storeReviewRepo.Delete(ctx, reviewID)
}

// DeleteCourierReview removes one courier review
func (s *ReviewService) DeleteCourierReview(ctx context.Context, reviewID uuid.UUID) error {
	return s.courierReviewRepo.Delete(ctx, reviewID)
}
