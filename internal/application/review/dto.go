package review

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
)

var validate = validator.New()

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return nil
}

// RateStoreRequest represents a request to review a store
type RateStoreRequest struct {
	ClientID uuid.UUID `json:"client_id" validate:"required"`
	StoreID  uuid.UUID `json:"store_id" validate:"required"`
	Comment  string    `json:"comment"`
	Rating   int       `json:"rating" validate:"required,min=1,max=5"`
}

// RateCourierRequest represents a request to review a courier
type RateCourierRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
	CourierID  uuid.UUID `json:"courier_id" validate:"required"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating" validate:"required,min=1,max=5"`
}

// StoreReviewResponse represents a store review in service responses
type StoreReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	ClientID  uuid.UUID `json:"client_id"`
	StoreID   uuid.UUID `json:"store_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// CourierReviewResponse represents a courier review in service responses
type CourierReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	CourierID  uuid.UUID `json:"courier_id"`
	Comment    string    `json:"comment"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingSummary aggregates the reviews of one subject
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ToStoreReviewResponse converts a domain store review to a response DTO
func ToStoreReviewResponse(rev *review.StoreReview) StoreReviewResponse {
	return StoreReviewResponse{
		ID:        rev.ID,
		ClientID:  rev.ClientID,
		StoreID:   rev.StoreID,
		Comment:   rev.Comment,
		Rating:    rev.Rating,
		CreatedAt: rev.CreatedAt,
	}
}

// ToStoreReviewResponses converts a slice of domain store reviews
func ToStoreReviewResponses(reviews []review.StoreReview) []StoreReviewResponse {
	responses := make([]StoreReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToStoreReviewResponse(&reviews[i])
	}
	return responses
}

// ToCourierReviewResponse converts a domain courier review to a response DTO
func ToCourierReviewResponse(rev *review.CourierReview) CourierReviewResponse {
	return CourierReviewResponse{
		ID:         rev.ID,
		ReviewerID: rev.ReviewerID,
		CourierID:  rev.CourierID,
		Comment:    rev.Comment,
		Rating:     rev.Rating,
		CreatedAt:  rev.CreatedAt,
	}
}

// ToCourierReviewResponses converts a slice of domain courier reviews
func ToCourierReviewResponses(reviews []review.CourierReview) []CourierReviewResponse {
	responses := make([]CourierReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToCourierReviewResponse(&reviews[i])
	}
	return responses
}
