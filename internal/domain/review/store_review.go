package review

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// Rating bounds for all review kinds
const (
	MinRating = 1
	MaxRating = 5
)

// StoreReview is a client's review of a store
type StoreReview struct {
	shared.BaseEntity
	ClientID uuid.UUID `gorm:"type:uuid;not null;index"`
	StoreID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment  string    `gorm:"type:text;not null"`
	Rating   int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
}

// TableName returns the table name for GORM
func (StoreReview) TableName() string {
	return "store_reviews"
}

// NewStoreReview creates a review of a store
func NewStoreReview(clientID, storeID uuid.UUID, comment string, rating int) (*StoreReview, error) {
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Review requires a client")
	}
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Review requires a store")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	return &StoreReview{
		BaseEntity: shared.NewBaseEntity(),
		ClientID:   clientID,
		StoreID:    storeID,
		Comment:    comment,
		Rating:     rating,
	}, nil
}

// Update replaces the comment and rating
func (r *StoreReview) Update(comment string, rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	r.Comment = comment
	r.Rating = rating
	r.Touch()
	return nil
}

// ValidateRating checks that a rating sits in the closed 1..5 range
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return shared.NewDomainError("DOMAIN_CONSTRAINT", "Rating must be between 1 and 5")
	}
	return nil
}
