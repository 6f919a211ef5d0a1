package review

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// CourierReview is one user's review of another user acting as courier.
// Reviewer and courier are independent references into the users table.
type CourierReview struct {
	shared.BaseEntity
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment    string    `gorm:"type:text;not null"`
	Rating     int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
}

// TableName returns the table name for GORM
func (CourierReview) TableName() string {
	return "courier_reviews"
}

// NewCourierReview creates a review of a courier
func NewCourierReview(reviewerID, courierID uuid.UUID, comment string, rating int) (*CourierReview, error) {
	if reviewerID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Review requires a reviewer")
	}
	if courierID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Review requires a courier")
	}
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}

	return &CourierReview{
		BaseEntity: shared.NewBaseEntity(),
		ReviewerID: reviewerID,
		CourierID:  courierID,
		Comment:    comment,
		Rating:     rating,
	}, nil
}

// Update replaces the comment and rating
func (r *CourierReview) Update(comment string, rating int) error {
	if err := ValidateRating(rating); err != nil {
		return err
	}
	r.Comment = comment
	r.Rating = rating
	r.Touch()
	return nil
}
