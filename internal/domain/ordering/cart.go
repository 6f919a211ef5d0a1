package ordering

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// Cart holds the items a user intends to order.
// Each user has at most one cart; the storage layer enforces the
// one-to-one relationship with a unique index.
type Cart struct {
	shared.BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Cart requires a user")
	}

	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}, nil
}
