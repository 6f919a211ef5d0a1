package catalog

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// ContactInfo is a phone number published for a store.
// A store may hold any number of them.
type ContactInfo struct {
	shared.BaseEntity
	Phone   valueobject.PhoneNumber `gorm:"type:varchar(20);not null"`
	StoreID uuid.UUID               `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ContactInfo) TableName() string {
	return "contact_infos"
}

// NewContactInfo creates a new store contact number
func NewContactInfo(storeID uuid.UUID, phone valueobject.PhoneNumber) (*ContactInfo, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Contact info requires a store")
	}
	if phone.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Contact info requires a phone number")
	}

	return &ContactInfo{
		BaseEntity: shared.NewBaseEntity(),
		Phone:      phone,
		StoreID:    storeID,
	}, nil
}
