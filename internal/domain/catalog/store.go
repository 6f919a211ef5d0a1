package catalog

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// Store represents a store on the marketplace.
// It is owned by exactly one user and belongs to exactly one category;
// deleting either parent removes the store and its whole closure.
type Store struct {
	shared.BaseEntity
	Name        string    `gorm:"type:varchar(20);not null"`
	Description string    `gorm:"type:text"`
	Address     string    `gorm:"type:varchar(50);not null"`
	ImageKey    string    `gorm:"type:varchar(255);not null"` // opaque key into the external image storage
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Store) TableName() string {
	return "stores"
}

// NewStore creates a new store
func NewStore(ownerID, categoryID uuid.UUID, name, address, imageKey string) (*Store, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Store requires an owner")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Store requires a category")
	}
	if err := validateStoreName(name); err != nil {
		return nil, err
	}
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	return &Store{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Address:    address,
		ImageKey:   imageKey,
		OwnerID:    ownerID,
		CategoryID: categoryID,
	}, nil
}

// Update updates the store's presentation fields
func (s *Store) Update(name, description, address string) error {
	if err := validateStoreName(name); err != nil {
		return err
	}
	if err := validateAddress(address); err != nil {
		return err
	}
	s.Name = name
	s.Description = description
	s.Address = address
	s.Touch()
	return nil
}

// SetImageKey replaces the store image reference
func (s *Store) SetImageKey(key string) {
	s.ImageKey = key
	s.Touch()
}

// Recategorize moves the store to another category
func (s *Store) Recategorize(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("MISSING_RELATION", "Store requires a category")
	}
	s.CategoryID = categoryID
	s.Touch()
	return nil
}

func validateStoreName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store name cannot be empty")
	}
	if len(name) > 20 {
		return shared.NewDomainError("INVALID_INPUT", "Store name cannot exceed 20 characters")
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return shared.NewDomainError("INVALID_INPUT", "Store address cannot be empty")
	}
	if len(address) > 50 {
		return shared.NewDomainError("INVALID_INPUT", "Store address cannot exceed 50 characters")
	}
	return nil
}
