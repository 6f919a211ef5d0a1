package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// ProductCombo is a bundle offered by a store at its own price.
// It carries no references to the products composing it; the bundle
// contents live only in its name and description.
type ProductCombo struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(30);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageKey    string          `gorm:"type:varchar(255);not null"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ProductCombo) TableName() string {
	return "product_combos"
}

// NewProductCombo creates a new combo
func NewProductCombo(storeID uuid.UUID, name, description string, price valueobject.Price, imageKey string) (*ProductCombo, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Combo requires a store")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &ProductCombo{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price.Amount(),
		ImageKey:    imageKey,
		StoreID:     storeID,
	}, nil
}

// Update updates the combo's presentation fields
func (c *ProductCombo) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	c.Name = name
	c.Description = description
	c.Touch()
	return nil
}

// SetPrice replaces the combo price
func (c *ProductCombo) SetPrice(price valueobject.Price) {
	c.Price = price.Amount()
	c.Touch()
}
