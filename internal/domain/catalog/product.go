package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// Product represents an item sold by a store.
// It belongs to exactly one store and exactly one category.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(30);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageKey    string          `gorm:"type:varchar(255);not null"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(storeID, categoryID uuid.UUID, name, description string, price valueobject.Price, imageKey string) (*Product, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Product requires a store")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Product requires a category")
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}

	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price.Amount(),
		ImageKey:    imageKey,
		StoreID:     storeID,
		CategoryID:  categoryID,
	}, nil
}

// Update updates the product's presentation fields
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	p.Name = name
	p.Description = description
	p.Touch()
	return nil
}

// SetPrice replaces the product price
func (p *Product) SetPrice(price valueobject.Price) {
	p.Price = price.Amount()
	p.Touch()
}

// SetImageKey replaces the product image reference
func (p *Product) SetImageKey(key string) {
	p.ImageKey = key
	p.Touch()
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot be empty")
	}
	if len(name) > 30 {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot exceed 30 characters")
	}
	return nil
}
