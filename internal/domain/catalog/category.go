package catalog

import (
	"github.com/delivery/backend/internal/domain/shared"
)

// Category represents a marketplace category.
// Both stores and products reference it through mandatory foreign keys.
type Category struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(20);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Rename changes the category name.
// Uniqueness is enforced at the storage layer.
func (c *Category) Rename(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = name
	c.Touch()
	return nil
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Category name cannot be empty")
	}
	if len(name) > 20 {
		return shared.NewDomainError("INVALID_INPUT", "Category name cannot exceed 20 characters")
	}
	return nil
}
