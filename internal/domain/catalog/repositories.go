package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// CategoryRepository defines the persistence contract for categories
type CategoryRepository interface {
	shared.Repository[Category]
	FindByName(ctx context.Context, name string) (*Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// StoreRepository defines the persistence contract for stores
type StoreRepository interface {
	shared.Repository[Store]
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]Store, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Store, error)
}

// ContactInfoRepository defines the persistence contract for store contacts
type ContactInfoRepository interface {
	shared.Repository[ContactInfo]
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]ContactInfo, error)
}

// ProductRepository defines the persistence contract for products
type ProductRepository interface {
	shared.Repository[Product]
	FindByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]Product, error)
}

// ProductComboRepository defines the persistence contract for combos
type ProductComboRepository interface {
	shared.Repository[ProductCombo]
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]ProductCombo, error)
}
