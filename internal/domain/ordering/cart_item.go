package ordering

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// DefaultQuantity is what the service layer substitutes when a request
// omits the count; the constructor itself takes only positive quantities.
const DefaultQuantity = 1

// CartItem is a single product line inside a cart
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;default:1"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a cart line for a product
func NewCartItem(cartID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Cart item requires a cart")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Cart item requires a product")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Quantity must be positive")
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// ChangeQuantity replaces the line quantity
func (i *CartItem) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("DOMAIN_CONSTRAINT", "Quantity must be positive")
	}
	i.Quantity = quantity
	i.Touch()
	return nil
}

// LineTotal returns quantity times the given unit price.
// The price is passed in because the total always reflects the live
// product price; nothing is snapshotted on the line.
func (i *CartItem) LineTotal(unitPrice valueobject.Price) decimal.Decimal {
	return unitPrice.MulInt(int64(i.Quantity))
}
