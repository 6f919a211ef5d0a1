package ordering

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// Order is a delivery order placed from a cart.
// ClientID and CourierID are two independently typed references into the
// users table; the same user appearing on both sides is structurally
// permitted.
type Order struct {
	shared.BaseEntity
	CartID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	ProductID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	ClientID        uuid.UUID   `gorm:"type:uuid;not null;index"`
	CourierID       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Status          OrderStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	DeliveryAddress string      `gorm:"type:varchar(64);not null"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a pending order
func NewOrder(cartID, productID, clientID, courierID uuid.UUID, deliveryAddress string) (*Order, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Order requires a cart")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Order requires a product")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Order requires a client")
	}
	if courierID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Order requires a courier")
	}
	if err := validateDeliveryAddress(deliveryAddress); err != nil {
		return nil, err
	}

	return &Order{
		BaseEntity:      shared.NewBaseEntity(),
		CartID:          cartID,
		ProductID:       productID,
		ClientID:        clientID,
		CourierID:       courierID,
		Status:          OrderStatusPending,
		DeliveryAddress: deliveryAddress,
	}, nil
}

// StartDelivery moves a pending order into delivery
func (o *Order) StartDelivery() error {
	if o.Status != OrderStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only a pending order can start delivery")
	}
	o.Status = OrderStatusInDelivery
	o.Touch()
	return nil
}

// MarkDelivered completes an order that is in delivery
func (o *Order) MarkDelivered() error {
	if o.Status != OrderStatusInDelivery {
		return shared.NewDomainError("INVALID_STATE", "Only an order in delivery can be marked delivered")
	}
	o.Status = OrderStatusDelivered
	o.Touch()
	return nil
}

// Cancel aborts an order that has not reached a terminal state
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", "Order is already in a terminal state")
	}
	o.Status = OrderStatusCancelled
	o.Touch()
	return nil
}

func validateDeliveryAddress(address string) error {
	if address == "" {
		return shared.NewDomainError("INVALID_INPUT", "Delivery address cannot be empty")
	}
	if len(address) > 64 {
		return shared.NewDomainError("INVALID_INPUT", "Delivery address cannot exceed 64 characters")
	}
	return nil
}
