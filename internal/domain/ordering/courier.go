package ordering

import (
	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// Courier wraps a user with delivery availability and the order
// currently assigned to them.
type Courier struct {
	shared.BaseEntity
	UserID         uuid.UUID     `gorm:"type:uuid;not null;index"`
	Status         CourierStatus `gorm:"type:varchar(12);not null"`
	CurrentOrderID uuid.UUID     `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Courier) TableName() string {
	return "couriers"
}

// NewCourier creates a courier assignment record
func NewCourier(userID, currentOrderID uuid.UUID, status CourierStatus) (*Courier, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Courier requires a user")
	}
	if currentOrderID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_RELATION", "Courier requires a current order")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Unknown courier status: "+string(status))
	}

	return &Courier{
		BaseEntity:     shared.NewBaseEntity(),
		UserID:         userID,
		Status:         status,
		CurrentOrderID: currentOrderID,
	}, nil
}

// Assign points the courier at a new order and marks them busy
func (c *Courier) Assign(orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return shared.NewDomainError("MISSING_RELATION", "Courier requires a current order")
	}
	c.CurrentOrderID = orderID
	c.Status = CourierStatusBusy
	c.Touch()
	return nil
}

// Release marks the courier available again
func (c *Courier) Release() {
	c.Status = CourierStatusAvailable
	c.Touch()
}

// IsAvailable returns true if the courier can take an order
func (c *Courier) IsAvailable() bool {
	return c.Status == CourierStatusAvailable
}
