package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/shared"
)

// CartRepository defines the persistence contract for carts
type CartRepository interface {
	shared.Repository[Cart]
	FindByUser(ctx context.Context, userID uuid.UUID) (*Cart, error)
}

// CartItemRepository defines the persistence contract for cart lines
type CartItemRepository interface {
	shared.Repository[CartItem]
	FindByCart(ctx context.Context, cartID uuid.UUID) ([]CartItem, error)
	FindByCartAndProduct(ctx context.Context, cartID, productID uuid.UUID) (*CartItem, error)
}

// OrderRepository defines the persistence contract for orders
type OrderRepository interface {
	shared.Repository[Order]
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByCourier(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindByStatus(ctx context.Context, status OrderStatus, filter shared.Filter) ([]Order, error)
}

// CourierRepository defines the persistence contract for courier records
type CourierRepository interface {
	shared.Repository[Courier]
	FindByUser(ctx context.Context, userID uuid.UUID) ([]Courier, error)
	FindAvailable(ctx context.Context) ([]Courier, error)
}
