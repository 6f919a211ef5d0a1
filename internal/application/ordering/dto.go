package ordering

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

var validate = validator.New()

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return nil
}

// AddCartItemRequest represents a request to put a product into a cart.
// A zero quantity marks the field as omitted; the service substitutes the
// default of one before the quantity reaches the domain layer.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=0"`
}

// CartItemResponse represents one cart line with its live price
type CartItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartResponse represents a cart with its lines and computed total
type CartResponse struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}

// PlaceOrderRequest represents a request to place an order
type PlaceOrderRequest struct {
	CartID          uuid.UUID `json:"cart_id" validate:"required"`
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	ClientID        uuid.UUID `json:"client_id" validate:"required"`
	CourierID       uuid.UUID `json:"courier_id" validate:"required"`
	DeliveryAddress string    `json:"delivery_address" validate:"required,min=1,max=64"`
}

// OrderResponse represents an order in service responses
type OrderResponse struct {
	ID              uuid.UUID `json:"id"`
	CartID          uuid.UUID `json:"cart_id"`
	ProductID       uuid.UUID `json:"product_id"`
	ClientID        uuid.UUID `json:"client_id"`
	CourierID       uuid.UUID `json:"courier_id"`
	Status          string    `json:"status"`
	DeliveryAddress string    `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CourierResponse represents a courier assignment in service responses
type CourierResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Status         string    `json:"status"`
	CurrentOrderID uuid.UUID `json:"current_order_id"`
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(order *ordering.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID,
		CartID:          order.CartID,
		ProductID:       order.ProductID,
		ClientID:        order.ClientID,
		CourierID:       order.CourierID,
		Status:          string(order.Status),
		DeliveryAddress: order.DeliveryAddress,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}
	return responses
}

// ToCourierResponse converts a domain courier record to a response DTO
func ToCourierResponse(courier *ordering.Courier) CourierResponse {
	return CourierResponse{
		ID:             courier.ID,
		UserID:         courier.UserID,
		Status:         string(courier.Status),
		CurrentOrderID: courier.CurrentOrderID,
	}
}
