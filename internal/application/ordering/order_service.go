package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

// OrderPurger deletes an order together with every dependent record
type OrderPurger interface {
	PurgeOrder(ctx context.Context, orderID uuid.UUID) error
}

// OrderService handles order lifecycle and courier assignment
type OrderService struct {
	orderRepo   ordering.OrderRepository
	courierRepo ordering.CourierRepository
	cartRepo    ordering.CartRepository
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	purger      OrderPurger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.OrderRepository,
	courierRepo ordering.CourierRepository,
	cartRepo ordering.CartRepository,
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	purger OrderPurger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		courierRepo: courierRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		purger:      purger,
	}
}

// Place creates a pending order and assigns the courier to it.
// The client and courier references are independent; nothing stops the
// same user from appearing on both sides.
func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.cartRepo.FindByID(ctx, req.CartID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, err
	}
	courierUser, err := s.userRepo.FindByID(ctx, req.CourierID)
	if err != nil {
		return nil, err
	}
	if !courierUser.IsCourier() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Orders can only be assigned to courier accounts")
	}

	order, err := ordering.NewOrder(req.CartID, req.ProductID, req.ClientID, req.CourierID, req.DeliveryAddress)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := s.assignCourier(ctx, req.CourierID, order.ID); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves an order by ID
func (s *OrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// ListByClient retrieves a client's orders
func (s *OrderService) ListByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByClient(ctx, clientID, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListByCourier retrieves a courier's orders
func (s *OrderService) ListByCourier(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByCourier(ctx, courierID, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListByStatus retrieves orders in a lifecycle state
func (s *OrderService) ListByStatus(ctx context.Context, status string, filter shared.Filter) ([]OrderResponse, error) {
	parsed := ordering.OrderStatus(status)
	if !parsed.IsValid() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Unknown order status: "+status)
	}
	orders, err := s.orderRepo.FindByStatus(ctx, parsed, filter)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// StartDelivery moves a pending order into delivery
func (s *OrderService) StartDelivery(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	return s.transition(ctx, orderID, (*ordering.Order).StartDelivery)
}

// MarkDelivered completes an in-delivery order and releases its courier
func (s *OrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	resp, err := s.transition(ctx, orderID, (*ordering.Order).MarkDelivered)
	if err != nil {
		return nil, err
	}
	if err := s.releaseCourier(ctx, orderID); err != nil {
		return nil, err
	}
	return resp, nil
}

// Cancel aborts a non-terminal order and releases its courier
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*OrderResponse, error) {
	resp, err := s.transition(ctx, orderID, (*ordering.Order).Cancel)
	if err != nil {
		return nil, err
	}
	if err := s.releaseCourier(ctx, orderID); err != nil {
		return nil, err
	}
	return resp, nil
}

// Delete removes an order together with the courier records pointing at it
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.purger.PurgeOrder(ctx, orderID)
}

func (s *OrderService) transition(ctx context.Context, orderID uuid.UUID, step func(*ordering.Order) error) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := step(order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// assignCourier points the courier's record at the order, creating the
// record on first assignment
func (s *OrderService) assignCourier(ctx context.Context, courierUserID, orderID uuid.UUID) error {
	records, err := s.courierRepo.FindByUser(ctx, courierUserID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	if len(records) == 0 {
		courier, err := ordering.NewCourier(courierUserID, orderID, ordering.CourierStatusBusy)
		if err != nil {
			return err
		}
		return s.courierRepo.Save(ctx, courier)
	}

	courier := &records[0]
	if err := courier.Assign(orderID); err != nil {
		return err
	}
	return s.courierRepo.Save(ctx, courier)
}

// releaseCourier marks every courier record pointing at the order available
func (s *OrderService) releaseCourier(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	records, err := s.courierRepo.FindByUser(ctx, order.CourierID)
	if err != nil {
		return err
	}
	for i := range records {
		if records[i].CurrentOrderID != orderID {
			continue
		}
		records[i].Release()
		if err := s.courierRepo.Save(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

// ListAvailableCouriers retrieves couriers free to take an order
func (s *OrderService) ListAvailableCouriers(ctx context.Context) ([]CourierResponse, error) {
	couriers, err := s.courierRepo.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CourierResponse, len(couriers))
	for i := range couriers {
		responses[i] = ToCourierResponse(&couriers[i])
	}
	return responses, nil
}
