package ordering

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, clientID, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByCourier(ctx context.Context, courierID uuid.UUID, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, courierID, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByStatus(ctx context.Context, status ordering.OrderStatus, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCourierRepository is a mock implementation of CourierRepository
type MockCourierRepository struct {
	mock.Mock
}

func (m *MockCourierRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Courier), args.Error(1)
}

func (m *MockCourierRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]ordering.Courier, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]ordering.Courier), args.Error(1)
}

func (m *MockCourierRepository) FindAvailable(ctx context.Context) ([]ordering.Courier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]ordering.Courier), args.Error(1)
}

func (m *MockCourierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]ordering.Courier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]ordering.Courier), args.Error(1)
}

func (m *MockCourierRepository) Save(ctx context.Context, courier *ordering.Courier) error {
	args := m.Called(ctx, courier)
	return args.Error(0)
}

func (m *MockCourierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role identity.Role, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, role, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockOrderPurger is a mock implementation of OrderPurger
type MockOrderPurger struct {
	mock.Mock
}

func (m *MockOrderPurger) PurgeOrder(ctx context.Context, orderID uuid.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type orderServiceMocks struct {
	orders   *MockOrderRepository
	couriers *MockCourierRepository
	carts    *MockCartRepository
	products *MockProductRepository
	users    *MockUserRepository
	purger   *MockOrderPurger
}

func newTestOrderService(t *testing.T) (*OrderService, orderServiceMocks) {
	t.Helper()
	mocks := orderServiceMocks{
		orders:   new(MockOrderRepository),
		couriers: new(MockCourierRepository),
		carts:    new(MockCartRepository),
		products: new(MockProductRepository),
		users:    new(MockUserRepository),
		purger:   new(MockOrderPurger),
	}
	service := NewOrderService(mocks.orders, mocks.couriers, mocks.carts, mocks.products, mocks.users, mocks.purger)
	return service, mocks
}

func TestOrderService_Place(t *testing.T) {
	ctx := context.Background()

	t.Run("places a pending order and assigns the courier", func(t *testing.T) {
		service, mocks := newTestOrderService(t)

		client, err := identity.NewUser("client", identity.RoleClient)
		require.NoError(t, err)
		courierUser, err := identity.NewUser("courier", identity.RoleCourier)
		require.NoError(t, err)

		cart, err := ordering.NewCart(client.ID)
		require.NoError(t, err)
		product := newTestProduct(t, "10.00")

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.products.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.users.On("FindByID", ctx, client.ID).Return(client, nil)
		mocks.users.On("FindByID", ctx, courierUser.ID).Return(courierUser, nil)
		mocks.orders.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
		mocks.couriers.On("FindByUser", ctx, courierUser.ID).Return([]ordering.Courier{}, nil)
		mocks.couriers.On("Save", ctx, mock.MatchedBy(func(c *ordering.Courier) bool {
			return c.UserID == courierUser.ID && c.Status == ordering.CourierStatusBusy
		})).Return(nil)

		resp, err := service.Place(ctx, PlaceOrderRequest{
			CartID:          cart.ID,
			ProductID:       product.ID,
			ClientID:        client.ID,
			CourierID:       courierUser.ID,
			DeliveryAddress: "5 Delivery Ln",
		})

		require.NoError(t, err)
		assert.Equal(t, string(ordering.OrderStatusPending), resp.Status)
		mocks.couriers.AssertExpectations(t)
	})

	t.Run("allows the client to deliver their own order", func(t *testing.T) {
		service, mocks := newTestOrderService(t)

		user, err := identity.NewUser("solo", identity.RoleCourier)
		require.NoError(t, err)
		cart, err := ordering.NewCart(user.ID)
		require.NoError(t, err)
		product := newTestProduct(t, "10.00")

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.products.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.users.On("FindByID", ctx, user.ID).Return(user, nil)
		mocks.orders.On("Save", ctx, mock.AnythingOfType("*ordering.Order")).Return(nil)
		mocks.couriers.On("FindByUser", ctx, user.ID).Return([]ordering.Courier{}, nil)
		mocks.couriers.On("Save", ctx, mock.AnythingOfType("*ordering.Courier")).Return(nil)

		resp, err := service.Place(ctx, PlaceOrderRequest{
			CartID:          cart.ID,
			ProductID:       product.ID,
			ClientID:        user.ID,
			CourierID:       user.ID,
			DeliveryAddress: "5 Delivery Ln",
		})

		require.NoError(t, err)
		assert.Equal(t, resp.ClientID, resp.CourierID)
	})

	t.Run("rejects a non-courier assignee", func(t *testing.T) {
		service, mocks := newTestOrderService(t)

		client, err := identity.NewUser("client", identity.RoleClient)
		require.NoError(t, err)
		other, err := identity.NewUser("other", identity.RoleClient)
		require.NoError(t, err)
		cart, err := ordering.NewCart(client.ID)
		require.NoError(t, err)
		product := newTestProduct(t, "10.00")

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.products.On("FindByID", ctx, product.ID).Return(product, nil)
		mocks.users.On("FindByID", ctx, client.ID).Return(client, nil)
		mocks.users.On("FindByID", ctx, other.ID).Return(other, nil)

		_, err = service.Place(ctx, PlaceOrderRequest{
			CartID:          cart.ID,
			ProductID:       product.ID,
			ClientID:        client.ID,
			CourierID:       other.ID,
			DeliveryAddress: "5 Delivery Ln",
		})

		assert.ErrorIs(t, err, shared.ErrDomainConstraint)
		mocks.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	newPendingOrder := func(t *testing.T) *ordering.Order {
		t.Helper()
		order, err := ordering.NewOrder(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "5 Delivery Ln")
		require.NoError(t, err)
		return order
	}

	t.Run("pending moves to in delivery", func(t *testing.T) {
		service, mocks := newTestOrderService(t)
		order := newPendingOrder(t)

		mocks.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orders.On("Save", ctx, order).Return(nil)

		resp, err := service.StartDelivery(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, string(ordering.OrderStatusInDelivery), resp.Status)
	})

	t.Run("delivered releases the courier", func(t *testing.T) {
		service, mocks := newTestOrderService(t)
		order := newPendingOrder(t)
		require.NoError(t, order.StartDelivery())

		courier, err := ordering.NewCourier(order.CourierID, order.ID, ordering.CourierStatusBusy)
		require.NoError(t, err)

		mocks.orders.On("FindByID", ctx, order.ID).Return(order, nil)
		mocks.orders.On("Save", ctx, order).Return(nil)
		mocks.couriers.On("FindByUser", ctx, order.CourierID).Return([]ordering.Courier{*courier}, nil)
		mocks.couriers.On("Save", ctx, mock.MatchedBy(func(c *ordering.Courier) bool {
			return c.Status == ordering.CourierStatusAvailable
		})).Return(nil)

		resp, err := service.MarkDelivered(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, string(ordering.OrderStatusDelivered), resp.Status)
		mocks.couriers.AssertExpectations(t)
	})

	t.Run("delivered order cannot be cancelled", func(t *testing.T) {
		service, mocks := newTestOrderService(t)
		order := newPendingOrder(t)
		require.NoError(t, order.StartDelivery())
		require.NoError(t, order.MarkDelivered())

		mocks.orders.On("FindByID", ctx, order.ID).Return(order, nil)

		_, err := service.Cancel(ctx, order.ID)
		assert.ErrorIs(t, err, shared.ErrInvalidState)
		mocks.orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestOrderService_ListByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown status", func(t *testing.T) {
		service, _ := newTestOrderService(t)

		_, err := service.ListByStatus(ctx, "shipped", shared.DefaultFilter())
		assert.ErrorIs(t, err, shared.ErrDomainConstraint)
	})

	t.Run("lists orders in a state", func(t *testing.T) {
		service, mocks := newTestOrderService(t)

		order, err := ordering.NewOrder(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "5 Delivery Ln")
		require.NoError(t, err)

		mocks.orders.On("FindByStatus", ctx, ordering.OrderStatusPending, mock.Anything).
			Return([]ordering.Order{*order}, nil)

		orders, err := service.ListByStatus(ctx, "pending", shared.DefaultFilter())
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	service, mocks := newTestOrderService(t)
	orderID := uuid.New()
	mocks.purger.On("PurgeOrder", ctx, orderID).Return(nil)

	require.NoError(t, service.Delete(ctx, orderID))
	mocks.purger.AssertExpectations(t)
}
