package ordering

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

func TestNewCart(t *testing.T) {
	t.Run("creates cart", func(t *testing.T) {
		cart, err := NewCart(uuid.New())
		require.NoError(t, err)
		assert.NotEmpty(t, cart.ID)
	})

	t.Run("fails without user", func(t *testing.T) {
		_, err := NewCart(uuid.Nil)
		require.Error(t, err)
	})
}

func TestNewCartItem(t *testing.T) {
	cartID := uuid.New()
	productID := uuid.New()

	t.Run("creates item", func(t *testing.T) {
		item, err := NewCartItem(cartID, productID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("fails with zero quantity", func(t *testing.T) {
		_, err := NewCartItem(cartID, productID, 0)
		assert.ErrorIs(t, err, shared.ErrDomainConstraint)
	})

	t.Run("fails with negative quantity", func(t *testing.T) {
		_, err := NewCartItem(cartID, productID, -1)
		require.Error(t, err)
	})

	t.Run("fails without cart", func(t *testing.T) {
		_, err := NewCartItem(uuid.Nil, productID, 1)
		require.Error(t, err)
	})

	t.Run("fails without product", func(t *testing.T) {
		_, err := NewCartItem(cartID, uuid.Nil, 1)
		require.Error(t, err)
	})
}

func TestCartItem_ChangeQuantity(t *testing.T) {
	item, err := NewCartItem(uuid.New(), uuid.New(), 1)
	require.NoError(t, err)

	require.NoError(t, item.ChangeQuantity(5))
	assert.Equal(t, 5, item.Quantity)

	assert.Error(t, item.ChangeQuantity(0))
	assert.Error(t, item.ChangeQuantity(-2))
}

func TestCartItem_LineTotal(t *testing.T) {
	item, err := NewCartItem(uuid.New(), uuid.New(), 2)
	require.NoError(t, err)

	unit, err := valueobject.NewPriceFromString("10.00")
	require.NoError(t, err)

	total := item.LineTotal(unit)
	assert.True(t, total.Equal(decimal.RequireFromString("20.00")))
}

func TestNewOrder(t *testing.T) {
	cartID := uuid.New()
	productID := uuid.New()
	clientID := uuid.New()
	courierID := uuid.New()

	t.Run("creates pending order", func(t *testing.T) {
		order, err := NewOrder(cartID, productID, clientID, courierID, "Lenina st. 5, apt. 10")
		require.NoError(t, err)
		assert.Equal(t, OrderStatusPending, order.Status)
	})

	t.Run("permits the same user as client and courier", func(t *testing.T) {
		order, err := NewOrder(cartID, productID, clientID, clientID, "Lenina st. 5")
		require.NoError(t, err)
		assert.Equal(t, order.ClientID, order.CourierID)
	})

	t.Run("fails without any mandatory relation", func(t *testing.T) {
		_, err := NewOrder(uuid.Nil, productID, clientID, courierID, "a")
		assert.Error(t, err)
		_, err = NewOrder(cartID, uuid.Nil, clientID, courierID, "a")
		assert.Error(t, err)
		_, err = NewOrder(cartID, productID, uuid.Nil, courierID, "a")
		assert.Error(t, err)
		_, err = NewOrder(cartID, productID, clientID, uuid.Nil, "a")
		assert.Error(t, err)
	})

	t.Run("fails with address over 64 characters", func(t *testing.T) {
		_, err := NewOrder(cartID, productID, clientID, courierID, strings.Repeat("x", 65))
		require.Error(t, err)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	newOrder := func(t *testing.T) *Order {
		order, err := NewOrder(uuid.New(), uuid.New(), uuid.New(), uuid.New(), "Lenina st. 5")
		require.NoError(t, err)
		return order
	}

	t.Run("pending to delivered", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.StartDelivery())
		assert.Equal(t, OrderStatusInDelivery, order.Status)
		require.NoError(t, order.MarkDelivered())
		assert.Equal(t, OrderStatusDelivered, order.Status)
	})

	t.Run("cannot deliver a pending order", func(t *testing.T) {
		order := newOrder(t)
		assert.Error(t, order.MarkDelivered())
	})

	t.Run("cancel from pending and in delivery", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status)

		order = newOrder(t)
		require.NoError(t, order.StartDelivery())
		require.NoError(t, order.Cancel())
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		order := newOrder(t)
		require.NoError(t, order.Cancel())
		assert.Error(t, order.Cancel())
		assert.Error(t, order.StartDelivery())
	})
}

func TestNewCourier(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()

	t.Run("creates courier record", func(t *testing.T) {
		courier, err := NewCourier(userID, orderID, CourierStatusAvailable)
		require.NoError(t, err)
		assert.True(t, courier.IsAvailable())
	})

	t.Run("fails without user or order", func(t *testing.T) {
		_, err := NewCourier(uuid.Nil, orderID, CourierStatusAvailable)
		assert.Error(t, err)
		_, err = NewCourier(userID, uuid.Nil, CourierStatusAvailable)
		assert.Error(t, err)
	})

	t.Run("fails with unknown status", func(t *testing.T) {
		_, err := NewCourier(userID, orderID, CourierStatus("sleeping"))
		require.Error(t, err)
	})
}

func TestCourier_AssignRelease(t *testing.T) {
	courier, err := NewCourier(uuid.New(), uuid.New(), CourierStatusAvailable)
	require.NoError(t, err)

	next := uuid.New()
	require.NoError(t, courier.Assign(next))
	assert.Equal(t, next, courier.CurrentOrderID)
	assert.False(t, courier.IsAvailable())

	courier.Release()
	assert.True(t, courier.IsAvailable())
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Pending", OrderStatusPending.Label(language.English))
	assert.Equal(t, "Ожидает обработки", OrderStatusPending.Label(language.Russian))
	assert.Equal(t, "Доставлен", OrderStatusDelivered.Label(language.Russian))
	assert.Equal(t, "In delivery", OrderStatusInDelivery.Label(language.German))

	assert.Equal(t, "Занят", CourierStatusBusy.Label(language.Russian))
	assert.Equal(t, "Available", CourierStatusAvailable.Label(language.English))
}
