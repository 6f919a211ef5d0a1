package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
	"github.com/delivery/backend/internal/infrastructure/persistence"
)

// marketplaceGraph is a fully connected fixture: an owner with a store and
// product, a client with a cart and an order, and a courier on that order.
type marketplaceGraph struct {
	owner    *identity.User
	client   *identity.User
	courier  *identity.User
	category *catalog.Category
	store    *catalog.Store
	product  *catalog.Product
	cart     *ordering.Cart
	item     *ordering.CartItem
	order    *ordering.Order
	record   *ordering.Courier
}

func seedGraph(t *testing.T, db *gorm.DB, prefix string) *marketplaceGraph {
	t.Helper()
	ctx := context.Background()

	users := persistence.NewGormUserRepository(db)
	categories := persistence.NewGormCategoryRepository(db)
	stores := persistence.NewGormStoreRepository(db)
	products := persistence.NewGormProductRepository(db)
	carts := persistence.NewGormCartRepository(db)
	items := persistence.NewGormCartItemRepository(db)
	orders := persistence.NewGormOrderRepository(db)
	couriers := persistence.NewGormCourierRepository(db)

	g := &marketplaceGraph{}
	var err error

	g.owner, err = identity.NewUser(prefix+"_owner", identity.RoleOwner)
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, g.owner))

	g.client, err = identity.NewUser(prefix+"_client", identity.RoleClient)
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, g.client))

	g.courier, err = identity.NewUser(prefix+"_courier", identity.RoleCourier)
	require.NoError(t, err)
	require.NoError(t, users.Save(ctx, g.courier))

	g.category, err = catalog.NewCategory(prefix + " food")
	require.NoError(t, err)
	require.NoError(t, categories.Save(ctx, g.category))

	g.store, err = catalog.NewStore(g.owner.ID, g.category.ID, prefix+" store", "1 Main St", "")
	require.NoError(t, err)
	require.NoError(t, stores.Save(ctx, g.store))

	price, err := valueobject.NewPriceFromString("9.99")
	require.NoError(t, err)
	g.product, err = catalog.NewProduct(g.store.ID, g.category.ID, prefix+" pizza", "", price, "")
	require.NoError(t, err)
	require.NoError(t, products.Save(ctx, g.product))

	g.cart, err = ordering.NewCart(g.client.ID)
	require.NoError(t, err)
	require.NoError(t, carts.Save(ctx, g.cart))

	g.item, err = ordering.NewCartItem(g.cart.ID, g.product.ID, 2)
	require.NoError(t, err)
	require.NoError(t, items.Save(ctx, g.item))

	g.order, err = ordering.NewOrder(g.cart.ID, g.product.ID, g.client.ID, g.courier.ID, "5 Delivery Ln")
	require.NoError(t, err)
	require.NoError(t, orders.Save(ctx, g.order))

	g.record, err = ordering.NewCourier(g.courier.ID, g.order.ID, ordering.CourierStatusBusy)
	require.NoError(t, err)
	require.NoError(t, couriers.Save(ctx, g.record))

	return g
}

func countRows(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

// TestConstraints_Integration verifies that database constraints surface as
// the shared domain errors when violated against a real PostgreSQL instance.
func TestConstraints_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	users := persistence.NewGormUserRepository(testDB.DB)
	stores := persistence.NewGormStoreRepository(testDB.DB)

	t.Run("duplicate username", func(t *testing.T) {
		first, err := identity.NewUser("taken", identity.RoleClient)
		require.NoError(t, err)
		require.NoError(t, users.Save(ctx, first))

		second, err := identity.NewUser("taken", identity.RoleClient)
		require.NoError(t, err)
		err = users.Save(ctx, second)
		assert.ErrorIs(t, err, shared.ErrUniqueViolation)
	})

	t.Run("store with missing owner", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "fk")

		orphan, err := catalog.NewStore(uuid.New(), g.category.ID, "orphan store", "2 Side St", "")
		require.NoError(t, err)
		err = stores.Save(ctx, orphan)
		assert.ErrorIs(t, err, shared.ErrMissingRelation)
	})

	t.Run("rating outside range", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "ck")

		// The domain layer rejects out-of-range ratings before they reach
		// the database, so drive the check constraint directly.
		err := testDB.DB.Exec(
			`INSERT INTO store_reviews (id, client_id, store_id, rating, created_at, updated_at)
			 VALUES (?, ?, ?, 6, now(), now())`,
			uuid.New(), g.client.ID, g.store.ID,
		).Error
		require.Error(t, err)
		assert.ErrorIs(t, persistence.TranslateError(err), shared.ErrDomainConstraint)
	})

	t.Run("price exceeding column precision", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "num")

		err := testDB.DB.Exec(
			`INSERT INTO products (id, store_id, category_id, name, price, created_at, updated_at)
			 VALUES (?, ?, ?, 'gold bar', 123456789012.00, now(), now())`,
			uuid.New(), g.store.ID, g.category.ID,
		).Error
		require.Error(t, err)
		assert.ErrorIs(t, persistence.TranslateError(err), shared.ErrPrecisionOverflow)
	})
}

// TestPurger_Integration exercises the transactional delete closure against a
// real PostgreSQL schema with its foreign keys in place.
func TestPurger_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()
	purger := persistence.NewPurger(testDB.DB, zap.NewNop())

	reviews := persistence.NewGormStoreReviewRepository(testDB.DB)
	courierReviews := persistence.NewGormCourierReviewRepository(testDB.DB)

	t.Run("purge client removes cart and orders", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "pc")

		rev, err := review.NewStoreReview(g.client.ID, g.store.ID, "great", 5)
		require.NoError(t, err)
		require.NoError(t, reviews.Save(ctx, rev))

		require.NoError(t, purger.PurgeUser(ctx, g.client.ID))

		assert.Zero(t, countRows(t, testDB.DB, &identity.User{}, "id = ?", g.client.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.Cart{}, "user_id = ?", g.client.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.CartItem{}, "cart_id = ?", g.cart.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.Order{}, "client_id = ?", g.client.ID))
		assert.Zero(t, countRows(t, testDB.DB, &review.StoreReview{}, "client_id = ?", g.client.ID))

		// The courier's own account and the store survive.
		assert.EqualValues(t, 1, countRows(t, testDB.DB, &identity.User{}, "id = ?", g.courier.ID))
		assert.EqualValues(t, 1, countRows(t, testDB.DB, &catalog.Store{}, "id = ?", g.store.ID))
	})

	t.Run("purge owner removes store closure", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "po")

		require.NoError(t, purger.PurgeUser(ctx, g.owner.ID))

		assert.Zero(t, countRows(t, testDB.DB, &catalog.Store{}, "owner_id = ?", g.owner.ID))
		assert.Zero(t, countRows(t, testDB.DB, &catalog.Product{}, "store_id = ?", g.store.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.CartItem{}, "product_id = ?", g.product.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.Order{}, "product_id = ?", g.product.ID))

		// The client keeps their emptied cart.
		assert.EqualValues(t, 1, countRows(t, testDB.DB, &ordering.Cart{}, "user_id = ?", g.client.ID))
	})

	t.Run("purge courier releases reviews and assignments", func(t *testing.T) {
		g := seedGraph(t, testDB.DB, "pu")

		rev, err := review.NewCourierReview(g.client.ID, g.courier.ID, "fast", 4)
		require.NoError(t, err)
		require.NoError(t, courierReviews.Save(ctx, rev))

		require.NoError(t, purger.PurgeUser(ctx, g.courier.ID))

		assert.Zero(t, countRows(t, testDB.DB, &ordering.Courier{}, "user_id = ?", g.courier.ID))
		assert.Zero(t, countRows(t, testDB.DB, &ordering.Order{}, "courier_id = ?", g.courier.ID))
		assert.Zero(t, countRows(t, testDB.DB, &review.CourierReview{}, "courier_id = ?", g.courier.ID))
	})

	t.Run("purge missing user", func(t *testing.T) {
		err := purger.PurgeUser(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

// TestOrderLifecycle_Integration drives an order through its full lifecycle
// with repositories backed by a real database.
func TestOrderLifecycle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	orders := persistence.NewGormOrderRepository(testDB.DB)
	couriers := persistence.NewGormCourierRepository(testDB.DB)

	g := seedGraph(t, testDB.DB, "lc")

	require.NoError(t, g.order.StartDelivery())
	require.NoError(t, orders.Save(ctx, g.order))

	found, err := orders.FindByID(ctx, g.order.ID)
	require.NoError(t, err)
	assert.Equal(t, ordering.OrderStatusInDelivery, found.Status)

	require.NoError(t, found.MarkDelivered())
	require.NoError(t, orders.Save(ctx, found))

	g.record.Release()
	require.NoError(t, couriers.Save(ctx, g.record))

	record, err := couriers.FindByID(ctx, g.record.ID)
	require.NoError(t, err)
	assert.True(t, record.IsAvailable())

	// Terminal states stay terminal.
	delivered, err := orders.FindByID(ctx, g.order.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, delivered.Cancel(), shared.ErrInvalidState)
}
