package persistence

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// TranslateError keeps constraint errors portable across drivers.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

func mustPrice(t *testing.T, amount string) valueobject.Price {
	t.Helper()
	price, err := valueobject.NewPriceFromString(amount)
	require.NoError(t, err)
	return price
}

func seedUser(t *testing.T, db *gorm.DB, username string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, role)
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *catalog.Category {
	t.Helper()
	category, err := catalog.NewCategory(name)
	require.NoError(t, err)
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedStore(t *testing.T, db *gorm.DB, ownerID, categoryID uuid.UUID, name string) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(ownerID, categoryID, name, "1 Main St", "stores/"+name+".jpg")
	require.NoError(t, err)
	require.NoError(t, db.Create(store).Error)
	return store
}

func seedProduct(t *testing.T, db *gorm.DB, storeID, categoryID uuid.UUID, name, amount string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(storeID, categoryID, name, "", mustPrice(t, amount), "products/"+name+".jpg")
	require.NoError(t, err)
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCart(t *testing.T, db *gorm.DB, userID uuid.UUID) *ordering.Cart {
	t.Helper()
	cart, err := ordering.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, db.Create(cart).Error)
	return cart
}

func seedCartItem(t *testing.T, db *gorm.DB, cartID, productID uuid.UUID, quantity int) *ordering.CartItem {
	t.Helper()
	item, err := ordering.NewCartItem(cartID, productID, quantity)
	require.NoError(t, err)
	require.NoError(t, db.Create(item).Error)
	return item
}

func seedOrder(t *testing.T, db *gorm.DB, cartID, productID, clientID, courierID uuid.UUID) *ordering.Order {
	t.Helper()
	order, err := ordering.NewOrder(cartID, productID, clientID, courierID, "5 Delivery Ln")
	require.NoError(t, err)
	require.NoError(t, db.Create(order).Error)
	return order
}

func seedCourier(t *testing.T, db *gorm.DB, userID, orderID uuid.UUID) *ordering.Courier {
	t.Helper()
	courier, err := ordering.NewCourier(userID, orderID, ordering.CourierStatusBusy)
	require.NoError(t, err)
	require.NoError(t, db.Create(courier).Error)
	return courier
}

func seedStoreReview(t *testing.T, db *gorm.DB, clientID, storeID uuid.UUID, rating int) *review.StoreReview {
	t.Helper()
	rev, err := review.NewStoreReview(clientID, storeID, "ok", rating)
	require.NoError(t, err)
	require.NoError(t, db.Create(rev).Error)
	return rev
}

func seedCourierReview(t *testing.T, db *gorm.DB, reviewerID, courierID uuid.UUID, rating int) *review.CourierReview {
	t.Helper()
	rev, err := review.NewCourierReview(reviewerID, courierID, "ok", rating)
	require.NoError(t, err)
	require.NoError(t, db.Create(rev).Error)
	return rev
}

// countRows counts the rows of a model matching a condition
func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&count).Error)
	return count
}
