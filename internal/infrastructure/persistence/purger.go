package persistence

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/review"
	"github.com/delivery/backend/internal/domain/shared"
)

// Purger deletes a parent record together with its full dependent closure.
//
// Every mandatory reference cascades: the purger computes the transitive
// set of dependent rows and removes it inside a single transaction, so a
// parent never leaves orphans behind. Missing children are not an error;
// a storage failure anywhere aborts the whole purge.
type Purger struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPurger creates a Purger on top of a GORM connection
func NewPurger(db *gorm.DB, logger *zap.Logger) *Purger {
	return &Purger{db: db, logger: logger.Named("purger")}
}

// PurgeUser deletes a user with their stores, cart, orders, courier
// records and reviews on either side.
func (p *Purger) PurgeUser(ctx context.Context, userID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		storeIDs, err := pluckIDs(tx, &catalog.Store{}, "owner_id = ?", userID)
		if err != nil {
			return err
		}
		if err := p.purgeStoresTx(tx, storeIDs); err != nil {
			return err
		}

		cartIDs, err := pluckIDs(tx, &ordering.Cart{}, "user_id = ?", userID)
		if err != nil {
			return err
		}
		if err := p.purgeCartsTx(tx, cartIDs); err != nil {
			return err
		}

		orderIDs, err := pluckIDs(tx, &ordering.Order{}, "client_id = ? OR courier_id = ?", userID, userID)
		if err != nil {
			return err
		}
		if err := p.purgeOrdersTx(tx, orderIDs); err != nil {
			return err
		}

		if err := tx.Delete(&ordering.Courier{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review.StoreReview{}, "client_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&review.CourierReview{}, "reviewer_id = ? OR courier_id = ?", userID, userID).Error; err != nil {
			return err
		}

		return deleteParent(tx, &identity.User{}, userID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged user closure", zap.String("user_id", userID.String()))
	return nil
}

// PurgeCategory deletes a category with its stores and products
func (p *Purger) PurgeCategory(ctx context.Context, categoryID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		storeIDs, err := pluckIDs(tx, &catalog.Store{}, "category_id = ?", categoryID)
		if err != nil {
			return err
		}
		if err := p.purgeStoresTx(tx, storeIDs); err != nil {
			return err
		}

		// Products can reference the category through a store in another
		// category; the store purge above does not cover those.
		productIDs, err := pluckIDs(tx, &catalog.Product{}, "category_id = ?", categoryID)
		if err != nil {
			return err
		}
		if err := p.purgeProductsTx(tx, productIDs); err != nil {
			return err
		}

		return deleteParent(tx, &catalog.Category{}, categoryID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged category closure", zap.String("category_id", categoryID.String()))
	return nil
}

// PurgeStore deletes a store with its products, combos, contacts and reviews
func (p *Purger) PurgeStore(ctx context.Context, storeID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := p.purgeStoreClosureTx(tx, storeID); err != nil {
			return err
		}
		return deleteParent(tx, &catalog.Store{}, storeID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged store closure", zap.String("store_id", storeID.String()))
	return nil
}

// PurgeProduct deletes a product with the cart lines and orders referencing it
func (p *Purger) PurgeProduct(ctx context.Context, productID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := p.purgeProductClosureTx(tx, productID); err != nil {
			return err
		}
		return deleteParent(tx, &catalog.Product{}, productID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged product closure", zap.String("product_id", productID.String()))
	return nil
}

// PurgeCart deletes a cart with its lines and the orders placed from it
func (p *Purger) PurgeCart(ctx context.Context, cartID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := p.purgeCartClosureTx(tx, cartID); err != nil {
			return err
		}
		return deleteParent(tx, &ordering.Cart{}, cartID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged cart closure", zap.String("cart_id", cartID.String()))
	return nil
}

// PurgeOrder deletes an order with the courier records pointing at it
func (p *Purger) PurgeOrder(ctx context.Context, orderID uuid.UUID) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ordering.Courier{}, "current_order_id = ?", orderID).Error; err != nil {
			return err
		}
		return deleteParent(tx, &ordering.Order{}, orderID)
	})
	if err != nil {
		return TranslateError(err)
	}

	p.logger.Info("purged order closure", zap.String("order_id", orderID.String()))
	return nil
}

// purgeStoresTx removes a batch of stores with their closures
func (p *Purger) purgeStoresTx(tx *gorm.DB, storeIDs []uuid.UUID) error {
	for _, id := range storeIDs {
		if err := p.purgeStoreClosureTx(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&catalog.Store{}, "id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}

// purgeStoreClosureTx removes everything depending on one store,
// leaving the store row itself to the caller
func (p *Purger) purgeStoreClosureTx(tx *gorm.DB, storeID uuid.UUID) error {
	productIDs, err := pluckIDs(tx, &catalog.Product{}, "store_id = ?", storeID)
	if err != nil {
		return err
	}
	if err := p.purgeProductsTx(tx, productIDs); err != nil {
		return err
	}

	if err := tx.Delete(&catalog.ProductCombo{}, "store_id = ?", storeID).Error; err != nil {
		return err
	}
	if err := tx.Delete(&catalog.ContactInfo{}, "store_id = ?", storeID).Error; err != nil {
		return err
	}
	return tx.Delete(&review.StoreReview{}, "store_id = ?", storeID).Error
}

// purgeProductsTx removes a batch of products with their closures
func (p *Purger) purgeProductsTx(tx *gorm.DB, productIDs []uuid.UUID) error {
	for _, id := range productIDs {
		if err := p.purgeProductClosureTx(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&catalog.Product{}, "id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}

// purgeProductClosureTx removes everything depending on one product
func (p *Purger) purgeProductClosureTx(tx *gorm.DB, productID uuid.UUID) error {
	if err := tx.Delete(&ordering.CartItem{}, "product_id = ?", productID).Error; err != nil {
		return err
	}

	orderIDs, err := pluckIDs(tx, &ordering.Order{}, "product_id = ?", productID)
	if err != nil {
		return err
	}
	return p.purgeOrdersTx(tx, orderIDs)
}

// purgeCartsTx removes a batch of carts with their closures
func (p *Purger) purgeCartsTx(tx *gorm.DB, cartIDs []uuid.UUID) error {
	for _, id := range cartIDs {
		if err := p.purgeCartClosureTx(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&ordering.Cart{}, "id = ?", id).Error; err != nil {
			return err
		}
	}
	return nil
}

// purgeCartClosureTx removes everything depending on one cart
func (p *Purger) purgeCartClosureTx(tx *gorm.DB, cartID uuid.UUID) error {
	orderIDs, err := pluckIDs(tx, &ordering.Order{}, "cart_id = ?", cartID)
	if err != nil {
		return err
	}
	if err := p.purgeOrdersTx(tx, orderIDs); err != nil {
		return err
	}
	return tx.Delete(&ordering.CartItem{}, "cart_id = ?", cartID).Error
}

// purgeOrdersTx removes a batch of orders with the courier records
// pointing at them
func (p *Purger) purgeOrdersTx(tx *gorm.DB, orderIDs []uuid.UUID) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if err := tx.Delete(&ordering.Courier{}, "current_order_id IN ?", orderIDs).Error; err != nil {
		return err
	}
	return tx.Delete(&ordering.Order{}, "id IN ?", orderIDs).Error
}

// pluckIDs collects the IDs of rows matching a condition
func pluckIDs(tx *gorm.DB, model interface{}, query string, args ...interface{}) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := tx.Model(model).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// deleteParent removes the purge root itself, failing if it never existed
func deleteParent(tx *gorm.DB, model interface{}, id uuid.UUID) error {
	result := tx.Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
