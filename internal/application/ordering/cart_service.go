package ordering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/ordering"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// CartPurger deletes a cart together with its lines and orders
type CartPurger interface {
	PurgeCart(ctx context.Context, cartID uuid.UUID) error
}

// CartService handles cart-related business operations.
// Totals are computed on demand from live product prices; nothing about
// pricing is stored on the cart.
type CartService struct {
	cartRepo    ordering.CartRepository
	itemRepo    ordering.CartItemRepository
	productRepo catalog.ProductRepository
	purger      CartPurger
}

// NewCartService creates a new CartService
func NewCartService(
	cartRepo ordering.CartRepository,
	itemRepo ordering.CartItemRepository,
	productRepo catalog.ProductRepository,
	purger CartPurger,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		purger:      purger,
	}
}

// GetOrCreate returns the user's cart, creating one on first use
func (s *CartService) GetOrCreate(ctx context.Context, userID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		cart, err = ordering.NewCart(userID)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s.buildCartResponse(ctx, cart)
}

// AddItem puts a product into the user's cart.
// Adding a product already in the cart increases the line quantity.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req AddCartItemRequest) (*CartResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if errors.Is(err, shared.ErrNotFound) {
		cart, err = ordering.NewCart(userID)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = ordering.DefaultQuantity
	}

	item, err := s.itemRepo.FindByCartAndProduct(ctx, cart.ID, req.ProductID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		item, err = ordering.NewCartItem(cart.ID, req.ProductID, quantity)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := item.ChangeQuantity(item.Quantity + quantity); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.buildCartResponse(ctx, cart)
}

// ChangeQuantity sets a line's quantity
func (s *CartService) ChangeQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := item.ChangeQuantity(quantity); err != nil {
		return err
	}
	return s.itemRepo.Save(ctx, item)
}

// RemoveItem deletes one line from a cart
func (s *CartService) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	return s.itemRepo.Delete(ctx, itemID)
}

// GetTotal computes the cart total as the sum of quantity times the
// current product price
func (s *CartService) GetTotal(ctx context.Context, cartID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.cartRepo.FindByID(ctx, cartID); err != nil {
		return decimal.Zero, err
	}

	items, err := s.itemRepo.FindByCart(ctx, cartID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range items {
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		unit, err := valueobject.NewPrice(product.Price)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(items[i].LineTotal(unit))
	}
	return total, nil
}

// Delete removes a cart together with its lines and orders
func (s *CartService) Delete(ctx context.Context, cartID uuid.UUID) error {
	return s.purger.PurgeCart(ctx, cartID)
}

func (s *CartService) buildCartResponse(ctx context.Context, cart *ordering.Cart) (*CartResponse, error) {
	items, err := s.itemRepo.FindByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	resp := CartResponse{
		ID:        cart.ID,
		UserID:    cart.UserID,
		Items:     make([]CartItemResponse, 0, len(items)),
		Total:     decimal.Zero,
		CreatedAt: cart.CreatedAt,
	}

	for i := range items {
		product, err := s.productRepo.FindByID(ctx, items[i].ProductID)
		if err != nil {
			return nil, err
		}
		unit, err := valueobject.NewPrice(product.Price)
		if err != nil {
			return nil, err
		}
		lineTotal := items[i].LineTotal(unit)
		resp.Items = append(resp.Items, CartItemResponse{
			ID:        items[i].ID,
			ProductID: items[i].ProductID,
			Quantity:  items[i].Quantity,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return &resp, nil
}
