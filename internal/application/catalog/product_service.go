package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// ProductPurger deletes a product together with every dependent record
type ProductPurger interface {
	PurgeProduct(ctx context.Context, productID uuid.UUID) error
}

// ProductService handles product and combo business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	comboRepo    catalog.ProductComboRepository
	storeRepo    catalog.StoreRepository
	categoryRepo catalog.CategoryRepository
	purger       ProductPurger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	comboRepo catalog.ProductComboRepository,
	storeRepo catalog.StoreRepository,
	categoryRepo catalog.CategoryRepository,
	purger ProductPurger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		comboRepo:    comboRepo,
		storeRepo:    storeRepo,
		categoryRepo: categoryRepo,
		purger:       purger,
	}
}

// Create adds a product to a store
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	price, err := valueobject.NewPriceFromString(req.Price)
	if err != nil {
		return nil, err
	}
	product, err := catalog.NewProduct(req.StoreID, req.CategoryID, req.Name, req.Description, price, req.ImageKey)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// ListByStore retrieves the products of a store
func (s *ProductService) ListByStore(ctx context.Context, storeID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// ListByCategory retrieves the products of a category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Update changes a product's presentation fields and optionally its price
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.Price != nil {
		price, err := valueobject.NewPriceFromString(*req.Price)
		if err != nil {
			return nil, err
		}
		product.SetPrice(price)
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product together with the cart lines and orders
// referencing it
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.purger.PurgeProduct(ctx, productID)
}

// CreateCombo adds a product combo to a store
func (s *ProductService) CreateCombo(ctx context.Context, req CreateComboRequest) (*ComboResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(ctx, req.StoreID); err != nil {
		return nil, err
	}

	price, err := valueobject.NewPriceFromString(req.Price)
	if err != nil {
		return nil, err
	}
	combo, err := catalog.NewProductCombo(req.StoreID, req.Name, req.Description, price, req.ImageKey)
	if err != nil {
		return nil, err
	}
	if err := s.comboRepo.Save(ctx, combo); err != nil {
		return nil, err
	}

	resp := ToComboResponse(combo)
	return &resp, nil
}

// ListCombos retrieves the combos of a store
func (s *ProductService) ListCombos(ctx context.Context, storeID uuid.UUID) ([]ComboResponse, error) {
	combos, err := s.comboRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return ToComboResponses(combos), nil
}

// DeleteCombo removes a combo.
// Combos carry no dependents, a plain delete suffices.
func (s *ProductService) DeleteCombo(ctx context.Context, comboID uuid.UUID) error {
	return s.comboRepo.Delete(ctx, comboID)
}
