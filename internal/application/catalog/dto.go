package catalog

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

var validate = validator.New()

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return nil
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=20"`
}

// CategoryResponse represents a category in service responses
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateStoreRequest represents a request to open a store
type CreateStoreRequest struct {
	OwnerID    uuid.UUID `json:"owner_id" validate:"required"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Name       string    `json:"name" validate:"required,min=1,max=20"`
	Address    string    `json:"address" validate:"required,min=1,max=50"`
	ImageKey   string    `json:"image_key" validate:"max=255"`
}

// UpdateStoreRequest represents a request to update a store's presentation
type UpdateStoreRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=20"`
	Description string `json:"description"`
	Address     string `json:"address" validate:"required,min=1,max=50"`
}

// StoreResponse represents a store in service responses
type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	ImageKey    string    `json:"image_key"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CategoryID  uuid.UUID `json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AddContactRequest represents a request to attach a phone to a store
type AddContactRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

// ContactResponse represents a store contact in service responses
type ContactResponse struct {
	ID      uuid.UUID `json:"id"`
	StoreID uuid.UUID `json:"store_id"`
	Phone   string    `json:"phone"`
}

// CreateProductRequest represents a request to add a product
type CreateProductRequest struct {
	StoreID     uuid.UUID `json:"store_id" validate:"required"`
	CategoryID  uuid.UUID `json:"category_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=30"`
	Description string    `json:"description"`
	Price       string    `json:"price" validate:"required"`
	ImageKey    string    `json:"image_key" validate:"max=255"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=30"`
	Description string  `json:"description"`
	Price       *string `json:"price"`
}

// ProductResponse represents a product in service responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageKey    string          `json:"image_key"`
	StoreID     uuid.UUID       `json:"store_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateComboRequest represents a request to add a product combo
type CreateComboRequest struct {
	StoreID     uuid.UUID `json:"store_id" validate:"required"`
	Name        string    `json:"name" validate:"required,min=1,max=30"`
	Description string    `json:"description"`
	Price       string    `json:"price" validate:"required"`
	ImageKey    string    `json:"image_key" validate:"max=255"`
}

// ComboResponse represents a product combo in service responses
type ComboResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageKey    string          `json:"image_key"`
	StoreID     uuid.UUID       `json:"store_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(category *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToStoreResponse converts a domain store to a response DTO
func ToStoreResponse(store *catalog.Store) StoreResponse {
	return StoreResponse{
		ID:          store.ID,
		Name:        store.Name,
		Description: store.Description,
		Address:     store.Address,
		ImageKey:    store.ImageKey,
		OwnerID:     store.OwnerID,
		CategoryID:  store.CategoryID,
		CreatedAt:   store.CreatedAt,
		UpdatedAt:   store.UpdatedAt,
	}
}

// ToStoreResponses converts a slice of domain stores
func ToStoreResponses(stores []catalog.Store) []StoreResponse {
	responses := make([]StoreResponse, len(stores))
	for i := range stores {
		responses[i] = ToStoreResponse(&stores[i])
	}
	return responses
}

// ToContactResponse converts a domain contact to a response DTO
func ToContactResponse(contact *catalog.ContactInfo) ContactResponse {
	return ContactResponse{
		ID:      contact.ID,
		StoreID: contact.StoreID,
		Phone:   contact.Phone.String(),
	}
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(product *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageKey:    product.ImageKey,
		StoreID:     product.StoreID,
		CategoryID:  product.CategoryID,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToComboResponse converts a domain combo to a response DTO
func ToComboResponse(combo *catalog.ProductCombo) ComboResponse {
	return ComboResponse{
		ID:          combo.ID,
		Name:        combo.Name,
		Description: combo.Description,
		Price:       combo.Price,
		ImageKey:    combo.ImageKey,
		StoreID:     combo.StoreID,
		CreatedAt:   combo.CreatedAt,
		UpdatedAt:   combo.UpdatedAt,
	}
}

// ToComboResponses converts a slice of domain combos
func ToComboResponses(combos []catalog.ProductCombo) []ComboResponse {
	responses := make([]ComboResponse, len(combos))
	for i := range combos {
		responses[i] = ToComboResponse(&combos[i])
	}
	return responses
}
