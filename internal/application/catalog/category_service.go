package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

// CategoryPurger deletes a category together with every dependent record
type CategoryPurger interface {
	PurgeCategory(ctx context.Context, categoryID uuid.UUID) error
}

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	purger       CategoryPurger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, purger CategoryPurger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		purger:       purger,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("UNIQUE_VIOLATION", "Category with this name already exists")
	}

	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, categoryID uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// List retrieves categories matching the filter
func (s *CategoryService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[CategoryResponse], error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.categoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToCategoryResponses(categories), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Rename changes a category's unique name
func (s *CategoryService) Rename(ctx context.Context, categoryID uuid.UUID, req CreateCategoryRequest) (*CategoryResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category together with its stores and products
func (s *CategoryService) Delete(ctx context.Context, categoryID uuid.UUID) error {
	return s.purger.PurgeCategory(ctx, categoryID)
}
