package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/shared"
)

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Category, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockCategoryPurger is a mock implementation of CategoryPurger
type MockCategoryPurger struct {
	mock.Mock
}

func (m *MockCategoryPurger) PurgeCategory(ctx context.Context, categoryID uuid.UUID) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo, new(MockCategoryPurger))

		repo.On("ExistsByName", ctx, "Pizza").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Pizza"})

		require.NoError(t, err)
		assert.Equal(t, "Pizza", resp.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name without saving", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo, new(MockCategoryPurger))

		repo.On("ExistsByName", ctx, "Pizza").Return(true, nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Pizza"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrUniqueViolation)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects name over twenty characters", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		service := NewCategoryService(repo, new(MockCategoryPurger))

		_, err := service.Create(ctx, CreateCategoryRequest{Name: "a name much longer than twenty characters"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestCategoryService_Rename(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCategoryRepository)
	service := NewCategoryService(repo, new(MockCategoryPurger))

	category, err := catalog.NewCategory("Burgers")
	require.NoError(t, err)

	repo.On("FindByID", ctx, category.ID).Return(category, nil)
	repo.On("Save", ctx, category).Return(nil)

	resp, err := service.Rename(ctx, category.ID, CreateCategoryRequest{Name: "Grill"})
	require.NoError(t, err)
	assert.Equal(t, "Grill", resp.Name)
}

func TestCategoryService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCategoryRepository)
	purger := new(MockCategoryPurger)
	service := NewCategoryService(repo, purger)

	categoryID := uuid.New()
	purger.On("PurgeCategory", ctx, categoryID).Return(nil)

	require.NoError(t, service.Delete(ctx, categoryID))
	purger.AssertExpectations(t)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
