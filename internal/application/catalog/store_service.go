package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/catalog"
	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// StorePurger deletes a store together with every dependent record
type StorePurger interface {
	PurgeStore(ctx context.Context, storeID uuid.UUID) error
}

// StoreService handles store-related business operations
type StoreService struct {
	storeRepo    catalog.StoreRepository
	contactRepo  catalog.ContactInfoRepository
	categoryRepo catalog.CategoryRepository
	userRepo     identity.UserRepository
	purger       StorePurger
}

// NewStoreService creates a new StoreService
func NewStoreService(
	storeRepo catalog.StoreRepository,
	contactRepo catalog.ContactInfoRepository,
	categoryRepo catalog.CategoryRepository,
	userRepo identity.UserRepository,
	purger StorePurger,
) *StoreService {
	return &StoreService{
		storeRepo:    storeRepo,
		contactRepo:  contactRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		purger:       purger,
	}
}

// Create opens a new store for an owner in a category
func (s *StoreService) Create(ctx context.Context, req CreateStoreRequest) (*StoreResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByID(ctx, req.OwnerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsOwner() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Stores can only be opened by owner accounts")
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	store, err := catalog.NewStore(req.OwnerID, req.CategoryID, req.Name, req.Address, req.ImageKey)
	if err != nil {
		return nil, err
	}
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	resp := ToStoreResponse(store)
	return &resp, nil
}

// GetByID retrieves a store by ID
func (s *StoreService) GetByID(ctx context.Context, storeID uuid.UUID) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	resp := ToStoreResponse(store)
	return &resp, nil
}

// List retrieves stores matching the filter
func (s *StoreService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[StoreResponse], error) {
	stores, err := s.storeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.storeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToStoreResponses(stores), total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByOwner retrieves all stores of one owner
func (s *StoreService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return ToStoreResponses(stores), nil
}

// ListByCategory retrieves stores in a category
func (s *StoreService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]StoreResponse, error) {
	stores, err := s.storeRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	return ToStoreResponses(stores), nil
}

// Update changes a store's presentation fields
func (s *StoreService) Update(ctx context.Context, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := store.Update(req.Name, req.Description, req.Address); err != nil {
		return nil, err
	}
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	resp := ToStoreResponse(store)
	return &resp, nil
}

// Recategorize moves a store to another category
func (s *StoreService) Recategorize(ctx context.Context, storeID, categoryID uuid.UUID) (*StoreResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	store, err := s.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := store.Recategorize(categoryID); err != nil {
		return nil, err
	}
	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	resp := ToStoreResponse(store)
	return &resp, nil
}

// AddContact attaches a published phone number to a store
func (s *StoreService) AddContact(ctx context.Context, storeID uuid.UUID, req AddContactRequest) (*ContactResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	phone, err := valueobject.NewPhoneNumber(req.Phone)
	if err != nil {
		return nil, err
	}
	contact, err := catalog.NewContactInfo(storeID, phone)
	if err != nil {
		return nil, err
	}
	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	resp := ToContactResponse(contact)
	return &resp, nil
}

// ListContacts retrieves the published phone numbers of a store
func (s *StoreService) ListContacts(ctx context.Context, storeID uuid.UUID) ([]ContactResponse, error) {
	contacts, err := s.contactRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	responses := make([]ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = ToContactResponse(&contacts[i])
	}
	return responses, nil
}

// RemoveContact deletes one published phone number
func (s *StoreService) RemoveContact(ctx context.Context, contactID uuid.UUID) error {
	return s.contactRepo.Delete(ctx, contactID)
}

// Delete removes a store together with its full dependent closure
func (s *StoreService) Delete(ctx context.Context, storeID uuid.UUID) error {
	return s.purger.PurgeStore(ctx, storeID)
}
