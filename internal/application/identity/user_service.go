package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/delivery/backend/internal/domain/identity"
	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// UserPurger deletes a user together with every dependent record
type UserPurger interface {
	PurgeUser(ctx context.Context, userID uuid.UUID) error
}

// UserService handles account-related business operations
type UserService struct {
	userRepo identity.UserRepository
	purger   UserPurger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, purger UserPurger) *UserService {
	return &UserService{
		userRepo: userRepo,
		purger:   purger,
	}
}

// Register creates a new account
func (s *UserService) Register(ctx context.Context, req RegisterUserRequest) (*UserResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("UNIQUE_VIOLATION", "Username is already taken")
	}

	user, err := identity.NewUser(req.Username, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}

	if req.Email != "" {
		if err := user.SetEmail(req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		phone, err := valueobject.NewPhoneNumber(req.Phone)
		if err != nil {
			return nil, err
		}
		user.SetPhone(phone)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByUsername retrieves a user by username
func (s *UserService) GetByUsername(ctx context.Context, username string) (*UserResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List retrieves users matching the filter
func (s *UserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[UserResponse], error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	page := shared.NewPaginated(ToUserResponses(users), total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListByRole retrieves users holding a role
func (s *UserService) ListByRole(ctx context.Context, role string, filter shared.Filter) ([]UserResponse, error) {
	parsed, err := identity.ParseRole(role)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindByRole(ctx, parsed, filter)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// UpdateProfile updates a user's contact details
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if err := user.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			user.ClearPhone()
		} else {
			phone, err := valueobject.NewPhoneNumber(*req.Phone)
			if err != nil {
				return nil, err
			}
			user.SetPhone(phone)
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangeRole switches a user's role
func (s *UserService) ChangeRole(ctx context.Context, userID uuid.UUID, role string) (*UserResponse, error) {
	parsed, err := identity.ParseRole(role)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.ChangeRole(parsed); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user together with their full dependent closure
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.purger.PurgeUser(ctx, userID)
}
