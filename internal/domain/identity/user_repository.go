package identity

import (
	"context"

	"github.com/delivery/backend/internal/domain/shared"
)

// UserRepository defines the persistence contract for users
type UserRepository interface {
	shared.Repository[User]
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByRole(ctx context.Context, role Role, filter shared.Filter) ([]User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
