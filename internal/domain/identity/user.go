package identity

import (
	"strings"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/delivery/backend/internal/domain/shared/valueobject"
)

// User represents a marketplace account.
// A single entity backs all three roles; stores, orders and reviews
// reference it through independently typed foreign keys.
type User struct {
	shared.BaseEntity
	Username string                   `gorm:"type:varchar(150);not null;uniqueIndex"`
	Email    string                   `gorm:"type:varchar(254)"`
	Phone    *valueobject.PhoneNumber `gorm:"type:varchar(20)"`
	Role     Role                     `gorm:"type:varchar(12);not null;default:'client'"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user account
func NewUser(username string, role Role) (*User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if role == "" {
		role = DefaultRole
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("DOMAIN_CONSTRAINT", "Unknown user role: "+string(role))
	}

	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   username,
		Role:       role,
	}, nil
}

// SetPhone sets the optional phone number
func (u *User) SetPhone(phone valueobject.PhoneNumber) {
	u.Phone = &phone
	u.Touch()
}

// ClearPhone removes the phone number
func (u *User) ClearPhone() {
	u.Phone = nil
	u.Touch()
}

// SetEmail sets the contact email
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return shared.NewDomainError("INVALID_INPUT", "Email must contain @")
	}
	u.Email = email
	u.Touch()
	return nil
}

// ChangeRole switches the user's role
func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return shared.NewDomainError("DOMAIN_CONSTRAINT", "Unknown user role: "+string(role))
	}
	u.Role = role
	u.Touch()
	return nil
}

// IsOwner returns true if the user holds the owner role
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// IsCourier returns true if the user holds the courier role
func (u *User) IsCourier() bool {
	return u.Role == RoleCourier
}

func validateUsername(username string) error {
	if username == "" {
		return shared.NewDomainError("INVALID_INPUT", "Username cannot be empty")
	}
	if len(username) > 150 {
		return shared.NewDomainError("INVALID_INPUT", "Username cannot exceed 150 characters")
	}
	return nil
}
