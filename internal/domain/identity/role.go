package identity

import (
	"golang.org/x/text/language"

	"github.com/delivery/backend/internal/domain/shared"
)

// Role represents the role a user holds on the marketplace
type Role string

const (
	RoleOwner   Role = "owner"
	RoleClient  Role = "client"
	RoleCourier Role = "courier"
)

// DefaultRole is assigned to users registered without an explicit role
const DefaultRole = RoleClient

// roleLabels maps each role to its display label per locale.
// The stored discriminant never changes with the display language.
var roleLabels = map[Role]map[language.Tag]string{
	RoleOwner: {
		language.English: "Owner",
		language.Russian: "Владелец",
	},
	RoleClient: {
		language.English: "Client",
		language.Russian: "Клиент",
	},
	RoleCourier: {
		language.English: "Courier",
		language.Russian: "Курьер",
	},
}

var supportedLocales = []language.Tag{language.English, language.Russian}

var roleMatcher = language.NewMatcher(supportedLocales)

// IsValid returns true if the role is one of the known discriminants
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleClient, RoleCourier:
		return true
	}
	return false
}

// Label returns the display label for the role in the closest supported locale
func (r Role) Label(locale language.Tag) string {
	_, idx, _ := roleMatcher.Match(locale)
	if labels, ok := roleLabels[r]; ok {
		if label, ok := labels[supportedLocales[idx]]; ok {
			return label
		}
		return labels[language.English]
	}
	return string(r)
}

// ParseRole converts a stored discriminant into a Role
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", shared.NewDomainError("DOMAIN_CONSTRAINT", "Unknown user role: "+s)
	}
	return role, nil
}
