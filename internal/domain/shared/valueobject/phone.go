package valueobject

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/delivery/backend/internal/domain/shared"
)

// PhoneNumber is a value object for phone numbers stored in E.164-like form
type PhoneNumber struct {
	value string
}

// NewPhoneNumber creates a PhoneNumber after normalizing and validating the input
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	normalized := normalizePhone(raw)
	if err := validatePhone(normalized); err != nil {
		return PhoneNumber{}, err
	}
	return PhoneNumber{value: normalized}, nil
}

// String returns the normalized phone number
func (p PhoneNumber) String() string {
	return p.value
}

// IsZero returns true if no number is set
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

// Value implements driver.Valuer for database storage
func (p PhoneNumber) Value() (driver.Value, error) {
	return p.value, nil
}

// Scan implements sql.Scanner for database retrieval
func (p *PhoneNumber) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		p.value = ""
	case string:
		p.value = v
	case []byte:
		p.value = string(v)
	default:
		return fmt.Errorf("cannot scan %T into PhoneNumber", src)
	}
	return nil
}

// normalizePhone strips separators commonly used when writing phone numbers
func normalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case ' ', '-', '(', ')', '.':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validatePhone checks the normalized form: optional leading +, 7 to 15 digits
func validatePhone(s string) error {
	if s == "" {
		return shared.NewDomainError("INVALID_INPUT", "Phone number cannot be empty")
	}
	digits := s
	if strings.HasPrefix(s, "+") {
		digits = s[1:]
	}
	if len(digits) < 7 || len(digits) > 15 {
		return shared.NewDomainError("INVALID_INPUT", "Phone number must contain 7 to 15 digits")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_INPUT", "Phone number can only contain digits after an optional +")
		}
	}
	return nil
}
