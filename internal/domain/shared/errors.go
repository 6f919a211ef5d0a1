package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is allows errors.Is matching on the error code
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrUniqueViolation   = NewDomainError("UNIQUE_VIOLATION", "Resource with the same unique value already exists")
	ErrDomainConstraint  = NewDomainError("DOMAIN_CONSTRAINT", "Value outside the allowed domain")
	ErrMissingRelation   = NewDomainError("MISSING_RELATION", "Required relation is missing")
	ErrPrecisionOverflow = NewDomainError("PRECISION_OVERFLOW", "Decimal value exceeds allowed precision")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
