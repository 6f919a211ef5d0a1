package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/delivery/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PriceMaxDigits is the total number of digits a price may carry
const PriceMaxDigits = 10

// PriceScale is the number of fractional digits a price may carry
const PriceScale = 2

// maxPriceAbs is 10^(PriceMaxDigits-PriceScale); prices must stay below it
var maxPriceAbs = decimal.New(1, PriceMaxDigits-PriceScale)

// Price is a value object for monetary amounts with fixed numeric(10,2) precision.
// It is immutable - all operations return new Price instances.
type Price struct {
	amount decimal.Decimal
}

// NewPrice creates a Price, rejecting values that do not fit numeric(10,2)
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, shared.NewDomainError("DOMAIN_CONSTRAINT", "Price cannot be negative")
	}
	if amount.Exponent() < -PriceScale {
		return Price{}, shared.NewDomainError("PRECISION_OVERFLOW",
			fmt.Sprintf("Price cannot carry more than %d decimal places", PriceScale))
	}
	if amount.Abs().GreaterThanOrEqual(maxPriceAbs) {
		return Price{}, shared.NewDomainError("PRECISION_OVERFLOW",
			fmt.Sprintf("Price cannot exceed %d total digits", PriceMaxDigits))
	}
	return Price{amount: amount}, nil
}

// NewPriceFromString creates a Price from its decimal string representation
func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price string: %w", err)
	}
	return NewPrice(d)
}

// NewPriceFromFloat creates a Price from a float64, rounded to the price scale
func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount).Round(PriceScale))
}

// Amount returns the decimal amount
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// MulInt returns the amount multiplied by an integer quantity.
// The result is a plain decimal: line totals may legitimately exceed
// the single-price precision bound.
func (p Price) MulInt(quantity int64) decimal.Decimal {
	return p.amount.Mul(decimal.NewFromInt(quantity))
}

// IsZero returns true if the price is zero
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// Equal returns true if both prices carry the same amount
func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

// String returns the price formatted with the fixed scale
func (p Price) String() string {
	return p.amount.StringFixed(PriceScale)
}

// MarshalJSON implements json.Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Price) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	price, err := NewPriceFromString(s)
	if err != nil {
		return err
	}
	*p = price
	return nil
}
