package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("accepts value within precision", func(t *testing.T) {
		price, err := NewPriceFromString("99999999.99")
		require.NoError(t, err)
		assert.Equal(t, "99999999.99", price.String())
	})

	t.Run("accepts zero", func(t *testing.T) {
		price, err := NewPrice(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, price.IsZero())
	})

	t.Run("rejects negative value", func(t *testing.T) {
		_, err := NewPriceFromString("-1.00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative")
	})

	t.Run("rejects more than two decimal places", func(t *testing.T) {
		_, err := NewPriceFromString("10.123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decimal places")
	})

	t.Run("rejects more than ten total digits", func(t *testing.T) {
		_, err := NewPriceFromString("100000000.00")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "total digits")
	})

	t.Run("rounds float input to the price scale", func(t *testing.T) {
		price, err := NewPriceFromFloat(5.499)
		require.NoError(t, err)
		assert.Equal(t, "5.50", price.String())
	})
}

func TestPrice_MulInt(t *testing.T) {
	price, err := NewPriceFromString("10.00")
	require.NoError(t, err)

	assert.True(t, price.MulInt(2).Equal(decimal.RequireFromString("20.00")))
	assert.True(t, price.MulInt(0).IsZero())
}

func TestPrice_Equal(t *testing.T) {
	a, err := NewPriceFromString("5.50")
	require.NoError(t, err)
	b, err := NewPriceFromString("5.5")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
}

func TestPrice_JSON(t *testing.T) {
	price, err := NewPriceFromString("25.50")
	require.NoError(t, err)

	data, err := json.Marshal(price)
	require.NoError(t, err)
	assert.Equal(t, `"25.50"`, string(data))

	var decoded Price
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, price.Equal(decoded))

	var invalid Price
	assert.Error(t, json.Unmarshal([]byte(`"10.123"`), &invalid))
}
