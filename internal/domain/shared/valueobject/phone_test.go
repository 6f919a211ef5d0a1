package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber(t *testing.T) {
	t.Run("accepts international format", func(t *testing.T) {
		phone, err := NewPhoneNumber("+79161234567")
		require.NoError(t, err)
		assert.Equal(t, "+79161234567", phone.String())
	})

	t.Run("normalizes separators", func(t *testing.T) {
		phone, err := NewPhoneNumber("+7 (916) 123-45-67")
		require.NoError(t, err)
		assert.Equal(t, "+79161234567", phone.String())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewPhoneNumber("")
		require.Error(t, err)
	})

	t.Run("rejects letters", func(t *testing.T) {
		_, err := NewPhoneNumber("+7916abc4567")
		require.Error(t, err)
	})

	t.Run("rejects too short numbers", func(t *testing.T) {
		_, err := NewPhoneNumber("12345")
		require.Error(t, err)
	})

	t.Run("rejects too long numbers", func(t *testing.T) {
		_, err := NewPhoneNumber("+1234567890123456")
		require.Error(t, err)
	})
}

func TestPhoneNumber_Scan(t *testing.T) {
	var phone PhoneNumber

	require.NoError(t, phone.Scan("+79161234567"))
	assert.Equal(t, "+79161234567", phone.String())

	require.NoError(t, phone.Scan([]byte("+79161234567")))
	assert.Equal(t, "+79161234567", phone.String())

	require.NoError(t, phone.Scan(nil))
	assert.True(t, phone.IsZero())

	assert.Error(t, phone.Scan(42))
}
