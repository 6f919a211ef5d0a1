package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry("en", []string{"en", "ru"})
	require.NoError(t, err)
	return registry
}

func TestNewRegistry(t *testing.T) {
	t.Run("rejects empty locale list", func(t *testing.T) {
		_, err := NewRegistry("en", nil)
		require.Error(t, err)
	})

	t.Run("rejects invalid locale", func(t *testing.T) {
		_, err := NewRegistry("en", []string{"en", "zz-not-a-locale!"})
		require.Error(t, err)
	})

	t.Run("rejects default locale outside the list", func(t *testing.T) {
		_, err := NewRegistry("de", []string{"en", "ru"})
		require.Error(t, err)
	})
}

func TestRegistry_Fields(t *testing.T) {
	registry := newTestRegistry(t)

	assert.Equal(t, []string{"name", "description"}, registry.Fields("products"))
	assert.Equal(t, []string{"name", "description", "address"}, registry.Fields("stores"))
	assert.Equal(t, []string{"name"}, registry.Fields("categories"))
	assert.Equal(t, []string{"name", "description"}, registry.Fields("product_combos"))
	assert.Nil(t, registry.Fields("orders"))

	assert.True(t, registry.IsTranslatable("stores", "address"))
	assert.False(t, registry.IsTranslatable("stores", "image_key"))
	assert.False(t, registry.IsTranslatable("orders", "delivery_address"))
}

func TestRegistry_Tables(t *testing.T) {
	registry := newTestRegistry(t)
	assert.Equal(t, []string{"categories", "product_combos", "products", "stores"}, registry.Tables())
}

func TestRegistry_Column(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("resolves shadow column per locale", func(t *testing.T) {
		assert.Equal(t, "name_en", registry.Column("products", "name", language.English))
		assert.Equal(t, "name_ru", registry.Column("products", "name", language.Russian))
		assert.Equal(t, "address_ru", registry.Column("stores", "address", language.Russian))
	})

	t.Run("matches regional variants", func(t *testing.T) {
		assert.Equal(t, "name_en", registry.Column("products", "name", language.MustParse("en-US")))
	})

	t.Run("falls back to default locale for unsupported locales", func(t *testing.T) {
		assert.Equal(t, "name_en", registry.Column("products", "name", language.Japanese))
	})

	t.Run("leaves untranslatable columns alone", func(t *testing.T) {
		assert.Equal(t, "price", registry.Column("products", "price", language.Russian))
		assert.Equal(t, "delivery_address", registry.Column("orders", "delivery_address", language.Russian))
	})
}

func TestRegistry_ShadowColumns(t *testing.T) {
	registry := newTestRegistry(t)

	assert.Equal(t,
		[]string{"name_en", "name_ru", "description_en", "description_ru", "address_en", "address_ru"},
		registry.ShadowColumns("stores"))
	assert.Nil(t, registry.ShadowColumns("carts"))
}

func TestLocaleSuffix(t *testing.T) {
	assert.Equal(t, "en", LocaleSuffix(language.English))
	assert.Equal(t, "ru", LocaleSuffix(language.Russian))
	assert.Equal(t, "pt_br", LocaleSuffix(language.MustParse("pt-BR")))
}
