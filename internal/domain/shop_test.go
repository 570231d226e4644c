package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected *float64
	}{
		{name: "nulo", input: nil, expected: nil},
		{name: "float64", input: 4.5, expected: floatPtr(4.5)},
		{name: "float32", input: float32(2.5), expected: floatPtr(2.5)},
		{name: "int", input: 4, expected: floatPtr(4)},
		{name: "int32", input: int32(3), expected: floatPtr(3)},
		{name: "int64", input: int64(5), expected: floatPtr(5)},
		{name: "string numérica", input: "4.5", expected: floatPtr(4.5)},
		{name: "string não numérica", input: "abc", expected: nil},
		{name: "string vazia", input: "", expected: nil},
		{name: "NaN", input: math.NaN(), expected: nil},
		{name: "infinito positivo", input: math.Inf(1), expected: nil},
		{name: "infinito negativo", input: math.Inf(-1), expected: nil},
		{name: "tipo não suportado", input: []int{1}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoerceFloat(tt.input)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.expected, *got)
		})
	}
}

func TestNormalizeShop(t *testing.T) {
	t.Run("documento completo com campos heterogêneos", func(t *testing.T) {
		shop := NormalizeShop(RawShop{
			ID:             "abc123",
			Name:           "Loja Nova",
			Area:           "Gisborne",
			Latitude:       "-38.6704",
			Longitude:      178.0169,
			Rating:         "4.5",
			RatingCount:    7,
			RatingDelta24h: 0.3,
			MilkshakePrice: "6.50",
		})

		assert.Equal(t, "abc123", shop.ID)
		assert.Equal(t, "Loja Nova", shop.Name)
		require.NotNil(t, shop.Latitude)
		assert.Equal(t, -38.6704, *shop.Latitude)
		require.NotNil(t, shop.Longitude)
		assert.Equal(t, 178.0169, *shop.Longitude)
		require.NotNil(t, shop.Rating)
		assert.Equal(t, 4.5, *shop.Rating)
		require.NotNil(t, shop.RatingCount)
		assert.Equal(t, 7, *shop.RatingCount)
		require.NotNil(t, shop.RatingDelta24h)
		assert.Equal(t, 0.3, *shop.RatingDelta24h)
		require.NotNil(t, shop.MilkshakePrice)
		assert.Equal(t, 6.5, *shop.MilkshakePrice)
	})

	t.Run("agregado do servidor prevalece sobre o campo legado", func(t *testing.T) {
		shop := NormalizeShop(RawShop{
			ID:            "abc123",
			Name:          "Loja Nova",
			Rating:        4.0,
			RatingAverage: 4.6,
		})

		require.NotNil(t, shop.Rating)
		assert.Equal(t, 4.6, *shop.Rating)
	})

	t.Run("campo legado serve de fallback", func(t *testing.T) {
		shop := NormalizeShop(RawShop{ID: "abc123", Name: "Loja Nova", Rating: 4.0})

		require.NotNil(t, shop.Rating)
		assert.Equal(t, 4.0, *shop.Rating)
	})

	t.Run("coerção falha equivale a campo ausente", func(t *testing.T) {
		shop := NormalizeShop(RawShop{
			ID:       "abc123",
			Name:     "Loja Nova",
			Latitude: "not-a-number",
			Rating:   math.NaN(),
		})

		assert.Nil(t, shop.Latitude)
		assert.Nil(t, shop.Rating)
		assert.False(t, shop.HasCoordinates())
	})

	t.Run("nome ausente recebe placeholder", func(t *testing.T) {
		shop := NormalizeShop(RawShop{ID: "abc123"})
		assert.Equal(t, "Unnamed shop", shop.Name)
	})
}

func TestShopHelpers(t *testing.T) {
	t.Run("HasCoordinates exige latitude e longitude", func(t *testing.T) {
		assert.False(t, Shop{}.HasCoordinates())
		assert.False(t, Shop{Latitude: floatPtr(-38.6704)}.HasCoordinates())
		assert.True(t, Shop{Latitude: floatPtr(-38.6704), Longitude: floatPtr(178.0169)}.HasCoordinates())
	})

	t.Run("DeltaOrZero e RatingOrZero tratam ausência como zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Shop{}.DeltaOrZero())
		assert.Equal(t, 0.0, Shop{}.RatingOrZero())
		assert.Equal(t, 0.3, Shop{RatingDelta24h: floatPtr(0.3)}.DeltaOrZero())
		assert.Equal(t, 4.5, Shop{Rating: floatPtr(4.5)}.RatingOrZero())
	})
}

func TestCoreShops(t *testing.T) {
	shops := CoreShops()

	require.Len(t, shops, 3)

	seen := make(map[string]bool, len(shops))
	for _, shop := range shops {
		assert.False(t, seen[shop.ID], "id duplicado no conjunto fixo: %s", shop.ID)
		seen[shop.ID] = true

		assert.NotEmpty(t, shop.Name)
		assert.True(t, shop.HasCoordinates(), "loja fixa sem coordenadas: %s", shop.ID)
		require.NotNil(t, shop.Rating)
		assert.GreaterOrEqual(t, *shop.Rating, 0.0)
		assert.LessOrEqual(t, *shop.Rating, 5.0)
	}

	t.Run("cada chamada retorna uma cópia independente", func(t *testing.T) {
		first := CoreShops()
		first[0].Name = "alterada"
		assert.Equal(t, "Captain Morgan's", CoreShops()[0].Name)
	})
}
