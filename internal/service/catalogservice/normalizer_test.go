package catalogservice

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gostore/internal/domain"
)

func TestNormalize_FullRecord(t *testing.T) {
	raw := map[string]interface{}{
		"id":          "12",
		"nombre":      "Auriculares",
		"descripcion": "Bluetooth",
		"precio":      "49.90",
		"imagen":      "https://img.example/a.png",
		"categoria":   "Electronics",
		"stock":       float64(4),
	}

	p := Normalize(raw, DefaultCategoryTable())

	assert.Equal(t, "12", p.ID)
	assert.Equal(t, "Auriculares", p.Name)
	assert.Equal(t, "Bluetooth", p.Description)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, "https://img.example/a.png", p.Image)
	assert.Equal(t, 4, p.Stock)
	assert.Equal(t, "Electrónica", p.Category)
}

func TestNormalize_PriceWithoutParseableValueIsZero(t *testing.T) {
	cases := map[string]interface{}{
		"missing":  nil,
		"empty":    "",
		"garbage":  "doce pesos",
		"bool":     true,
		"object":   map[string]interface{}{"amount": 3},
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
		"negative": "-5",
	}

	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			raw := map[string]interface{}{"id": "1"}
			if value != nil {
				raw["precio"] = value
			}
			assert.True(t, Normalize(raw, nil).Price.IsZero())
		})
	}
}

func TestNormalize_PriceAcceptsNumbersAndStrings(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{float64(10), "10"},
		{"10.00", "10"},
		{" 7.5 ", "7.5"},
		{json.Number("199.99"), "199.99"},
		{int(3), "3"},
	}

	for _, c := range cases {
		got := Normalize(map[string]interface{}{"precio": c.in}, nil).Price
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)), "in=%v got=%s", c.in, got)
	}
}

func TestNormalize_StockFields(t *testing.T) {
	cases := []struct {
		name string
		raw  map[string]interface{}
		want int
	}{
		{"canonical string", map[string]interface{}{"stock": "3"}, 3},
		{"legacy string", map[string]interface{}{"Stock": "3"}, 3},
		{"canonical wins over legacy", map[string]interface{}{"stock": "3", "Stock": "8"}, 3},
		{"canonical not numeric falls back to legacy", map[string]interface{}{"stock": "n/a", "Stock": 2.0}, 2},
		{"fraction truncates", map[string]interface{}{"stock": 4.9}, 4},
		{"json number", map[string]interface{}{"stock": json.Number("6")}, 6},
		{"negative clamps", map[string]interface{}{"stock": -2.0}, 0},
		{"absent", map[string]interface{}{}, 0},
		{"null", map[string]interface{}{"stock": nil}, 0},
		{"not numeric", map[string]interface{}{"Stock": "muchos"}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Normalize(c.raw, nil).Stock)
		})
	}
}

func TestNormalize_CategoryFallbackChain(t *testing.T) {
	table := DefaultCategoryTable()

	assert.Equal(t, "Hogar", Normalize(map[string]interface{}{"categoria": "Home"}, table).Category)
	assert.Equal(t, "Mascotas", Normalize(map[string]interface{}{"categoria": "Mascotas"}, table).Category)
	assert.Equal(t, domain.SentinelCategory, Normalize(map[string]interface{}{"categoria": ""}, table).Category)
	assert.Equal(t, domain.SentinelCategory, Normalize(map[string]interface{}{}, table).Category)
	assert.Equal(t, domain.SentinelCategory, Normalize(map[string]interface{}{"categoria": nil}, table).Category)
}

func TestNormalize_CategoryKeepsRawWhitespace(t *testing.T) {
	table := DefaultCategoryTable()

	assert.Equal(t, " Home ", Normalize(map[string]interface{}{"categoria": " Home "}, table).Category)
	assert.Equal(t, "  ", Normalize(map[string]interface{}{"categoria": "  "}, table).Category)
	assert.Equal(t, " Home ", table.Resolve(" Home "))
}

func TestNormalize_NumericIDIsFormattedWithoutExponent(t *testing.T) {
	p := Normalize(map[string]interface{}{"id": float64(12345678)}, nil)
	assert.Equal(t, "12345678", p.ID)
}

func TestNormalize_ImagePassesThrough(t *testing.T) {
	p := Normalize(map[string]interface{}{"imagen": "not a url"}, nil)
	assert.Equal(t, "not a url", p.Image)

	empty := Normalize(map[string]interface{}{}, nil)
	assert.Equal(t, "", empty.Image)
	assert.Equal(t, domain.PlaceholderImage, empty.ImageOrPlaceholder())
}
