package catalogservice

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"gostore/internal/domain"
)

// Campos do registro bruto devolvido pela API mock.
const (
	FieldID          = "id"
	FieldName        = "nombre"
	FieldDescription = "descripcion"
	FieldPrice       = "precio"
	FieldImage       = "imagen"
	FieldCategory    = "categoria"
	FieldStock       = "stock"
	FieldStockLegacy = "Stock"
)

// CategoryTable traduz o vocabulário de categorias da fonte para o de exibição.
type CategoryTable map[string]string

// Resolve aplica a cadeia: traduzido → valor bruto → categoria sentinela.
// O valor bruto não é aparado; só a string vazia cai na sentinela.
func (t CategoryTable) Resolve(raw string) string {
	if raw == "" {
		return domain.SentinelCategory
	}
	if translated, ok := t[raw]; ok && translated != "" {
		return translated
	}
	return raw
}

// DefaultCategoryTable devolve a tabela inglês → espanhol usada pela loja.
func DefaultCategoryTable() CategoryTable {
	return CategoryTable{
		"Electronics": "Electrónica",
		"Clothing":    "Ropa",
		"Home":        "Hogar",
		"Sports":      "Deportes",
		"Toys":        "Juguetes",
		"Books":       "Libros",
		"Health":      "Salud",
		"Beauty":      "Belleza",
		"Automotive":  "Automotriz",
		"Garden":      "Jardín",
		"Tools":       "Herramientas",
		"Baby":        "Bebé",
		"Kids":        "Niños",
		"Music":       "Música",
		"Movies":      "Películas",
		"Games":       "Juegos",
		"Grocery":     "Alimentos",
		"Shoes":       "Calzado",
		"Jewelry":     "Joyería",
		"Outdoors":    "Exteriores",
		"Industrial":  "Industrial",
		"Computers":   "Computación",
	}
}

// Normalize converte um registro bruto no Product canônico.
// É total: dados malformados viram valores padrão, nunca erro.
func Normalize(raw map[string]interface{}, table CategoryTable) domain.Product {
	return domain.Product{
		ID:          toString(raw[FieldID]),
		Name:        toString(raw[FieldName]),
		Description: toString(raw[FieldDescription]),
		Price:       toPrice(raw[FieldPrice]),
		Image:       toString(raw[FieldImage]),
		Stock:       toStock(raw),
		Category:    table.Resolve(toString(raw[FieldCategory])),
	}
}

// NormalizeAll normaliza uma coleção inteira preservando a ordem.
func NormalizeAll(raws []map[string]interface{}, table CategoryTable) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw, table))
	}
	return products
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// toPrice: ausente, nulo, ilegível ou negativo vira 0.
func toPrice(v interface{}) decimal.Decimal {
	var (
		price decimal.Decimal
		err   error
	)

	switch val := v.(type) {
	case string:
		price, err = decimal.NewFromString(strings.TrimSpace(val))
	case json.Number:
		price, err = decimal.NewFromString(val.String())
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero
		}
		price = decimal.NewFromFloat(val)
	case int:
		price = decimal.NewFromInt(int64(val))
	case int64:
		price = decimal.NewFromInt(val)
	default:
		return decimal.Zero
	}

	if err != nil || price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// toStock usa o primeiro campo presente e numérico: canônico, depois legado.
func toStock(raw map[string]interface{}) int {
	for _, field := range []string{FieldStock, FieldStockLegacy} {
		if v, ok := raw[field]; ok {
			if n, ok := toInt(v); ok {
				if n < 0 {
					return 0
				}
				return n
			}
		}
	}
	return 0
}

func toInt(v interface{}) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return int(val), true
	case json.Number:
		return parseIntString(val.String())
	case string:
		return parseIntString(val)
	}
	return 0, false
}

func parseIntString(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
