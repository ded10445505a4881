package domain

import "github.com/shopspring/decimal"

// PlaceholderImage substitui imagens ausentes ou inválidas na renderização.
const PlaceholderImage = "https://placehold.co/400x300"

// Product representa um item do catálogo já normalizado.
// É imutável depois de produzido pelo normalizador e não é persistido.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
}

// InStock informa se o produto pode ser adicionado ao carrinho.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// ImageOrPlaceholder devolve a URL da imagem ou o placeholder fixo quando ausente.
func (p Product) ImageOrPlaceholder() string {
	if p.Image == "" {
		return PlaceholderImage
	}
	return p.Image
}

// Catalog é o resultado de uma ativação do catálogo: produtos e categorias derivadas.
type Catalog struct {
	Products   []Product   `json:"products"`
	Categories CategorySet `json:"categories"`
}
