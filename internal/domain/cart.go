package domain

import "github.com/shopspring/decimal"

// CartLineItem é a entrada de um produto no carrinho com sua quantidade.
// Quantity <= 0 é tratada como "ausente" e vale 1 nas contas.
type CartLineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// EffectiveQuantity devolve a quantidade considerando ausente como 1.
func (i CartLineItem) EffectiveQuantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// Subtotal é preço × quantidade da linha.
func (i CartLineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.EffectiveQuantity())))
}

// Cart é a coleção ordenada (ordem do primeiro add) de linhas do carrinho.
// Os agregados são sempre recalculados a partir das linhas.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// TotalCount é a soma das quantidades.
func (c Cart) TotalCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.EffectiveQuantity()
	}
	return total
}

// TotalPrice é a soma de preço × quantidade de cada linha.
func (c Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// IsEmpty informa se o carrinho não tem linhas.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartSummary é a representação do carrinho com agregados para a API.
type CartSummary struct {
	Items      []CartLineItem  `json:"items"`
	TotalCount int             `json:"total_count"`
	TotalPrice decimal.Decimal `json:"total_price"`
	IsEmpty    bool            `json:"is_empty"`
}

// Summary calcula os agregados do carrinho no momento da chamada.
func (c Cart) Summary() CartSummary {
	items := c.Items
	if items == nil {
		items = []CartLineItem{}
	}
	return CartSummary{
		Items:      items,
		TotalCount: c.TotalCount(),
		TotalPrice: c.TotalPrice(),
		IsEmpty:    c.IsEmpty(),
	}
}
