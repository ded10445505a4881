package cartservice

import "gostore/internal/domain"

// As funções deste arquivo são transformações puras da coleção de linhas:
// recebem a coleção atual e devolvem uma nova, sem alterar a original.

func indexOf(items []domain.CartLineItem, productID string) int {
	for i, item := range items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

func cloneItems(items []domain.CartLineItem) []domain.CartLineItem {
	out := make([]domain.CartLineItem, len(items))
	copy(out, items)
	return out
}

// AddItem incrementa a linha do produto se existir (ausente conta como 1);
// caso contrário, anexa uma nova linha com quantidade 1 no fim.
func AddItem(items []domain.CartLineItem, product domain.Product) []domain.CartLineItem {
	out := cloneItems(items)
	if i := indexOf(out, product.ID); i >= 0 {
		out[i].Quantity = out[i].EffectiveQuantity() + 1
		return out
	}
	return append(out, domain.CartLineItem{Product: product, Quantity: 1})
}

// IncrementItem soma 1 à quantidade da linha. Id inexistente: no-op.
func IncrementItem(items []domain.CartLineItem, productID string) []domain.CartLineItem {
	out := cloneItems(items)
	if i := indexOf(out, productID); i >= 0 {
		out[i].Quantity = out[i].EffectiveQuantity() + 1
	}
	return out
}

// DecrementItem subtrai 1 da quantidade; se chegar a 0 a linha é removida.
func DecrementItem(items []domain.CartLineItem, productID string) []domain.CartLineItem {
	i := indexOf(items, productID)
	if i < 0 {
		return cloneItems(items)
	}
	if items[i].EffectiveQuantity()-1 <= 0 {
		return RemoveItem(items, productID)
	}
	out := cloneItems(items)
	out[i].Quantity = out[i].EffectiveQuantity() - 1
	return out
}

// RemoveItem apaga a linha independentemente da quantidade.
func RemoveItem(items []domain.CartLineItem, productID string) []domain.CartLineItem {
	out := make([]domain.CartLineItem, 0, len(items))
	for _, item := range items {
		if item.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
