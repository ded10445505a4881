package catalogservice

import (
	"sort"

	"gostore/internal/domain"
)

// BuildCategorySet deriva o conjunto ordenado e sem duplicatas de categorias.
// É recalculado do zero a cada carga do catálogo.
func BuildCategorySet(products []domain.Product) domain.CategorySet {
	seen := make(map[string]struct{}, len(products))
	set := make(domain.CategorySet, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		set = append(set, p.Category)
	}
	sort.Strings(set)
	return set
}

// BelongsTo compara a categoria normalizada por igualdade exata.
func BelongsTo(product domain.Product, label string) bool {
	return product.Category == label
}

// FilterByCategory devolve os produtos da categoria, na ordem original.
func FilterByCategory(products []domain.Product, label string) []domain.Product {
	out := make([]domain.Product, 0)
	for _, p := range products {
		if BelongsTo(p, label) {
			out = append(out, p)
		}
	}
	return out
}
