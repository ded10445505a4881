package domain

// SentinelCategory é o rótulo usado quando nenhuma categoria pode ser resolvida.
const SentinelCategory = "Sin categoría"

// CategorySet é o conjunto ordenado (lexicográfico) e sem duplicatas de rótulos
// de categoria derivado da coleção de produtos carregada.
type CategorySet []string

// Category é a forma de listagem de uma categoria (ID sequencial a partir de 1).
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Categories converte o conjunto em uma lista com IDs na ordem do conjunto.
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, len(s))
	for i, name := range s {
		out = append(out, Category{ID: i + 1, Name: name})
	}
	return out
}
