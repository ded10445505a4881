package cartservice

import (
	"sync"

	"github.com/shopspring/decimal"

	"gostore/internal/domain"
	"gostore/internal/pkg/logger"
)

// Store é o dono do carrinho da sessão da loja. É criado uma vez no main
// e injetado nos handlers; o estado vive apenas em memória.
// Handlers HTTP rodam em goroutines distintas, por isso o mutex.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartLineItem
	logger logger.Logger
}

// NewStore cria um carrinho vazio.
func NewStore(log logger.Logger) *Store {
	return &Store{logger: log}
}

func (s *Store) apply(op string, productID string, fn func([]domain.CartLineItem) []domain.CartLineItem) {
	s.mu.Lock()
	before := len(s.items)
	s.items = fn(s.items)
	after := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("Carrinho atualizado.", map[string]interface{}{
		"op":           op,
		"product_id":   productID,
		"lines_before": before,
		"lines_after":  after,
	})
}

// Add adiciona uma unidade do produto. Estoque é verificado por quem chama.
func (s *Store) Add(product domain.Product) {
	s.apply("add", product.ID, func(items []domain.CartLineItem) []domain.CartLineItem {
		return AddItem(items, product)
	})
}

// Increment soma 1 à quantidade do produto, se estiver no carrinho.
func (s *Store) Increment(productID string) {
	s.apply("increment", productID, func(items []domain.CartLineItem) []domain.CartLineItem {
		return IncrementItem(items, productID)
	})
}

// Decrement subtrai 1 da quantidade; em 0 a linha sai do carrinho.
func (s *Store) Decrement(productID string) {
	s.apply("decrement", productID, func(items []domain.CartLineItem) []domain.CartLineItem {
		return DecrementItem(items, productID)
	})
}

// Remove apaga a linha do produto.
func (s *Store) Remove(productID string) {
	s.apply("remove", productID, func(items []domain.CartLineItem) []domain.CartLineItem {
		return RemoveItem(items, productID)
	})
}

// Clear esvazia o carrinho.
func (s *Store) Clear() {
	s.apply("clear", "", func([]domain.CartLineItem) []domain.CartLineItem {
		return nil
	})
}

// Take retira todas as linhas do carrinho numa única operação e as devolve.
// Adições feitas depois de Take ficam no carrinho.
func (s *Store) Take() domain.Cart {
	s.mu.Lock()
	taken := s.items
	s.items = nil
	s.mu.Unlock()

	s.logger.Debug("Carrinho retirado para checkout.", map[string]interface{}{"lines": len(taken)})
	return domain.Cart{Items: taken}
}

// Snapshot devolve uma cópia do carrinho atual.
func (s *Store) Snapshot() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Cart{Items: cloneItems(s.items)}
}

// Items devolve uma cópia das linhas na ordem de inserção.
func (s *Store) Items() []domain.CartLineItem {
	return s.Snapshot().Items
}

// TotalCount é a soma das quantidades, recalculada a cada chamada.
func (s *Store) TotalCount() int {
	return s.Snapshot().TotalCount()
}

// TotalPrice é a soma de preço × quantidade, recalculada a cada chamada.
func (s *Store) TotalPrice() decimal.Decimal {
	return s.Snapshot().TotalPrice()
}

// IsEmpty informa se o carrinho está vazio.
func (s *Store) IsEmpty() bool {
	return s.Snapshot().IsEmpty()
}

// Contains informa se o produto está no carrinho.
func (s *Store) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOf(s.items, productID) >= 0
}

// QuantityOf devolve a quantidade do produto no carrinho, 0 se ausente.
func (s *Store) QuantityOf(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := indexOf(s.items, productID); i >= 0 {
		return s.items[i].EffectiveQuantity()
	}
	return 0
}
