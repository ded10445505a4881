package cart

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gostore/internal/api/respond"
	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// CartStore é o carrinho em memória compartilhado pela aplicação.
type CartStore interface {
	Add(product domain.Product)
	Increment(productID string)
	Decrement(productID string)
	Remove(productID string)
	Clear()
	Snapshot() domain.Cart
}

// ProductLookup resolve o produto a ser adicionado.
type ProductLookup interface {
	GetProduct(ctx context.Context, id string) (domain.Product, error)
}

// AddItemRequest é o payload de POST /v1/cart/items.
type AddItemRequest struct {
	ProductID string `json:"product_id" example:"1"`
}

// Handler agrupa os handlers do carrinho.
type Handler struct {
	Cart     CartStore
	Products ProductLookup
	Logger   logger.Logger
	resp     *respond.Responder
}

// NewHandler cria o Handler do carrinho.
func NewHandler(cart CartStore, products ProductLookup, log logger.Logger) *Handler {
	return &Handler{
		Cart:     cart,
		Products: products,
		Logger:   log,
		resp:     respond.New(log),
	}
}

func (h *Handler) writeSummary(w http.ResponseWriter, r *http.Request) {
	h.resp.JSON(w, r, http.StatusOK, h.Cart.Snapshot().Summary())
}

// GetCartHandler lida com GET /v1/cart.
// @Summary Conteúdo do carrinho
// @Description Linhas na ordem de inclusão, com quantidade total, preço total e flag de vazio.
// @Tags cart
// @Produce json
// @Success 200 {object} domain.CartSummary
// @Router /v1/cart [get]
func (h *Handler) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	h.writeSummary(w, r)
}

// AddItemHandler lida com POST /v1/cart/items.
// @Summary Adiciona um produto ao carrinho
// @Description Produto novo entra com quantidade 1; produto já presente tem a quantidade incrementada. Produtos sem estoque são recusados.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddItemRequest true "Produto a adicionar"
// @Success 200 {object} domain.CartSummary
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Produto sem estoque"
// @Router /v1/cart/items [post]
func (h *Handler) AddItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	productID := strings.TrimSpace(req.ProductID)
	if productID == "" {
		h.resp.Error(w, r, apperror.NewFieldValidationError("ID do produto é obrigatório.", map[string]string{
			"product_id": "Campo obrigatório",
		}))
		return
	}

	product, err := h.Products.GetProduct(r.Context(), productID)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	// Produto sem estoque não pode ser adicionado (o carrinho em si não verifica).
	if !product.InStock() {
		h.resp.Error(w, r, apperror.NewConflictError("Produto sem estoque."))
		return
	}

	h.Cart.Add(product)
	h.writeSummary(w, r)
}

// IncrementItemHandler lida com POST /v1/cart/items/{id}/increment.
// @Summary Incrementa a quantidade de uma linha
// @Description ID ausente do carrinho não altera nada.
// @Tags cart
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.CartSummary
// @Router /v1/cart/items/{id}/increment [post]
func (h *Handler) IncrementItemHandler(w http.ResponseWriter, r *http.Request) {
	h.Cart.Increment(chi.URLParam(r, "id"))
	h.writeSummary(w, r)
}

// DecrementItemHandler lida com POST /v1/cart/items/{id}/decrement.
// @Summary Decrementa a quantidade de uma linha
// @Description A linha é removida quando a quantidade chegaria a zero.
// @Tags cart
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.CartSummary
// @Router /v1/cart/items/{id}/decrement [post]
func (h *Handler) DecrementItemHandler(w http.ResponseWriter, r *http.Request) {
	h.Cart.Decrement(chi.URLParam(r, "id"))
	h.writeSummary(w, r)
}

// RemoveItemHandler lida com DELETE /v1/cart/items/{id}.
// @Summary Remove uma linha do carrinho
// @Tags cart
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.CartSummary
// @Router /v1/cart/items/{id} [delete]
func (h *Handler) RemoveItemHandler(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(chi.URLParam(r, "id"))
	h.writeSummary(w, r)
}

// ClearCartHandler lida com DELETE /v1/cart.
// @Summary Esvazia o carrinho
// @Tags cart
// @Produce json
// @Success 200 {object} domain.CartSummary
// @Router /v1/cart [delete]
func (h *Handler) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	h.writeSummary(w, r)
}
