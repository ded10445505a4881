package product

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

// CatalogService define o contrato que o Handler espera da camada de Serviço.
type CatalogService interface {
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// Handler agrupa os handlers do catálogo.
type Handler struct {
	Service CatalogService
	Logger  logger.Logger
	resp    *respond.Responder
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		resp:    respond.New(log),
	}
}

// withPlaceholder troca imagens ausentes pelo placeholder na saída.
func withPlaceholder(p domain.Product) domain.Product {
	p.Image = p.ImageOrPlaceholder()
	return p
}

// ListProductsHandler lida com a requisição GET /v1/products.
// @Summary Lista os produtos do catálogo
// @Description Busca o catálogo na fonte externa, normaliza e filtra opcionalmente por categoria (comparação exata).
// @Tags products
// @Produce json
// @Param category query string false "Rótulo exato da categoria"
// @Success 200 {array} domain.Product
// @Failure 502 {object} domain.ErrorResponse "Falha na fonte de produtos"
// @Router /v1/products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.Service.ListProducts(r.Context(), category)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, withPlaceholder(p))
	}
	h.resp.JSON(w, r, http.StatusOK, out)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// @Summary Detalhe de um produto
// @Tags products
// @Produce json
// @Param id path string true "ID do produto"
// @Success 200 {object} domain.Product
// @Failure 404 {object} domain.ErrorResponse "Produto não encontrado"
// @Failure 502 {object} domain.ErrorResponse "Falha na fonte de produtos"
// @Router /v1/products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	productID := strings.TrimSpace(chi.URLParam(r, "id"))
	if productID == "" {
		h.resp.Error(w, r, apperror.NewValidationError("ID do produto é obrigatório."))
		return
	}

	product, err := h.Service.GetProduct(r.Context(), productID)
	if err != nil {
		h.resp.Error(w, r, err)
		return
	}
	h.resp.JSON(w, r, http.StatusOK, withPlaceholder(product))
}

// ListCategoriesHandler lida com a requisição GET /v1/categories.
// @Summary Lista as categorias derivadas do catálogo
// @Description Rótulos distintos em ordem lexicográfica, com IDs sequenciais a partir de 1.
// @Tags products
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 502 {object} domain.ErrorResponse "Falha na fonte de produtos"
// @Router /v1/categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	h.resp.Handle(w, r, categories, err, http.StatusOK)
}
