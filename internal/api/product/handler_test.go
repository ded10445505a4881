package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// MockCatalogService é uma implementação mock de CatalogService.
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockCatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/products", h.ListProductsHandler)
	r.Get("/v1/products/{id}", h.GetProductByIDHandler)
	r.Get("/v1/categories", h.ListCategoriesHandler)
	return r
}

func TestListProductsHandler_FiltersByCategory(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListProducts", mock.Anything, "Hogar").Return([]domain.Product{
		{ID: "2", Name: "Lámpara", Price: decimal.RequireFromString("30.5"), Category: "Hogar", Stock: 2},
	}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc, logger.NewNop())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products?category=Hogar", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var products []domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Lámpara", products[0].Name)
	assert.Equal(t, domain.PlaceholderImage, products[0].Image)
	assert.True(t, decimal.RequireFromString("30.5").Equal(products[0].Price))
	svc.AssertExpectations(t)
}

func TestListProductsHandler_EmptyCatalogIsEmptyArray(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListProducts", mock.Anything, "").Return([]domain.Product{}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc, logger.NewNop())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListProductsHandler_UpstreamFailure(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("ListProducts", mock.Anything, "").Return(nil, apperror.NewUpstreamError("status inesperado", 500, nil))

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc, logger.NewNop())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "UPSTREAM_ERROR")
}

func TestGetProductByIDHandler(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("GetProduct", mock.Anything, "1").Return(domain.Product{ID: "1", Name: "Camiseta", Image: "https://img/1.png"}, nil)
	svc.On("GetProduct", mock.Anything, "99").Return(domain.Product{}, apperror.NewNotFoundError("Produto não encontrado."))
	router := newRouter(NewHandler(svc, logger.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var product domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
	assert.Equal(t, "https://img/1.png", product.Image)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/products/99", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesHandler(t *testing.T) {
	svc := new(MockCatalogService)
	svc.On("Categories", mock.Anything).Return([]domain.Category{{ID: 1, Name: "Hogar"}, {ID: 2, Name: "Ropa"}}, nil)

	w := httptest.NewRecorder()
	newRouter(NewHandler(svc, logger.NewNop())).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Hogar"},{"id":2,"name":"Ropa"}]`, w.Body.String())
}
